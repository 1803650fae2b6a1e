/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rulego/arrayagg/types"
)

func TestCompareSortKeys_Strings(t *testing.T) {
	assert.Negative(t, CompareSortKeys("abc", "def", types.NullsLast))
	assert.Positive(t, CompareSortKeys("def", "abc", types.NullsLast))
	assert.Zero(t, CompareSortKeys("abc", "abc", types.NullsLast))
}

func TestCompareSortKeys_NilPlacement(t *testing.T) {
	// NULLS LAST: nil sorts after everything.
	assert.Positive(t, CompareSortKeys(nil, "abc", types.NullsLast))
	assert.Negative(t, CompareSortKeys("abc", nil, types.NullsLast))
	// NULLS FIRST: nil sorts before everything.
	assert.Negative(t, CompareSortKeys(nil, "abc", types.NullsFirst))
	assert.Positive(t, CompareSortKeys("abc", nil, types.NullsFirst))
	// Two nils tie under either policy.
	assert.Zero(t, CompareSortKeys(nil, nil, types.NullsLast))
	assert.Zero(t, CompareSortKeys(nil, nil, types.NullsFirst))
}

func TestCompareSortKeys_NumericAcrossTypes(t *testing.T) {
	assert.Negative(t, CompareSortKeys(1, 2.5, types.NullsLast))
	assert.Positive(t, CompareSortKeys(int64(100), uint8(7), types.NullsLast))
	assert.Zero(t, CompareSortKeys(3, 3.0, types.NullsLast))
	assert.Negative(t, CompareSortKeys(float32(1.5), 2, types.NullsLast))
}

func TestCompareSortKeys_Booleans(t *testing.T) {
	assert.Negative(t, CompareSortKeys(false, true, types.NullsLast))
	assert.Positive(t, CompareSortKeys(true, false, types.NullsLast))
	assert.Zero(t, CompareSortKeys(true, true, types.NullsLast))
}

func TestCompareSortKeys_Timestamps(t *testing.T) {
	earlier := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Negative(t, CompareSortKeys(earlier, later, types.NullsLast))
	assert.Positive(t, CompareSortKeys(later, earlier, types.NullsLast))
	assert.Zero(t, CompareSortKeys(earlier, earlier, types.NullsLast))
}

func TestCompareSortKeys_FallbackToString(t *testing.T) {
	// Incomparable pairs fall back to their string form so the sort
	// remains total.
	assert.NotPanics(t, func() {
		CompareSortKeys("abc", 42, types.NullsLast)
		CompareSortKeys(struct{ X int }{1}, "y", types.NullsLast)
	})
}
