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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyResult(t *testing.T) {
	r := EmptyResult()
	assert.True(t, r.IsEmpty())
	assert.Nil(t, r.Values())
	assert.Equal(t, 0, r.Len())
}

func TestNewResultNeverNil(t *testing.T) {
	r := NewResult(nil)
	assert.False(t, r.IsEmpty())
	assert.NotNil(t, r.Values())
	assert.Equal(t, 0, r.Len())
}

func TestEmptyDistinctFromNullFilled(t *testing.T) {
	// A group that matched zero rows must never compare equal to a group
	// that aggregated a single nil value.
	empty := EmptyResult()
	nullFilled := NewResult([]interface{}{nil})

	assert.True(t, empty.DistinctFrom(nullFilled))
	assert.True(t, nullFilled.DistinctFrom(empty))
	assert.False(t, empty.DistinctFrom(EmptyResult()))
}

func TestEmptyDistinctFromZeroLength(t *testing.T) {
	empty := EmptyResult()
	zeroLen := NewResult([]interface{}{})
	assert.True(t, empty.DistinctFrom(zeroLen))
}

func TestDistinctFromElementWise(t *testing.T) {
	a := NewResult([]interface{}{"abc", "def", nil})
	b := NewResult([]interface{}{"abc", "def", nil})
	c := NewResult([]interface{}{"abc", nil, "def"})
	d := NewResult([]interface{}{"abc", "def"})

	assert.False(t, a.DistinctFrom(b))
	assert.True(t, a.Equal(b))
	assert.True(t, a.DistinctFrom(c))
	assert.True(t, a.DistinctFrom(d))
}

func TestDistinctFromMixedTypes(t *testing.T) {
	a := NewResult([]interface{}{1.0, "x"})
	b := NewResult([]interface{}{1.0, "x"})
	c := NewResult([]interface{}{1, "x"})

	assert.False(t, a.DistinctFrom(b))
	// int 1 and float64 1.0 are different payloads, values are compared
	// structurally, not numerically.
	assert.True(t, a.DistinctFrom(c))
}
