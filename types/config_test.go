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
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	config := NewConfig()
	assert.Equal(t, "group", config.GroupField)
	assert.Equal(t, "sortKey", config.SortField)
	assert.Equal(t, "value", config.ValueField)
	assert.Equal(t, NullsLast, config.NullOrdering)
	assert.Equal(t, OverflowBlock, config.PerformanceConfig.OverflowConfig.Strategy)
	assert.False(t, config.PerformanceConfig.OverflowConfig.AllowDataLoss)
}

func TestPerformancePresets(t *testing.T) {
	high := HighPerformanceConfig()
	assert.Greater(t, high.BufferConfig.DataChannelSize, DefaultPerformanceConfig().BufferConfig.DataChannelSize)

	low := LowLatencyConfig()
	assert.Equal(t, OverflowDrop, low.OverflowConfig.Strategy)
	assert.True(t, low.OverflowConfig.AllowDataLoss)
}

func TestParseNullOrdering(t *testing.T) {
	cases := map[string]NullOrdering{
		"nulls last":   NullsLast,
		"NULLS  FIRST": NullsFirst,
		"first":        NullsFirst,
		"nulls_last":   NullsLast,
	}
	for input, expected := range cases {
		got, err := ParseNullOrdering(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, got, input)
	}

	_, err := ParseNullOrdering("sideways")
	assert.Error(t, err)
}

func TestNullOrderingString(t *testing.T) {
	assert.Equal(t, "NULLS LAST", NullsLast.String())
	assert.Equal(t, "NULLS FIRST", NullsFirst.String())
}

func TestCapabilitySet(t *testing.T) {
	set := NewCapabilitySet(CapOrderedAggregation)
	assert.True(t, set.Supports(CapOrderedAggregation))
	assert.False(t, set.Supports(CapNullOrdering))

	// The nil set is fully capable.
	var all CapabilitySet
	assert.True(t, all.Supports(CapNullOrdering))

	assert.True(t, AllCapabilities().Supports(CapDistinctFrom))
}
