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

import "reflect"

// AggregateResult is the finalized output for one group: either the EMPTY
// sentinel (the group matched zero rows) or an ordered value sequence.
// EMPTY is distinct from an empty sequence and from a sequence of nulls;
// downstream consumers rely on "is [not] distinct from" semantics where
// EMPTY compares as absent.
type AggregateResult struct {
	empty  bool
	values []interface{}
}

// EmptyResult returns the EMPTY sentinel result.
func EmptyResult() AggregateResult {
	return AggregateResult{empty: true}
}

// NewResult wraps an ordered value sequence. The slice is taken as-is,
// individual values may be nil.
func NewResult(values []interface{}) AggregateResult {
	if values == nil {
		values = []interface{}{}
	}
	return AggregateResult{values: values}
}

// IsEmpty reports whether the result is the EMPTY sentinel.
func (r AggregateResult) IsEmpty() bool {
	return r.empty
}

// Values returns the ordered value sequence, or nil for EMPTY.
// A non-empty result always returns a non-nil slice, so a group that
// aggregated a single null value yields [nil], never nil.
func (r AggregateResult) Values() []interface{} {
	if r.empty {
		return nil
	}
	return r.values
}

// Len returns the number of aggregated values, 0 for EMPTY.
func (r AggregateResult) Len() int {
	if r.empty {
		return 0
	}
	return len(r.values)
}

// DistinctFrom implements SQL "IS DISTINCT FROM" comparison between two
// results. EMPTY is not distinct from EMPTY but distinct from every
// sequence, including the zero-length one. Within sequences two nil
// values compare as not distinct.
func (r AggregateResult) DistinctFrom(other AggregateResult) bool {
	if r.empty || other.empty {
		return r.empty != other.empty
	}
	if len(r.values) != len(other.values) {
		return true
	}
	for i, v := range r.values {
		ov := other.values[i]
		if v == nil || ov == nil {
			if (v == nil) != (ov == nil) {
				return true
			}
			continue
		}
		if !reflect.DeepEqual(v, ov) {
			return true
		}
	}
	return false
}

// Equal reports "IS NOT DISTINCT FROM" equality.
func (r AggregateResult) Equal(other AggregateResult) bool {
	return !r.DistinctFrom(other)
}
