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

/*
Package aggregator implements ordered, null-aware array aggregation over
grouped rows, the in-memory equivalent of SQL's

	array_agg(value) within group (order by sortKey [nulls first|last])

Rows are buffered per group in arrival order and sorted once at
finalization with a stable three-key comparison: nil sort keys go to the
end chosen by the null ordering, comparable keys use their natural order,
and ties keep ingest order. Duplicate sort keys are preserved; this is
array aggregation, not set aggregation.

A group that matched zero rows (declared via RegisterEmptyGroup) yields
the EMPTY sentinel, which is kept distinct from both the zero-length
sequence and a sequence of nil values.

Lifecycle:

	agg := aggregator.NewArrayAggregator(types.NewConfig())
	_ = agg.Ingest(types.Row{Group: "g", SortKey: "def", Value: "def"})
	_ = agg.Ingest(types.Row{Group: "g", SortKey: "abc", Value: "abc"})
	results, _ := agg.Finalize(types.NullsLast)
	// results["g"].Values() == ["abc", "def"]

All methods are safe for use from a single writer; concurrent producers
must serialize through the surrounding stream layer.
*/
package aggregator
