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

// GroupKey identifies one aggregation group. The empty string is a valid
// key; "no key" is expressed by a nil Row.Group, which is rejected at
// ingest time.
type GroupKey string

// Row is one input tuple for the aggregator.
// Group partitions rows into independent aggregation groups and must be
// defined. SortKey orders values inside a group's aggregate and may be nil.
// Value is the aggregated payload and may be nil; it is never compared,
// only the sort key needs ordering.
type Row struct {
	Group   interface{} `json:"group"`
	SortKey interface{} `json:"sortKey"`
	Value   interface{} `json:"value"`
}
