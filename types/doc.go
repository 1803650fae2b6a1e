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
Package types defines the data model and configuration of the arrayagg
engine.

The central concepts are:

  - Row: one (group, sort key, value) input tuple. The group key is
    mandatory, sort key and value may be nil.
  - AggregateResult: the finalized per-group output. It is either an
    ordered value sequence or the EMPTY sentinel for a group that matched
    zero rows. The two are deliberately kept apart: a group whose single
    row carries a nil value yields [nil], which under "is distinct from"
    comparison never equals EMPTY.
  - NullOrdering: placement policy for nil sort keys, mirroring a query's
    "order by ... nulls first|last" clause.
  - CapabilitySet: optional features a row source declares, letting the
    engine emulate or reject what the source cannot deliver natively.

Config ties these together with the input field names and the buffering
profile of the streaming pipeline.
*/
package types
