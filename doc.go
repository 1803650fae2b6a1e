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
Package arrayagg is a lightweight in-memory engine for ordered,
null-aware array aggregation over grouped record streams, the equivalent
of SQL's

	array_agg(value) within group (order by sortKey [nulls first|last])

computed outside a database. Records carry a group key, a sort key and a
value; per group the engine produces the values as an ordered sequence,
with nil sort keys placed per the configured null ordering and ties kept
in arrival order. Groups that matched zero rows are reported as EMPTY
(rendered nil), which never compares equal to a group holding nil values.

# Quick start

	agg := arrayagg.New(
		arrayagg.WithFields("device", "ts", "reading"),
		arrayagg.WithFilter(`reading != nil`),
	)
	if err := agg.Start(); err != nil {
		log.Fatal(err)
	}
	defer agg.Stop()

	agg.Emit(map[string]interface{}{"device": "dht22", "ts": 2, "reading": 21.8})
	agg.Emit(map[string]interface{}{"device": "dht22", "ts": 1, "reading": 21.5})

	rows, err := agg.Flush()
	// rows: [{"device": "dht22", "reading": [21.5, 21.8]}]

# Building blocks

  - aggregator: the core ordered array aggregation with the stable
    three-key sort
  - stream: channel-based pipeline with filtering, backpressure and sink
    dispatch
  - condition: expr-lang based record filtering
  - types: rows, results, null ordering, capabilities, configuration
  - collector: synchronous batch collection for tests and simple callers

Results can be consumed from the Flush return value, registered sinks, or
the result channel. Sources can declare a capability set; configurations
the source cannot serve (e.g. NULLS FIRST on a source without native
null ordering) are rejected at Start.
*/
package arrayagg
