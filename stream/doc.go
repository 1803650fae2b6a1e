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
Package stream wires records from producers into the ordered array
aggregator and delivers the finalized batch to consumers.

The pipeline is: Emit → buffered channel → optional filter → aggregator
ingest, then on Flush (the end-of-stream signal) the queued records are
drained, the aggregate is finalized with the configured null ordering and
the batch is materialized as one record per group:

	{<groupField>: "g", <valueField>: ["abc", "def", nil]}

A group that matched zero rows renders its value field as nil, mirroring
a SQL array_agg over an empty relation. Batches reach consumers three
ways: the Flush return value, registered sinks (dispatched on a bounded
worker pool) and the results channel.

The stream is also the concurrency boundary demanded by the aggregator:
any number of producers may Emit, but a single goroutine performs all
ingestion and finalization.

Backpressure follows the configured overflow strategy: "block" applies
backpressure to producers (optionally bounded by a timeout), "drop"
discards records when the buffer is full and counts them in the stats.
*/
package stream
