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

package arrayagg

import (
	"fmt"

	"github.com/rulego/arrayagg/stream"
	"github.com/rulego/arrayagg/types"
)

// ArrayAgg is the main entry point of the ordered array aggregation
// engine. It wraps the streaming pipeline behind a small facade.
//
// Usage:
//
//	agg := arrayagg.New(arrayagg.WithNullOrdering(types.NullsLast))
//	if err := agg.Start(); err != nil { ... }
//	agg.Emit(map[string]interface{}{"group": "g", "sortKey": "abc", "value": "abc"})
//	rows, err := agg.Flush()
type ArrayAgg struct {
	config types.Config
	stream *stream.Stream
}

// New creates an engine instance with the default configuration,
// modified by the given options. Start must be called before emitting.
func New(options ...Option) *ArrayAgg {
	a := &ArrayAgg{config: types.NewConfig()}
	for _, option := range options {
		option(a)
	}
	return a
}

// Config returns the effective configuration.
func (a *ArrayAgg) Config() types.Config {
	return a.config
}

// Start validates the configuration against the source capabilities and
// launches the pipeline.
func (a *ArrayAgg) Start() error {
	if a.stream != nil {
		return fmt.Errorf("engine already started")
	}
	s, err := stream.NewStream(a.config)
	if err != nil {
		return err
	}
	a.stream = s
	s.Start()
	return nil
}

// Emit queues one record for aggregation. Records are maps carrying the
// configured group, sort key and value fields. Safe for concurrent use.
func (a *ArrayAgg) Emit(data map[string]interface{}) {
	if a.stream != nil {
		a.stream.Emit(data)
	}
}

// RegisterEmptyGroup declares a group that matched zero rows, so the
// final batch reports it as EMPTY instead of omitting it.
func (a *ArrayAgg) RegisterEmptyGroup(key types.GroupKey) error {
	if a.stream == nil {
		return fmt.Errorf("engine not started")
	}
	return a.stream.RegisterEmptyGroup(key)
}

// Flush signals end-of-stream: pending records are drained, every group
// is finalized into its ordered array and the batch is returned. The
// batch also reaches sinks and the result channel.
func (a *ArrayAgg) Flush() ([]map[string]interface{}, error) {
	if a.stream == nil {
		return nil, fmt.Errorf("engine not started")
	}
	return a.stream.Flush()
}

// AddSink registers a callback receiving the finalized batch.
func (a *ArrayAgg) AddSink(sink func([]map[string]interface{})) {
	if a.stream != nil {
		a.stream.AddSink(sink)
	}
}

// ToChannel returns the channel carrying finalized batches, or nil
// before Start.
func (a *ArrayAgg) ToChannel() <-chan []map[string]interface{} {
	if a.stream != nil {
		return a.stream.GetResultsChan()
	}
	return nil
}

// GetStats returns input/output/dropped counters.
func (a *ArrayAgg) GetStats() map[string]int64 {
	if a.stream != nil {
		return a.stream.GetStats()
	}
	return make(map[string]int64)
}

// Stream exposes the underlying pipeline for lower-level control.
func (a *ArrayAgg) Stream() *stream.Stream {
	return a.stream
}

// Stop shuts the pipeline down. A stopped engine cannot be restarted;
// create a new instance instead.
func (a *ArrayAgg) Stop() {
	if a.stream != nil {
		a.stream.Stop()
	}
}
