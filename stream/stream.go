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

package stream

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rulego/arrayagg/aggregator"
	"github.com/rulego/arrayagg/condition"
	"github.com/rulego/arrayagg/logger"
	"github.com/rulego/arrayagg/types"
)

// Stat keys returned by GetStats.
const (
	StatInput   = "inputCount"
	StatOutput  = "outputCount"
	StatDropped = "droppedCount"
)

// flushRequest asks the processing goroutine to drain pending records,
// finalize the aggregate and hand back the materialized batch.
type flushRequest struct {
	reply chan flushReply
}

type flushReply struct {
	results []map[string]interface{}
	err     error
}

// Stream feeds filtered records into an ArrayAggregator and delivers the
// finalized batch to sinks and the result channel. It owns the single
// writer to the aggregator: all producers funnel through Emit, so the
// aggregator never sees concurrent ingestion.
type Stream struct {
	config     types.Config
	dataChan   chan map[string]interface{}
	filter     condition.Condition
	aggregator *aggregator.ArrayAggregator
	resultChan chan []map[string]interface{}
	flushChan  chan flushRequest
	done       chan struct{}

	sinks    []func([]map[string]interface{})
	sinksMux sync.RWMutex

	sinkWorkerPool chan func()

	inputCount   int64
	outputCount  int64
	droppedCount int64

	started int32
	stopped int32
}

// NewStream validates the configuration against the declared source
// capabilities and builds the pipeline. The stream must be started with
// Start before it processes anything.
func NewStream(config types.Config) (*Stream, error) {
	if !config.Capabilities.Supports(types.CapOrderedAggregation) {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedCapability, types.CapOrderedAggregation)
	}
	// Sources without native null ordering only get the default NULLS
	// LAST placement; explicit NULLS FIRST cannot be emulated for them.
	if config.NullOrdering == types.NullsFirst && !config.Capabilities.Supports(types.CapNullOrdering) {
		return nil, fmt.Errorf("%w: %s requires %s", types.ErrUnsupportedCapability, config.NullOrdering, types.CapNullOrdering)
	}

	overflow := config.PerformanceConfig.OverflowConfig
	switch overflow.Strategy {
	case types.OverflowBlock, types.OverflowDrop:
	default:
		return nil, fmt.Errorf("unknown overflow strategy: %q", overflow.Strategy)
	}

	buffers := config.PerformanceConfig.BufferConfig
	workers := config.PerformanceConfig.WorkerConfig
	s := &Stream{
		config:         config,
		dataChan:       make(chan map[string]interface{}, buffers.DataChannelSize),
		aggregator:     aggregator.NewArrayAggregator(config),
		resultChan:     make(chan []map[string]interface{}, buffers.ResultChannelSize),
		flushChan:      make(chan flushRequest),
		done:           make(chan struct{}),
		sinkWorkerPool: make(chan func(), workers.SinkPoolSize),
	}
	if config.Where != "" {
		if err := s.RegisterFilter(config.Where); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// RegisterFilter compiles and installs a filter expression. Records not
// matching the filter are discarded before ingestion. Must be called
// before Start.
func (s *Stream) RegisterFilter(expression string) error {
	if strings.TrimSpace(expression) == "" {
		return nil
	}
	filter, err := condition.NewExprCondition(expression)
	if err != nil {
		return fmt.Errorf("compile filter error: %w", err)
	}
	s.filter = filter
	return nil
}

// Start launches the processing goroutine and the sink worker pool.
// Starting twice is a no-op.
func (s *Stream) Start() {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return
	}
	workerCount := s.config.PerformanceConfig.WorkerConfig.SinkWorkerCount
	if workerCount <= 0 {
		workerCount = 1
	}
	for i := 0; i < workerCount; i++ {
		go s.sinkWorker()
	}
	go s.process()
}

// Emit queues one record for ingestion. Behavior when the buffer is full
// follows the overflow strategy: "block" waits (optionally bounded by
// BlockTimeout), "drop" discards the record and counts it.
func (s *Stream) Emit(data map[string]interface{}) {
	if atomic.LoadInt32(&s.stopped) == 1 {
		return
	}
	atomic.AddInt64(&s.inputCount, 1)

	overflow := s.config.PerformanceConfig.OverflowConfig
	if overflow.Strategy == types.OverflowDrop {
		select {
		case s.dataChan <- data:
		default:
			atomic.AddInt64(&s.droppedCount, 1)
			logger.Debug("data channel full, record dropped")
		}
		return
	}

	if overflow.BlockTimeout <= 0 {
		select {
		case s.dataChan <- data:
		case <-s.done:
		}
		return
	}
	timer := time.NewTimer(overflow.BlockTimeout)
	defer timer.Stop()
	select {
	case s.dataChan <- data:
	case <-timer.C:
		atomic.AddInt64(&s.droppedCount, 1)
		logger.Warn("data channel full after %s, record dropped", overflow.BlockTimeout)
	case <-s.done:
	}
}

// RegisterEmptyGroup declares a group with zero detail rows so the final
// batch carries its EMPTY result instead of omitting the group.
func (s *Stream) RegisterEmptyGroup(key types.GroupKey) error {
	return s.aggregator.RegisterEmptyGroup(key)
}

// Flush is the end-of-stream signal. It drains records already queued,
// finalizes the aggregate with the configured null ordering and returns
// the materialized batch; the batch is also pushed to sinks and the
// result channel. Producers must stop emitting before flushing. Flushing
// twice returns the same batch.
func (s *Stream) Flush() ([]map[string]interface{}, error) {
	req := flushRequest{reply: make(chan flushReply, 1)}
	select {
	case s.flushChan <- req:
	case <-s.done:
		return nil, fmt.Errorf("stream stopped")
	}
	reply := <-req.reply
	return reply.results, reply.err
}

// AddSink registers a callback receiving each finalized batch.
func (s *Stream) AddSink(sink func([]map[string]interface{})) {
	s.sinksMux.Lock()
	defer s.sinksMux.Unlock()
	s.sinks = append(s.sinks, sink)
}

// GetResultsChan returns the channel carrying finalized batches.
func (s *Stream) GetResultsChan() <-chan []map[string]interface{} {
	return s.resultChan
}

// GetStats returns input/output/dropped counters.
func (s *Stream) GetStats() map[string]int64 {
	return map[string]int64{
		StatInput:   atomic.LoadInt64(&s.inputCount),
		StatOutput:  atomic.LoadInt64(&s.outputCount),
		StatDropped: atomic.LoadInt64(&s.droppedCount),
	}
}

// Stop terminates the processing goroutine and the sink workers.
// Stopped streams discard further Emit calls.
func (s *Stream) Stop() {
	if !atomic.CompareAndSwapInt32(&s.stopped, 0, 1) {
		return
	}
	close(s.done)
}

func (s *Stream) process() {
	for {
		select {
		case data := <-s.dataChan:
			s.processData(data)
		case req := <-s.flushChan:
			s.handleFlush(req)
		case <-s.done:
			return
		}
	}
}

func (s *Stream) processData(data map[string]interface{}) {
	if s.filter != nil && !s.filter.Evaluate(data) {
		return
	}
	if err := s.aggregator.IngestMap(data); err != nil {
		atomic.AddInt64(&s.droppedCount, 1)
		logger.Warn("ingest failed: %v", err)
	}
}

func (s *Stream) handleFlush(req flushRequest) {
	// Records queued before the flush are part of the stream.
	for {
		select {
		case data := <-s.dataChan:
			s.processData(data)
		default:
			s.finishFlush(req)
			return
		}
	}
}

func (s *Stream) finishFlush(req flushRequest) {
	results, err := s.aggregator.Finalize(s.config.NullOrdering)
	if err != nil {
		req.reply <- flushReply{err: err}
		return
	}
	rows := s.materialize(results)
	atomic.AddInt64(&s.outputCount, int64(len(rows)))

	select {
	case s.resultChan <- rows:
	default:
		logger.Warn("result channel full, batch not delivered to channel consumers")
	}
	s.callSinks(rows)
	req.reply <- flushReply{results: rows}
}

// materialize renders the result mapping as records ordered by group key.
// EMPTY renders the value field as nil, the untyped "no rows" marker;
// every non-empty group carries a non-nil ordered slice.
func (s *Stream) materialize(results map[types.GroupKey]types.AggregateResult) []map[string]interface{} {
	keys := make([]string, 0, len(results))
	for key := range results {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)

	rows := make([]map[string]interface{}, 0, len(keys))
	for _, key := range keys {
		result := results[types.GroupKey(key)]
		var value interface{}
		if !result.IsEmpty() {
			value = result.Values()
		}
		rows = append(rows, map[string]interface{}{
			s.config.GroupField: key,
			s.config.ValueField: value,
		})
	}
	return rows
}

func (s *Stream) callSinks(results []map[string]interface{}) {
	s.sinksMux.RLock()
	sinks := make([]func([]map[string]interface{}), len(s.sinks))
	copy(sinks, s.sinks)
	s.sinksMux.RUnlock()

	for _, sink := range sinks {
		sink := sink
		task := func() { sink(results) }
		select {
		case s.sinkWorkerPool <- task:
		default:
			// Pool saturated, run inline rather than lose the delivery.
			task()
		}
	}
}

func (s *Stream) sinkWorker() {
	for {
		select {
		case task := <-s.sinkWorkerPool:
			task()
		case <-s.done:
			return
		}
	}
}
