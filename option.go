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
	"io"
	"time"

	"github.com/rulego/arrayagg/logger"
	"github.com/rulego/arrayagg/types"
)

// Option modifies the engine's default behavior.
type Option func(*ArrayAgg)

// WithLogger installs a custom logging backend.
func WithLogger(log logger.Logger) Option {
	return func(a *ArrayAgg) {
		logger.SetDefault(log)
	}
}

// WithLogLevel sets the level of the default logger.
//
// Example:
//
//	agg := arrayagg.New(arrayagg.WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(a *ArrayAgg) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput directs log output to the given writer at the given level.
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(a *ArrayAgg) {
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLog disables all log output.
func WithDiscardLog() Option {
	return func(a *ArrayAgg) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}

// WithFields sets the record field names carrying group key, sort key
// and value. Defaults are "group", "sortKey" and "value".
func WithFields(groupField, sortField, valueField string) Option {
	return func(a *ArrayAgg) {
		a.config.GroupField = groupField
		a.config.SortField = sortField
		a.config.ValueField = valueField
	}
}

// WithNullOrdering places nil sort keys first or last in each group's
// aggregate, mirroring a query's "order by ... nulls first|last" clause.
func WithNullOrdering(ordering types.NullOrdering) Option {
	return func(a *ArrayAgg) {
		a.config.NullOrdering = ordering
	}
}

// WithFilter installs a boolean filter expression applied to every
// record before ingestion.
//
// Example:
//
//	agg := arrayagg.New(arrayagg.WithFilter(`value != nil`))
func WithFilter(expression string) Option {
	return func(a *ArrayAgg) {
		a.config.Where = expression
	}
}

// WithCapabilities declares the row source's capability set. Start fails
// when the configuration requires a capability the source lacks.
func WithCapabilities(caps ...types.Capability) Option {
	return func(a *ArrayAgg) {
		a.config.Capabilities = types.NewCapabilitySet(caps...)
	}
}

// WithBufferSizes tunes the input channel, result channel and sink pool.
func WithBufferSizes(dataBufSize, resultBufSize, sinkPoolSize int) Option {
	return func(a *ArrayAgg) {
		a.config.PerformanceConfig.BufferConfig.DataChannelSize = dataBufSize
		a.config.PerformanceConfig.BufferConfig.ResultChannelSize = resultBufSize
		a.config.PerformanceConfig.WorkerConfig.SinkPoolSize = sinkPoolSize
	}
}

// WithHighPerformance applies the high-throughput buffer preset.
func WithHighPerformance() Option {
	return func(a *ArrayAgg) {
		a.config.PerformanceConfig = types.HighPerformanceConfig()
	}
}

// WithLowLatency applies the low-latency preset: small buffers with the
// drop overflow strategy.
func WithLowLatency() Option {
	return func(a *ArrayAgg) {
		a.config.PerformanceConfig = types.LowLatencyConfig()
	}
}

// WithBlockStrategy blocks producers when the input buffer is full,
// optionally bounded by a timeout after which the record is dropped.
// A zero timeout blocks without bound.
func WithBlockStrategy(timeout time.Duration) Option {
	return func(a *ArrayAgg) {
		a.config.PerformanceConfig.OverflowConfig.Strategy = types.OverflowBlock
		a.config.PerformanceConfig.OverflowConfig.BlockTimeout = timeout
		a.config.PerformanceConfig.OverflowConfig.AllowDataLoss = false
	}
}

// WithDropStrategy drops records when the input buffer is full, trading
// completeness for throughput.
func WithDropStrategy() Option {
	return func(a *ArrayAgg) {
		a.config.PerformanceConfig.OverflowConfig.Strategy = types.OverflowDrop
		a.config.PerformanceConfig.OverflowConfig.AllowDataLoss = true
	}
}
