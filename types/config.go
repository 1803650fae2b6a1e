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

import "time"

// Overflow strategies applied when the data channel is full.
const (
	OverflowBlock = "block"
	OverflowDrop  = "drop"
)

// Config is the aggregation pipeline configuration.
type Config struct {
	// Field names used to extract group key, sort key and value from
	// input records.
	GroupField string `json:"groupField"`
	SortField  string `json:"sortField"`
	ValueField string `json:"valueField"`

	// NullOrdering places nil sort keys when the aggregate is finalized.
	NullOrdering NullOrdering `json:"nullOrdering"`

	// Where is an optional filter expression applied before ingest.
	Where string `json:"where"`

	// Capabilities declared by the row source. Nil means fully capable.
	Capabilities CapabilitySet `json:"capabilities"`

	// PerformanceConfig tunes buffering and sink dispatch.
	PerformanceConfig PerformanceConfig `json:"performanceConfig"`
}

// PerformanceConfig tunes channel sizes, sink workers and the overflow
// strategy of the pipeline.
type PerformanceConfig struct {
	BufferConfig   BufferConfig   `json:"bufferConfig"`
	OverflowConfig OverflowConfig `json:"overflowConfig"`
	WorkerConfig   WorkerConfig   `json:"workerConfig"`
}

// BufferConfig sizes the input and result channels.
type BufferConfig struct {
	DataChannelSize   int `json:"dataChannelSize"`
	ResultChannelSize int `json:"resultChannelSize"`
}

// OverflowConfig selects what happens when the data channel is full.
type OverflowConfig struct {
	Strategy      string        `json:"strategy"`      // "block" or "drop"
	BlockTimeout  time.Duration `json:"blockTimeout"`  // 0 blocks without timeout
	AllowDataLoss bool          `json:"allowDataLoss"` // true only for "drop"
}

// WorkerConfig sizes the asynchronous sink dispatch pool.
type WorkerConfig struct {
	SinkPoolSize    int `json:"sinkPoolSize"`
	SinkWorkerCount int `json:"sinkWorkerCount"`
}

// NewConfig creates a configuration with default field names and
// performance settings.
func NewConfig() Config {
	return Config{
		GroupField:        "group",
		SortField:         "sortKey",
		ValueField:        "value",
		NullOrdering:      NullsLast,
		PerformanceConfig: DefaultPerformanceConfig(),
	}
}

// DefaultPerformanceConfig is the standard profile: mid-sized buffers,
// blocking backpressure, zero data loss.
func DefaultPerformanceConfig() PerformanceConfig {
	return PerformanceConfig{
		BufferConfig: BufferConfig{
			DataChannelSize:   10000,
			ResultChannelSize: 1000,
		},
		OverflowConfig: OverflowConfig{
			Strategy:      OverflowBlock,
			BlockTimeout:  30 * time.Second,
			AllowDataLoss: false,
		},
		WorkerConfig: WorkerConfig{
			SinkPoolSize:    500,
			SinkWorkerCount: 8,
		},
	}
}

// HighPerformanceConfig is a preset for high-throughput ingestion.
func HighPerformanceConfig() PerformanceConfig {
	config := DefaultPerformanceConfig()
	config.BufferConfig.DataChannelSize = 50000
	config.BufferConfig.ResultChannelSize = 5000
	config.WorkerConfig.SinkPoolSize = 1000
	config.WorkerConfig.SinkWorkerCount = 16
	return config
}

// LowLatencyConfig is a preset trading completeness for latency: small
// buffers and the drop strategy.
func LowLatencyConfig() PerformanceConfig {
	config := DefaultPerformanceConfig()
	config.BufferConfig.DataChannelSize = 1000
	config.BufferConfig.ResultChannelSize = 100
	config.OverflowConfig.Strategy = OverflowDrop
	config.OverflowConfig.AllowDataLoss = true
	return config
}
