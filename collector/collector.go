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

// Package collector bridges the asynchronous sink callback to callers
// that want to block for the finalized batch.
package collector

import (
	"context"
	"sync"
)

// SyncCollector receives finalized batches through its Sink callback and
// hands them to a waiting caller. Register Sink on the stream, flush,
// then Wait for the batch.
type SyncCollector struct {
	batches chan []map[string]interface{}

	mu   sync.Mutex
	last []map[string]interface{}
	seen bool
}

// NewSyncCollector creates a collector buffering up to capacity batches.
// Capacity below 1 is raised to 1 so a sink call never blocks the
// stream's worker pool.
func NewSyncCollector(capacity int) *SyncCollector {
	if capacity < 1 {
		capacity = 1
	}
	return &SyncCollector{
		batches: make(chan []map[string]interface{}, capacity),
	}
}

// Sink is the callback to register on the stream. Batches beyond the
// buffer capacity are remembered as the latest batch but not queued.
func (c *SyncCollector) Sink(results []map[string]interface{}) {
	c.mu.Lock()
	c.last = results
	c.seen = true
	c.mu.Unlock()

	select {
	case c.batches <- results:
	default:
	}
}

// Wait blocks until a batch arrives or the context is done.
func (c *SyncCollector) Wait(ctx context.Context) ([]map[string]interface{}, error) {
	select {
	case batch := <-c.batches:
		return batch, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Last returns the most recent batch and whether any batch has arrived.
func (c *SyncCollector) Last() ([]map[string]interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.seen
}
