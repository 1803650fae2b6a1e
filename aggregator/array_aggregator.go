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

package aggregator

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cast"

	"github.com/rulego/arrayagg/types"
)

// Aggregator is the ordered array aggregation interface.
type Aggregator interface {
	Ingest(row types.Row) error
	IngestMap(data map[string]interface{}) error
	RegisterEmptyGroup(key types.GroupKey) error
	Finalize(ordering types.NullOrdering) (map[types.GroupKey]types.AggregateResult, error)
	Reset()
}

// entry is one buffered (sort key, value) pair. seq is the ingest
// sequence number, the tie-breaker that keeps equal sort keys in
// arrival order.
type entry struct {
	sortKey interface{}
	value   interface{}
	seq     uint64
}

// group accumulates entries for one group key until finalization.
type group struct {
	entries []entry
}

// ArrayAggregator buffers (sort key, value) pairs per group and, once the
// input is exhausted, produces each group's values as an ordered sequence.
// Rows may arrive in any order; the sort key fully determines the output
// order. Finalization is terminal: further ingest fails.
type ArrayAggregator struct {
	config types.Config

	mu     sync.RWMutex
	groups map[types.GroupKey]*group
	seq    uint64

	finalized bool
	ordering  types.NullOrdering
	results   map[types.GroupKey]types.AggregateResult
}

// NewArrayAggregator creates an aggregator. The config supplies the field
// names used by IngestMap; Ingest with explicit rows works regardless.
func NewArrayAggregator(config types.Config) *ArrayAggregator {
	return &ArrayAggregator{
		config: config,
		groups: make(map[types.GroupKey]*group),
	}
}

// Ingest buffers one row. The group key must be defined; sort key and
// value may be nil. Returns types.ErrInvalidRow for an undefined group
// key and types.ErrAlreadyFinalized after Finalize. A failed call leaves
// every group untouched.
func (a *ArrayAggregator) Ingest(row types.Row) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finalized {
		return types.ErrAlreadyFinalized
	}
	if row.Group == nil {
		return types.ErrInvalidRow
	}
	key, err := cast.ToStringE(row.Group)
	if err != nil {
		return fmt.Errorf("%w: cannot convert group key %v", types.ErrInvalidRow, row.Group)
	}

	g := a.groupLocked(types.GroupKey(key))
	g.entries = append(g.entries, entry{
		sortKey: row.SortKey,
		value:   row.Value,
		seq:     a.seq,
	})
	a.seq++
	return nil
}

// IngestMap extracts a row from a record using the configured field
// names and buffers it. An absent or nil group field is an invalid row;
// absent sort or value fields ingest as nil.
func (a *ArrayAggregator) IngestMap(data map[string]interface{}) error {
	if data == nil {
		return fmt.Errorf("%w: record is nil", types.ErrInvalidRow)
	}
	return a.Ingest(types.Row{
		Group:   data[a.config.GroupField],
		SortKey: data[a.config.SortField],
		Value:   data[a.config.ValueField],
	})
}

// RegisterEmptyGroup declares that a group exists even though no row was
// ingested for it, e.g. from an outer join with no matching detail rows.
// Its result is the EMPTY sentinel rather than being absent from the
// output. Registering a group that later receives rows is harmless.
func (a *ArrayAggregator) RegisterEmptyGroup(key types.GroupKey) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finalized {
		return types.ErrAlreadyFinalized
	}
	a.groupLocked(key)
	return nil
}

// Finalize sorts every group by (nil placement per ordering, sort key,
// arrival order) and freezes the aggregator. Repeating the call with the
// same ordering returns identical results; a different ordering after
// finalization is a caller error.
func (a *ArrayAggregator) Finalize(ordering types.NullOrdering) (map[types.GroupKey]types.AggregateResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finalized {
		if ordering != a.ordering {
			return nil, fmt.Errorf("%w: with %s, requested %s", types.ErrAlreadyFinalized, a.ordering, ordering)
		}
		return a.resultsCopyLocked(), nil
	}

	results := make(map[types.GroupKey]types.AggregateResult, len(a.groups))
	for key, g := range a.groups {
		if len(g.entries) == 0 {
			results[key] = types.EmptyResult()
			continue
		}
		// Stable sort: equal sort keys keep ingest order without an
		// explicit sequence comparison.
		sort.SliceStable(g.entries, func(i, j int) bool {
			return CompareSortKeys(g.entries[i].sortKey, g.entries[j].sortKey, ordering) < 0
		})
		values := make([]interface{}, len(g.entries))
		for i, e := range g.entries {
			values[i] = e.value
		}
		results[key] = types.NewResult(values)
	}

	a.finalized = true
	a.ordering = ordering
	a.results = results
	return a.resultsCopyLocked(), nil
}

// Finalized reports whether the aggregator has been frozen.
func (a *ArrayAggregator) Finalized() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.finalized
}

// GroupCount returns the number of groups seen so far, registered empty
// groups included.
func (a *ArrayAggregator) GroupCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.groups)
}

// Reset discards all buffered state and clears the finalized latch,
// returning the aggregator to its initial state.
func (a *ArrayAggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.groups = make(map[types.GroupKey]*group)
	a.seq = 0
	a.finalized = false
	a.results = nil
}

func (a *ArrayAggregator) groupLocked(key types.GroupKey) *group {
	g, exists := a.groups[key]
	if !exists {
		g = &group{}
		a.groups[key] = g
	}
	return g
}

// resultsCopyLocked shallow-copies the result mapping so callers cannot
// perturb the cached finalization.
func (a *ArrayAggregator) resultsCopyLocked() map[types.GroupKey]types.AggregateResult {
	out := make(map[types.GroupKey]types.AggregateResult, len(a.results))
	for k, v := range a.results {
		out[k] = v
	}
	return out
}
