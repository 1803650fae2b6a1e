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

// Capability names one optional feature of a row source. Sources differ
// in what they can deliver natively; the engine checks the declared set
// and either emulates the missing feature or rejects the configuration.
type Capability string

const (
	// CapOrderedAggregation marks sources whose aggregates may carry an
	// ordering clause at all. Without it the engine has nothing to emulate
	// against and refuses to start.
	CapOrderedAggregation Capability = "ordered_aggregation"
	// CapNullOrdering marks sources that honor explicit NULLS FIRST
	// placement. Sources without it only get the default NULLS LAST.
	CapNullOrdering Capability = "null_ordering"
	// CapDistinctFrom marks sources that can compare aggregates with
	// IS [NOT] DISTINCT FROM semantics.
	CapDistinctFrom Capability = "distinct_from"
)

// CapabilitySet is the set of capabilities a row source declares.
// A nil set means "everything supported".
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// AllCapabilities returns a set with every known capability.
func AllCapabilities() CapabilitySet {
	return NewCapabilitySet(CapOrderedAggregation, CapNullOrdering, CapDistinctFrom)
}

// Supports reports whether the capability is declared. The nil set
// supports everything.
func (s CapabilitySet) Supports(c Capability) bool {
	if s == nil {
		return true
	}
	_, ok := s[c]
	return ok
}
