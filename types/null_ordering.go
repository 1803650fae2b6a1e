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

import (
	"fmt"
	"strings"
)

// NullOrdering places nil sort keys at one end of a group's aggregate.
// It applies to sort keys only, never to aggregated values.
type NullOrdering int

const (
	// NullsLast places nil sort keys after all comparable keys.
	// This is the default placement for ascending order.
	NullsLast NullOrdering = iota
	// NullsFirst places nil sort keys before all comparable keys.
	NullsFirst
)

func (n NullOrdering) String() string {
	switch n {
	case NullsLast:
		return "NULLS LAST"
	case NullsFirst:
		return "NULLS FIRST"
	default:
		return fmt.Sprintf("NullOrdering(%d)", int(n))
	}
}

// ParseNullOrdering parses a textual ordering clause fragment such as
// "nulls last", "NULLS FIRST", "last" or "first".
func ParseNullOrdering(s string) (NullOrdering, error) {
	switch strings.ToLower(strings.Join(strings.Fields(s), " ")) {
	case "nulls last", "nulls_last", "last":
		return NullsLast, nil
	case "nulls first", "nulls_first", "first":
		return NullsFirst, nil
	default:
		return NullsLast, fmt.Errorf("unknown null ordering: %q", s)
	}
}
