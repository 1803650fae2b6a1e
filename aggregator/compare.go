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
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/rulego/arrayagg/types"
)

// CompareSortKeys orders two sort keys, returning a negative number when
// a sorts before b, zero when they tie and a positive number otherwise.
// Nil keys go to the end selected by the null ordering. Comparable keys
// use their natural order: strings lexicographically, timestamps
// chronologically, booleans false before true, everything numeric by
// value regardless of the concrete Go type. Keys that fit none of those
// fall back to their string form.
func CompareSortKeys(a, b interface{}, ordering types.NullOrdering) int {
	if a == nil || b == nil {
		return compareNil(a, b, ordering)
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return compareBool(av, bv)
		}
	case time.Time:
		if bt, err := cast.ToTimeE(b); err == nil {
			return av.Compare(bt)
		}
	}
	if bt, ok := b.(time.Time); ok {
		if at, err := cast.ToTimeE(a); err == nil {
			return at.Compare(bt)
		}
	}

	// Numeric comparison spans int/uint/float widths, so a mixed-type
	// stream of ints and floats still orders by value.
	af, aerr := cast.ToFloat64E(a)
	bf, berr := cast.ToFloat64E(b)
	if aerr == nil && berr == nil {
		return compareFloat(af, bf)
	}

	return strings.Compare(cast.ToString(a), cast.ToString(b))
}

func compareNil(a, b interface{}, ordering types.NullOrdering) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		if ordering == types.NullsFirst {
			return -1
		}
		return 1
	}
	if ordering == types.NullsFirst {
		return 1
	}
	return -1
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareFloat(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
