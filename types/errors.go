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

import "errors"

var (
	// ErrInvalidRow is returned when a row arrives without a group key.
	// An undefined grouping is a caller error, not a data case, so it is
	// rejected instead of being collected into a "nil" group.
	ErrInvalidRow = errors.New("invalid row: group key is required")

	// ErrAlreadyFinalized is returned when ingest or registration is
	// attempted after Finalize, or when Finalize is repeated with a
	// different null ordering. Finalization is terminal.
	ErrAlreadyFinalized = errors.New("aggregator already finalized")

	// ErrUnsupportedCapability is returned when the configured source
	// capabilities cannot satisfy the requested aggregation behavior.
	ErrUnsupportedCapability = errors.New("capability not supported by source")
)
