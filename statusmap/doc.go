/*
   Copyright 2026 The VCheck Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package statusmap provides deterministic, immutable mappings from
// violation kinds (vcheck.dev/verrors/kind) to transport-level statuses for
// HTTP and gRPC.
//
// # Overview
//
// Transport layers (HTTP handlers, gRPC servers) need to turn a violation
// into concrete status codes. This package does that in a way that is:
//
//   - immutable — a mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per kind;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A mapper resolves statuses in the following order:
//
//  1. exact override for the kind;
//  2. per-kind default (library or user-adjusted);
//  3. global fallback (400 / codes.InvalidArgument — every violation kind
//     describes bad input, so the fallback is a client error, not a 500).
//
// # Library defaults
//
// The package ships defaults for every kind in the closed set: validation
// kinds map to 400 / InvalidArgument (with value_out_of_range refined to
// OutOfRange on gRPC), item_not_found to 404 / NotFound, and
// operation_aborted to 409 / Aborted. These can be adjusted at build time:
//
//	m, err := statusmap.New(
//	    statusmap.WithHTTPOverride(kind.OperationAborted, http.StatusConflict),
//	)
//
// # Diagnostics
//
// For debugging and tests, Explain returns a human-readable trace of how a
// particular kind was resolved. This is intended for inspection and logging,
// not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// mapper does not observe further changes to the caller's maps. This makes
// it safe to share a single instance across handlers, goroutines and
// requests.
package statusmap
