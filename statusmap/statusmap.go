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

package statusmap

import (
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"

	"vcheck.dev/verrors/apis"
	"vcheck.dev/verrors/kind"
)

// builder accumulates user adjustments before they are frozen.
type builder struct {
	// httpDefaults holds per-kind HTTP defaults that override library defaults.
	httpDefaults map[kind.Kind]int
	// grpcDefaults holds per-kind gRPC defaults as ints; converted to
	// codes.Code when freezing the final snapshot.
	grpcDefaults map[kind.Kind]int

	// httpOverride holds exact per-kind HTTP overrides (higher than defaults).
	httpOverride map[kind.Kind]int
	// grpcOverride holds exact per-kind gRPC overrides as ints; converted in New().
	grpcOverride map[kind.Kind]int

	// global fallbacks used when a kind has no default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// built-in defaults.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[kind.Kind]int, len(defaultHTTP)),
		grpcDefaults: make(map[kind.Kind]int, len(defaultGRPC)),

		httpOverride: make(map[kind.Kind]int),
		grpcOverride: make(map[kind.Kind]int),

		// Every kind is a contract violation of the caller's input, so the
		// hard fallback is a client error, not a 500.
		fallbackHTTP: http.StatusBadRequest,
		fallbackGRPC: codes.InvalidArgument,
	}
}

// New constructs an immutable apis.StatusMapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides).
//  3. Validate that every configured kind is a member of the closed set.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// The resulting mapper is fully thread-safe and designed for long-lived
// reuse; no shared references to user-provided structures remain.
func New(opts ...Option) (apis.StatusMapper, error) {
	b := newBuilder()

	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	for _, opt := range opts {
		opt(b)
	}

	for _, m := range []map[kind.Kind]int{b.httpDefaults, b.grpcDefaults, b.httpOverride, b.grpcOverride} {
		for k := range m {
			if err := kind.Validate(k); err != nil {
				return nil, fmt.Errorf("statusmap: rule registered for invalid kind %q", k)
			}
		}
	}

	return &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// mapper is an immutable mapper implementation combining per-kind defaults
// and per-kind exact overrides. Lookups are O(1) and safe for concurrent use
// once constructed.
type mapper struct {
	httpDefault  map[kind.Kind]int
	grpcDefault  map[kind.Kind]codes.Code
	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind.
//
// Resolution order (highest to lowest):
//
//  1. exact per-kind override (explicitly registered);
//  2. per-kind default (library or user overridden);
//  3. global fallback.
func (m *mapper) HTTPStatus(k kind.Kind) int {
	if v, ok := m.httpOverride[k]; ok {
		return v
	}
	if v, ok := m.httpDefault[k]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given kind, using the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(k kind.Kind) codes.Code {
	if v, ok := m.grpcOverride[k]; ok {
		return v
	}
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs. This keeps
// HTTP/gRPC decisions consistent for a single violation.
func (m *mapper) Status(k kind.Kind) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k),
		GRPC: m.GRPCStatus(k),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular kind.
//
// Example output:
//
//	kind="item_not_found"
//	http: source=default -> 404
//	grpc: source=default -> NOTFOUND(5)
//
// Notes:
//   - source ∈ {override | default | fallback}
func (m *mapper) Explain(k kind.Kind) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q\n", k)

	switch {
	case has(m.httpOverride, k):
		_, _ = fmt.Fprintf(&b, "http: source=override -> %d\n", m.httpOverride[k])
	case has(m.httpDefault, k):
		_, _ = fmt.Fprintf(&b, "http: source=default -> %d\n", m.httpDefault[k])
	default:
		_, _ = fmt.Fprintf(&b, "http: source=fallback -> %d\n", m.fallbackHTTP)
	}

	switch {
	case has(m.grpcOverride, k):
		_, _ = fmt.Fprintf(&b, "grpc: source=override -> %s", grpcName(m.grpcOverride[k]))
	case has(m.grpcDefault, k):
		_, _ = fmt.Fprintf(&b, "grpc: source=default -> %s", grpcName(m.grpcDefault[k]))
	default:
		_, _ = fmt.Fprintf(&b, "grpc: source=fallback -> %s", grpcName(m.fallbackGRPC))
	}

	return b.String()
}

// has reports map membership without the two-value dance at the call site.
func has[V any](m map[kind.Kind]V, k kind.Kind) bool {
	_, ok := m[k]
	return ok
}

// grpcName formats a gRPC code as NAME(n) for Explain output.
func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}

// freezeHTTP makes an immutable copy of an HTTP status map.
func freezeHTTP(src map[kind.Kind]int) map[kind.Kind]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[kind.Kind]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a gRPC status map, converting
// builder-style int values into typed gRPC codes.
func freezeGRPC(src map[kind.Kind]int) map[kind.Kind]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[kind.Kind]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}
