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

package apis

// View is a minimal, client-facing representation of a violation.
//
// This is *not* the portable Record — it is the shape we are comfortable
// exposing over an HTTP boundary or writing to a log. Unlike the Record, the
// View carries the already-rendered display string and flattens the context
// fields into a plain map, dropping the tri-state presence detail that only
// the codec needs.
type View struct {
	// Kind is the canonical violation kind, e.g. "item_not_found".
	Kind string `json:"kind"`

	// Family is the context family, "value" or "argument".
	Family string `json:"family"`

	// Message is the rendered display string: the user-supplied message if
	// one was given, the templated default otherwise.
	Message string `json:"message"`

	// HTTPStatus is the resolved HTTP status. A value of 0 means
	// "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code (as integer). A value of 0
	// means "not resolved".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Fields holds the context fields that were actually supplied at the
	// raise site, keyed by field name ("name", "collection_type", "key",
	// "operation", "reason").
	Fields map[string]string `json:"fields,omitempty"`
}
