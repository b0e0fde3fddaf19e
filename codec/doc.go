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

// Package codec is the cross-boundary transfer codec for violations.
//
// # Contract
//
// Encode serializes a violation to a self-contained byte record; Decode
// reconstructs an equivalent instance. The round-trip preserves everything
// that affects rendering:
//
//   - the kind and family tags;
//   - every context field with explicit tri-state presence — a field that
//     was never supplied, a field supplied empty, and a field supplied with
//     content are three distinct wire states;
//   - the key-known flag, encoded even when false; the key value itself is
//     NEVER encoded when the flag is false, so the receiving side cannot
//     fabricate a phantom key;
//   - the raw user message, exactly as supplied, so the override-vs-template
//     distinction survives the boundary;
//   - the cause chain, recursively for violation causes and as flattened
//     text for foreign ones.
//
// A decoded instance renders a display string byte-identical to the
// original's.
//
// # Wire form
//
// The record is a versioned google.protobuf.Struct: absent fields are
// explicit null values (omission would be ambiguous with "present but
// empty"), present fields are string values. Encode/Decode use the binary
// protobuf form; EncodeJSON/DecodeJSON expose the same record through
// protojson for debugging and text transports.
//
// The codec performs no I/O of its own and has no shared state; every call
// is independent and safe to make concurrently.
package codec
