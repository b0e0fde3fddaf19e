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

// KindedError represents an error that is classified into one of the closed
// contract-violation kinds.
//
// Kinds are stable and enumerable; they are the primary value that transport
// adapters (HTTP, gRPC) use to decide which status to return to the client.
//
// Implementations are expected to return a *canonical* kind string — one of
// the members declared in the verrors/kind package. Adapters should treat
// unknown or empty kinds as internal errors at the boundary.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable violation kind.
	//
	// The returned value MUST be non-empty and MUST be a member of the
	// closed kind set. Callers should not try to "fix" or "guess" the value
	// here — if it is invalid, it should be handled as an internal error at
	// the boundary.
	ErrorKind() string
}

// FamiliedError represents an error that reports which context family it was
// raised in.
//
// While the kind answers "what kind of violation is this?", the family
// answers "does it blame a named value or a caller-supplied argument?".
//
// The returned value MUST be either "value" or "argument" — the members of
// the verrors/family package.
type FamiliedError interface {
	error

	// ErrorFamily returns the context family of the violation.
	ErrorFamily() string
}

// RenderedError represents an error that can produce its human-readable
// display string on demand.
//
// Render is the message interface of the subsystem: callable any number of
// times, always returning the same non-empty string for the same instance.
// Implementations MUST NOT cache the result at construction time — the
// string is recomputed on every call from the instance's fields.
type RenderedError interface {
	error

	// Render returns the display string of the violation.
	Render() string
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors even in places where we don't want to depend on
// errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this one, if any.
	// May return nil.
	Cause() error
}
