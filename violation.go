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

// Package verrors is the contract-violation reporting core.
//
// A Violation describes one detected contract failure: a kind from the closed
// set in vcheck.dev/verrors/kind, a context family from
// vcheck.dev/verrors/family, the context fields the raise site actually knew,
// an optional user-supplied message, and an optional nested cause.
//
// Violations are immutable value-like objects. They are created once at the
// detection site, propagated unchanged, and rendered on demand: Render never
// caches, has no side effects, and is safe to call concurrently and
// repeatedly. The wording used by Render is swappable per-kind template data;
// see Catalog.
package verrors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"vcheck.dev/verrors/apis"
	"vcheck.dev/verrors/family"
	"vcheck.dev/verrors/kind"
)

// Violation is the canonical error type of the subsystem.
//
// It carries:
//   - the kind: which contract was violated (required);
//   - the family: whether a value or a caller-supplied argument is blamed;
//   - context fields: only what the raise site actually supplied;
//   - an optional user message that overrides the templated wording;
//   - an optional nested cause for errors.Is / errors.As chains.
//
// All context fields are tri-state: never supplied, supplied but empty, or
// supplied with content. The accessors expose the distinction with a
// (value, ok) pair. A field participates in template selection only when it
// is supplied AND contains at least one non-whitespace character; the
// supplied-but-blank state still survives the transfer codec.
//
// All mutation helpers (WithX) return a copy, so Violation instances can be
// safely shared across goroutines.
type Violation struct {
	kind   kind.Kind
	family family.Family

	name     *string
	collType *string
	key      *string // nil means no key was supplied at all
	op       *string
	reason   *string

	msg   *string // raw user-supplied message; nil means none was supplied
	cause error
}

// Compile-time interface checks against the apis surface.
var (
	_ apis.KindedError   = (*Violation)(nil)
	_ apis.FamiliedError = (*Violation)(nil)
	_ apis.RenderedError = (*Violation)(nil)
	_ apis.CausedError   = (*Violation)(nil)
)

// New constructs a Violation of the given kind and family and applies all
// provided options in order.
//
// New fails fast: an invalid kind, an invalid family, or the argument family
// for a kind that has no argument-context variant is a programming error at
// the call site and panics immediately. This subsystem is itself the thing
// other code calls to report such mistakes, so its own misuse must not
// recurse into one of its own kinds.
func New(k kind.Kind, f family.Family, opts ...Option) *Violation {
	if err := kind.Validate(k); err != nil {
		panic(fmt.Sprintf("verrors: New called with invalid kind %q", k))
	}
	if err := family.Validate(f); err != nil {
		panic(fmt.Sprintf("verrors: New called with invalid family %q", f))
	}
	if f == family.Argument && !k.HasArgumentFamily() {
		panic(fmt.Sprintf("verrors: kind %q has no argument-context variant", k))
	}
	v := &Violation{kind: k, family: f}
	for _, opt := range opts {
		v = opt(v)
	}
	return v
}

// Kind returns the violation's kind.
func (v *Violation) Kind() kind.Kind { return v.kind }

// Family returns the violation's context family.
func (v *Violation) Family() family.Family { return v.family }

// Name returns the name of the value, collection or argument that failed,
// and whether a name was supplied at all.
func (v *Violation) Name() (string, bool) { return deref(v.name) }

// CollectionType returns the runtime type name of the offending collection,
// and whether one was captured at the raise site.
func (v *Violation) CollectionType() (string, bool) { return deref(v.collType) }

// Key returns the display form of the lookup key and whether a key was
// supplied. Note that Key may return ("", true): a supplied key whose value
// is the zero value is NOT the same as no key — that distinction is the
// reason the flag exists.
func (v *Violation) Key() (string, bool) { return deref(v.key) }

// KeyKnown reports whether a lookup key was supplied at all.
func (v *Violation) KeyKnown() bool { return v.key != nil }

// Operation returns the name of the aborted operation and whether one was
// supplied.
func (v *Violation) Operation() (string, bool) { return deref(v.op) }

// Reason returns the abort reason and whether one was supplied.
func (v *Violation) Reason() (string, bool) { return deref(v.reason) }

// OriginalMessage returns the raw user-supplied message and whether one was
// supplied at construction. The raw message is preserved even when it is
// blank and rendering falls back to a template; an intermediate handler that
// re-encodes the violation must never lose it.
func (v *Violation) OriginalMessage() (string, bool) { return deref(v.msg) }

// Cause returns the underlying error that triggered this violation, if any.
func (v *Violation) Cause() error { return v.cause }

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (v *Violation) Unwrap() error { return v.cause }

// ErrorKind implements apis.KindedError.
func (v *Violation) ErrorKind() string { return string(v.kind) }

// ErrorFamily implements apis.FamiliedError.
func (v *Violation) ErrorFamily() string { return string(v.family) }

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <rendered message>
//
// This makes the error both human- and machine-scannable in logs. Use Render
// for the bare display string.
func (v *Violation) Error() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", v.kind, v.Render())
}

// Render returns the display string of the violation using the built-in
// wording catalog.
//
// The string is recomputed on every call — never pre-computed or cached at
// construction. Because violations are immutable, repeated calls return
// identical strings. If the user supplied a non-blank message, Render
// returns it verbatim; otherwise it selects the most specific template the
// supplied context fields allow.
func (v *Violation) Render() string {
	return defaultCatalog.Render(v)
}

// RenderIn is Render with an explicit wording catalog, for callers that ship
// alternative wording data (see RussianWordings).
func (v *Violation) RenderIn(c *Catalog) string {
	return c.Render(v)
}

// Is reports whether target is a Violation of the same kind and family.
// Context fields and messages are deliberately ignored: two violations of
// the same category match regardless of which entity they blame.
func (v *Violation) Is(target error) bool {
	var t *Violation
	if !errors.As(target, &t) {
		return false
	}
	return v.kind == t.kind && v.family == t.family
}

// WithName returns a copy of v with the entity name set.
// The original violation is not modified.
func (v *Violation) WithName(name string) *Violation {
	cp := *v
	cp.name = ptr(name)
	return &cp
}

// WithCollectionType returns a copy of v with the collection's runtime type
// name set explicitly. Constructors that receive the collection instance
// capture this automatically; this helper is for raise sites that only have
// the name.
func (v *Violation) WithCollectionType(tn string) *Violation {
	cp := *v
	cp.collType = ptr(tn)
	return &cp
}

// WithKey returns a copy of v with the lookup key set and the key-known flag
// raised. The key is stored in display form: strings as-is, everything else
// through fmt.Sprint. Supplying a zero-valued key is meaningful and distinct
// from supplying no key.
func (v *Violation) WithKey(key any) *Violation {
	cp := *v
	cp.key = ptr(keyDisplay(key))
	return &cp
}

// WithOperation returns a copy of v with the operation name set.
func (v *Violation) WithOperation(op string) *Violation {
	cp := *v
	cp.op = ptr(op)
	return &cp
}

// WithReason returns a copy of v with the abort reason set.
func (v *Violation) WithReason(reason string) *Violation {
	cp := *v
	cp.reason = ptr(reason)
	return &cp
}

// WithMessage returns a copy of v with the user message set.
//
// A non-blank message always wins over the templated wording, regardless of
// which context fields are populated. A blank message is preserved as "a
// message was supplied" for the codec, but rendering still falls back to the
// template.
func (v *Violation) WithMessage(msg string) *Violation {
	cp := *v
	cp.msg = ptr(msg)
	return &cp
}

// WithCause returns a copy of v with the given underlying cause attached.
// If err is nil, the original violation is returned unchanged.
func (v *Violation) WithCause(err error) *Violation {
	if err == nil {
		return v
	}
	cp := *v
	cp.cause = err
	return &cp
}

// deref unpacks a tri-state field into the (value, supplied) form.
func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func ptr(s string) *string { return &s }

// keyDisplay renders a lookup key for storage. Strings pass through
// unchanged so that a zero-valued string key stays recognizably empty.
func keyDisplay(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}

// collectionTypeName captures the runtime type name of a collection instance
// supplied at the raise site. A nil interface yields no capture.
func collectionTypeName(col any) (string, bool) {
	t := reflect.TypeOf(col)
	if t == nil {
		return "", false
	}
	return t.String(), true
}

// supplied reports whether a tri-state field participates in template
// selection: it must be present and contain at least one non-whitespace
// character. Blank-but-supplied fields are treated exactly like absent ones
// here, but NOT in the codec.
func supplied(p *string) bool {
	return p != nil && strings.TrimSpace(*p) != ""
}
