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

package family

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Family is the validated representation of a violation's context family.
//
// A violation either identifies a named *value* that failed (the value
// family) or a caller-supplied *parameter* that failed (the argument family).
// The two families carry the same context fields and render structurally
// identical messages; only the noun naming the offending entity differs.
type Family string

const (
	// Value is the value-context family: the violation identifies a named
	// value or collection that failed its contract.
	Value Family = "value"

	// Argument is the argument-context family: the violation identifies a
	// caller-supplied parameter that failed its contract.
	Argument Family = "argument"
)

var (
	// ErrFamilyInvalid is returned when a value cannot be parsed or
	// validated as a violation family.
	ErrFamilyInvalid = errors.New("verrors: invalid family")
)

// Ensure Family implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Family)(nil)
	_ encoding.TextUnmarshaler = (*Family)(nil)
)

// All returns both families in a stable order.
// The returned slice is a fresh copy; callers may modify it freely.
func All() []Family {
	return []Family{Value, Argument}
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical family form: trims surrounding spaces and lowercases the value.
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns the canonical Family value.
func Parse(s string) (Family, error) {
	f := Family(Normalize(s))
	if err := Validate(f); err != nil {
		return "", err
	}
	return f, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in var blocks.
func MustParse(s string) Family {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Validate checks whether the provided Family is one of the two canonical
// members. The empty family ("") is considered invalid.
func Validate(f Family) error {
	switch f {
	case Value, Argument:
		return nil
	}
	return ErrFamilyInvalid
}

// String returns the canonical string representation of the family.
func (f Family) String() string {
	return string(f)
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}
	return []byte(f), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
