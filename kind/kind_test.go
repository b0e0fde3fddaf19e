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

package kind

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  empty_value  ", "empty_value"},
		{"to lower", "EmPtY_VaLuE", "empty_value"},
		{"dash to underscore", "item-not-found", "item_not_found"},
		{"mixed", "  ITEM-NULLS  ", "item_nulls"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"simple", "empty_value", EmptyValue},
		{"with spaces", "  item_not_found  ", ItemNotFound},
		{"upper", "OPERATION_ABORTED", OperationAborted},
		{"dash", "value-out-of-range", ValueOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"unknown member", "not_a_kind"},
		{"near miss", "empty_values"},
		{"free-form code", "storage.pg.timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); !errors.Is(err, ErrKindInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrKindInvalid", tt.in, err)
			}
		})
	}
}

func TestValidate_ClosedSet(t *testing.T) {
	for _, k := range All() {
		if err := Validate(k); err != nil {
			t.Fatalf("Validate(%q) = %v, want nil", k, err)
		}
	}
	if err := Validate(Kind("bogus")); !errors.Is(err, ErrKindInvalid) {
		t.Fatalf("Validate(bogus) = %v, want ErrKindInvalid", err)
	}
	if err := Validate(Kind("")); !errors.Is(err, ErrKindInvalid) {
		t.Fatalf("Validate(\"\") = %v, want ErrKindInvalid", err)
	}
}

func TestAll_StableAndCopied(t *testing.T) {
	a := All()
	b := All()
	if len(a) != 10 {
		t.Fatalf("All() has %d members, want 10", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("All() order unstable at %d: %q vs %q", i, a[i], b[i])
		}
	}
	a[0] = Kind("mutated")
	if All()[0] == Kind("mutated") {
		t.Fatal("All() must return a fresh copy")
	}
}

func TestClass(t *testing.T) {
	tests := []struct {
		k    Kind
		want Class
	}{
		{EmptyValue, ClassScalar},
		{ValueOutOfRange, ClassScalar},
		{InvalidURI, ClassScalar},
		{CollectionEmpty, ClassCollection},
		{ItemEmptyString, ClassCollection},
		{ItemWhitespace, ClassCollection},
		{ItemNulls, ClassCollection},
		{ItemFailsPredicate, ClassCollection},
		{ItemNotFound, ClassKeyed},
		{OperationAborted, ClassOperation},
	}
	for _, tt := range tests {
		if got := tt.k.Class(); got != tt.want {
			t.Fatalf("%q.Class() = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestHasArgumentFamily(t *testing.T) {
	for _, k := range All() {
		want := k.Class() != ClassKeyed && k.Class() != ClassOperation
		if got := k.HasArgumentFamily(); got != want {
			t.Fatalf("%q.HasArgumentFamily() = %v, want %v", k, got, want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	b, err := ItemNotFound.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var k Kind
	if err := k.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if k != ItemNotFound {
		t.Fatalf("round trip got %q, want %q", k, ItemNotFound)
	}

	if _, err := Kind("bogus").MarshalText(); err == nil {
		t.Fatal("MarshalText must reject invalid kinds")
	}
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Fatal("UnmarshalText must reject invalid kinds")
	}
}
