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
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Family
		wantErr bool
	}{
		{"value", "value", Value, false},
		{"argument", "argument", Argument, false},
		{"upper", "VALUE", Value, false},
		{"spaces", "  argument  ", Argument, false},
		{"empty", "", "", true},
		{"unknown", "parameter", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrFamilyInvalid) {
					t.Fatalf("Parse(%q) error = %v, want ErrFamilyInvalid", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	for _, f := range All() {
		if err := Validate(f); err != nil {
			t.Fatalf("Validate(%q) = %v, want nil", f, err)
		}
	}
	if err := Validate(Family("")); !errors.Is(err, ErrFamilyInvalid) {
		t.Fatalf("Validate(\"\") = %v, want ErrFamilyInvalid", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	b, err := Argument.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var f Family
	if err := f.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if f != Argument {
		t.Fatalf("round trip got %q, want %q", f, Argument)
	}
	if err := f.UnmarshalText([]byte("neither")); err == nil {
		t.Fatal("UnmarshalText must reject invalid families")
	}
}
