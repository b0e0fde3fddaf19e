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

package codec

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"vcheck.dev/verrors"
	"vcheck.dev/verrors/adapter"
)

func TestEncodeDecode_RenderByteIdentical(t *testing.T) {
	tests := []struct {
		name string
		v    *verrors.Violation
	}{
		{"scalar named", verrors.EmptyValue("login")},
		{"argument family", verrors.ArgOutOfRange("age")},
		{"collection typed", verrors.ItemNulls("ids", []string{"a"})},
		{"keyed", verrors.NotFound("users", verrors.WithKeyOption("abc"))},
		{"keyed zero key", verrors.NotFound("users", verrors.WithKeyOption(""))},
		{"operation", verrors.Aborted("Sync", "timeout")},
		{"user message", verrors.InvalidURI("endpoint", verrors.WithMessageOption("give me a real URL"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Encode(tt.v)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(b)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.Render() != tt.v.Render() {
				t.Fatalf("render drift: %q vs %q", got.Render(), tt.v.Render())
			}
		})
	}
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	v := verrors.NotFound("users", verrors.WithKeyOption("abc"))
	b, err := EncodeJSON(v)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	got, err := DecodeJSON(b)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if got.Render() != `Item with key "abc" not found.` {
		t.Fatalf("Render() = %q", got.Render())
	}
}

func TestWire_KeyAbsentWhenUnknown(t *testing.T) {
	s, err := ToStruct(verrors.NotFound("users"))
	if err != nil {
		t.Fatalf("ToStruct: %v", err)
	}
	if _, ok := s.Fields["key"]; ok {
		t.Fatal("key must not exist on the wire when key_known is false")
	}
	if s.Fields["key_known"].GetBoolValue() {
		t.Fatal("key_known must be false")
	}

	got, err := FromStruct(s)
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}
	if got.KeyKnown() {
		t.Fatal("decoded violation must not invent a key")
	}
	if got.Render() != "Item not found." {
		t.Fatalf("Render() = %q", got.Render())
	}
}

func TestWire_ZeroKeyDistinctFromNoKey(t *testing.T) {
	s, err := ToStruct(verrors.NotFound("users", verrors.WithKeyOption("")))
	if err != nil {
		t.Fatalf("ToStruct: %v", err)
	}
	if !s.Fields["key_known"].GetBoolValue() {
		t.Fatal("key_known must be true")
	}
	if s.Fields["key"].GetStringValue() != "" {
		t.Fatalf("key = %q, want empty string", s.Fields["key"].GetStringValue())
	}

	got, err := FromStruct(s)
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}
	if got.Render() != `Item with key "" not found.` {
		t.Fatalf("Render() = %q", got.Render())
	}
}

func TestWire_TriStateExplicitNulls(t *testing.T) {
	// Absent name encodes as explicit null; present-but-blank as a string.
	absent, err := ToStruct(verrors.EmptyValue(""))
	if err != nil {
		t.Fatalf("ToStruct: %v", err)
	}
	if _, ok := absent.Fields["name"].GetKind().(*structpb.Value_NullValue); !ok {
		t.Fatalf("absent name must be an explicit null, got %v", absent.Fields["name"])
	}

	blank, err := ToStruct(verrors.EmptyValue("x", verrors.WithNameOption("")))
	if err != nil {
		t.Fatalf("ToStruct: %v", err)
	}
	if _, ok := blank.Fields["name"].GetKind().(*structpb.Value_StringValue); !ok {
		t.Fatalf("blank name must be a string value, got %v", blank.Fields["name"])
	}

	got, err := FromStruct(blank)
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}
	if name, ok := got.Name(); !ok || name != "" {
		t.Fatalf("Name() = (%q, %v), want (\"\", true)", name, ok)
	}
}

func TestWire_RawMessagePreserved(t *testing.T) {
	// A blank user message loses the render race but must survive transfer.
	v := verrors.EmptyValue("login", verrors.WithMessageOption("   "))
	b, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if msg, ok := got.OriginalMessage(); !ok || msg != "   " {
		t.Fatalf("OriginalMessage() = (%q, %v)", msg, ok)
	}
	if got.Render() != "Value login cannot be empty." {
		t.Fatalf("Render() = %q", got.Render())
	}
}

func TestWire_CauseChain(t *testing.T) {
	inner := verrors.EmptyValue("token")
	foreign := errors.New("db: conn reset")
	outer := verrors.Aborted("Sync", "timeout",
		verrors.WithCauseOption(inner.WithCause(foreign)))

	b, err := Encode(outer)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var mid *verrors.Violation
	if !errors.As(got.Cause(), &mid) {
		t.Fatalf("nested violation lost: %v", got.Cause())
	}
	if mid.Render() != inner.Render() {
		t.Fatalf("nested render drift: %q", mid.Render())
	}
	if mid.Cause() == nil || mid.Cause().Error() != "db: conn reset" {
		t.Fatalf("foreign cause drift: %v", mid.Cause())
	}
}

func TestDecode_Rejects(t *testing.T) {
	if _, err := Decode([]byte("definitely not a proto struct")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("garbage bytes: err = %v, want ErrMalformed", err)
	}
	if _, err := DecodeJSON([]byte("{")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("garbage json: err = %v, want ErrMalformed", err)
	}

	mutate := func(f func(s *structpb.Struct)) *structpb.Struct {
		s, err := ToStruct(verrors.NotFound("users", verrors.WithKeyOption("abc")))
		if err != nil {
			t.Fatalf("ToStruct: %v", err)
		}
		f(s)
		return s
	}

	tests := []struct {
		name string
		s    *structpb.Struct
	}{
		{"nil struct", nil},
		{"no version", mutate(func(s *structpb.Struct) { delete(s.Fields, "version") })},
		{"no kind", mutate(func(s *structpb.Struct) { delete(s.Fields, "kind") })},
		{"unknown kind", mutate(func(s *structpb.Struct) {
			s.Fields["kind"] = structpb.NewStringValue("bogus")
		})},
		{"bad version", mutate(func(s *structpb.Struct) {
			s.Fields["version"] = structpb.NewNumberValue(99)
		})},
		{"phantom key", mutate(func(s *structpb.Struct) {
			s.Fields["key_known"] = structpb.NewBoolValue(false)
		})},
		{"keyed kind in argument family", mutate(func(s *structpb.Struct) {
			s.Fields["family"] = structpb.NewStringValue("argument")
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromStruct(tt.s); err == nil {
				t.Fatal("FromStruct must reject the struct")
			}
		})
	}
}

func TestToStruct_NilViolation(t *testing.T) {
	if _, err := ToStruct(nil); err == nil {
		t.Fatal("ToStruct(nil) must error")
	}
	if _, err := Encode(nil); err == nil {
		t.Fatal("Encode(nil) must error")
	}
}

func TestWire_MatchesRecordLayout(t *testing.T) {
	// The struct layer and the record layer must agree on field semantics.
	v := verrors.ItemFailsPredicate("codes", []int{1})
	s, err := ToStruct(v)
	if err != nil {
		t.Fatalf("ToStruct: %v", err)
	}
	r := adapter.ToRecord(v)
	if s.Fields["kind"].GetStringValue() != r.Kind {
		t.Fatal("kind drift between struct and record")
	}
	if int(s.Fields["version"].GetNumberValue()) != r.Version {
		t.Fatal("version drift between struct and record")
	}
	if s.Fields["collection_type"].GetStringValue() != *r.CollectionType {
		t.Fatal("collection_type drift between struct and record")
	}
}
