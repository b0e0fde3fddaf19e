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
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"vcheck.dev/verrors"
	"vcheck.dev/verrors/adapter"
	"vcheck.dev/verrors/apis"
)

var (
	// ErrMalformed is returned when bytes cannot be decoded into a
	// violation record at all.
	ErrMalformed = errors.New("verrors: malformed violation record")
)

// Encode serializes a violation into its portable binary form.
func Encode(v *verrors.Violation) ([]byte, error) {
	s, err := ToStruct(v)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

// Decode reconstructs a violation from bytes produced by Encode.
func Decode(b []byte) (*verrors.Violation, error) {
	s := &structpb.Struct{}
	if err := proto.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return FromStruct(s)
}

// EncodeJSON serializes a violation into the JSON form of the same record,
// for debugging and text transports.
func EncodeJSON(v *verrors.Violation) ([]byte, error) {
	s, err := ToStruct(v)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}

// DecodeJSON reconstructs a violation from bytes produced by EncodeJSON.
func DecodeJSON(b []byte) (*verrors.Violation, error) {
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return FromStruct(s)
}

// ToStruct builds the wire record for a violation as a structpb.Struct.
// The struct form is what gRPC adapters attach as a status detail; Encode is
// a thin binary-marshaling layer over it.
func ToStruct(v *verrors.Violation) (*structpb.Struct, error) {
	if v == nil {
		return nil, fmt.Errorf("verrors: cannot encode a nil violation")
	}
	return recordToStruct(adapter.ToRecord(v)), nil
}

// FromStruct reconstructs a violation from its wire record.
func FromStruct(s *structpb.Struct) (*verrors.Violation, error) {
	if s == nil {
		return nil, ErrMalformed
	}
	r, err := structToRecord(s)
	if err != nil {
		return nil, err
	}
	return adapter.FromRecord(r)
}

// recordToStruct lowers a record into struct fields. Optional fields are
// always written: explicit null for absent, string for present. The only
// conditional field is the key, which exists on the wire exactly when
// key_known is true.
func recordToStruct(r apis.Record) *structpb.Struct {
	fields := map[string]*structpb.Value{
		"version":         structpb.NewNumberValue(float64(r.Version)),
		"kind":            structpb.NewStringValue(r.Kind),
		"family":          structpb.NewStringValue(r.Family),
		"name":            optValue(r.Name),
		"collection_type": optValue(r.CollectionType),
		"key_known":       structpb.NewBoolValue(r.KeyKnown),
		"operation":       optValue(r.Operation),
		"reason":          optValue(r.Reason),
		"message":         optValue(r.Message),
	}
	if r.KeyKnown {
		fields["key"] = optValue(r.Key)
	}
	if r.Cause != nil {
		fields["cause"] = structpb.NewStructValue(recordToStruct(*r.Cause))
	} else {
		fields["cause"] = structpb.NewNullValue()
	}
	if r.CauseText != nil {
		fields["cause_text"] = structpb.NewStringValue(*r.CauseText)
	}
	return &structpb.Struct{Fields: fields}
}

// structToRecord lifts struct fields back into a record. Layout errors are
// reported here; semantic validation (kind membership, family pairing,
// phantom keys) is left to adapter.FromRecord so that it applies uniformly
// to records from any source.
func structToRecord(s *structpb.Struct) (apis.Record, error) {
	var r apis.Record

	version, ok := numberField(s, "version")
	if !ok {
		return r, fmt.Errorf("%w: no version", ErrMalformed)
	}
	r.Version = int(version)

	r.Kind, ok = stringField(s, "kind")
	if !ok {
		return r, fmt.Errorf("%w: no kind", ErrMalformed)
	}
	r.Family, ok = stringField(s, "family")
	if !ok {
		return r, fmt.Errorf("%w: no family", ErrMalformed)
	}

	r.Name = optField(s, "name")
	r.CollectionType = optField(s, "collection_type")
	r.Operation = optField(s, "operation")
	r.Reason = optField(s, "reason")
	r.Message = optField(s, "message")

	if b, ok := boolField(s, "key_known"); ok {
		r.KeyKnown = b
	}
	r.Key = optField(s, "key")

	if cause, ok := s.Fields["cause"]; ok {
		if cs := cause.GetStructValue(); cs != nil {
			cr, err := structToRecord(cs)
			if err != nil {
				return r, err
			}
			r.Cause = &cr
		}
	}
	r.CauseText = optField(s, "cause_text")

	return r, nil
}

// optValue encodes a tri-state field: explicit null for absent, string for
// present (including present-but-empty).
func optValue(p *string) *structpb.Value {
	if p == nil {
		return structpb.NewNullValue()
	}
	return structpb.NewStringValue(*p)
}

// optField decodes a tri-state field: a missing entry and an explicit null
// both mean absent, a string value means present.
func optField(s *structpb.Struct, name string) *string {
	v, ok := s.Fields[name]
	if !ok {
		return nil
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil
	}
	out := sv.StringValue
	return &out
}

func stringField(s *structpb.Struct, name string) (string, bool) {
	v, ok := s.Fields[name]
	if !ok {
		return "", false
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", false
	}
	return sv.StringValue, true
}

func numberField(s *structpb.Struct, name string) (float64, bool) {
	v, ok := s.Fields[name]
	if !ok {
		return 0, false
	}
	nv, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false
	}
	return nv.NumberValue, true
}

func boolField(s *structpb.Struct, name string) (bool, bool) {
	v, ok := s.Fields[name]
	if !ok {
		return false, false
	}
	bv, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, false
	}
	return bv.BoolValue, true
}
