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

// Package adapter converts between the concrete Violation type and the
// portable apis shapes (Record, View). The transfer codec and the transport
// adapters build on these conversions instead of reaching into the
// violation directly.
package adapter

import (
	"errors"
	"fmt"

	"vcheck.dev/verrors"
	"vcheck.dev/verrors/apis"
	"vcheck.dev/verrors/family"
	"vcheck.dev/verrors/kind"
)

// RecordVersion is the record layout produced by ToRecord and accepted by
// FromRecord.
const RecordVersion = 1

var (
	// ErrRecordVersion is returned when a record carries a version this
	// build does not understand. Decoders must reject, not guess.
	ErrRecordVersion = errors.New("verrors: unsupported record version")

	// ErrRecordInvalid is returned when a record violates the layout
	// contract (bad kind/family, phantom key, and so on).
	ErrRecordInvalid = errors.New("verrors: invalid record")
)

// ToRecord converts a violation into its portable record form.
//
// Every tri-state field is carried through as-is: absent stays absent,
// supplied-but-blank stays supplied. The key is included only when the
// key-known flag is raised. Violation causes are encoded recursively; a
// foreign cause is flattened to its Error() string.
func ToRecord(v *verrors.Violation) apis.Record {
	if v == nil {
		return apis.Record{}
	}
	r := apis.Record{
		Version:        RecordVersion,
		Kind:           v.ErrorKind(),
		Family:         v.ErrorFamily(),
		Name:           optional(v.Name()),
		CollectionType: optional(v.CollectionType()),
		KeyKnown:       v.KeyKnown(),
		Operation:      optional(v.Operation()),
		Reason:         optional(v.Reason()),
		Message:        optional(v.OriginalMessage()),
	}
	if r.KeyKnown {
		r.Key = optional(v.Key())
	}
	switch cause := v.Cause().(type) {
	case nil:
	case *verrors.Violation:
		cr := ToRecord(cause)
		r.Cause = &cr
	default:
		text := cause.Error()
		r.CauseText = &text
	}
	return r
}

// FromRecord reconstructs a violation from its portable record form.
//
// Unlike verrors.New, malformed input here is a recoverable condition — the
// record came from outside the process — so every violation of the record
// layout is reported as an error, never a panic. The reconstructed instance
// renders an identical display string to the original.
func FromRecord(r apis.Record) (*verrors.Violation, error) {
	if r.Version != RecordVersion {
		return nil, fmt.Errorf("%w: %d", ErrRecordVersion, r.Version)
	}
	k, err := kind.Parse(r.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: kind %q", ErrRecordInvalid, r.Kind)
	}
	f, err := family.Parse(r.Family)
	if err != nil {
		return nil, fmt.Errorf("%w: family %q", ErrRecordInvalid, r.Family)
	}
	if f == family.Argument && !k.HasArgumentFamily() {
		return nil, fmt.Errorf("%w: kind %q has no argument-context variant", ErrRecordInvalid, k)
	}
	if !r.KeyKnown && r.Key != nil {
		return nil, fmt.Errorf("%w: key present but key_known is false", ErrRecordInvalid)
	}
	if r.KeyKnown && r.Key == nil {
		return nil, fmt.Errorf("%w: key_known is true but no key present", ErrRecordInvalid)
	}
	if r.Cause != nil && r.CauseText != nil {
		return nil, fmt.Errorf("%w: both cause and cause_text present", ErrRecordInvalid)
	}

	var opts []verrors.Option
	if r.Name != nil {
		opts = append(opts, verrors.WithNameOption(*r.Name))
	}
	if r.CollectionType != nil {
		opts = append(opts, verrors.WithCollectionTypeOption(*r.CollectionType))
	}
	if r.Key != nil {
		opts = append(opts, verrors.WithKeyOption(*r.Key))
	}
	if r.Operation != nil {
		opts = append(opts, verrors.WithOperationOption(*r.Operation))
	}
	if r.Reason != nil {
		opts = append(opts, verrors.WithReasonOption(*r.Reason))
	}
	if r.Message != nil {
		opts = append(opts, verrors.WithMessageOption(*r.Message))
	}
	if r.Cause != nil {
		cause, err := FromRecord(*r.Cause)
		if err != nil {
			return nil, fmt.Errorf("decode cause: %w", err)
		}
		opts = append(opts, verrors.WithCauseOption(cause))
	} else if r.CauseText != nil {
		opts = append(opts, verrors.WithCauseOption(errors.New(*r.CauseText)))
	}
	return verrors.New(k, f, opts...), nil
}

// ToView converts a violation together with its resolved transport status
// into a client-facing view. The view carries the rendered message and only
// the context fields that were actually supplied.
func ToView(v *verrors.Violation, st apis.Status) apis.View {
	if v == nil {
		return apis.View{}
	}
	view := apis.View{
		Kind:       v.ErrorKind(),
		Family:     v.ErrorFamily(),
		Message:    v.Render(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	fields := map[string]string{}
	if s, ok := v.Name(); ok {
		fields["name"] = s
	}
	if s, ok := v.CollectionType(); ok {
		fields["collection_type"] = s
	}
	if s, ok := v.Key(); ok {
		fields["key"] = s
	}
	if s, ok := v.Operation(); ok {
		fields["operation"] = s
	}
	if s, ok := v.Reason(); ok {
		fields["reason"] = s
	}
	if len(fields) > 0 {
		view.Fields = fields
	}
	return view
}

// optional repacks an accessor's (value, supplied) pair into the record's
// pointer form.
func optional(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}
