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

// Record is the portable, versioned representation of one violation.
//
// This is the shape that crosses process, RPC and persistence boundaries.
// It intentionally uses plain strings (not the internal Kind / Family value
// types) so that it can live in the public apis layer and be produced or
// consumed by adapters and user-defined registries.
//
// Presence semantics: every optional field is a *string carrying a
// tri-state —
//
//   - nil: the field was never supplied at the raise site;
//   - pointer to "": the field was supplied but empty;
//   - pointer to a value: the field was supplied with content.
//
// Encoders MUST keep the three states distinct. Collapsing "absent" into
// "present but empty" silently changes which message template the receiving
// side selects.
type Record struct {
	// Version identifies the record layout. Decoders MUST reject versions
	// they do not understand rather than guess.
	Version int `json:"version"`

	// Kind is the canonical violation kind, e.g. "item_nulls".
	Kind string `json:"kind"`

	// Family is the context family, "value" or "argument".
	Family string `json:"family"`

	// Name is the name of the value, collection or argument that failed.
	Name *string `json:"name"`

	// CollectionType is the runtime type name of the offending collection,
	// captured at the raise site. Only collection kinds populate it.
	CollectionType *string `json:"collection_type"`

	// KeyKnown reports whether a lookup key was supplied at all. It is
	// encoded even when false. Note that a supplied key whose value is the
	// type's zero value still has KeyKnown == true — the flag exists exactly
	// so that the two cases cannot be confused.
	KeyKnown bool `json:"key_known"`

	// Key is the display form of the lookup key. It MUST be absent when
	// KeyKnown is false, so that a receiving side cannot fabricate a
	// phantom key.
	Key *string `json:"key,omitempty"`

	// Operation is the name of the aborted operation.
	Operation *string `json:"operation"`

	// Reason is the abort reason of the operation.
	Reason *string `json:"reason"`

	// Message is the raw user-supplied message, exactly as given at
	// construction. It is NOT the rendered display string: a blank message
	// is preserved here even though rendering falls back to a template.
	Message *string `json:"message"`

	// Cause is the recursively encoded cause, when the cause is itself a
	// violation. Causes form a chain by construction, so recursion is safe.
	Cause *Record `json:"cause,omitempty"`

	// CauseText carries the Error() string of a cause that is not a
	// violation and therefore cannot be encoded structurally.
	CauseText *string `json:"cause_text,omitempty"`
}
