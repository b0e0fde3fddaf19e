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

package verrors

import "strings"

// Wording is the hand-authored template set for one (kind, family) pair.
//
// Templates are plain strings with the placeholders {name}, {type}, {key},
// {operation} and {reason}. Which slots a kind uses is determined by its
// class (see kind.Class):
//
//   - scalar kinds:     Named, Generic
//   - collection kinds: NamedTyped, Named, Generic
//   - keyed kinds:      Keyed, Generic
//   - operation kinds:  Full, OperationOnly, ReasonOnly, Generic
//
// Unused slots are ignored. Wording is data, not behavior: shipping an
// alternative language means supplying a different Wording set to NewCatalog,
// not changing the composer.
type Wording struct {
	// NamedTyped is used when both the entity name and the collection's
	// runtime type name were supplied.
	NamedTyped string

	// Named is used when only the entity name was supplied.
	Named string

	// Generic is used when no selecting field was supplied. Every kind
	// needs it: a violation raised with no context at all must still render
	// a non-empty message.
	Generic string

	// Keyed is used by keyed kinds when a lookup key was supplied.
	Keyed string

	// Full is used by operation kinds when both the operation name and the
	// abort reason were supplied.
	Full string

	// OperationOnly is used by operation kinds when only the operation name
	// was supplied.
	OperationOnly string

	// ReasonOnly is used by operation kinds when only the abort reason was
	// supplied.
	ReasonOnly string
}

// expand substitutes the violation's context fields into a template.
// Missing fields expand to the empty string, but slot selection guarantees a
// template never references a field that was not supplied — except the key,
// which is printed verbatim even when its display form is empty.
func expand(tpl string, v *Violation) string {
	name, _ := v.Name()
	ctype, _ := v.CollectionType()
	key, _ := v.Key()
	op, _ := v.Operation()
	reason, _ := v.Reason()
	return strings.NewReplacer(
		"{name}", name,
		"{type}", ctype,
		"{key}", key,
		"{operation}", op,
		"{reason}", reason,
	).Replace(tpl)
}
