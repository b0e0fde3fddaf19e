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

// Scalar-value violation kinds
//
// These kinds describe failures of a single named value (or caller-supplied
// argument, depending on the family the violation is raised in).
const (
	// EmptyValue indicates that a value which must carry content is empty:
	// a nil reference, an empty string, or a zero value where zero is not a
	// meaningful state.
	EmptyValue Kind = "empty_value"

	// ValueOutOfRange indicates that a value lies outside its permitted
	// range (numeric bounds, enum membership, length limits).
	ValueOutOfRange Kind = "value_out_of_range"

	// InvalidURI indicates that a string which must be a well-formed URI
	// does not parse as one.
	InvalidURI Kind = "invalid_uri"
)

// Collection violation kinds
//
// These kinds describe failures of a collection as a whole or of its items.
// Violations of these kinds may additionally carry the runtime type name of
// the offending collection, captured at the raise site.
const (
	// CollectionEmpty indicates that a collection which must contain at
	// least one item is empty or nil.
	CollectionEmpty Kind = "collection_empty"

	// ItemEmptyString indicates that a collection of strings contains an
	// empty string where empty strings are not allowed.
	ItemEmptyString Kind = "item_empty_string"

	// ItemWhitespace indicates that a collection of strings contains a
	// whitespace-only string where such strings are not allowed.
	ItemWhitespace Kind = "item_whitespace"

	// ItemNulls indicates that a collection contains a nil item where nil
	// items are not allowed.
	ItemNulls Kind = "item_nulls"

	// ItemFailsPredicate indicates that a collection contains an item that
	// fails a caller-supplied validity predicate.
	ItemFailsPredicate Kind = "item_fails_predicate"
)

// Lookup and operation violation kinds
//
// These kinds have no argument-context semantics beyond naming and therefore
// exist only in the value family.
const (
	// ItemNotFound indicates that a keyed lookup produced no item. The
	// violation distinguishes "no key was supplied" from "a key was supplied
	// but matched nothing", even when the supplied key is a zero value.
	ItemNotFound Kind = "item_not_found"

	// OperationAborted indicates that an operation was aborted before
	// completion. The violation may carry the operation name and the abort
	// reason, independently of each other.
	OperationAborted Kind = "operation_aborted"
)

// Class groups kinds by the context fields their messages branch on.
type Class int

const (
	// ClassScalar kinds branch on the entity name only.
	ClassScalar Class = iota
	// ClassCollection kinds branch on the entity name and the collection's
	// runtime type name.
	ClassCollection
	// ClassKeyed kinds branch on the key-known flag.
	ClassKeyed
	// ClassOperation kinds branch on the operation name and the abort
	// reason, independently.
	ClassOperation
)

// classes is the single source of truth for the closed kind set. Validate,
// All and Class all derive from it.
var classes = map[Kind]Class{
	EmptyValue:         ClassScalar,
	ValueOutOfRange:    ClassScalar,
	InvalidURI:         ClassScalar,
	CollectionEmpty:    ClassCollection,
	ItemEmptyString:    ClassCollection,
	ItemWhitespace:     ClassCollection,
	ItemNulls:          ClassCollection,
	ItemFailsPredicate: ClassCollection,
	ItemNotFound:       ClassKeyed,
	OperationAborted:   ClassOperation,
}

// all lists the kinds in a stable, documentation-friendly order.
var all = []Kind{
	EmptyValue,
	CollectionEmpty,
	ItemEmptyString,
	ItemWhitespace,
	ItemNulls,
	ItemFailsPredicate,
	ValueOutOfRange,
	InvalidURI,
	ItemNotFound,
	OperationAborted,
}

// All returns every member of the closed kind set in a stable order.
// The returned slice is a fresh copy; callers may modify it freely.
func All() []Kind {
	out := make([]Kind, len(all))
	copy(out, all)
	return out
}

// Class reports which message-branching class the kind belongs to.
// Calling Class on an invalid kind returns ClassScalar; callers that accept
// untrusted input should Validate first.
func (k Kind) Class() Class {
	return classes[k]
}

// HasArgumentFamily reports whether the kind exists in the argument-context
// family. Keyed and operation kinds have no argument-specific semantics and
// exist only in the value family.
func (k Kind) HasArgumentFamily() bool {
	switch classes[k] {
	case ClassKeyed, ClassOperation:
		return false
	}
	return true
}
