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

import (
	"vcheck.dev/verrors/family"
	"vcheck.dev/verrors/kind"
)

// englishWordings is the built-in wording set and the seed of every catalog.
//
// The two families are deliberately parallel: for each kind present in both,
// the argument-family template is the value-family template with the leading
// noun ("Value"/"Collection") replaced by "Argument" — same fields, same
// punctuation. The test suite enforces that symmetry; when editing one
// family, edit the other.
var englishWordings = map[CatalogKey]Wording{
	// -- scalar kinds ---------------------------------------------------

	{kind.EmptyValue, family.Value}: {
		Named:   "Value {name} cannot be empty.",
		Generic: "Value cannot be empty.",
	},
	{kind.EmptyValue, family.Argument}: {
		Named:   "Argument {name} cannot be empty.",
		Generic: "Argument cannot be empty.",
	},

	{kind.ValueOutOfRange, family.Value}: {
		Named:   "Value {name} is out of range.",
		Generic: "Value is out of range.",
	},
	{kind.ValueOutOfRange, family.Argument}: {
		Named:   "Argument {name} is out of range.",
		Generic: "Argument is out of range.",
	},

	{kind.InvalidURI, family.Value}: {
		Named:   "Value {name} is not a valid URI.",
		Generic: "Value is not a valid URI.",
	},
	{kind.InvalidURI, family.Argument}: {
		Named:   "Argument {name} is not a valid URI.",
		Generic: "Argument is not a valid URI.",
	},

	// -- collection kinds -----------------------------------------------

	{kind.CollectionEmpty, family.Value}: {
		NamedTyped: "Collection {name} of type {type} cannot be empty.",
		Named:      "Collection {name} cannot be empty.",
		Generic:    "Collection cannot be empty.",
	},
	{kind.CollectionEmpty, family.Argument}: {
		NamedTyped: "Argument {name} of type {type} cannot be empty.",
		Named:      "Argument {name} cannot be empty.",
		Generic:    "Argument cannot be empty.",
	},

	{kind.ItemEmptyString, family.Value}: {
		NamedTyped: "Collection {name} of type {type} cannot contain empty strings.",
		Named:      "Collection {name} cannot contain empty strings.",
		Generic:    "Collection cannot contain empty strings.",
	},
	{kind.ItemEmptyString, family.Argument}: {
		NamedTyped: "Argument {name} of type {type} cannot contain empty strings.",
		Named:      "Argument {name} cannot contain empty strings.",
		Generic:    "Argument cannot contain empty strings.",
	},

	{kind.ItemWhitespace, family.Value}: {
		NamedTyped: "Collection {name} of type {type} cannot contain whitespace-only strings.",
		Named:      "Collection {name} cannot contain whitespace-only strings.",
		Generic:    "Collection cannot contain whitespace-only strings.",
	},
	{kind.ItemWhitespace, family.Argument}: {
		NamedTyped: "Argument {name} of type {type} cannot contain whitespace-only strings.",
		Named:      "Argument {name} cannot contain whitespace-only strings.",
		Generic:    "Argument cannot contain whitespace-only strings.",
	},

	{kind.ItemNulls, family.Value}: {
		NamedTyped: "Collection {name} of type {type} cannot contain nulls.",
		Named:      "Collection {name} cannot contain nulls.",
		Generic:    "Collection cannot contain nulls.",
	},
	{kind.ItemNulls, family.Argument}: {
		NamedTyped: "Argument {name} of type {type} cannot contain nulls.",
		Named:      "Argument {name} cannot contain nulls.",
		Generic:    "Argument cannot contain nulls.",
	},

	{kind.ItemFailsPredicate, family.Value}: {
		NamedTyped: "Collection {name} of type {type} cannot contain invalid items.",
		Named:      "Collection {name} cannot contain invalid items.",
		Generic:    "Collection cannot contain invalid items.",
	},
	{kind.ItemFailsPredicate, family.Argument}: {
		NamedTyped: "Argument {name} of type {type} cannot contain invalid items.",
		Named:      "Argument {name} cannot contain invalid items.",
		Generic:    "Argument cannot contain invalid items.",
	},

	// -- keyed and operation kinds (value family only) ------------------

	{kind.ItemNotFound, family.Value}: {
		Keyed:   `Item with key "{key}" not found.`,
		Generic: "Item not found.",
	},

	{kind.OperationAborted, family.Value}: {
		Full:          "Operation {operation} aborted: {reason}.",
		OperationOnly: "Operation {operation} aborted.",
		ReasonOnly:    "Operation aborted: {reason}.",
		Generic:       "Operation aborted.",
	},
}
