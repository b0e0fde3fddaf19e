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
	"strings"

	"vcheck.dev/verrors/family"
	"vcheck.dev/verrors/kind"
)

// Per-kind constructors, value family.
//
// All of them treat a blank name as "no named entity at the raise site" and
// leave the field absent; use WithNameOption to force a supplied-but-blank
// name. Collection constructors capture the collection's runtime type name
// from the instance; pass nil when the raise site only has a name.

// EmptyValue reports a value that must carry content but is empty.
func EmptyValue(name string, opts ...Option) *Violation {
	return New(kind.EmptyValue, family.Value, prepend(named(name), opts)...)
}

// OutOfRange reports a value outside its permitted range.
func OutOfRange(name string, opts ...Option) *Violation {
	return New(kind.ValueOutOfRange, family.Value, prepend(named(name), opts)...)
}

// InvalidURI reports a string that does not parse as a well-formed URI.
func InvalidURI(name string, opts ...Option) *Violation {
	return New(kind.InvalidURI, family.Value, prepend(named(name), opts)...)
}

// CollectionEmpty reports a collection that must contain at least one item
// but is empty or nil.
func CollectionEmpty(name string, col any, opts ...Option) *Violation {
	return New(kind.CollectionEmpty, family.Value, prepend(collected(name, col), opts)...)
}

// ItemEmptyString reports a string collection containing an empty string.
func ItemEmptyString(name string, col any, opts ...Option) *Violation {
	return New(kind.ItemEmptyString, family.Value, prepend(collected(name, col), opts)...)
}

// ItemWhitespace reports a string collection containing a whitespace-only
// string.
func ItemWhitespace(name string, col any, opts ...Option) *Violation {
	return New(kind.ItemWhitespace, family.Value, prepend(collected(name, col), opts)...)
}

// ItemNulls reports a collection containing a nil item.
func ItemNulls(name string, col any, opts ...Option) *Violation {
	return New(kind.ItemNulls, family.Value, prepend(collected(name, col), opts)...)
}

// ItemFailsPredicate reports a collection containing an item that fails a
// caller-supplied validity predicate.
func ItemFailsPredicate(name string, col any, opts ...Option) *Violation {
	return New(kind.ItemFailsPredicate, family.Value, prepend(collected(name, col), opts)...)
}

// NotFound reports a keyed lookup that produced no item.
//
// Three construction shapes are supported and behave distinctly:
//
//	NotFound("users")                                  // no key supplied
//	NotFound("users", WithKeyOption("abc"))            // key known
//	NotFound("users", WithKeyOption("abc"),
//	    WithMessageOption("user abc is gone"))         // key known, message wins
//
// Without WithKeyOption the rendered message omits the key entirely — a
// default-valued key is never invented on the caller's behalf.
func NotFound(name string, opts ...Option) *Violation {
	return New(kind.ItemNotFound, family.Value, prepend(named(name), opts)...)
}

// Aborted reports an operation that was aborted before completion. Blank
// operation and reason are treated as not supplied; the wording branches on
// each independently.
func Aborted(op, reason string, opts ...Option) *Violation {
	pre := func(v *Violation) *Violation {
		if strings.TrimSpace(op) != "" {
			v = v.WithOperation(op)
		}
		if strings.TrimSpace(reason) != "" {
			v = v.WithReason(reason)
		}
		return v
	}
	return New(kind.OperationAborted, family.Value, prepend(pre, opts)...)
}

// Per-kind constructors, argument family.
//
// Symmetric to the value-family set: same fields, same wording structure,
// with the offending entity reported as an argument. Keyed lookups and
// aborted operations have no argument-context variant.

// ArgEmptyValue reports a caller-supplied argument that must carry content
// but is empty.
func ArgEmptyValue(name string, opts ...Option) *Violation {
	return New(kind.EmptyValue, family.Argument, prepend(named(name), opts)...)
}

// ArgOutOfRange reports an argument outside its permitted range.
func ArgOutOfRange(name string, opts ...Option) *Violation {
	return New(kind.ValueOutOfRange, family.Argument, prepend(named(name), opts)...)
}

// ArgInvalidURI reports an argument that does not parse as a well-formed URI.
func ArgInvalidURI(name string, opts ...Option) *Violation {
	return New(kind.InvalidURI, family.Argument, prepend(named(name), opts)...)
}

// ArgCollectionEmpty reports an argument collection that must contain at
// least one item but is empty or nil.
func ArgCollectionEmpty(name string, col any, opts ...Option) *Violation {
	return New(kind.CollectionEmpty, family.Argument, prepend(collected(name, col), opts)...)
}

// ArgItemEmptyString reports an argument collection containing an empty
// string.
func ArgItemEmptyString(name string, col any, opts ...Option) *Violation {
	return New(kind.ItemEmptyString, family.Argument, prepend(collected(name, col), opts)...)
}

// ArgItemWhitespace reports an argument collection containing a
// whitespace-only string.
func ArgItemWhitespace(name string, col any, opts ...Option) *Violation {
	return New(kind.ItemWhitespace, family.Argument, prepend(collected(name, col), opts)...)
}

// ArgItemNulls reports an argument collection containing a nil item.
func ArgItemNulls(name string, col any, opts ...Option) *Violation {
	return New(kind.ItemNulls, family.Argument, prepend(collected(name, col), opts)...)
}

// ArgItemFailsPredicate reports an argument collection containing an item
// that fails a caller-supplied validity predicate.
func ArgItemFailsPredicate(name string, col any, opts ...Option) *Violation {
	return New(kind.ItemFailsPredicate, family.Argument, prepend(collected(name, col), opts)...)
}

// named sets the entity name when it is non-blank.
func named(name string) Option {
	return func(v *Violation) *Violation {
		if strings.TrimSpace(name) == "" {
			return v
		}
		return v.WithName(name)
	}
}

// collected sets the entity name and captures the collection's runtime type
// name from the supplied instance.
func collected(name string, col any) Option {
	return func(v *Violation) *Violation {
		v = named(name)(v)
		if tn, ok := collectionTypeName(col); ok {
			v = v.WithCollectionType(tn)
		}
		return v
	}
}

// prepend runs the constructor's own field setup before user options, so
// that explicit options always win.
func prepend(first Option, rest []Option) []Option {
	out := make([]Option, 0, len(rest)+1)
	out = append(out, first)
	out = append(out, rest...)
	return out
}
