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

// Option is a functional option for constructing or transforming a
// Violation. It always takes a *Violation and returns a (possibly new)
// *Violation.
type Option func(*Violation) *Violation

// WithNameOption sets the entity name on the violation being constructed.
// Intended to be used with New(...); the per-kind constructors already take
// the name positionally.
func WithNameOption(name string) Option {
	return func(v *Violation) *Violation {
		return v.WithName(name)
	}
}

// WithCollectionOption captures the runtime type name of the given
// collection instance. A nil collection leaves the field absent.
// Intended to be used with New(...).
func WithCollectionOption(col any) Option {
	return func(v *Violation) *Violation {
		tn, ok := collectionTypeName(col)
		if !ok {
			return v
		}
		return v.WithCollectionType(tn)
	}
}

// WithCollectionTypeOption sets the collection's runtime type name
// explicitly, for raise sites that have the name but not the instance.
// Intended to be used with New(...).
func WithCollectionTypeOption(tn string) Option {
	return func(v *Violation) *Violation {
		return v.WithCollectionType(tn)
	}
}

// WithKeyOption sets the lookup key and raises the key-known flag.
// Intended to be used with NotFound(...).
func WithKeyOption(key any) Option {
	return func(v *Violation) *Violation {
		return v.WithKey(key)
	}
}

// WithOperationOption sets the aborted operation's name.
// Intended to be used with New(...) or Aborted(...).
func WithOperationOption(op string) Option {
	return func(v *Violation) *Violation {
		return v.WithOperation(op)
	}
}

// WithReasonOption sets the abort reason.
// Intended to be used with New(...) or Aborted(...).
func WithReasonOption(reason string) Option {
	return func(v *Violation) *Violation {
		return v.WithReason(reason)
	}
}

// WithMessageOption sets the user message on construction. A non-blank
// message overrides the templated wording on every Render call.
func WithMessageOption(msg string) Option {
	return func(v *Violation) *Violation {
		return v.WithMessage(msg)
	}
}

// WithCauseOption attaches a cause on construction.
func WithCauseOption(err error) Option {
	return func(v *Violation) *Violation {
		return v.WithCause(err)
	}
}
