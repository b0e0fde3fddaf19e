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
	"fmt"
	"strings"

	"vcheck.dev/verrors/family"
	"vcheck.dev/verrors/kind"
)

// CatalogKey addresses one wording entry: a kind in one of its families.
type CatalogKey struct {
	Kind   kind.Kind
	Family family.Family
}

// Catalog is an immutable snapshot of wording data: one Wording per
// (kind, family) pair. A Catalog is built once, validated for completeness,
// and is then safe for concurrent reuse.
//
// The built-in default catalog carries the English wording set. Alternative
// sets (see RussianWordings) or per-kind adjustments are applied at build
// time via options; nothing about a catalog can change afterwards.
type Catalog struct {
	wordings map[CatalogKey]Wording
}

// CatalogOption adjusts the wording data while a Catalog is being built.
type CatalogOption func(map[CatalogKey]Wording)

// WithWording replaces the wording for a single (kind, family) pair.
func WithWording(k kind.Kind, f family.Family, w Wording) CatalogOption {
	return func(m map[CatalogKey]Wording) {
		m[CatalogKey{Kind: k, Family: f}] = w
	}
}

// WithWordings replaces wording for every pair present in the given map.
// Pairs not present keep their previous wording, so a partial set can be
// layered over the defaults.
func WithWordings(set map[CatalogKey]Wording) CatalogOption {
	return func(m map[CatalogKey]Wording) {
		for k, w := range set {
			m[k] = w
		}
	}
}

// NewCatalog builds an immutable wording catalog.
//
// Build process:
//
//  1. Seed with the built-in English wording set.
//  2. Apply user-provided options in order.
//  3. Validate completeness: every kind must have a wording in each of its
//     families, and every slot the kind's class requires must be non-blank.
//
// Validation failure returns an error; a catalog with a hole would otherwise
// surface much later as an empty rendered message, which the message
// contract forbids.
func NewCatalog(opts ...CatalogOption) (*Catalog, error) {
	m := make(map[CatalogKey]Wording, len(englishWordings))
	for k, w := range englishWordings {
		m[k] = w
	}
	for _, opt := range opts {
		opt(m)
	}

	for key := range m {
		if err := kind.Validate(key.Kind); err != nil {
			return nil, fmt.Errorf("verrors: wording registered for invalid kind %q", key.Kind)
		}
		if err := family.Validate(key.Family); err != nil {
			return nil, fmt.Errorf("verrors: wording registered for invalid family %q", key.Family)
		}
		if key.Family == family.Argument && !key.Kind.HasArgumentFamily() {
			return nil, fmt.Errorf("verrors: kind %q has no argument-context variant", key.Kind)
		}
	}

	for _, k := range kind.All() {
		for _, f := range allowedFamilies(k) {
			w, ok := m[CatalogKey{Kind: k, Family: f}]
			if !ok {
				return nil, fmt.Errorf("verrors: no wording for kind %q family %q", k, f)
			}
			for _, slot := range requiredSlots(k.Class()) {
				if strings.TrimSpace(slotValue(w, slot)) == "" {
					return nil, fmt.Errorf("verrors: wording for kind %q family %q is missing slot %q", k, f, slot)
				}
			}
		}
	}

	// Freeze: the map above is already a fresh allocation and is never
	// handed out, so storing it directly is safe.
	return &Catalog{wordings: m}, nil
}

// MustCatalog is the panic-on-error variant of NewCatalog. It is useful for
// package-level catalogs built from wording sets that are known complete.
func MustCatalog(opts ...CatalogOption) *Catalog {
	c, err := NewCatalog(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// defaultCatalog backs Violation.Render. The English set is complete by
// construction; MustCatalog documents that invariant.
var defaultCatalog = MustCatalog()

// Render resolves the display string for a violation.
//
// Resolution order (highest to lowest):
//
//  1. the user-supplied message, when present and not blank;
//  2. the most specific template the supplied context fields allow;
//  3. the kind's generic template.
//
// A field counts as supplied only when it contains a non-whitespace
// character; the key is the exception and is selected by the key-known flag
// alone, so that a zero-valued key still renders.
func (c *Catalog) Render(v *Violation) string {
	if supplied(v.msg) {
		return *v.msg
	}
	_, tpl := c.slot(v)
	return expand(tpl, v)
}

// Explain produces a textual trace of how Render resolved the display
// string for a violation: whether the user message won, and otherwise which
// template slot the field presence selected.
//
// Example output:
//
//	kind="item_nulls" family="value"
//	message: source=template slot=named_typed -> "Collection ids of type []string cannot contain nulls."
//
// This is a diagnostic tool for inspection and tests, not for stable machine
// parsing.
func (c *Catalog) Explain(v *Violation) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q family=%q\n", v.kind, v.family)
	if supplied(v.msg) {
		_, _ = fmt.Fprintf(&b, "message: source=user -> %q", *v.msg)
		return b.String()
	}
	slot, tpl := c.slot(v)
	_, _ = fmt.Fprintf(&b, "message: source=template slot=%s -> %q", slot, expand(tpl, v))
	return b.String()
}

// slot selects the template for a violation: most specific first, generic
// last. The violation's kind and family are valid by construction, and the
// catalog is complete by validation, so the lookup cannot miss.
func (c *Catalog) slot(v *Violation) (name, tpl string) {
	w := c.wordings[CatalogKey{Kind: v.kind, Family: v.family}]
	switch v.kind.Class() {
	case kind.ClassCollection:
		switch {
		case supplied(v.name) && supplied(v.collType):
			return "named_typed", w.NamedTyped
		case supplied(v.name):
			return "named", w.Named
		}
	case kind.ClassKeyed:
		if v.KeyKnown() {
			return "keyed", w.Keyed
		}
	case kind.ClassOperation:
		switch {
		case supplied(v.op) && supplied(v.reason):
			return "full", w.Full
		case supplied(v.op):
			return "operation_only", w.OperationOnly
		case supplied(v.reason):
			return "reason_only", w.ReasonOnly
		}
	default: // scalar
		if supplied(v.name) {
			return "named", w.Named
		}
	}
	return "generic", w.Generic
}

// allowedFamilies lists the families a kind exists in.
func allowedFamilies(k kind.Kind) []family.Family {
	if k.HasArgumentFamily() {
		return []family.Family{family.Value, family.Argument}
	}
	return []family.Family{family.Value}
}

// requiredSlots lists the Wording slots a class must fill.
func requiredSlots(c kind.Class) []string {
	switch c {
	case kind.ClassCollection:
		return []string{"named_typed", "named", "generic"}
	case kind.ClassKeyed:
		return []string{"keyed", "generic"}
	case kind.ClassOperation:
		return []string{"full", "operation_only", "reason_only", "generic"}
	}
	return []string{"named", "generic"}
}

// slotValue reads a Wording slot by its wire name.
func slotValue(w Wording, slot string) string {
	switch slot {
	case "named_typed":
		return w.NamedTyped
	case "named":
		return w.Named
	case "keyed":
		return w.Keyed
	case "full":
		return w.Full
	case "operation_only":
		return w.OperationOnly
	case "reason_only":
		return w.ReasonOnly
	}
	return w.Generic
}
