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

// Package seqx holds small sequence helpers used by validation call sites:
// cheap length probing of arbitrary collections and typed materialization of
// heterogeneous slices. It has no dependency on the violation core.
package seqx

import (
	"fmt"
	"reflect"
)

// TryCount reports the element count of an arbitrary collection value
// without walking it, when the count is available in O(1).
//
// Supported shapes are slices, arrays, maps, channels and strings. For
// anything else, including nil, TryCount returns (0, false) and the caller
// must fall back to iteration.
func TryCount(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// All materializes a heterogeneous slice into a typed one. The first element
// that is not a T stops the conversion with an error naming the index and
// the offending dynamic type.
func All[T any](items []any) ([]T, error) {
	if items == nil {
		return nil, nil
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		t, ok := item.(T)
		if !ok {
			var want T
			return nil, fmt.Errorf("seqx: element %d is %T, not %T", i, item, want)
		}
		out = append(out, t)
	}
	return out, nil
}
