/*
   Copyright 2025 The DIRPX Authors.

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

package reflect

import (
	"iter"
	"reflect"

	"dirpx.dev/lstream/apis"
)

// Enumerate returns the elements of v in order and true when v is a
// collection: an apis.Enumerable, an iter.Seq[any], or a slice or array.
// Strings, byte slices and maps are values, not collections. A nil pointer
// is never a collection, even when its type implements apis.Enumerable.
func Enumerate(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}

	switch c := v.(type) {
	case apis.Enumerable:
		n := c.Len()
		out := make([]any, n)
		for i := range n {
			out[i] = c.At(i)
		}
		return out, true
	case iter.Seq[any]:
		var out []any
		for e := range c {
			out = append(out, e)
		}
		return out, true
	case []any:
		return append([]any(nil), c...), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}
