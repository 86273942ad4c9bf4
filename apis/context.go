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

package apis

import (
	"maps"
	"slices"
)

// Context is an immutable key/value mapping carried from a decorator to every
// decorator it constructs. The zero value is an empty context.
//
// A Context copies its input once on construction and is shared by reference
// afterwards; nothing ever writes to it.
type Context struct {
	values map[string]any
}

// NewContext returns a Context holding a copy of values.
func NewContext(values map[string]any) Context {
	if len(values) == 0 {
		return Context{}
	}
	return Context{values: maps.Clone(values)}
}

// Value returns the value stored under key.
func (c Context) Value(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of entries.
func (c Context) Len() int {
	return len(c.values)
}

// Keys returns the keys in sorted order.
func (c Context) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Map returns a copy of the entries.
func (c Context) Map() map[string]any {
	out := make(map[string]any, len(c.values))
	maps.Copy(out, c.values)
	return out
}
