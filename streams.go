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

package lstream

import (
	"fmt"
	"iter"

	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/attr"
)

// Streams is an ordered collection of decorators built from a collection
// attribute. It is rebuilt on every read of the attribute.
type Streams struct {
	name    string
	element apis.Class
	source  any
	items   []apis.Decorator
	ctx     apis.Context
}

// Ensure Streams implements apis.Decorator.
var _ apis.Decorator = (*Streams)(nil)

// Name returns the collection class name, or "" when the elements were
// wrapped directly.
func (s *Streams) Name() string {
	return s.name
}

// Element returns the class wrapping each element. It is nil for an empty
// collection wrapped by a collection class without elements to resolve.
func (s *Streams) Element() apis.Class {
	return s.element
}

// Subject returns the original collection.
func (s *Streams) Subject() any {
	return s.source
}

// Context returns the context shared with every element.
func (s *Streams) Context() apis.Context {
	return s.ctx
}

// Size returns the number of elements.
func (s *Streams) Size() int {
	return len(s.items)
}

// First returns the first element, or nil when empty.
func (s *Streams) First() apis.Decorator {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[0]
}

// Last returns the last element, or nil when empty.
func (s *Streams) Last() apis.Decorator {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// At returns the element at i.
func (s *Streams) At(i int) (apis.Decorator, bool) {
	if i < 0 || i >= len(s.items) {
		return nil, false
	}
	return s.items[i], true
}

// Items returns a copy of the elements.
func (s *Streams) Items() []apis.Decorator {
	return append([]apis.Decorator(nil), s.items...)
}

// All iterates over the elements in order.
func (s *Streams) All() iter.Seq2[int, apis.Decorator] {
	return func(yield func(int, apis.Decorator) bool) {
		for i, d := range s.items {
			if !yield(i, d) {
				return
			}
		}
	}
}

// Get answers "size", "first" and "last"; other names are read from the
// original collection.
func (s *Streams) Get(name string) (any, error) {
	switch name {
	case "size":
		return s.Size(), nil
	case "first":
		return s.First(), nil
	case "last":
		return s.Last(), nil
	}
	return attr.Get(s.source, name)
}

// streams resolves and wraps the items of a declared collection attribute.
func streams(st *state, d apis.Declaration, source any, items []any, ctx apis.Context) (*Streams, error) {
	class, err := st.res.ResolveCollection(d.As, d.Attribute, items, st.cfg)
	if err != nil {
		return nil, err
	}
	if cc, ok := class.(apis.CollectionClass); ok {
		return collect(st, cc, d.Attribute, source, items, ctx)
	}
	return wrapAll("", class, source, items, ctx)
}

// collect wraps items for the collection class cc.
func collect(st *state, cc apis.CollectionClass, attribute string, source any, items []any, ctx apis.Context) (*Streams, error) {
	if len(items) == 0 {
		return &Streams{name: cc.Name(), source: source, ctx: ctx}, nil
	}

	elem, err := st.res.ResolveCollection(cc.Element(), attribute, items, st.cfg)
	if err != nil {
		return nil, err
	}
	if _, nested := elem.(apis.CollectionClass); nested {
		return nil, fmt.Errorf("%w: %s of %s", ErrNestedCollection, cc.Name(), elem.Name())
	}
	return wrapAll(cc.Name(), elem, source, items, ctx)
}

func wrapAll(name string, class apis.Class, source any, items []any, ctx apis.Context) (*Streams, error) {
	out := make([]apis.Decorator, len(items))
	for i, item := range items {
		d, err := class.New(item, ctx)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", class.Name(), i, err)
		}
		out[i] = d
	}
	return &Streams{name: name, element: class, source: source, items: out, ctx: ctx}, nil
}
