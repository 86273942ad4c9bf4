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

	"dirpx.dev/lstream/apis"
	uref "dirpx.dev/lstream/utils/reflect"
)

// Collection is a class that wraps a whole collection. When resolution picks
// a Collection, the resulting Streams carries the collection's name and
// wraps each element with the element class.
type Collection struct {
	name    string
	element string
}

// Ensure Collection implements apis.CollectionClass.
var _ apis.CollectionClass = (*Collection)(nil)

// CollectionOption configures a Collection.
type CollectionOption func(*Collection)

// Of sets the element class name. Without it the element class is derived
// from the first element.
func Of(element string) CollectionOption {
	return func(c *Collection) {
		c.element = element
	}
}

// NewCollection builds an unregistered Collection.
func NewCollection(name string, opts ...CollectionOption) (*Collection, error) {
	if name == "" {
		return nil, ErrEmptyClassName
	}
	c := &Collection{name: name}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// DefineCollection builds a Collection and registers it in the global
// registry.
func DefineCollection(name string, opts ...CollectionOption) (*Collection, error) {
	c, err := NewCollection(name, opts...)
	if err != nil {
		return nil, err
	}
	if err := Registry().Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the class name.
func (c *Collection) Name() string {
	return c.name
}

// Element returns the element class name, or "".
func (c *Collection) Element() string {
	return c.element
}

// New wraps an enumerable subject into a *Streams.
func (c *Collection) New(subject any, ctx apis.Context) (apis.Decorator, error) {
	items, ok := uref.Enumerate(subject)
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot wrap %T", ErrNotEnumerable, c.name, subject)
	}
	return collect(current(), c, "", subject, items, ctx)
}
