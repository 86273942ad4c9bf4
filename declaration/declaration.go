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

// Package declaration holds the per-type configuration of decorator types:
// which attributes are streamed, which class wraps them, and how index and
// callable access is delegated to the subject.
package declaration

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"dirpx.dev/lstream/apis"
)

var (
	// ErrEmptyAttribute is returned when an empty attribute name is declared.
	ErrEmptyAttribute = errors.New("lstream(declaration): empty attribute name")
	// ErrEmptyMethod is returned when a delegate is declared without a method.
	ErrEmptyMethod = errors.New("lstream(declaration): empty delegate method")
)

// Option configures a streamed attribute.
type Option func(*apis.Declaration)

// As names the class that wraps the attribute, skipping derivation.
func As(class string) Option {
	return func(d *apis.Declaration) {
		d.As = class
	}
}

// From reads the attribute from a differently named subject attribute.
func From(reader string) Option {
	return func(d *apis.Declaration) {
		d.Reader = reader
	}
}

// DelegateOption configures a delegate.
type DelegateOption func(*apis.Delegate)

// Prefix turns undeclared attribute reads into callables forwarding to the
// subject method of the same name.
func Prefix(on bool) DelegateOption {
	return func(d *apis.Delegate) {
		d.Prefix = on
	}
}

// Set is the declaration registry of one decorator type. It is written
// during a single-threaded configuration phase and only read afterwards;
// concurrent reads are safe once writes have stopped.
type Set struct {
	decls    map[string]apis.Declaration
	delegate *apis.Delegate
}

// Ensure Set implements apis.Declarations.
var _ apis.Declarations = (*Set)(nil)

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{decls: make(map[string]apis.Declaration)}
}

// Declare streams attribute. Declaring the same attribute again replaces the
// previous declaration.
func (s *Set) Declare(attribute string, opts ...Option) error {
	if attribute == "" {
		return ErrEmptyAttribute
	}
	d := apis.Declaration{Attribute: attribute}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	s.decls[attribute] = d
	return nil
}

// DeclareDelegate sets the delegate, replacing any previous one.
func (s *Set) DeclareDelegate(method string, opts ...DelegateOption) error {
	if method == "" {
		return ErrEmptyMethod
	}
	d := apis.Delegate{Method: method}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	s.delegate = &d
	return nil
}

// Lookup returns the declaration for attribute.
func (s *Set) Lookup(attribute string) (apis.Declaration, bool) {
	d, ok := s.decls[attribute]
	return d, ok
}

// Delegate returns the delegate configuration, if any.
func (s *Set) Delegate() (apis.Delegate, bool) {
	if s.delegate == nil {
		return apis.Delegate{}, false
	}
	return *s.delegate, true
}

// Entries returns all declarations sorted by attribute.
func (s *Set) Entries() []apis.Declaration {
	return slices.SortedFunc(maps.Values(s.decls), func(a, b apis.Declaration) int {
		return strings.Compare(a.Attribute, b.Attribute)
	})
}

// Len returns the number of declared attributes.
func (s *Set) Len() int {
	return len(s.decls)
}
