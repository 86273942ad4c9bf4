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
	"dirpx.dev/lstream/declaration"
)

// Type is a decorator class: a name, the streamed attributes declared for it
// and an optional factory for host-defined decorator structs.
//
// Every Stream of a Type shares its declaration set by reference. Declare on
// a Type only during setup, before the Type is read concurrently.
type Type struct {
	name    string
	decls   *declaration.Set
	factory func(*Stream) apis.Decorator
}

// Ensure Type implements apis.Class.
var _ apis.Class = (*Type)(nil)

// TypeOption configures a Type built by NewType or Define.
type TypeOption func(*Type) error

// Streamed declares attribute as streamed.
func Streamed(attribute string, opts ...declaration.Option) TypeOption {
	return func(t *Type) error {
		return t.decls.Declare(attribute, opts...)
	}
}

// Through sets the delegate method of the type.
func Through(method string, opts ...declaration.DelegateOption) TypeOption {
	return func(t *Type) error {
		return t.decls.DeclareDelegate(method, opts...)
	}
}

// WithDeclarations replaces the declaration set of the type. The set is
// shared, not copied.
func WithDeclarations(set *declaration.Set) TypeOption {
	return func(t *Type) error {
		if set != nil {
			t.decls = set
		}
		return nil
	}
}

// WithFactory makes New return fn(stream) instead of the bare *Stream, so a
// host can wrap subjects in its own struct embedding *Stream:
//
//	type BlogStream struct{ *lstream.Stream }
//
//	lstream.Define("BlogStream", lstream.WithFactory(func(s *lstream.Stream) apis.Decorator {
//		return BlogStream{s}
//	}))
func WithFactory(fn func(*Stream) apis.Decorator) TypeOption {
	return func(t *Type) error {
		t.factory = fn
		return nil
	}
}

// NewType builds an unregistered Type.
func NewType(name string, opts ...TypeOption) (*Type, error) {
	if name == "" {
		return nil, ErrEmptyClassName
	}
	t := &Type{name: name, decls: declaration.NewSet()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("type %q: %w", name, err)
		}
	}
	return t, nil
}

// Define builds a Type and registers it in the global registry.
func Define(name string, opts ...TypeOption) (*Type, error) {
	t, err := NewType(name, opts...)
	if err != nil {
		return nil, err
	}
	if err := Registry().Register(t); err != nil {
		return nil, err
	}
	return t, nil
}

// MustDefine is like Define but panics on error.
func MustDefine(name string, opts ...TypeOption) *Type {
	t, err := Define(name, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the class name.
func (t *Type) Name() string {
	return t.name
}

// Declarations returns the declaration set shared by every Stream of t.
func (t *Type) Declarations() apis.Declarations {
	return t.decls
}

// Declare declares attribute as streamed. Redeclaring replaces the previous
// declaration.
func (t *Type) Declare(attribute string, opts ...declaration.Option) error {
	return t.decls.Declare(attribute, opts...)
}

// DeclareDelegate sets the delegate method. Redeclaring replaces it.
func (t *Type) DeclareDelegate(method string, opts ...declaration.DelegateOption) error {
	return t.decls.DeclareDelegate(method, opts...)
}

// New wraps subject. It returns the factory's decorator when one is set.
func (t *Type) New(subject any, ctx apis.Context) (apis.Decorator, error) {
	s := NewStream(t, subject, ctx)
	if t.factory != nil {
		return t.factory(s), nil
	}
	return s, nil
}

// Wrap builds a root Stream over subject. values seeds the context shared
// with every decorator reached from the returned Stream.
func (t *Type) Wrap(subject any, values map[string]any) *Stream {
	return NewStream(t, subject, apis.NewContext(values))
}
