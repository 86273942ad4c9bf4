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
	"reflect"

	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/attr"
	"dirpx.dev/lstream/internal/logging"
	uref "dirpx.dev/lstream/utils/reflect"
)

// Stream wraps one subject with the declarations of its Type.
type Stream struct {
	typ     *Type
	subject any
	ctx     apis.Context
}

// Ensure Stream implements apis.Decorator.
var _ apis.Decorator = (*Stream)(nil)

// NewStream wraps subject as a t, sharing ctx.
func NewStream(t *Type, subject any, ctx apis.Context) *Stream {
	return &Stream{typ: t, subject: subject, ctx: ctx}
}

// Type returns the decorator class of s.
func (s *Stream) Type() *Type {
	return s.typ
}

// Subject returns the wrapped value.
func (s *Stream) Subject() any {
	return s.subject
}

// Context returns the context shared with every decorator reached from s.
func (s *Stream) Context() apis.Context {
	return s.ctx
}

// Has reports whether Get(name) can answer.
func (s *Stream) Has(name string) bool {
	if _, ok := s.typ.decls.Lookup(name); ok {
		return true
	}
	if d, ok := s.typ.decls.Delegate(); ok && d.Prefix {
		return true
	}
	return attr.Has(s.subject, name)
}

// Get reads name through the decorator.
//
// A declared attribute is read from the subject and wrapped: collections
// become *Streams, single values the decorator of their resolved class, or
// the raw value when no class applies. Undeclared names pass through to the
// subject, or yield an apis.Callable when the type delegates with prefix.
func (s *Stream) Get(name string) (any, error) {
	if d, ok := s.typ.decls.Lookup(name); ok {
		return s.stream(d)
	}
	if d, ok := s.typ.decls.Delegate(); ok && d.Prefix {
		return s.forward(name), nil
	}
	return attr.Get(s.subject, name)
}

// Index calls the delegate method of the type with key.
func (s *Stream) Index(key any) (any, error) {
	d, ok := s.typ.decls.Delegate()
	if !ok || d.Prefix {
		return nil, fmt.Errorf("%w: %s", ErrNoIndexDelegate, s.typ.name)
	}
	return attr.Call(s.subject, d.Method, key)
}

// stream reads and wraps a declared attribute.
func (s *Stream) stream(d apis.Declaration) (any, error) {
	raw, err := attr.Get(s.subject, d.Source())
	if err != nil {
		return nil, err
	}

	st := current()
	if items, ok := uref.Enumerate(raw); ok {
		return streams(st, d, raw, items, s.ctx)
	}
	if isNil(raw) {
		return raw, nil
	}

	class, ok, err := st.res.ResolveValue(d.As, d.Attribute, raw, st.cfg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return raw, nil
	}

	logging.L().Trace().Str("component", "stream").Str("type", s.typ.name).
		Str("attribute", d.Attribute).Str("class", class.Name()).Msg("Wrapping value")
	return class.New(raw, s.ctx)
}

// forward returns a Callable invoking the subject method name.
func (s *Stream) forward(name string) apis.Callable {
	subject := s.subject
	return func(arg any) (any, error) {
		return attr.Call(subject, name, arg)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
