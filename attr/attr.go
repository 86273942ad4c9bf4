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

// Package attr reads attributes from, and forwards calls to, subjects.
//
// Subjects are accessed through capabilities, in order:
//
//  1. apis.Subject / apis.Invoker, implemented by the host type.
//  2. map[string]any, read by key.
//  3. A bounded reflective fallback over exported struct fields and exported
//     methods. Attribute names are matched in their Go form, so "blog_posts"
//     reads the BlogPosts field or calls the BlogPosts() method.
package attr

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/utils/inflect"
)

var (
	// ErrUnknownAttribute is returned when a subject has no such attribute.
	ErrUnknownAttribute = errors.New("lstream(attr): unknown attribute")
	// ErrUnknownMethod is returned when a subject has no such method.
	ErrUnknownMethod = errors.New("lstream(attr): unknown method")
	// ErrBadArgument is returned when an argument cannot be passed to a method.
	ErrBadArgument = errors.New("lstream(attr): argument not assignable")
)

var errorType = reflect.TypeFor[error]()

// Has reports whether subject exposes attribute name.
func Has(subject any, name string) bool {
	switch s := subject.(type) {
	case apis.Subject:
		return s.HasAttribute(name)
	case map[string]any:
		_, ok := s[name]
		return ok
	}
	_, ok := reader(subject, name)
	return ok
}

// Get reads attribute name from subject.
func Get(subject any, name string) (any, error) {
	switch s := subject.(type) {
	case apis.Subject:
		if !s.HasAttribute(name) {
			return nil, fmt.Errorf("%w: %q on %T", ErrUnknownAttribute, name, subject)
		}
		return s.Attribute(name)
	case map[string]any:
		v, ok := s[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
		}
		return v, nil
	}

	read, ok := reader(subject, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %T", ErrUnknownAttribute, name, subject)
	}
	return read()
}

// Call invokes method on subject with a single argument. arg is passed as
// is when assignable, or converted between types of the same kind
// (a named string to string); any other argument is ErrBadArgument.
func Call(subject any, method string, arg any) (any, error) {
	if inv, ok := subject.(apis.Invoker); ok {
		return inv.Invoke(method, arg)
	}

	fn, ok := callable(subject, method)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %T", ErrUnknownMethod, method, subject)
	}

	in := fn.Type().In(0)
	av := reflect.Zero(in)
	if arg != nil {
		av = reflect.ValueOf(arg)
		switch at := av.Type(); {
		case at.AssignableTo(in):
		case at.Kind() == in.Kind() && at.ConvertibleTo(in):
			av = av.Convert(in)
		default:
			return nil, fmt.Errorf("%w: %T to %s(%s)", ErrBadArgument, arg, method, in)
		}
	}
	return results(fn.Call([]reflect.Value{av}))
}

// reader finds a zero-argument method or an exported field for name.
func reader(subject any, name string) (func() (any, error), bool) {
	rv := reflect.ValueOf(subject)
	if !rv.IsValid() {
		return nil, false
	}
	goName := inflect.Camelize(name)
	if goName == "" {
		return nil, false
	}

	if m := rv.MethodByName(goName); m.IsValid() && returnsValue(m.Type(), 0) {
		return func() (any, error) { return results(m.Call(nil)) }, true
	}

	if f, ok := field(rv, goName); ok {
		return func() (any, error) { return f.Interface(), nil }, true
	}
	return nil, false
}

// callable finds a one-argument method, or a func-valued field, for name.
func callable(subject any, name string) (reflect.Value, bool) {
	rv := reflect.ValueOf(subject)
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	goName := inflect.Camelize(name)
	if goName == "" {
		return reflect.Value{}, false
	}

	if m := rv.MethodByName(goName); m.IsValid() && returnsValue(m.Type(), 1) {
		return m, true
	}
	if f, ok := field(rv, goName); ok && f.Kind() == reflect.Func && !f.IsNil() && returnsValue(f.Type(), 1) {
		return f, true
	}
	return reflect.Value{}, false
}

// field returns the exported struct field goName, following pointers.
func field(rv reflect.Value, goName string) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	sf, ok := rv.Type().FieldByName(goName)
	if !ok || !sf.IsExported() {
		return reflect.Value{}, false
	}
	f, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, false
	}
	return f, true
}

// returnsValue reports whether t takes in arguments and returns either a
// value or a value and an error.
func returnsValue(t reflect.Type, in int) bool {
	if t.IsVariadic() || t.NumIn() != in {
		return false
	}
	switch t.NumOut() {
	case 1:
		return true
	case 2:
		return t.Out(1) == errorType
	}
	return false
}

func results(out []reflect.Value) (any, error) {
	if len(out) == 2 {
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, err
		}
	}
	return out[0].Interface(), nil
}
