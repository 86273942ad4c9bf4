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
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// pointers) is not a named type (e.g., anonymous struct, func, map literal).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no name")
)

// Normalize unwraps pointers according to cfg.MaxUnwrap and returns the
// nearest named type, or an error if none is found.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t.Kind() == reflect.Pointer && i < maxUnwrap; i++ {
		t = t.Elem()
	}
	if t.Kind() == reflect.Pointer || t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}

// TypeName returns the display name of t: generic instantiation parameters
// are stripped ("Page[int]" -> "Page") and the first letter is upper-cased
// ("string" -> "String").
func TypeName(t reflect.Type) string {
	return Exported(stripTypeParams(t.Name()))
}

// IsBuiltin reports whether t is a predeclared type such as int or string.
func IsBuiltin(t reflect.Type) bool {
	return t.PkgPath() == ""
}

// Exported upper-cases the first rune of s.
func Exported(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
