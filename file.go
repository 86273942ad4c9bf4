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
	"errors"
	"fmt"

	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/declaration"
	"dirpx.dev/lstream/registry"
	"dirpx.dev/lstream/utils/inflect"
)

// DefineFile defines every type and collection class described by f in the
// global registry. It registers nothing unless the whole file can be
// defined: every problem (an invalid entry, a name already registered) is
// reported, joined, before the first class is registered.
func DefineFile(f *declaration.File) error {
	if f == nil {
		return nil
	}
	if err := f.Validate(); err != nil {
		return err
	}

	classes, err := classesOf(f)
	if err != nil {
		return err
	}

	reg := Registry()
	var errs []error
	for _, c := range classes {
		if _, taken := reg.Lookup(c.Name()); taken {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name(), registry.ErrConflictingRegistration))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for _, c := range classes {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// classesOf builds the classes described by f without registering them.
func classesOf(f *declaration.File) ([]apis.Class, error) {
	classes := make([]apis.Class, 0, len(f.Types)+len(f.Collections))
	var errs []error
	for _, ts := range f.Types {
		set, err := ts.Set()
		if err != nil {
			errs = append(errs, fmt.Errorf("type %q: %w", ts.Name, err))
			continue
		}
		t, err := NewType(ts.Name, WithDeclarations(set))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		classes = append(classes, t)
	}
	for _, cs := range f.Collections {
		c, err := NewCollection(cs.Name, Of(cs.Of))
		if err != nil {
			errs = append(errs, fmt.Errorf("collection %q: %w", cs.Name, err))
			continue
		}
		classes = append(classes, c)
	}
	return classes, errors.Join(errs...)
}

// LoadFile parses the declaration document at path and defines it.
func LoadFile(path string) (*declaration.File, error) {
	f, err := declaration.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := DefineFile(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Check reports every explicit class reference of f that the global
// registry cannot satisfy: stream "as" names and collection "of" names.
// Classes defined by f itself count as satisfied. Failures are joined
// *StreamNotDefinedError values wrapped with their location.
//
// Derived names depend on runtime values and are not checked.
func Check(f *declaration.File) error {
	if f == nil {
		return nil
	}

	st := current()
	local := make(map[string]bool, len(f.Types)+len(f.Collections))
	for _, ts := range f.Types {
		local[ts.Name] = true
	}
	for _, cs := range f.Collections {
		local[cs.Name] = true
	}

	defined := func(name string) bool {
		if local[name] {
			return true
		}
		_, ok := st.reg.Lookup(name)
		return ok
	}

	var errs []error
	for _, ts := range f.Types {
		for _, ss := range ts.Streams {
			if ss.As == "" || defined(ss.As) {
				continue
			}
			if st.cfg.SingularizeExplicit {
				if one, changed := inflect.Singular(ss.As, st.cfg.Suffix); changed && defined(one) {
					continue
				}
			}
			errs = append(errs, fmt.Errorf("%s.%s: %w", ts.Name, ss.Name, apis.NotDefined(ss.As)))
		}
	}
	for _, cs := range f.Collections {
		if cs.Of != "" && !defined(cs.Of) {
			errs = append(errs, fmt.Errorf("%s: %w", cs.Name, apis.NotDefined(cs.Of)))
		}
	}
	return errors.Join(errs...)
}
