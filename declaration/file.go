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

package declaration

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyName is returned for a type or collection without a name.
	ErrEmptyName = errors.New("lstream(declaration): empty class name")
	// ErrDuplicateName is returned when two entries of a file share a name.
	ErrDuplicateName = errors.New("lstream(declaration): duplicate class name")
)

// File is a declaration document. It describes decorator types and
// collection classes as data:
//
//	types:
//	  - name: BlogStream
//	    streams:
//	      - name: posts
//	      - name: blog_posts
//	        as: PostsStream
//	    delegate:
//	      method: resize
//	      prefix: false
//	collections:
//	  - name: PostsStream
//	    of: PostStream
type File struct {
	Types       []TypeSpec       `yaml:"types"`
	Collections []CollectionSpec `yaml:"collections"`
}

// TypeSpec declares one decorator type.
type TypeSpec struct {
	Name     string        `yaml:"name"`
	Streams  []StreamSpec  `yaml:"streams"`
	Delegate *DelegateSpec `yaml:"delegate,omitempty"`
}

// StreamSpec declares one streamed attribute.
type StreamSpec struct {
	Name string `yaml:"name"`
	As   string `yaml:"as,omitempty"`
	From string `yaml:"from,omitempty"`
}

// DelegateSpec declares the delegate of a type.
type DelegateSpec struct {
	Method string `yaml:"method"`
	Prefix bool   `yaml:"prefix,omitempty"`
}

// CollectionSpec declares a collection class.
type CollectionSpec struct {
	Name string `yaml:"name"`
	Of   string `yaml:"of,omitempty"`
}

// Parse decodes and validates a declaration document. Unknown keys are errors.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode declarations: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ParseFile reads and parses the declaration document at path.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open declarations: %w", err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Validate checks names and builds every type's Set, joining all problems.
func (f *File) Validate() error {
	var errs []error
	seen := make(map[string]bool)

	check := func(kind, name string) {
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("%s: %w", kind, ErrEmptyName))
		case seen[name]:
			errs = append(errs, fmt.Errorf("%s %q: %w", kind, name, ErrDuplicateName))
		}
		seen[name] = true
	}

	for _, ts := range f.Types {
		check("type", ts.Name)
		if _, err := ts.Set(); err != nil {
			errs = append(errs, fmt.Errorf("type %q: %w", ts.Name, err))
		}
	}
	for _, cs := range f.Collections {
		check("collection", cs.Name)
	}
	return errors.Join(errs...)
}

// Set builds the declaration set described by ts.
func (ts TypeSpec) Set() (*Set, error) {
	s := NewSet()
	for _, ss := range ts.Streams {
		if err := s.Declare(ss.Name, As(ss.As), From(ss.From)); err != nil {
			return nil, err
		}
	}
	if ts.Delegate != nil {
		if err := s.DeclareDelegate(ts.Delegate.Method, Prefix(ts.Delegate.Prefix)); err != nil {
			return nil, err
		}
	}
	return s, nil
}
