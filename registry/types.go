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

package registry

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"unicode"

	"dirpx.dev/lstream/apis"
	uref "dirpx.dev/lstream/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("lstream(registry): nil reflect.Type provided")
	// ErrInvalidTypeName is returned for a name that is not an identifier.
	ErrInvalidTypeName = errors.New("lstream(registry): type name is not an identifier")
	// ErrSuffixedTypeName is returned for a name ending in the class suffix:
	// the resolver appends the suffix, so "PostStream" would derive
	// "PostStreamStream".
	ErrSuffixedTypeName = errors.New("lstream(registry): type name carries the class suffix")
	// ErrConflictingType is returned when a type is already registered under
	// a different name.
	ErrConflictingType = errors.New("lstream(registry): conflicting type registration")
)

// NewTypes returns a TypeRegistry keyed by the nearest named type of each
// registered type under cfg. Names are stored exported ("post" -> "Post")
// and must not end in cfg.Suffix.
func NewTypes(cfg apis.Config) apis.TypeRegistry {
	return &types{cfg: cfg, names: make(map[reflect.Type]string)}
}

// types holds subject type names by normalized Go type.
type types struct {
	cfg   apis.Config
	mu    sync.RWMutex
	names map[reflect.Type]string
}

func (r *types) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	name, err := r.subjectName(name)
	if err != nil {
		return err
	}
	key, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return fmt.Errorf("type %s as %q: %w", t, name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.names[key]; ok {
		if old == name {
			return nil
		}
		return fmt.Errorf("%w: %s is %q, not %q", ErrConflictingType, key, old, name)
	}
	r.names[key] = name
	return nil
}

func (r *types) Lookup(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	key, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[key]
	return name, ok
}

func (r *types) Entries() []apis.TypeEntry {
	r.mu.RLock()
	entries := make([]apis.TypeEntry, 0, len(r.names))
	for t, name := range r.names {
		entries = append(entries, apis.TypeEntry{Type: t, Name: name})
	}
	r.mu.RUnlock()

	slices.SortFunc(entries, func(a, b apis.TypeEntry) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.Type.String(), b.Type.String()))
	})
	return entries
}

// subjectName validates name and returns its exported form.
func (r *types) subjectName(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	for i, c := range name {
		if !unicode.IsLetter(c) && c != '_' && (i == 0 || !unicode.IsDigit(c)) {
			return "", fmt.Errorf("%w: %q", ErrInvalidTypeName, name)
		}
	}
	name = uref.Exported(name)
	if r.cfg.Suffix != "" && strings.HasSuffix(name, r.cfg.Suffix) {
		return "", fmt.Errorf("%w: %q ends in %q", ErrSuffixedTypeName, name, r.cfg.Suffix)
	}
	return name, nil
}
