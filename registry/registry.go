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
	"errors"
	"slices"
	"strings"
	"sync"

	"dirpx.dev/lstream/apis"
)

var (
	// ErrNilClass is returned when a nil class is provided.
	ErrNilClass = errors.New("lstream(registry): nil class provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("lstream(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to register a
	// different class under a name that is already taken.
	ErrConflictingRegistration = errors.New("lstream(registry): conflicting class registration")
)

// New constructs an empty class Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
// Classes must be comparable (in practice, pointers).
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps class name to apis.Class.
	m sync.Map // map[string]apis.Class
	// count tracks the number of registered entries.
	count int
}

// Register adds c under c.Name().
// It is idempotent for the same class.
func (r *registry) Register(c apis.Class) error {
	if c == nil {
		return ErrNilClass
	}
	name := c.Name()
	if name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(name); ok {
		return sameClass(old.(apis.Class), c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(name); ok {
		return sameClass(old.(apis.Class), c)
	}

	r.m.Store(name, c)
	r.count++
	return nil
}

// Lookup returns the class registered under name.
func (r *registry) Lookup(name string) (apis.Class, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.m.Load(name); ok {
		return v.(apis.Class), true
	}
	return nil, false
}

// Entries returns a snapshot of all classes sorted by name.
func (r *registry) Entries() []apis.Class {
	entries := make([]apis.Class, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Class))
		return true
	})
	slices.SortFunc(entries, func(a, b apis.Class) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}

func sameClass(old, c apis.Class) error {
	if old == c {
		return nil
	}
	return ErrConflictingRegistration
}
