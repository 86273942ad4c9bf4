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

package apis

import "reflect"

// Registry maps decorator class names to classes.
// Implementations must be safe for concurrent use.
type Registry interface {
	// Register adds c under c.Name(). Re-registering the same class is a no-op;
	// registering a different class under a taken name is an error.
	Register(c Class) error
	// Lookup returns the class registered under name.
	Lookup(name string) (Class, bool)
	// Entries returns a snapshot of all classes sorted by name.
	Entries() []Class
	// Count returns the number of registered classes.
	Count() int
	// Reset clears all registered classes.
	Reset()
}

// TypeRegistry names Go types for class derivation. A host registers
// PostRecord as "Post" so values of that type are wrapped by "PostStream".
// Names are subject type names: exported identifiers without the class
// suffix, which the resolver appends.
type TypeRegistry interface {
	// Register names the nearest named type of t. Registering the same
	// name again is a no-op; a different name for the same type is an error.
	Register(t reflect.Type, name string) error
	// Lookup returns the name registered for t, or for the type t points to.
	Lookup(t reflect.Type) (name string, ok bool)
	// Entries returns the registrations sorted by name. Builders use it to
	// carry names over to a rebuilt registry.
	Entries() []TypeEntry
}

// TypeEntry is a single (type, name) association in a TypeRegistry snapshot.
type TypeEntry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Name is the associated subject type name.
	Name string
}
