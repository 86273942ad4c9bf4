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

// Decorator is a wrapped view over a subject.
type Decorator interface {
	// Subject returns the wrapped value.
	Subject() any
	// Context returns the context propagated from the root decorator.
	Context() Context
	// Get reads a named attribute through the decorator.
	Get(name string) (any, error)
}

// Class constructs decorators. Classes are registered by name in a Registry
// and looked up during resolution.
type Class interface {
	// Name returns the class name, e.g. "PostStream".
	Name() string
	// New wraps subject, sharing ctx with the new decorator.
	New(subject any, ctx Context) (Decorator, error)
}

// CollectionClass is a Class that wraps a whole collection rather than a
// single element.
type CollectionClass interface {
	Class
	// Element returns the class name used for each element, or "" to derive
	// it from the first element.
	Element() string
}

// Callable is returned for attribute reads under prefix delegation. Calling
// it forwards arg to the subject method named by the attribute.
type Callable func(arg any) (any, error)

// Call invokes c. It exists so template engines that only call methods can
// use a Callable.
func (c Callable) Call(arg any) (any, error) {
	return c(arg)
}
