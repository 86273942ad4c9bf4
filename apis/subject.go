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

// Subject is the capability interface a host object implements to expose
// named attributes without reflection.
type Subject interface {
	HasAttribute(name string) bool
	Attribute(name string) (any, error)
}

// Invoker is implemented by subjects that accept delegated method calls.
type Invoker interface {
	Invoke(method string, arg any) (any, error)
}

// Enumerable is an ordered collection. Values implementing it are wrapped
// as collections.
type Enumerable interface {
	Len() int
	At(i int) any
}

// Named lets a subject report its own type name for class derivation,
// skipping any registry or reflection lookup.
type Named interface {
	StreamName() string
}
