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

// Declaration configures one streamed attribute of a decorator type.
type Declaration struct {
	// Attribute is the name read on the decorator.
	Attribute string
	// As is an explicit class name. Empty means the class is derived.
	As string
	// Reader is the subject attribute to read. Empty means Attribute.
	Reader string
}

// Source returns the subject attribute the declaration reads from.
func (d Declaration) Source() string {
	if d.Reader != "" {
		return d.Reader
	}
	return d.Attribute
}

// Delegate routes index and callable access to a subject method.
type Delegate struct {
	// Method is the subject method called by index access.
	Method string
	// Prefix switches undeclared attribute reads to return a Callable that
	// forwards to the subject method of the same name.
	Prefix bool
}

// Declarations is the read side of a decorator type's configuration.
type Declarations interface {
	// Lookup returns the declaration for attribute.
	Lookup(attribute string) (Declaration, bool)
	// Delegate returns the delegate configuration, if any.
	Delegate() (Delegate, bool)
	// Entries returns all declarations sorted by attribute.
	Entries() []Declaration
}
