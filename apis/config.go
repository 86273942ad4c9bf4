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

// Config carries read-only resolution knobs that influence class resolution.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Suffix is appended to a derived type name to form a decorator class
	// name ("Post" + "Stream" -> "PostStream").
	Suffix string

	// IncludeBuiltins controls whether builtin/no-package named types
	// (e.g., "int", "string") take part in derivation. If false, such values
	// are never wrapped and degrade to the raw value.
	IncludeBuiltins bool

	// MaxUnwrap limits pointer unwrapping depth when looking for the nearest
	// named type of a value. Acts as a safety guard against pathological nesting.
	MaxUnwrap int

	// SingularizeExplicit retries an unregistered explicit collection class
	// name in its singular form ("BlogsStream" -> "BlogStream") before failing.
	SingularizeExplicit bool
}
