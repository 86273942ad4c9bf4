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

// Resolver decides which decorator class wraps an attribute value.
//
// The two entry points mirror the two resolution branches, which fail
// differently: a single value whose class cannot be found degrades to the
// raw value, while a collection whose class cannot be found is an error.
type Resolver interface {
	// ResolveValue resolves the class for a single (non-enumerable) value.
	// It returns (nil, false, nil) when no class applies and the caller
	// should hand back raw unchanged. An explicit name that is not
	// registered yields a *StreamNotDefinedError.
	ResolveValue(explicit, attribute string, raw any, cfg Config) (Class, bool, error)

	// ResolveCollection resolves the class for the elements of a collection
	// (or a CollectionClass for the whole collection). Any miss yields a
	// *StreamNotDefinedError naming the class that was looked up.
	ResolveCollection(explicit, attribute string, items []any, cfg Config) (Class, error)
}
