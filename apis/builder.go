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

// Builder constructs Registry, TypeRegistry and Resolver instances for a
// given Config. Implementations may reuse or migrate state from the previous
// instances (prev may be nil).
type Builder interface {
	// BuildRegistry builds the class registry.
	BuildRegistry(cfg Config, prev Registry) Registry

	// BuildTypeRegistry builds the Go type -> subject type name registry.
	BuildTypeRegistry(cfg Config, prev TypeRegistry) TypeRegistry

	// BuildResolver builds the class resolver on top of reg and names.
	BuildResolver(cfg Config, reg Registry, names TypeRegistry, prev Resolver) Resolver
}
