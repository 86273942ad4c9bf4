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

package strategy

import (
	"reflect"
	"sync"

	"dirpx.dev/lstream/apis"
	uref "dirpx.dev/lstream/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that names values after their
// Go type, using utils/reflect.Normalize and memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It unwraps pointers, strips
// generic instantiation parameters and upper-cases the first letter, so a
// *Post yields "Post" and a string yields "String". Builtins are hidden when
// cfg.IncludeBuiltins is false; unnamed types are never handled.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t              reflect.Type
	includeBuiltin bool
	maxUnwrap      int16
}

// typeNameCache caches resolved type names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TryResolve computes the type name for v's type.
func (reflectStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return byType(reflect.TypeOf(v), cfg)
}

// TryResolveType computes the type name for t.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg)
}

// byType resolves the type name for t with memoization.
func byType(t reflect.Type, cfg apis.Config) (string, bool) {
	key := cacheKey{
		t:              t,
		includeBuiltin: cfg.IncludeBuiltins,
		maxUnwrap:      int16(cfg.MaxUnwrap),
	}
	if v, ok := typeNameCache.Load(key); ok {
		name := v.(string)
		return name, name != ""
	}

	name := ""
	if base, err := uref.Normalize(t, cfg); err == nil {
		if cfg.IncludeBuiltins || !uref.IsBuiltin(base) {
			name = uref.TypeName(base)
		}
	}

	typeNameCache.Store(key, name)
	return name, name != ""
}
