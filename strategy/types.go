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

	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/internal/logging"
)

// NewTypeNameStrategy answers with the subject type names a host registered
// in names. A registered name is used as is: it wins over reflection and
// over cfg.IncludeBuiltins, so a host can name int "Count" even when
// builtins are hidden.
func NewTypeNameStrategy(names apis.TypeRegistry) apis.Strategy {
	return typeNames{names: names}
}

type typeNames struct {
	names apis.TypeRegistry
}

func (s typeNames) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

func (s typeNames) TryResolveType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil || s.names == nil {
		return "", false
	}
	name, ok := s.names.Lookup(t)
	if ok {
		logging.L().Trace().Str("component", "strategy").Str("type", t.String()).Str("name", name).
			Msg("Using registered type name")
	}
	return name, ok
}
