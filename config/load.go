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

package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"dirpx.dev/lstream/apis"
)

// EnvPrefix is the prefix of environment variables read by Load.
// LSTREAM_MAX_UNWRAP overrides max_unwrap, and so on.
const EnvPrefix = "LSTREAM_"

// fileConfig is the on-disk shape of apis.Config.
type fileConfig struct {
	Suffix              string `koanf:"suffix"`
	IncludeBuiltins     bool   `koanf:"include_builtins"`
	MaxUnwrap           int    `koanf:"max_unwrap"`
	SingularizeExplicit bool   `koanf:"singularize_explicit"`
}

// Load builds an apis.Config from, in increasing priority: the defaults,
// the YAML file at path (skipped when path is empty) and LSTREAM_*
// environment variables.
func Load(path string) (apis.Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	def := DefaultConfig()
	defaults := map[string]interface{}{
		"suffix":               def.Suffix,
		"include_builtins":     def.IncludeBuiltins,
		"max_unwrap":           def.MaxUnwrap,
		"singularize_explicit": def.SingularizeExplicit,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return apis.Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return apis.Config{}, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return apis.Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return apis.Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return sanitize(apis.Config{
		Suffix:              fc.Suffix,
		IncludeBuiltins:     fc.IncludeBuiltins,
		MaxUnwrap:           fc.MaxUnwrap,
		SingularizeExplicit: fc.SingularizeExplicit,
	}), nil
}

// envKey maps LSTREAM_MAX_UNWRAP to max_unwrap.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
