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
	"dirpx.dev/lstream/apis"
)

const (
	// DefaultSuffix represents the default for Suffix.
	DefaultSuffix = "Stream"
	// DefaultIncludeBuiltins represents the default for IncludeBuiltins.
	// When true, values of builtin types (string, int, ...) are looked up as
	// "StringStream", "IntStream" and so on.
	DefaultIncludeBuiltins = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultSingularizeExplicit represents the default for SingularizeExplicit.
	DefaultSingularizeExplicit = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Suffix:              DefaultSuffix,
		IncludeBuiltins:     DefaultIncludeBuiltins,
		MaxUnwrap:           DefaultMaxUnwrap,
		SingularizeExplicit: DefaultSingularizeExplicit,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithSuffix sets the Suffix option.
// An empty suffix resets to the default.
func WithSuffix(suffix string) Option {
	return func(c *apis.Config) {
		c.Suffix = suffix
	}
}

// WithIncludeBuiltins sets the IncludeBuiltins option.
func WithIncludeBuiltins(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeBuiltins = include
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		c.MaxUnwrap = max
	}
}

// WithSingularizeExplicit sets the SingularizeExplicit option.
func WithSingularizeExplicit(on bool) Option {
	return func(c *apis.Config) {
		c.SingularizeExplicit = on
	}
}

// sanitize restores defaults for values that would make derivation useless.
func sanitize(cfg apis.Config) apis.Config {
	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}
