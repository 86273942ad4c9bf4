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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/lstream/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	assert.Equal(t, config.DefaultSuffix, got.Suffix)
	assert.Equal(t, config.DefaultIncludeBuiltins, got.IncludeBuiltins)
	assert.Equal(t, config.DefaultMaxUnwrap, got.MaxUnwrap)
	assert.Equal(t, config.DefaultSingularizeExplicit, got.SingularizeExplicit)
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	assert.Equal(t, config.DefaultConfig(), config.NewConfig())
}

func TestWithSuffix(t *testing.T) {
	c := config.NewConfig(config.WithSuffix("Drop"))
	assert.Equal(t, "Drop", c.Suffix)
}

func TestWithSuffix_Empty_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithSuffix(""))
	assert.Equal(t, config.DefaultSuffix, c.Suffix)
}

func TestWithIncludeBuiltins(t *testing.T) {
	assert.False(t, config.NewConfig(config.WithIncludeBuiltins(false)).IncludeBuiltins)
	assert.True(t, config.NewConfig(config.WithIncludeBuiltins(true)).IncludeBuiltins)
}

func TestWithSingularizeExplicit(t *testing.T) {
	assert.True(t, config.NewConfig(config.WithSingularizeExplicit(true)).SingularizeExplicit)
}

func TestWithMaxUnwrap_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	assert.Equal(t, 3, c.MaxUnwrap)
}

func TestWithMaxUnwrap_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(-1))
	assert.Equal(t, config.DefaultMaxUnwrap, c.MaxUnwrap)
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithIncludeBuiltins(false),
		config.WithIncludeBuiltins(true),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithSuffix("A"),
		config.WithSuffix("B"),
	)

	assert.True(t, c.IncludeBuiltins, "last option wins")
	assert.Equal(t, 5, c.MaxUnwrap, "last option wins")
	assert.Equal(t, "B", c.Suffix, "last option wins")
}

func TestNewConfig_Guardrails_MaxUnwrapZeroAllowed(t *testing.T) {
	// Only negative values are reset; zero falls back at the point of use.
	c := config.NewConfig(config.WithMaxUnwrap(0))
	assert.Equal(t, 0, c.MaxUnwrap)
}
