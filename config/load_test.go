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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/lstream/config"
)

func TestLoad_NoFile_ReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lstream.yaml")
	data := []byte("suffix: Drop\ninclude_builtins: false\nmax_unwrap: 3\nsingularize_explicit: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Drop", cfg.Suffix)
	assert.False(t, cfg.IncludeBuiltins)
	assert.Equal(t, 3, cfg.MaxUnwrap)
	assert.True(t, cfg.SingularizeExplicit)
}

func TestLoad_PartialFile_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lstream.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suffix: View\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "View", cfg.Suffix)
	assert.Equal(t, config.DefaultMaxUnwrap, cfg.MaxUnwrap)
	assert.Equal(t, config.DefaultIncludeBuiltins, cfg.IncludeBuiltins)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lstream.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suffix: View\nmax_unwrap: 3\n"), 0o644))

	t.Setenv("LSTREAM_SUFFIX", "Presenter")
	t.Setenv("LSTREAM_MAX_UNWRAP", "4")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Presenter", cfg.Suffix)
	assert.Equal(t, 4, cfg.MaxUnwrap)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
