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

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/registry"
)

// fakeClass is a minimal apis.Class for registry tests.
type fakeClass struct{ name string }

func (c *fakeClass) Name() string { return c.name }

func (c *fakeClass) New(subject any, ctx apis.Context) (apis.Decorator, error) {
	return nil, nil
}

func TestRegister_IdempotentAndLookup(t *testing.T) {
	reg := registry.New()
	post := &fakeClass{name: "PostStream"}

	require.NoError(t, reg.Register(post))
	// idempotent re-register with the same class
	require.NoError(t, reg.Register(post))

	got, ok := reg.Lookup("PostStream")
	require.True(t, ok)
	assert.Same(t, post, got)
	assert.Equal(t, 1, reg.Count())
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New()

	require.NoError(t, reg.Register(&fakeClass{name: "PostStream"}))
	err := reg.Register(&fakeClass{name: "PostStream"})
	assert.ErrorIs(t, err, registry.ErrConflictingRegistration)
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()

	assert.ErrorIs(t, reg.Register(nil), registry.ErrNilClass)
	assert.ErrorIs(t, reg.Register(&fakeClass{}), registry.ErrEmptyName)
}

func TestEntries_SortedAndReset(t *testing.T) {
	reg := registry.New()

	require.NoError(t, reg.Register(&fakeClass{name: "PostStream"}))
	require.NoError(t, reg.Register(&fakeClass{name: "BlogStream"}))
	require.NoError(t, reg.Register(&fakeClass{name: "ImageStream"}))

	var names []string
	for _, c := range reg.Entries() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"BlogStream", "ImageStream", "PostStream"}, names)

	reg.Reset()

	assert.Equal(t, 0, reg.Count())
	_, ok := reg.Lookup("PostStream")
	assert.False(t, ok)
}

func TestLookupEmptyAndUnknown(t *testing.T) {
	reg := registry.New()

	c, ok := reg.Lookup("")
	assert.False(t, ok)
	assert.Nil(t, c)

	c, ok = reg.Lookup("CommentsStream")
	assert.False(t, ok)
	assert.Nil(t, c)
}
