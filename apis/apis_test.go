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

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_CopiesInput(t *testing.T) {
	in := map[string]any{"viewer": "ann", "locale": "en"}
	ctx := NewContext(in)
	in["viewer"] = "bob"

	v, ok := ctx.Value("viewer")
	require.True(t, ok)
	assert.Equal(t, "ann", v)
	assert.Equal(t, 2, ctx.Len())
	assert.Equal(t, []string{"locale", "viewer"}, ctx.Keys())

	out := ctx.Map()
	out["locale"] = "fr"
	v, _ = ctx.Value("locale")
	assert.Equal(t, "en", v)
}

func TestContext_Zero(t *testing.T) {
	var ctx Context
	_, ok := ctx.Value("x")
	assert.False(t, ok)
	assert.Zero(t, ctx.Len())
	assert.Empty(t, ctx.Keys())
	assert.Empty(t, ctx.Map())
	assert.Equal(t, Context{}, NewContext(nil))
}

func TestStreamNotDefinedError(t *testing.T) {
	err := fmt.Errorf("reading posts: %w", NotDefined("PostsStream"))

	assert.EqualError(t, err, "reading posts: `PostsStream` is not defined")
	assert.ErrorIs(t, err, ErrStreamNotDefined)

	var nd *StreamNotDefinedError
	require.True(t, errors.As(err, &nd))
	assert.Equal(t, "PostsStream", nd.Name)
}

func TestDeclaration_Source(t *testing.T) {
	assert.Equal(t, "title", Declaration{Attribute: "title"}.Source())
	assert.Equal(t, "name", Declaration{Attribute: "title", Reader: "name"}.Source())
}

func TestCallable_Call(t *testing.T) {
	c := Callable(func(arg any) (any, error) { return fmt.Sprint(arg, "!"), nil })
	v, err := c.Call("hi")
	require.NoError(t, err)
	assert.Equal(t, "hi!", v)
}
