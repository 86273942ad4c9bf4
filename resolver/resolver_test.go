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

package resolver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/config"
	"dirpx.dev/lstream/registry"
	"dirpx.dev/lstream/resolver"
)

type Post struct{ Title string }
type Blog struct{ Title string }

type fakeClass struct{ name string }

func (c *fakeClass) Name() string { return c.name }

func (c *fakeClass) New(any, apis.Context) (apis.Decorator, error) { return nil, nil }

type fakeCollection struct {
	fakeClass
	element string
}

func (c *fakeCollection) Element() string { return c.element }

func newRegistry(t *testing.T, classes ...apis.Class) apis.Registry {
	t.Helper()
	reg := registry.New()
	for _, c := range classes {
		require.NoError(t, reg.Register(c))
	}
	return reg
}

func notDefinedName(t *testing.T, err error) string {
	t.Helper()
	var nd *apis.StreamNotDefinedError
	require.True(t, errors.As(err, &nd), "want StreamNotDefinedError, got %v", err)
	assert.ErrorIs(t, err, apis.ErrStreamNotDefined)
	return nd.Name
}

func TestResolveValue_Derived(t *testing.T) {
	blog := &fakeClass{name: "BlogStream"}
	res := resolver.New(newRegistry(t, blog))

	c, ok, err := res.ResolveValue("", "blog", &Blog{Title: "Blog"}, config.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Same(t, blog, c)
}

func TestResolveValue_NotDefinedDegrades(t *testing.T) {
	res := resolver.New(newRegistry(t))

	for _, raw := range []any{&Blog{}, "PostMan", 7, nil, struct{}{}} {
		c, ok, err := res.ResolveValue("", "blog", raw, config.DefaultConfig())
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, c)
	}
}

func TestResolveValue_CollectionClassDegrades(t *testing.T) {
	posts := &fakeCollection{fakeClass: fakeClass{name: "PostStream"}}
	res := resolver.New(newRegistry(t, posts))

	_, ok, err := res.ResolveValue("", "post", Post{}, config.DefaultConfig())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveValue_Explicit(t *testing.T) {
	post := &fakeClass{name: "PostStream"}
	res := resolver.New(newRegistry(t, post))

	c, ok, err := res.ResolveValue("PostStream", "blog", &Blog{}, config.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Same(t, post, c)

	_, _, err = res.ResolveValue("AuthorStream", "blog", &Blog{}, config.DefaultConfig())
	assert.Equal(t, "AuthorStream", notDefinedName(t, err))
}

func TestResolveValue_Suffix(t *testing.T) {
	drop := &fakeClass{name: "BlogDrop"}
	res := resolver.New(newRegistry(t, drop))

	c, ok, err := res.ResolveValue("", "blog", Blog{}, config.NewConfig(config.WithSuffix("Drop")))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Same(t, drop, c)
}

func TestResolveCollection_FromFirstElement(t *testing.T) {
	post := &fakeClass{name: "PostStream"}
	res := resolver.New(newRegistry(t, post))

	items := []any{&Post{Title: "Post 1"}, &Blog{Title: "mixed"}}
	c, err := res.ResolveCollection("", "posts", items, config.DefaultConfig())
	require.NoError(t, err)
	assert.Same(t, post, c)
}

func TestResolveCollection_NotDefined(t *testing.T) {
	res := resolver.New(newRegistry(t))

	_, err := res.ResolveCollection("", "posts", []any{Post{}}, config.DefaultConfig())
	assert.Equal(t, "PostStream", notDefinedName(t, err))
}

func TestResolveCollection_EmptyUsesAttributeName(t *testing.T) {
	res := resolver.New(newRegistry(t))

	_, err := res.ResolveCollection("", "comments", nil, config.DefaultConfig())
	assert.Equal(t, "CommentsStream", notDefinedName(t, err))

	_, err = res.ResolveCollection("", "blog_posts", []any{}, config.DefaultConfig())
	assert.Equal(t, "BlogPostsStream", notDefinedName(t, err))
}

func TestResolveCollection_EmptyFindsAttributeClass(t *testing.T) {
	comments := &fakeClass{name: "CommentsStream"}
	res := resolver.New(newRegistry(t, comments))

	c, err := res.ResolveCollection("", "comments", nil, config.DefaultConfig())
	require.NoError(t, err)
	assert.Same(t, comments, c)
}

func TestResolveCollection_CustomAttributeNamer(t *testing.T) {
	comment := &fakeClass{name: "CommentStream"}
	singular := func(attribute string) string { return "Comment" }
	res := resolver.New(newRegistry(t, comment), resolver.WithAttributeNamer(singular))

	c, err := res.ResolveCollection("", "comments", nil, config.DefaultConfig())
	require.NoError(t, err)
	assert.Same(t, comment, c)
}

func TestResolveCollection_Explicit(t *testing.T) {
	blog := &fakeClass{name: "BlogStream"}
	res := resolver.New(newRegistry(t, blog))

	c, err := res.ResolveCollection("BlogStream", "comments", []any{Post{}}, config.DefaultConfig())
	require.NoError(t, err)
	assert.Same(t, blog, c)

	_, err = res.ResolveCollection("BlogsStream", "comments", []any{Post{}}, config.DefaultConfig())
	assert.Equal(t, "BlogsStream", notDefinedName(t, err))
}

func TestResolveCollection_ExplicitSingularized(t *testing.T) {
	blog := &fakeClass{name: "BlogStream"}
	res := resolver.New(newRegistry(t, blog))
	conf := config.NewConfig(config.WithSingularizeExplicit(true))

	c, err := res.ResolveCollection("BlogsStream", "comments", []any{Post{}}, conf)
	require.NoError(t, err)
	assert.Same(t, blog, c)

	_, err = res.ResolveCollection("AuthorsStream", "comments", nil, conf)
	assert.Equal(t, "AuthorsStream", notDefinedName(t, err))
}

func TestResolveCollection_UnnamedElement(t *testing.T) {
	res := resolver.New(newRegistry(t))

	_, err := res.ResolveCollection("", "rows", []any{struct{ X int }{}}, config.DefaultConfig())
	assert.Equal(t, "Struct { X int }Stream", notDefinedName(t, err))

	_, err = res.ResolveCollection("", "rows", []any{nil}, config.DefaultConfig())
	assert.Equal(t, "NilStream", notDefinedName(t, err))
}

func TestResolveCollection_HiddenBuiltinNotLookedUp(t *testing.T) {
	res := resolver.New(newRegistry(t, &fakeClass{name: "StringStream"}))
	conf := config.NewConfig(config.WithIncludeBuiltins(false))

	_, err := res.ResolveCollection("", "tags", []any{"go"}, conf)
	assert.Equal(t, "StringStream", notDefinedName(t, err))

	c, err := res.ResolveCollection("", "tags", []any{"go"}, config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "StringStream", c.Name())
}

func TestWithStrategies_ReplacesChain(t *testing.T) {
	image := &fakeClass{name: "ImageStream"}
	res := resolver.New(newRegistry(t, image), resolver.WithStrategies(fixedStrategy{"Image"}))

	c, ok, err := res.ResolveValue("", "avatar", Post{}, config.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Same(t, image, c)
}

func TestNilRegistry(t *testing.T) {
	res := resolver.New(nil)

	_, ok, err := res.ResolveValue("", "blog", Blog{}, config.DefaultConfig())
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = res.ResolveCollection("", "posts", []any{Post{}}, config.DefaultConfig())
	assert.ErrorIs(t, err, apis.ErrStreamNotDefined)
}
