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

package declaration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/lstream/declaration"
)

const blogDoc = `
types:
  - name: BlogStream
    streams:
      - name: posts
      - name: blog_posts
        as: PostsStream
  - name: ImageStream
    delegate:
      method: resize
  - name: PostStream
    streams:
      - name: writer
        from: author
collections:
  - name: PostsStream
    of: PostStream
`

func TestParse(t *testing.T) {
	f, err := declaration.Parse(strings.NewReader(blogDoc))
	require.NoError(t, err)

	want := &declaration.File{
		Types: []declaration.TypeSpec{
			{Name: "BlogStream", Streams: []declaration.StreamSpec{
				{Name: "posts"},
				{Name: "blog_posts", As: "PostsStream"},
			}},
			{Name: "ImageStream", Delegate: &declaration.DelegateSpec{Method: "resize"}},
			{Name: "PostStream", Streams: []declaration.StreamSpec{
				{Name: "writer", From: "author"},
			}},
		},
		Collections: []declaration.CollectionSpec{{Name: "PostsStream", Of: "PostStream"}},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeSpec_Set(t *testing.T) {
	f, err := declaration.Parse(strings.NewReader(blogDoc))
	require.NoError(t, err)

	s, err := f.Types[0].Set()
	require.NoError(t, err)
	d, ok := s.Lookup("blog_posts")
	require.True(t, ok)
	assert.Equal(t, "PostsStream", d.As)

	s, err = f.Types[1].Set()
	require.NoError(t, err)
	del, ok := s.Delegate()
	require.True(t, ok)
	assert.Equal(t, "resize", del.Method)
	assert.False(t, del.Prefix)
}

func TestParse_Empty(t *testing.T) {
	f, err := declaration.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Types)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := declaration.Parse(strings.NewReader("types:\n  - name: A\n    stream: []\n"))
	assert.Error(t, err)
}

func TestParse_ValidationErrors(t *testing.T) {
	doc := `
types:
  - name: PostStream
  - name: PostStream
  - name: ""
  - name: ImageStream
    streams:
      - name: ""
    delegate:
      method: ""
collections:
  - name: PostStream
`
	_, err := declaration.Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, declaration.ErrDuplicateName)
	assert.ErrorIs(t, err, declaration.ErrEmptyName)
	assert.ErrorIs(t, err, declaration.ErrEmptyAttribute)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(blogDoc), 0o644))

	f, err := declaration.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Types, 3)

	_, err = declaration.ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
