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

package inflect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/lstream/utils/inflect"
)

func TestCamelize(t *testing.T) {
	cases := map[string]string{
		"comments":    "Comments",
		"blog_posts":  "BlogPosts",
		"blogPosts":   "BlogPosts",
		"image-sizes": "ImageSizes",
		"Title":       "Title",
		"":            "",
		"__x__":       "X",
	}
	for in, want := range cases {
		assert.Equal(t, want, inflect.Camelize(in), in)
	}
}

func TestSingular(t *testing.T) {
	got, ok := inflect.Singular("BlogsStream", "Stream")
	assert.True(t, ok)
	assert.Equal(t, "BlogStream", got)

	got, ok = inflect.Singular("CategoriesStream", "Stream")
	assert.True(t, ok)
	assert.Equal(t, "CategoryStream", got)

	got, ok = inflect.Singular("PostStream", "Stream")
	assert.False(t, ok)
	assert.Equal(t, "PostStream", got)

	got, ok = inflect.Singular("Posts", "Stream")
	assert.True(t, ok)
	assert.Equal(t, "Post", got)
}
