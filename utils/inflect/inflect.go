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

// Package inflect converts attribute names and class names between the
// forms used by declarations and by the class registry.
package inflect

import (
	"strings"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Camelize turns an attribute name into a type name: "comments" -> "Comments",
// "blog_posts" -> "BlogPosts". Letters after the first of each segment keep
// their case, so "blogPosts" becomes "BlogPosts". The result is never
// singularized.
func Camelize(name string) string {
	// A Caser is stateful and must not be shared between goroutines.
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, isSeparator) {
		b.WriteString(title.String(part))
	}
	return b.String()
}

// Singular returns the singular form of a class name with the given suffix:
// "BlogsStream" -> "BlogStream". Names without the suffix are singularized as
// a whole. The second result is false when the name is already singular.
func Singular(class, suffix string) (string, bool) {
	base, found := strings.CutSuffix(class, suffix)
	if !found {
		suffix = ""
	}
	one := inflection.Singular(base)
	if one == base {
		return class, false
	}
	return one + suffix, true
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
