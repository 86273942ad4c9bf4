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

package strategy

import (
	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/utils/inflect"
)

// AttributeName is the default apis.AttributeNamer. It camelizes the
// attribute without singularizing it, so "comments" yields "Comments".
func AttributeName(attribute string) string {
	return inflect.Camelize(attribute)
}

// Ensure AttributeName satisfies apis.AttributeNamer.
var _ apis.AttributeNamer = AttributeName
