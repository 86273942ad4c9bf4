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

package lstream

import (
	"errors"

	"dirpx.dev/lstream/apis"
)

var (
	// ErrEmptyClassName is returned when a type or collection is defined
	// without a name.
	ErrEmptyClassName = errors.New("lstream: empty class name")
	// ErrNoIndexDelegate is returned by Stream.Index when the type has no
	// delegate, or its delegate is in prefix mode.
	ErrNoIndexDelegate = errors.New("lstream: no index delegate")
	// ErrNotEnumerable is returned when a collection class wraps a value that
	// is not a collection.
	ErrNotEnumerable = errors.New("lstream: subject is not enumerable")
	// ErrNestedCollection is returned when a collection class names another
	// collection class as its element.
	ErrNestedCollection = errors.New("lstream: collection element is a collection class")
)

// ErrStreamNotDefined matches every *StreamNotDefinedError via errors.Is.
var ErrStreamNotDefined = apis.ErrStreamNotDefined

// StreamNotDefinedError reports a decorator class that could not be found.
type StreamNotDefinedError = apis.StreamNotDefinedError
