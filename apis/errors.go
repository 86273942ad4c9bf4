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
)

// ErrStreamNotDefined matches every *StreamNotDefinedError via errors.Is.
var ErrStreamNotDefined = errors.New("stream not defined")

// StreamNotDefinedError reports a decorator class that could not be found.
// It signals a configuration defect: some declaration needs a class that was
// never defined.
type StreamNotDefinedError struct {
	// Name is the explicit or derived class name that was looked up.
	Name string
}

// NotDefined returns a *StreamNotDefinedError for name.
func NotDefined(name string) *StreamNotDefinedError {
	return &StreamNotDefinedError{Name: name}
}

func (e *StreamNotDefinedError) Error() string {
	return fmt.Sprintf("`%s` is not defined", e.Name)
}

// Is reports whether target is ErrStreamNotDefined.
func (e *StreamNotDefinedError) Is(target error) bool {
	return target == ErrStreamNotDefined
}
