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

import "reflect"

// Field describes one position the engine has to fill.
type Field struct {
	// Name is the struct field name, or "" for anonymous positions
	// (the root value, slice elements, map keys and values).
	Name string
	// Type is the declared type of the position.
	Type reflect.Type
	// Owner is the struct type declaring the field, nil for anonymous positions.
	Owner reflect.Type
	// Terminal reports whether a provider can satisfy Type directly
	// without recursive blueprinting.
	Terminal bool
}
