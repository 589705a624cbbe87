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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTooDeep indicates that the provided type is still a pointer
	// after MaxUnwrap indirections were removed.
	ErrReflectTooDeep = errors.New("reflect: pointer chain exceeds MaxUnwrap")
)

// Normalize removes pointer indirections according to cfg.MaxUnwrap and
// returns the pointee type together with the number of indirections removed.
//
// Unwrapping policy:
//   - ptr -> Elem(), counted against MaxUnwrap;
//   - anything else is returned as is.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, int, error) {
	if t == nil {
		return nil, 0, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	depth := 0
	for t.Kind() == reflect.Ptr {
		if depth == maxUnwrap {
			return nil, depth, ErrReflectTooDeep
		}
		t = t.Elem()
		depth++
	}
	return t, depth, nil
}

// IsTerminal reports whether values of t are produced directly by a provider.
// Terminal kinds are booleans, numbers, complex numbers and strings.
func IsTerminal(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}

// IsComposite reports whether the engine can blueprint t recursively.
func IsComposite(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Ptr, reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
