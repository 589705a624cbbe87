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
	"reflect"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

// Type matches fields by declared type identity.
type Type struct {
	t reflect.Type
}

// Ensure Type implements apis.MatchingStrategy.
var _ apis.MatchingStrategy = Type{}

// NewType creates a Type strategy for t.
func NewType(t reflect.Type) (Type, error) {
	if err := check.NotNil(t, "t"); err != nil {
		return Type{}, err
	}
	return Type{t: t}, nil
}

// MustType is like NewType but panics on error.
func MustType(t reflect.Type) Type {
	s, err := NewType(t)
	if err != nil {
		panic(err)
	}
	return s
}

// TypeOf creates a Type strategy for T.
func TypeOf[T any]() Type {
	return Type{t: reflect.TypeFor[T]()}
}

// MatchesName validates name and always returns false.
func (s Type) MatchesName(name string) (bool, error) {
	if err := check.NotBlankRef(name, "name"); err != nil {
		return false, err
	}
	return false, nil
}

// MatchesType reports whether t is the configured type.
func (s Type) MatchesType(t reflect.Type) (bool, error) {
	if err := check.NotNil(t, "t"); err != nil {
		return false, err
	}
	return t == s.t, nil
}

// Key returns the fully qualified type name.
func (s Type) Key() string {
	if s.t.Name() != "" && s.t.PkgPath() != "" {
		return s.t.PkgPath() + "." + s.t.Name()
	}
	return s.t.String()
}

func (s Type) String() string { return "type(" + s.Key() + ")" }
