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

// Package strategy provides apis.MatchingStrategy implementations.
//
// Name strategies (Exact, CaseInsensitive, Regex) decide by field or
// accessor name, Type decides by declared type, Expr sees the whole field,
// and All, Any and Not compose other strategies. Every strategy is an
// immutable value identified by its normalized Key.
package strategy

import (
	"errors"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

// ErrInvalidPattern is returned when a regular expression or an expression
// source does not compile.
var ErrInvalidPattern = errors.New("blueprint(strategy): invalid pattern")

// Equal reports whether a and b are interchangeable: same variant and same
// normalized key. Nil strategies are equal only to each other.
func Equal(a, b apis.MatchingStrategy) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b) && a.Key() == b.Key()
}

// Hash returns a hash consistent with Equal.
func Hash(s apis.MatchingStrategy) uint64 {
	if s == nil {
		return 0
	}
	return hashKey(reflect.TypeOf(s).String(), s.Key())
}

// hashKey hashes a variant name and a key.
func hashKey(variant, key string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(variant)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(key)
	return d.Sum64()
}

// nameOnly is embedded by strategies that never match by type.
type nameOnly struct{}

// MatchesType validates t and always returns false.
func (nameOnly) MatchesType(t reflect.Type) (bool, error) {
	if err := check.NotNil(t, "t"); err != nil {
		return false, err
	}
	return false, nil
}
