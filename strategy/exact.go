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
	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

// Exact matches a name equal to its reference, byte for byte.
type Exact struct {
	nameOnly
	ref string
}

// Ensure Exact implements apis.MatchingStrategy.
var _ apis.MatchingStrategy = Exact{}

// NewExact creates an Exact strategy for ref.
func NewExact(ref string) (Exact, error) {
	if err := check.NotBlankRef(ref, "reference"); err != nil {
		return Exact{}, err
	}
	return Exact{ref: ref}, nil
}

// MustExact is like NewExact but panics on error.
func MustExact(ref string) Exact {
	s, err := NewExact(ref)
	if err != nil {
		panic(err)
	}
	return s
}

// MatchesName reports whether name == ref.
func (s Exact) MatchesName(name string) (bool, error) {
	if err := check.NotBlankRef(name, "name"); err != nil {
		return false, err
	}
	return name == s.ref, nil
}

// Key returns the reference unchanged.
func (s Exact) Key() string { return s.ref }

// Hash returns a hash consistent with ==.
func (s Exact) Hash() uint64 { return hashKey("exact", s.ref) }

func (s Exact) String() string { return "exact(" + s.ref + ")" }
