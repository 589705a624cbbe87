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
	"reflect"
)

// MatchingStrategy is a predicate deciding whether a binding serves a field.
// Name strategies answer MatchesName, type strategies answer MatchesType;
// each returns false for the question it does not handle.
type MatchingStrategy interface {
	// MatchesName reports whether the field or accessor name is accepted.
	// An empty name is rejected with check.ErrNullArgument.
	MatchesName(name string) (bool, error)

	// MatchesType reports whether the declared type is accepted.
	// A nil type is rejected with check.ErrNullArgument.
	MatchesType(t reflect.Type) (bool, error)

	// Key returns the normalized reference the strategy is identified by.
	// Two strategies of the same kind with equal keys are interchangeable.
	Key() string
}

// FieldMatcher is implemented by strategies that need name and type at once.
type FieldMatcher interface {
	MatchesField(f Field) (bool, error)
}

// MatchField evaluates s against f. FieldMatcher implementations see the
// whole field; other strategies are asked by name (when f has one) and
// then by type.
func MatchField(s MatchingStrategy, f Field) (bool, error) {
	if fm, ok := s.(FieldMatcher); ok {
		return fm.MatchesField(f)
	}
	if f.Name != "" {
		ok, err := s.MatchesName(f.Name)
		if err != nil || ok {
			return ok, err
		}
	}
	return s.MatchesType(f.Type)
}
