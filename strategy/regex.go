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
	"fmt"
	"regexp"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

// Regex matches names against a regular expression.
type Regex struct {
	nameOnly
	re *regexp.Regexp
}

// Ensure Regex implements apis.MatchingStrategy.
var _ apis.MatchingStrategy = Regex{}

// NewRegex compiles pattern into a Regex strategy.
func NewRegex(pattern string) (Regex, error) {
	if err := check.NotBlankRef(pattern, "pattern"); err != nil {
		return Regex{}, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Regex{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return Regex{re: re}, nil
}

// MustRegex is like NewRegex but panics on error.
func MustRegex(pattern string) Regex {
	s, err := NewRegex(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// MatchesName reports whether the pattern matches name.
func (s Regex) MatchesName(name string) (bool, error) {
	if err := check.NotBlankRef(name, "name"); err != nil {
		return false, err
	}
	return s.re.MatchString(name), nil
}

// Key returns the source pattern.
func (s Regex) Key() string { return s.re.String() }

func (s Regex) String() string { return "regex(" + s.re.String() + ")" }
