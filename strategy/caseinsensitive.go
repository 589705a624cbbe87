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
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

// accessorPrefixes are stripped from candidates before comparison.
var accessorPrefixes = []string{"get", "set", "is"}

// CaseInsensitive matches names case-insensitively, ignoring a leading
// accessor prefix on the candidate: a strategy for "EMail" matches
// "email", "EMail", "setEmail" and "GetEMail".
//
// A prefix is stripped only when an upper-case letter follows it, so
// "Settings" keeps its prefix. For the same reason "SETEMAIL" matches
// "EMail" while "setemail" does not.
//
// Values are comparable; == and Hash are defined over the lower-cased
// reference, so strategies for "EMail" and "email" are equal.
type CaseInsensitive struct {
	nameOnly
	key string
}

// Ensure CaseInsensitive implements apis.MatchingStrategy.
var _ apis.MatchingStrategy = CaseInsensitive{}

// NewCaseInsensitive creates a CaseInsensitive strategy for ref.
func NewCaseInsensitive(ref string) (CaseInsensitive, error) {
	if err := check.NotBlankRef(ref, "reference"); err != nil {
		return CaseInsensitive{}, err
	}
	return CaseInsensitive{key: strings.ToLower(ref)}, nil
}

// MustCaseInsensitive is like NewCaseInsensitive but panics on error.
func MustCaseInsensitive(ref string) CaseInsensitive {
	s, err := NewCaseInsensitive(ref)
	if err != nil {
		panic(err)
	}
	return s
}

// MatchesName compares the normalized candidate with the normalized reference.
func (s CaseInsensitive) MatchesName(name string) (bool, error) {
	if err := check.NotBlankRef(name, "name"); err != nil {
		return false, err
	}
	if strings.ToLower(name) == s.key {
		return true, nil
	}
	if rest, ok := stripAccessor(name); ok {
		return strings.ToLower(rest) == s.key, nil
	}
	return false, nil
}

// Key returns the lower-cased reference.
func (s CaseInsensitive) Key() string { return s.key }

// Hash returns a hash consistent with ==.
func (s CaseInsensitive) Hash() uint64 { return hashKey("caseinsensitive", s.key) }

func (s CaseInsensitive) String() string { return "caseinsensitive(" + s.key + ")" }

// stripAccessor removes a get/set/is prefix (any case) when it is followed
// by an upper-case letter, so "Settings" keeps its prefix but "setEmail"
// becomes "Email".
func stripAccessor(name string) (string, bool) {
	for _, p := range accessorPrefixes {
		if len(name) <= len(p) || !strings.EqualFold(name[:len(p)], p) {
			continue
		}
		r, _ := utf8.DecodeRuneInString(name[len(p):])
		if unicode.IsUpper(r) {
			return name[len(p):], true
		}
	}
	return "", false
}
