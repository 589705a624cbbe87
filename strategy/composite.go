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
	"strings"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

// op is the boolean connective of a composite.
type op int

const (
	opAll op = iota
	opAny
	opNot
)

// Composite combines strategies with all/any/not. Composites see the
// whole field, so All(Exact("ID"), TypeOf[int]()) matches an int field
// named ID and nothing else.
type Composite struct {
	op    op
	parts []apis.MatchingStrategy
}

// Ensure Composite implements apis.MatchingStrategy and apis.FieldMatcher.
var (
	_ apis.MatchingStrategy = Composite{}
	_ apis.FieldMatcher     = Composite{}
)

// All matches when every part matches.
func All(parts ...apis.MatchingStrategy) (Composite, error) {
	return compose(opAll, parts)
}

// Any matches when at least one part matches.
func Any(parts ...apis.MatchingStrategy) (Composite, error) {
	return compose(opAny, parts)
}

// Not matches when s does not.
func Not(s apis.MatchingStrategy) (Composite, error) {
	return compose(opNot, []apis.MatchingStrategy{s})
}

func compose(o op, parts []apis.MatchingStrategy) (Composite, error) {
	if len(parts) == 0 {
		return Composite{}, &check.IllegalEmptyArgumentError{Name: "parts"}
	}
	for _, p := range parts {
		if err := check.NotNil(p, "part"); err != nil {
			return Composite{}, err
		}
	}
	cp := make([]apis.MatchingStrategy, len(parts))
	copy(cp, parts)
	return Composite{op: o, parts: cp}, nil
}

// MatchesName combines the parts' MatchesName answers.
func (s Composite) MatchesName(name string) (bool, error) {
	if err := check.NotBlankRef(name, "name"); err != nil {
		return false, err
	}
	return s.eval(func(p apis.MatchingStrategy) (bool, error) { return p.MatchesName(name) })
}

// MatchesType combines the parts' MatchesType answers.
func (s Composite) MatchesType(t reflect.Type) (bool, error) {
	if err := check.NotNil(t, "t"); err != nil {
		return false, err
	}
	return s.eval(func(p apis.MatchingStrategy) (bool, error) { return p.MatchesType(t) })
}

// MatchesField combines apis.MatchField over the parts.
func (s Composite) MatchesField(f apis.Field) (bool, error) {
	return s.eval(func(p apis.MatchingStrategy) (bool, error) { return apis.MatchField(p, f) })
}

// Key renders the connective and the parts' keys, e.g. "all(id,int)".
func (s Composite) Key() string {
	keys := make([]string, len(s.parts))
	for i, p := range s.parts {
		keys[i] = p.Key()
	}
	return s.op.String() + "(" + strings.Join(keys, ",") + ")"
}

func (s Composite) String() string { return s.Key() }

func (s Composite) eval(match func(apis.MatchingStrategy) (bool, error)) (bool, error) {
	switch s.op {
	case opNot:
		ok, err := match(s.parts[0])
		return !ok && err == nil, err
	case opAny:
		for _, p := range s.parts {
			if ok, err := match(p); err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	default:
		for _, p := range s.parts {
			if ok, err := match(p); err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

func (o op) String() string {
	switch o {
	case opAny:
		return "any"
	case opNot:
		return "not"
	default:
		return "all"
	}
}
