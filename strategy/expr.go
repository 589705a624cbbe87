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
	"reflect"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

// FieldEnv is the environment an Expr program is evaluated against.
// Unknown parts are empty strings: MatchesName leaves typename, kind and owner
// empty, MatchesType leaves name and owner empty.
type FieldEnv struct {
	Name  string `expr:"name"`
	Type  string `expr:"typename"`
	Kind  string `expr:"kind"`
	Owner string `expr:"owner"`
}

// Expr matches fields with a boolean expr-lang program, e.g.
//
//	name matches "(?i)mail$" && kind == "string"
type Expr struct {
	source  string
	program *vm.Program
}

// Ensure Expr implements apis.MatchingStrategy and apis.FieldMatcher.
var (
	_ apis.MatchingStrategy = Expr{}
	_ apis.FieldMatcher     = Expr{}
)

// NewExpr compiles source into an Expr strategy.
func NewExpr(source string) (Expr, error) {
	source = strings.TrimSpace(source)
	if err := check.NotBlankRef(source, "source"); err != nil {
		return Expr{}, err
	}
	program, err := expr.Compile(source, expr.Env(FieldEnv{}), expr.AsBool())
	if err != nil {
		return Expr{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return Expr{source: source, program: program}, nil
}

// MustExpr is like NewExpr but panics on error.
func MustExpr(source string) Expr {
	s, err := NewExpr(source)
	if err != nil {
		panic(err)
	}
	return s
}

// MatchesName evaluates the program with only the name set.
func (s Expr) MatchesName(name string) (bool, error) {
	if err := check.NotBlankRef(name, "name"); err != nil {
		return false, err
	}
	return s.run(FieldEnv{Name: name})
}

// MatchesType evaluates the program with only the type set.
func (s Expr) MatchesType(t reflect.Type) (bool, error) {
	if err := check.NotNil(t, "t"); err != nil {
		return false, err
	}
	return s.run(FieldEnv{Type: t.String(), Kind: t.Kind().String()})
}

// MatchesField evaluates the program against the whole field.
func (s Expr) MatchesField(f apis.Field) (bool, error) {
	if err := check.NotNil(f.Type, "field.Type"); err != nil {
		return false, err
	}
	env := FieldEnv{Name: f.Name, Type: f.Type.String(), Kind: f.Type.Kind().String()}
	if f.Owner != nil {
		env.Owner = f.Owner.String()
	}
	return s.run(env)
}

// Key returns the trimmed expression source.
func (s Expr) Key() string { return s.source }

func (s Expr) String() string { return "expr(" + s.source + ")" }

func (s Expr) run(env FieldEnv) (bool, error) {
	out, err := expr.Run(s.program, env)
	if err != nil {
		return false, fmt.Errorf("blueprint(strategy): evaluate %q: %w", s.source, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}
