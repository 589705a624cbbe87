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

package engine

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	uref "dirpx.dev/blueprint/utils/reflect"
)

var (
	// ErrInstantiation reports that a type could not be constructed or
	// that no provider could produce a value for it.
	ErrInstantiation = errors.New("blueprint(engine): instantiation failed")
	// ErrAccess reports that a resolved value could not be written into
	// its position.
	ErrAccess = errors.New("blueprint(engine): field access failed")
	// ErrCycle reports a self-referencing type under CycleFail.
	ErrCycle = errors.New("blueprint(engine): cycle detected")
)

// Error describes a failed blueprint. errors.Is matches Kind, and Unwrap
// exposes the underlying cause.
type Error struct {
	// Kind is one of ErrInstantiation, ErrAccess or ErrCycle.
	Kind error
	// Type is the type being filled when the failure occurred.
	Type reflect.Type
	// Field is the struct field being filled, "" for anonymous positions.
	Field string
	// Context is the session context at the point of failure.
	Context string
	// Err is the cause, possibly nil.
	Err error
}

// Ensure Error implements error.
var _ error = (*Error)(nil)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	b.WriteString(": ")
	b.WriteString(uref.TypeName(e.Type))
	if e.Field != "" {
		fmt.Fprintf(&b, " (field %s)", e.Field)
	}
	if e.Context != "" {
		fmt.Fprintf(&b, " at [%s]", e.Context)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is reports whether target is the error's Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Err
}
