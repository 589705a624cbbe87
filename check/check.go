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

// Package check holds the argument guards used across blueprint.
//
// Each guard validates one property of one argument and reports a
// violation as a typed error carrying the argument name. The typed errors
// match the package sentinels via errors.Is, so callers can branch on the
// failure class without depending on the concrete type.
package check

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNullArgument is matched by IllegalNullArgumentError.
	ErrNullArgument = errors.New("check: argument must not be nil")
	// ErrEmptyArgument is matched by IllegalEmptyArgumentError.
	ErrEmptyArgument = errors.New("check: argument must not be empty")
	// ErrIllegalState is matched by IllegalStateError.
	ErrIllegalState = errors.New("check: illegal state")
)

// IllegalNullArgumentError reports a nil argument.
type IllegalNullArgumentError struct {
	// Name is the name of the offending argument.
	Name string
}

func (e *IllegalNullArgumentError) Error() string {
	if e.Name == "" {
		return ErrNullArgument.Error()
	}
	return fmt.Sprintf("check: argument %q must not be nil", e.Name)
}

// Is reports whether target is ErrNullArgument.
func (e *IllegalNullArgumentError) Is(target error) bool { return target == ErrNullArgument }

// IllegalEmptyArgumentError reports an empty argument.
type IllegalEmptyArgumentError struct {
	// Name is the name of the offending argument.
	Name string
}

func (e *IllegalEmptyArgumentError) Error() string {
	if e.Name == "" {
		return ErrEmptyArgument.Error()
	}
	return fmt.Sprintf("check: argument %q must not be empty", e.Name)
}

// Is reports whether target is ErrEmptyArgument.
func (e *IllegalEmptyArgumentError) Is(target error) bool { return target == ErrEmptyArgument }

// IllegalStateError reports a violated state condition.
type IllegalStateError struct {
	// Msg describes the expected state.
	Msg string
}

func (e *IllegalStateError) Error() string {
	if e.Msg == "" {
		return ErrIllegalState.Error()
	}
	return "check: illegal state: " + e.Msg
}

// Is reports whether target is ErrIllegalState.
func (e *IllegalStateError) Is(target error) bool { return target == ErrIllegalState }

// NotNil returns an IllegalNullArgumentError if v is nil or a typed nil
// (pointer, map, slice, func, chan or interface holding nil).
func NotNil(v any, name string) error {
	if isNil(v) {
		return &IllegalNullArgumentError{Name: name}
	}
	return nil
}

// NotEmpty returns an IllegalEmptyArgumentError if s is empty.
func NotEmpty(s string, name string) error {
	if s == "" {
		return &IllegalEmptyArgumentError{Name: name}
	}
	return nil
}

// NotBlankRef validates a string that stands in for a reference.
// Go strings cannot be nil, so an empty reference is the nil analogue and
// is reported as IllegalNullArgumentError.
func NotBlankRef(s string, name string) error {
	if s == "" {
		return &IllegalNullArgumentError{Name: name}
	}
	return nil
}

// StateIsTrue returns an IllegalStateError if cond is false.
func StateIsTrue(cond bool, msg string) error {
	if !cond {
		return &IllegalStateError{Msg: msg}
	}
	return nil
}

// isNil reports whether v is nil, looking through typed nils.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
