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

// Package provider holds apis.ValueProvider implementations: the zero and
// random default providers plus constant, function, sequence, UUID and
// time providers for explicit bindings.
package provider

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

// ErrUnsupportedType is returned when a provider cannot produce a value of
// the requested type.
var ErrUnsupportedType = errors.New("blueprint(provider): unsupported type")

// unsupported wraps ErrUnsupportedType with the offending type.
func unsupported(name string, t reflect.Type) error {
	return fmt.Errorf("%w: %s cannot provide %v", ErrUnsupportedType, name, t)
}

// Zero returns a provider yielding the zero value of any requested type.
func Zero() apis.ValueProvider {
	return apis.ProviderFunc(func(t reflect.Type) (any, error) {
		if err := check.NotNil(t, "t"); err != nil {
			return nil, err
		}
		return reflect.Zero(t).Interface(), nil
	})
}

// Const returns a provider that always yields v.
// v must be assignable or convertible to the field it is bound to.
func Const(v any) apis.ValueProvider {
	return apis.ProviderFunc(func(reflect.Type) (any, error) {
		return v, nil
	})
}

// Func returns a provider calling fn for every value.
func Func[T any](fn func() T) apis.ValueProvider {
	return apis.ProviderFunc(func(reflect.Type) (any, error) {
		return fn(), nil
	})
}

// Sequence returns a provider yielding start, start+1, ... for numeric
// kinds and their decimal rendering for strings. It is safe for concurrent use.
func Sequence(start int64) apis.ValueProvider {
	var next atomic.Int64
	next.Store(start)
	return apis.ProviderFunc(func(t reflect.Type) (any, error) {
		if err := check.NotNil(t, "t"); err != nil {
			return nil, err
		}
		n := next.Add(1) - 1
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return reflect.ValueOf(n).Convert(t).Interface(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return reflect.ValueOf(uint64(n)).Convert(t).Interface(), nil
		case reflect.Float32, reflect.Float64:
			return reflect.ValueOf(float64(n)).Convert(t).Interface(), nil
		case reflect.String:
			return reflect.ValueOf(fmt.Sprint(n)).Convert(t).Interface(), nil
		default:
			return nil, unsupported("sequence", t)
		}
	})
}
