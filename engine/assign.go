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
	"fmt"
	"math"
	"reflect"
)

// coerce turns a provided value into a value of type t. Assignable and
// same-kind or numeric conversions are accepted; a pointer position also
// accepts a value of its element type, which is wrapped.
func coerce(x any, t reflect.Type) (reflect.Value, error) {
	if x == nil {
		if nillable(t.Kind()) {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %v", t)
	}

	v := reflect.ValueOf(x)
	if out, ok := assign(v, t); ok {
		return out, nil
	}
	if t.Kind() == reflect.Ptr {
		if elem, ok := assign(v, t.Elem()); ok {
			p := reflect.New(t.Elem())
			p.Elem().Set(elem)
			return p, nil
		}
	}
	return reflect.Value{}, fmt.Errorf("%v is not assignable to %v", v.Type(), t)
}

// fromFactory accepts a T or a non-nil *T for struct type t.
func fromFactory(x any, t reflect.Type) (reflect.Value, error) {
	if x != nil {
		v := reflect.ValueOf(x)
		if v.Type() == reflect.PointerTo(t) {
			if v.IsNil() {
				return reflect.Value{}, fmt.Errorf("factory returned nil *%v", t)
			}
			return v.Elem(), nil
		}
	}
	return coerce(x, t)
}

func assign(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	vt := v.Type()
	if vt.AssignableTo(t) {
		out := reflect.New(t).Elem()
		out.Set(v)
		return out, true
	}
	if convertible(v, t) {
		return v.Convert(t), true
	}
	return reflect.Value{}, false
}

// convertible excludes conversions reflect allows but that change meaning,
// such as int to string (rune), slice to array pointer, or a numeric value
// that does not fit the target exactly.
func convertible(v reflect.Value, to reflect.Type) bool {
	from := v.Type()
	if !from.ConvertibleTo(to) {
		return false
	}
	if numeric(from.Kind()) && numeric(to.Kind()) {
		return lossless(v, to)
	}
	return from.Kind() == to.Kind()
}

// lossless reports whether numeric v converts to type to without
// wrapping, truncation or a change of sign.
func lossless(v reflect.Value, to reflect.Type) bool {
	dst := reflect.New(to).Elem()
	switch {
	case signed(v.Kind()):
		n := v.Int()
		switch {
		case signed(to.Kind()):
			return !dst.OverflowInt(n)
		case unsigned(to.Kind()):
			return n >= 0 && !dst.OverflowUint(uint64(n))
		default:
			return !dst.OverflowFloat(float64(n))
		}
	case unsigned(v.Kind()):
		u := v.Uint()
		switch {
		case signed(to.Kind()):
			return u <= math.MaxInt64 && !dst.OverflowInt(int64(u))
		case unsigned(to.Kind()):
			return !dst.OverflowUint(u)
		default:
			return !dst.OverflowFloat(float64(u))
		}
	default:
		f := v.Float()
		switch {
		case signed(to.Kind()):
			return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 && !dst.OverflowInt(int64(f))
		case unsigned(to.Kind()):
			return f == math.Trunc(f) && f >= 0 && f < math.MaxUint64 && !dst.OverflowUint(uint64(f))
		default:
			return math.IsNaN(f) || math.IsInf(f, 0) || !dst.OverflowFloat(f)
		}
	}
}

func signed(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func unsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
