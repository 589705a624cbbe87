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

package reflect_test

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/blueprint/apis"
	uref "dirpx.dev/blueprint/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}
type W[T any] struct{ V T }

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{MaxUnwrap: 8}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestNormalize_Pointers(t *testing.T) {
	conf := cfg()

	cases := []struct {
		name  string
		typ   reflect.Type
		want  reflect.Type
		depth int
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{}), 0},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{}), 1},
		{"ptr ptr", reflect.TypeOf((**A)(nil)), reflect.TypeOf(A{}), 2},
		{"slice kept", reflect.TypeOf([]A{}), reflect.TypeOf([]A{}), 0},
		{"ptr to slice", reflect.TypeOf(&[]A{}), reflect.TypeOf([]A{}), 1},
		{"builtin", reflect.TypeOf(0), reflect.TypeOf(0), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, depth, err := uref.Normalize(tc.typ, conf)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want || depth != tc.depth {
				t.Fatalf("Normalize(%v) = (%v,%d), want (%v,%d)", tc.typ, got, depth, tc.want, tc.depth)
			}
		})
	}
}

func TestNormalize_MaxUnwrap(t *testing.T) {
	tPPP := reflect.TypeOf((***A)(nil))

	// Tight limit -> expect an error.
	if _, _, err := uref.Normalize(tPPP, cfg(func(c *apis.Config) { c.MaxUnwrap = 2 })); !errors.Is(err, uref.ErrReflectTooDeep) {
		t.Fatalf("MaxUnwrap=2: expected ErrReflectTooDeep, got %v", err)
	}

	// Zero falls back to the default limit.
	if got, _, err := uref.Normalize(tPPP, cfg(func(c *apis.Config) { c.MaxUnwrap = 0 })); err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxUnwrap=0: got (%v,%v), want (A,nil)", got, err)
	}
}

func TestNormalize_NilType(t *testing.T) {
	if _, _, err := uref.Normalize(nil, cfg()); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: expected ErrReflectNilType, got %v", err)
	}
}

func TestClassification(t *testing.T) {
	type Named string

	cases := []struct {
		name      string
		typ       reflect.Type
		terminal  bool
		composite bool
	}{
		{"int", reflect.TypeOf(0), true, false},
		{"named string", reflect.TypeOf(Named("")), true, false},
		{"complex", reflect.TypeOf(complex64(0)), true, false},
		{"struct", reflect.TypeOf(A{}), false, true},
		{"ptr", reflect.TypeOf(&A{}), false, true},
		{"slice", reflect.TypeOf([]int{}), false, true},
		{"array", reflect.TypeOf([3]byte{}), false, true},
		{"map", reflect.TypeOf(map[string]int{}), false, true},
		{"func", reflect.TypeOf(func() {}), false, false},
		{"chan", reflect.TypeOf(make(chan int)), false, false},
		{"interface", reflect.TypeOf((*error)(nil)).Elem(), false, false},
		{"nil", nil, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.IsTerminal(tc.typ); got != tc.terminal {
				t.Fatalf("IsTerminal(%v) = %v, want %v", tc.typ, got, tc.terminal)
			}
			if got := uref.IsComposite(tc.typ); got != tc.composite {
				t.Fatalf("IsComposite(%v) = %v, want %v", tc.typ, got, tc.composite)
			}
		})
	}
}

// This test stresses Normalize and TypeName concurrently to smoke-test the
// shared name cache.
func TestNormalize_Concurrent(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(&A{}),
		reflect.TypeOf([]A{}),
		reflect.TypeOf(map[string]A{}),
		reflect.TypeOf(G[int]{}),
		reflect.TypeOf(W[G[int]]{}),
		reflect.TypeOf(0),
	}
	conf := cfg()

	workers := runtime.GOMAXPROCS(0) * 4
	iters := 2000

	var wg sync.WaitGroup
	wg.Add(workers)

	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				tt := types[i%len(types)]
				rt, _, err := uref.Normalize(tt, conf)
				if err != nil {
					errCh <- err
					return
				}
				if uref.TypeName(rt) == "" {
					errCh <- errors.New("got empty type name")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Fatalf("concurrent Normalize failed: %v", err)
	}
}
