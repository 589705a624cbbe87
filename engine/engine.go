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

// Package engine builds blueprints: fully populated instances of Go types
// synthesized by recursive, depth-first reflection.
//
// For every struct the engine enters the type on the session path, detects
// re-entry, instantiates the value (factory, Initializer hook or zero
// allocation), resolves each exported field through an apis.Resolver and
// assigns the result. The path entry is always released, on success and on
// failure alike, so the session stays consistent for diagnostics.
//
// Pointers, slices, arrays and maps are filled element by element; terminal
// kinds come from providers. Interface, func, chan and unsafe pointer
// positions need an explicit binding.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
	"dirpx.dev/blueprint/config"
	"dirpx.dev/blueprint/session"
	uref "dirpx.dev/blueprint/utils/reflect"
)

// Engine is safe for concurrent use once constructed, provided the resolver
// and the bound providers are. Every call owns its own session.
type Engine struct {
	res       apis.Resolver
	reg       apis.Registry
	cfg       apis.Config
	log       *slog.Logger
	factories map[reflect.Type]Factory
	sealOnce  sync.Once
}

// New creates an Engine resolving fields through res.
func New(res apis.Resolver, opts ...Option) (*Engine, error) {
	if err := check.NotNil(res, "resolver"); err != nil {
		return nil, err
	}
	e := &Engine{
		res: res,
		cfg: config.DefaultConfig(),
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine's generation config.
func (e *Engine) Config() apis.Config {
	return e.cfg
}

// Blueprint returns a populated instance of t using a fresh session.
// A nil t yields check.ErrNullArgument as is; every other failure is an *Error.
func (e *Engine) Blueprint(t reflect.Type) (any, error) {
	v, err := e.BlueprintSession(session.New(), t)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// BlueprintSession is Blueprint with a caller-supplied session, which can
// be inspected afterwards (counts, seen types, context of a failure).
func (e *Engine) BlueprintSession(s *session.Session, t reflect.Type) (reflect.Value, error) {
	if err := check.NotNil(t, "t"); err != nil {
		return reflect.Value{}, err
	}
	if err := check.NotNil(s, "session"); err != nil {
		return reflect.Value{}, err
	}
	e.seal()

	name := uref.TypeName(t)
	e.log.Debug("blueprint started", "type", name)

	v, err := e.value(s, apis.Field{Type: t, Terminal: uref.IsTerminal(t)})
	if err != nil {
		e.log.Debug("blueprint failed", "type", name, "error", err)
		return reflect.Value{}, err
	}
	if !v.IsValid() {
		v = reflect.Zero(t)
	}

	e.log.Debug("blueprint completed", "type", name, "count", s.BlueprintCount())
	if e.log.Enabled(context.Background(), slog.LevelDebug) {
		e.log.Debug("blueprint value", "type", name, "dump", spew.Sdump(v.Interface()))
	}
	return v, nil
}

// Of returns a populated T.
func Of[T any](e *Engine) (T, error) {
	var out T
	v, err := e.BlueprintSession(session.New(), reflect.TypeFor[T]())
	if err != nil {
		return out, err
	}
	reflect.ValueOf(&out).Elem().Set(v)
	return out, nil
}

// seal freezes the registry behind the resolver before the first traversal.
func (e *Engine) seal() {
	if e.reg != nil {
		e.sealOnce.Do(e.reg.Seal)
	}
}

// value fills one position. An invalid result with a nil error means the
// position stays at its zero value (a broken cycle under CycleNil).
func (e *Engine) value(s *session.Session, f apis.Field) (reflect.Value, error) {
	r, err := e.res.Resolve(f)
	if err != nil {
		// No provider could be selected, so nothing can be produced.
		return reflect.Value{}, e.fail(s, ErrInstantiation, f, err)
	}
	if !r.Recurse {
		return e.provide(s, f, r)
	}

	switch f.Type.Kind() {
	case reflect.Struct:
		return e.structValue(s, f)
	case reflect.Ptr:
		return e.pointer(s, f)
	case reflect.Slice:
		return e.slice(s, f)
	case reflect.Array:
		return e.array(s, f)
	case reflect.Map:
		return e.mapValue(s, f)
	default:
		return reflect.Value{}, e.fail(s, ErrInstantiation, f,
			fmt.Errorf("cannot recurse into %s", f.Type.Kind()))
	}
}

func (e *Engine) provide(s *session.Session, f apis.Field, r apis.Resolution) (reflect.Value, error) {
	if r.Provider == nil {
		return reflect.Value{}, e.fail(s, ErrInstantiation, f, errors.New("resolver returned no provider"))
	}
	if r.Default && !uref.IsTerminal(f.Type) {
		return reflect.Value{}, e.fail(s, ErrInstantiation, f,
			fmt.Errorf("no binding for %s", f.Type.Kind()))
	}

	x, err := r.Provider.Provide(f.Type)
	if err != nil {
		return reflect.Value{}, e.fail(s, ErrInstantiation, f, err)
	}
	v, err := coerce(x, f.Type)
	if err != nil {
		return reflect.Value{}, e.fail(s, ErrAccess, f, err)
	}
	return v, nil
}

func (e *Engine) structValue(s *session.Session, f apis.Field) (reflect.Value, error) {
	t := f.Type
	cycle, err := s.Push(t)
	if err != nil {
		return reflect.Value{}, err
	}
	defer s.Pop()

	if cycle {
		return e.onCycle(s, f)
	}

	// Hand the parent's action back once this struct is done.
	defer s.RestoreLastAction(s.LastAction())

	inst, err := e.instantiate(s, f)
	if err != nil {
		return reflect.Value{}, err
	}

	for _, fi := range uref.Fields(t) {
		fv := inst.Field(fi.Index)
		if !fv.CanSet() {
			continue
		}
		if err := s.SetLastAction("resolve field " + fi.Name); err != nil {
			return reflect.Value{}, err
		}
		v, err := e.value(s, fi.Field)
		if err != nil {
			return reflect.Value{}, err
		}
		if v.IsValid() {
			fv.Set(v)
		}
	}
	return inst, nil
}

// onCycle applies the configured policy at a re-entered struct type.
func (e *Engine) onCycle(s *session.Session, f apis.Field) (reflect.Value, error) {
	e.log.Debug("cycle detected",
		"type", uref.TypeName(f.Type),
		"context", s.Context(),
		"policy", e.cfg.CyclePolicy.String(),
	)
	switch e.cfg.CyclePolicy {
	case apis.CycleShallow:
		return reflect.New(f.Type).Elem(), nil
	case apis.CycleFail:
		return reflect.Value{}, e.fail(s, ErrCycle, f, nil)
	default:
		return reflect.Value{}, nil
	}
}

// instantiate returns an addressable, empty instance of struct type f.Type.
func (e *Engine) instantiate(s *session.Session, f apis.Field) (reflect.Value, error) {
	t := f.Type
	ptr := reflect.New(t)

	if fn, ok := e.factories[t]; ok {
		x, err := fn()
		if err != nil {
			return reflect.Value{}, e.fail(s, ErrInstantiation, f, err)
		}
		v, err := fromFactory(x, t)
		if err != nil {
			return reflect.Value{}, e.fail(s, ErrInstantiation, f, err)
		}
		ptr.Elem().Set(v)
	}

	if in, ok := ptr.Interface().(apis.Initializer); ok {
		if err := in.InitBlueprint(); err != nil {
			return reflect.Value{}, e.fail(s, ErrInstantiation, f, err)
		}
	}
	return ptr.Elem(), nil
}

func (e *Engine) pointer(s *session.Session, f apis.Field) (reflect.Value, error) {
	if _, _, err := uref.Normalize(f.Type, e.cfg); err != nil {
		return reflect.Value{}, e.fail(s, ErrInstantiation, f, err)
	}

	// The pointee keeps the field's name so name bindings still apply.
	elem := f
	elem.Type = f.Type.Elem()
	elem.Terminal = uref.IsTerminal(elem.Type)

	v, err := e.value(s, elem)
	if err != nil || !v.IsValid() {
		return reflect.Value{}, err
	}
	p := reflect.New(elem.Type)
	p.Elem().Set(v)
	return p, nil
}

func (e *Engine) slice(s *session.Session, f apis.Field) (reflect.Value, error) {
	n := e.collectionSize()
	out := reflect.MakeSlice(f.Type, n, n)
	for i := 0; i < n; i++ {
		v, err := e.value(s, element(f.Type.Elem()))
		if err != nil {
			return reflect.Value{}, err
		}
		if !v.IsValid() {
			return reflect.Value{}, nil
		}
		out.Index(i).Set(v)
	}
	return out, nil
}

func (e *Engine) array(s *session.Session, f apis.Field) (reflect.Value, error) {
	out := reflect.New(f.Type).Elem()
	for i := 0; i < f.Type.Len(); i++ {
		v, err := e.value(s, element(f.Type.Elem()))
		if err != nil {
			return reflect.Value{}, err
		}
		if v.IsValid() {
			out.Index(i).Set(v)
		}
	}
	return out, nil
}

// mapValue generates up to CollectionSize entries; duplicate keys are skipped.
func (e *Engine) mapValue(s *session.Session, f apis.Field) (reflect.Value, error) {
	n := e.collectionSize()
	out := reflect.MakeMapWithSize(f.Type, n)
	for i := 0; i < n; i++ {
		k, err := e.value(s, element(f.Type.Key()))
		if err != nil || !k.IsValid() {
			return reflect.Value{}, err
		}
		if out.MapIndex(k).IsValid() {
			continue
		}
		v, err := e.value(s, element(f.Type.Elem()))
		if err != nil || !v.IsValid() {
			return reflect.Value{}, err
		}
		out.SetMapIndex(k, v)
	}
	return out, nil
}

func (e *Engine) collectionSize() int {
	if e.cfg.CollectionSize < 0 {
		return config.DefaultCollectionSize
	}
	return e.cfg.CollectionSize
}

// fail wraps cause into an *Error carrying the session context. Errors that
// already are *Error pass through so the innermost context is kept.
func (e *Engine) fail(s *session.Session, kind error, f apis.Field, cause error) error {
	var be *Error
	if errors.As(cause, &be) {
		return cause
	}
	return &Error{
		Kind:    kind,
		Type:    f.Type,
		Field:   f.Name,
		Context: s.Context(),
		Err:     cause,
	}
}

// element describes an anonymous position of type t.
func element(t reflect.Type) apis.Field {
	return apis.Field{Type: t, Terminal: uref.IsTerminal(t)}
}
