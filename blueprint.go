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

package blueprint

import (
	"errors"
	"log/slog"
	"reflect"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/builder"
	"dirpx.dev/blueprint/config"
	"dirpx.dev/blueprint/engine"
	"dirpx.dev/blueprint/session"
)

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("blueprint: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("blueprint: builder returned nil resolver")
)

// Blueprinter is an immutable snapshot of a blueprint configuration:
// config, registry, resolver and engine. Its registry is sealed on first
// use; derive a new snapshot with With or Configure to change bindings.
// A Blueprinter is safe for concurrent use.
type Blueprinter struct {
	// cfg is the snapshot's configuration.
	cfg apis.Config
	// bld builds the registry and resolver of this and derived snapshots.
	bld apis.Builder
	// reg holds the bindings; sealed once eng traverses.
	reg apis.Registry
	// res is built over reg.
	res apis.Resolver
	// log is handed to eng.
	log *slog.Logger
	// factories are handed to eng and carried into derived snapshots.
	factories []factory
	// eng runs the traversals.
	eng *engine.Engine
}

type factory struct {
	t  reflect.Type
	fn engine.Factory
}

// New builds a Blueprinter. Bindings given with WithBinding are registered
// in order, ahead of the builder's stock bindings.
func New(opts ...Option) (*Blueprinter, error) {
	o := options{
		cfg: config.DefaultConfig(),
		bld: builder.New(),
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return build(o, nil)
}

// Def returns a T filled with zero terminal values; composites are still
// allocated and populated.
func Def[T any]() (T, error) {
	return construct[T](config.WithValues(apis.ValuesZero))
}

// Random returns a T filled with pseudo-random values derived from seed.
func Random[T any](seed uint64) (T, error) {
	return construct[T](config.WithValues(apis.ValuesRandom), config.WithSeed(seed))
}

// Of returns a populated T built by b.
func Of[T any](b *Blueprinter) (T, error) {
	return engine.Of[T](b.eng)
}

// Blueprint returns a populated instance of t.
func (b *Blueprinter) Blueprint(t reflect.Type) (any, error) {
	return b.eng.Blueprint(t)
}

// BlueprintSession is Blueprint with a caller-supplied session.
func (b *Blueprinter) BlueprintSession(s *session.Session, t reflect.Type) (reflect.Value, error) {
	return b.eng.BlueprintSession(s, t)
}

// With returns a new snapshot with the binding (s, p) appended after the
// existing ones. b is unchanged.
func (b *Blueprinter) With(s apis.MatchingStrategy, p apis.ValueProvider) (*Blueprinter, error) {
	o := b.options()
	o.bindings = append(o.bindings, apis.Binding{Strategy: s, Provider: p})
	return build(o, b.reg)
}

// Configure returns a new snapshot with cfg modified by opts and the
// existing bindings carried over. b is unchanged.
func (b *Blueprinter) Configure(opts ...config.Option) (*Blueprinter, error) {
	o := b.options()
	for _, opt := range opts {
		opt(&o.cfg)
	}
	return build(o, b.reg)
}

// Config returns the snapshot's configuration.
func (b *Blueprinter) Config() apis.Config {
	return b.cfg
}

// Registry returns the snapshot's registry. It is sealed after the first
// blueprint and must not be mutated before that either, since derived
// snapshots copy it.
func (b *Blueprinter) Registry() apis.Registry {
	return b.reg
}

// Resolver returns the snapshot's resolver.
func (b *Blueprinter) Resolver() apis.Resolver {
	return b.res
}

// options reconstructs the options of b without its bindings, which travel
// through the previous registry.
func (b *Blueprinter) options() options {
	return options{
		cfg:       b.cfg,
		bld:       b.bld,
		log:       b.log,
		factories: append([]factory(nil), b.factories...),
	}
}

// build assembles a snapshot. Bindings of prev come first, then o.bindings.
func build(o options, prev apis.Registry) (*Blueprinter, error) {
	if err := config.Validate(o.cfg); err != nil {
		return nil, err
	}

	reg := o.bld.BuildRegistry(o.cfg, prev)
	if reg == nil {
		return nil, ErrNilRegistry
	}
	for _, bnd := range o.bindings {
		if err := reg.Register(bnd.Strategy, bnd.Provider); err != nil {
			return nil, err
		}
	}

	res := o.bld.BuildResolver(o.cfg, reg)
	if res == nil {
		return nil, ErrNilResolver
	}

	eopts := []engine.Option{
		engine.WithConfig(o.cfg),
		engine.WithLogger(o.log),
		engine.WithRegistry(reg),
	}
	for _, f := range o.factories {
		eopts = append(eopts, engine.WithFactory(f.t, f.fn))
	}
	eng, err := engine.New(res, eopts...)
	if err != nil {
		return nil, err
	}

	return &Blueprinter{
		cfg:       o.cfg,
		bld:       o.bld,
		reg:       reg,
		res:       res,
		log:       o.log,
		factories: o.factories,
		eng:       eng,
	}, nil
}

func construct[T any](opts ...config.Option) (T, error) {
	b, err := New(WithConfig(config.NewConfig(opts...)))
	if err != nil {
		var zero T
		return zero, err
	}
	return Of[T](b)
}
