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
	"log/slog"
	"reflect"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/engine"
)

// Option configures New.
type Option func(*options)

type options struct {
	cfg       apis.Config
	bld       apis.Builder
	log       *slog.Logger
	bindings  []apis.Binding
	factories []factory
}

// WithConfig sets the configuration.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithBuilder replaces the builder. Nil is ignored.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.bld = b
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithBinding appends the binding (s, p). Bindings are consulted in the
// order they are given; the first match wins.
func WithBinding(s apis.MatchingStrategy, p apis.ValueProvider) Option {
	return func(o *options) {
		o.bindings = append(o.bindings, apis.Binding{Strategy: s, Provider: p})
	}
}

// WithFactory sets the construction mechanism for struct type t.
func WithFactory(t reflect.Type, fn engine.Factory) Option {
	return func(o *options) {
		o.factories = append(o.factories, factory{t: t, fn: fn})
	}
}
