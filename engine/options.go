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
	"log/slog"
	"reflect"

	"dirpx.dev/blueprint/apis"
)

// Factory produces a new instance of a type. The engine overwrites every
// exported field afterwards, so only unexported state set by the factory
// survives.
type Factory func() (any, error)

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the generation config.
func WithConfig(cfg apis.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithLogger sets the logger used for debug records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithFactory registers fn as the construction mechanism for struct type t.
// A factory may return either a T or a *T. Nil arguments are ignored.
func WithFactory(t reflect.Type, fn Factory) Option {
	return func(e *Engine) {
		if t == nil || fn == nil {
			return
		}
		if e.factories == nil {
			e.factories = make(map[reflect.Type]Factory)
		}
		e.factories[t] = fn
	}
}

// WithRegistry hands the engine the registry behind its resolver so it
// can seal it before the first traversal.
func WithRegistry(reg apis.Registry) Option {
	return func(e *Engine) {
		e.reg = reg
	}
}
