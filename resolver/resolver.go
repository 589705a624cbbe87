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

package resolver

import (
	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
	uref "dirpx.dev/blueprint/utils/reflect"
)

// Option configures a resolver.
type Option func(*chain)

// WithFallback adds a registry consulted after the primary one. Builders
// use it for stock bindings (time.Time, uuid.UUID) that caller bindings
// must be able to override. Nil registries are ignored.
func WithFallback(reg apis.Registry) Option {
	return func(c *chain) {
		if reg != nil {
			c.regs = append(c.regs, reg)
		}
	}
}

// New constructs an apis.Resolver over reg with def as the default provider.
// The returned resolver is safe for concurrent use provided the registries
// and the bound providers are.
func New(reg apis.Registry, def apis.ValueProvider, opts ...Option) (apis.Resolver, error) {
	if err := check.NotNil(reg, "registry"); err != nil {
		return nil, err
	}
	if err := check.NotNil(def, "default provider"); err != nil {
		return nil, err
	}
	c := chain{regs: []apis.Registry{reg}, def: def}
	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}

// chain is an immutable, order-preserving resolver:
// registry bindings -> fallback bindings -> recursive blueprint -> default provider.
type chain struct {
	regs []apis.Registry
	def  apis.ValueProvider
}

// Resolve returns how f is to be filled.
func (r chain) Resolve(f apis.Field) (apis.Resolution, error) {
	if err := check.NotNil(f.Type, "field.Type"); err != nil {
		return apis.Resolution{}, err
	}

	for _, reg := range r.regs {
		p, ok, err := reg.Lookup(f)
		if err != nil {
			return apis.Resolution{}, err
		}
		if ok {
			return apis.Resolution{Provider: p}, nil
		}
	}

	// Composite types nobody claimed are blueprinted recursively.
	if uref.IsComposite(f.Type) {
		return apis.Resolution{Recurse: true}, nil
	}
	return apis.Resolution{Provider: r.def, Default: true}, nil
}
