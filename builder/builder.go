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

package builder

import (
	"time"

	"github.com/google/uuid"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/provider"
	"dirpx.dev/blueprint/registry"
	"dirpx.dev/blueprint/resolver"
	"dirpx.dev/blueprint/strategy"
)

// stockSeedSalt separates the stock providers' sequence from the default
// provider's sequence while keeping both derived from Config.Seed.
const stockSeedSalt = 0x5bd1e995

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new, unsealed apis.Registry. If a
// previous registry is provided, its bindings are copied into the new
// registry in their original order.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New()
	if prev != nil {
		for _, e := range prev.Bindings() {
			_ = nreg.Register(e.Strategy, e.Provider)
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.Resolver over reg. The
// default provider follows cfg.Values; time.Time and uuid.UUID get stock
// bindings that are consulted after reg, so caller bindings win.
func (b *builder) BuildResolver(cfg apis.Config, reg apis.Registry) apis.Resolver {
	var def apis.ValueProvider
	stock := registry.New()

	switch cfg.Values {
	case apis.ValuesZero:
		def = provider.Zero()
		_ = stock.Register(strategy.TypeOf[time.Time](), def)
		_ = stock.Register(strategy.TypeOf[uuid.UUID](), def)
	default:
		def = provider.NewRandom(cfg)
		salted := cfg
		salted.Seed ^= stockSeedSalt
		rnd := provider.NewRandom(salted)
		_ = stock.Register(strategy.TypeOf[time.Time](), rnd)
		_ = stock.Register(strategy.TypeOf[uuid.UUID](), provider.UUID(rnd))
	}
	stock.Seal()

	res, err := resolver.New(reg, def, resolver.WithFallback(stock))
	if err != nil {
		// Only reachable with a nil reg, which is a caller bug.
		panic(err)
	}
	return res
}
