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

package config

import (
	"dirpx.dev/blueprint/apis"
)

const (
	// DefaultValues represents the default for Values.
	DefaultValues = apis.ValuesRandom
	// DefaultSeed represents the default for Seed.
	DefaultSeed uint64 = 1
	// DefaultCollectionSize represents the default for CollectionSize.
	// Two elements are enough to tell a populated collection from a singleton.
	DefaultCollectionSize = 2
	// DefaultStringLength represents the default for StringLength.
	DefaultStringLength = 12
	// DefaultCyclePolicy represents the default for CyclePolicy.
	DefaultCyclePolicy = apis.CycleNil
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure sizes are valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.CollectionSize < 0 {
		cfg.CollectionSize = DefaultCollectionSize
	}
	if cfg.StringLength < 0 {
		cfg.StringLength = DefaultStringLength
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Values:         DefaultValues,
		Seed:           DefaultSeed,
		CollectionSize: DefaultCollectionSize,
		StringLength:   DefaultStringLength,
		CyclePolicy:    DefaultCyclePolicy,
		MaxUnwrap:      DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithValues sets the Values option.
func WithValues(m apis.ValueMode) Option {
	return func(c *apis.Config) {
		c.Values = m
	}
}

// WithSeed sets the Seed option.
func WithSeed(seed uint64) Option {
	return func(c *apis.Config) {
		c.Seed = seed
	}
}

// WithCollectionSize sets the CollectionSize option.
// A negative value resets to the default.
func WithCollectionSize(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			c.CollectionSize = DefaultCollectionSize
			return
		}
		c.CollectionSize = n
	}
}

// WithStringLength sets the StringLength option.
// A negative value resets to the default.
func WithStringLength(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			c.StringLength = DefaultStringLength
			return
		}
		c.StringLength = n
	}
}

// WithCyclePolicy sets the CyclePolicy option.
func WithCyclePolicy(p apis.CyclePolicy) Option {
	return func(c *apis.Config) {
		c.CyclePolicy = p
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}
