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

package config_test

import (
	"testing"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.Values != config.DefaultValues {
		t.Fatalf("Values = %v, want %v", got.Values, config.DefaultValues)
	}
	if got.Seed != config.DefaultSeed {
		t.Fatalf("Seed = %d, want %d", got.Seed, config.DefaultSeed)
	}
	if got.CollectionSize != config.DefaultCollectionSize {
		t.Fatalf("CollectionSize = %d, want %d", got.CollectionSize, config.DefaultCollectionSize)
	}
	if got.StringLength != config.DefaultStringLength {
		t.Fatalf("StringLength = %d, want %d", got.StringLength, config.DefaultStringLength)
	}
	if got.CyclePolicy != config.DefaultCyclePolicy {
		t.Fatalf("CyclePolicy = %v, want %v", got.CyclePolicy, config.DefaultCyclePolicy)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithValuesAndSeed(t *testing.T) {
	c := config.NewConfig(config.WithValues(apis.ValuesZero), config.WithSeed(99))
	if c.Values != apis.ValuesZero {
		t.Fatalf("Values = %v, want zero", c.Values)
	}
	if c.Seed != 99 {
		t.Fatalf("Seed = %d, want 99", c.Seed)
	}
}

func TestWithCyclePolicy(t *testing.T) {
	c := config.NewConfig(config.WithCyclePolicy(apis.CycleFail))
	if c.CyclePolicy != apis.CycleFail {
		t.Fatalf("CyclePolicy = %v, want fail", c.CyclePolicy)
	}
}

func TestSizes_Negative_ResetToDefault(t *testing.T) {
	c := config.NewConfig(
		config.WithMaxUnwrap(-1),
		config.WithCollectionSize(-3),
		config.WithStringLength(-7),
	)
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if c.CollectionSize != config.DefaultCollectionSize {
		t.Fatalf("CollectionSize = %d, want default %d", c.CollectionSize, config.DefaultCollectionSize)
	}
	if c.StringLength != config.DefaultStringLength {
		t.Fatalf("StringLength = %d, want default %d", c.StringLength, config.DefaultStringLength)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithCollectionSize(1),
		config.WithCollectionSize(4),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithCyclePolicy(apis.CycleFail),
		config.WithCyclePolicy(apis.CycleShallow),
	)

	if c.CollectionSize != 4 {
		t.Errorf("CollectionSize = %d, want 4 (last option wins)", c.CollectionSize)
	}
	if c.MaxUnwrap != 5 {
		t.Errorf("MaxUnwrap = %d, want 5 (last option wins)", c.MaxUnwrap)
	}
	if c.CyclePolicy != apis.CycleShallow {
		t.Errorf("CyclePolicy = %v, want shallow (last option wins)", c.CyclePolicy)
	}
}

func TestNewConfig_Guardrails_ZeroSizesAllowed(t *testing.T) {
	// Only negative values are reset. Zero yields empty collections and strings.
	c := config.NewConfig(config.WithCollectionSize(0), config.WithStringLength(0))
	if c.CollectionSize != 0 || c.StringLength != 0 {
		t.Fatalf("got CollectionSize=%d StringLength=%d, want 0/0", c.CollectionSize, c.StringLength)
	}
}
