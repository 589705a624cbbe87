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
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"dirpx.dev/blueprint/apis"
)

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("blueprint(config): invalid configuration")

var validate = validator.New()

// File is the YAML shape of a blueprint configuration file.
// Omitted keys keep their defaults.
//
//	values: random
//	seed: 42
//	collection_size: 3
//	string_length: 8
//	cycle_policy: shallow
//	max_unwrap: 4
type File struct {
	Values         *apis.ValueMode   `yaml:"values"`
	Seed           *uint64           `yaml:"seed"`
	CollectionSize *int              `yaml:"collection_size" validate:"omitempty,gte=0,lte=4096"`
	StringLength   *int              `yaml:"string_length" validate:"omitempty,gte=0,lte=65536"`
	CyclePolicy    *apis.CyclePolicy `yaml:"cycle_policy"`
	MaxUnwrap      *int              `yaml:"max_unwrap" validate:"omitempty,gte=0,lte=64"`
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML data on top of DefaultConfig and validates the result.
func Parse(data []byte) (apis.Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return apis.Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return apis.Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return NewConfig(f.options()...), nil
}

// Validate checks a programmatically built Config against the same bounds
// enforced for configuration files.
func Validate(cfg apis.Config) error {
	f := File{
		CollectionSize: &cfg.CollectionSize,
		StringLength:   &cfg.StringLength,
		MaxUnwrap:      &cfg.MaxUnwrap,
	}
	if err := validate.Struct(&f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch cfg.CyclePolicy {
	case apis.CycleNil, apis.CycleShallow, apis.CycleFail:
	default:
		return fmt.Errorf("%w: cycle policy %s", ErrInvalidConfig, cfg.CyclePolicy)
	}
	switch cfg.Values {
	case apis.ValuesRandom, apis.ValuesZero:
	default:
		return fmt.Errorf("%w: value mode %s", ErrInvalidConfig, cfg.Values)
	}
	return nil
}

// options converts the set keys of f into Options.
func (f *File) options() []Option {
	var opts []Option
	if f.Values != nil {
		opts = append(opts, WithValues(*f.Values))
	}
	if f.Seed != nil {
		opts = append(opts, WithSeed(*f.Seed))
	}
	if f.CollectionSize != nil {
		opts = append(opts, WithCollectionSize(*f.CollectionSize))
	}
	if f.StringLength != nil {
		opts = append(opts, WithStringLength(*f.StringLength))
	}
	if f.CyclePolicy != nil {
		opts = append(opts, WithCyclePolicy(*f.CyclePolicy))
	}
	if f.MaxUnwrap != nil {
		opts = append(opts, WithMaxUnwrap(*f.MaxUnwrap))
	}
	return opts
}
