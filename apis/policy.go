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

package apis

import (
	"fmt"
	"strings"
)

// CyclePolicy controls what the engine places at a position whose type is
// already under construction on the current path.
//
// # Values
//
//   - CycleNil: leave the position at its zero value. Pointers, slices
//     and maps stay nil; a value-typed struct stays zero.
//   - CycleShallow: place a fresh instance whose fields are not populated.
//   - CycleFail: abort the blueprint with engine.ErrCycle.
//
// Whatever the policy, the engine never recurses into the re-entered type,
// so construction always terminates.
type CyclePolicy int

const (
	// CycleNil leaves re-entered positions at their zero value.
	CycleNil CyclePolicy = iota
	// CycleShallow places an unpopulated instance at re-entered positions.
	CycleShallow
	// CycleFail aborts the blueprint on the first re-entry.
	CycleFail
)

// String returns a human-readable representation of the CyclePolicy value.
func (p CyclePolicy) String() string {
	switch p {
	case CycleNil:
		return "nil"
	case CycleShallow:
		return "shallow"
	case CycleFail:
		return "fail"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// ParseCyclePolicy parses s case-insensitively, ignoring surrounding space.
func ParseCyclePolicy(s string) (CyclePolicy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return CycleNil, fmt.Errorf("blueprint: empty cycle policy")
	}

	switch strings.ToLower(trimmed) {
	case "nil":
		return CycleNil, nil
	case "shallow":
		return CycleShallow, nil
	case "fail":
		return CycleFail, nil
	default:
		return CycleNil, fmt.Errorf("blueprint: unknown cycle policy %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p CyclePolicy) MarshalText() ([]byte, error) {
	switch p {
	case CycleNil, CycleShallow, CycleFail:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("blueprint: cannot marshal unknown cycle policy %d", p)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *CyclePolicy) UnmarshalText(text []byte) error {
	v, err := ParseCyclePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ValueMode selects the default provider for unclaimed terminal fields.
type ValueMode int

const (
	// ValuesRandom fills terminal fields with seeded pseudo-random values.
	ValuesRandom ValueMode = iota
	// ValuesZero fills terminal fields with Go zero values.
	ValuesZero
)

// String returns a human-readable representation of the ValueMode value.
func (m ValueMode) String() string {
	switch m {
	case ValuesRandom:
		return "random"
	case ValuesZero:
		return "zero"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseValueMode parses s case-insensitively, ignoring surrounding space.
func ParseValueMode(s string) (ValueMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ValuesRandom, fmt.Errorf("blueprint: empty value mode")
	case "random":
		return ValuesRandom, nil
	case "zero":
		return ValuesZero, nil
	default:
		return ValuesRandom, fmt.Errorf("blueprint: unknown value mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ValueMode) MarshalText() ([]byte, error) {
	switch m {
	case ValuesRandom, ValuesZero:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("blueprint: cannot marshal unknown value mode %d", m)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ValueMode) UnmarshalText(text []byte) error {
	v, err := ParseValueMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
