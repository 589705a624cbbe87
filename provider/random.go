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

package provider

import (
	"math"
	"math/rand/v2"
	"reflect"
	"sync"
	"time"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

// alphabet is the character set of random strings.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// timeBase and timeSpan bound random time.Time values to 2000-01-01 .. 2030-01-01 UTC.
var (
	timeBase = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	timeSpan = time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC).Sub(timeBase)
)

// Random is the seeded pseudo-random default provider. It produces
// terminal kinds and time.Time; equal seeds produce equal sequences.
// Random is safe for concurrent use, but concurrent callers interleave
// the sequence.
type Random struct {
	mu     sync.Mutex
	rng    *rand.Rand
	strLen int
}

// Ensure Random implements apis.ValueProvider.
var _ apis.ValueProvider = (*Random)(nil)

// NewRandom creates a Random provider from cfg.Seed and cfg.StringLength.
func NewRandom(cfg apis.Config) *Random {
	return &Random{
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		strLen: cfg.StringLength,
	}
}

// Provide returns a random value of type t.
func (r *Random) Provide(t reflect.Type) (any, error) {
	if err := check.NotNil(t, "t"); err != nil {
		return nil, err
	}
	if t == reflect.TypeFor[time.Time]() {
		return r.Time(), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var v reflect.Value
	switch t.Kind() {
	case reflect.Bool:
		v = reflect.ValueOf(r.rng.IntN(2) == 1)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Non-negative and within the kind's range.
		v = reflect.ValueOf(r.rng.Int64N(int64(1)<<(t.Bits()-1) - 1))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if t.Bits() == 64 {
			v = reflect.ValueOf(r.rng.Uint64())
		} else {
			v = reflect.ValueOf(r.rng.Uint64N(uint64(1) << t.Bits()))
		}
	case reflect.Float32:
		v = reflect.ValueOf(r.rng.Float32() * math.MaxInt16)
	case reflect.Float64:
		v = reflect.ValueOf(r.rng.Float64() * math.MaxInt32)
	case reflect.Complex64, reflect.Complex128:
		v = reflect.ValueOf(complex(r.rng.Float64()*math.MaxInt16, r.rng.Float64()*math.MaxInt16))
	case reflect.String:
		v = reflect.ValueOf(r.stringLocked(r.strLen))
	default:
		return nil, unsupported("random", t)
	}
	return v.Convert(t).Interface(), nil
}

// Alnum returns a random alphanumeric string of length n.
func (r *Random) Alnum(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stringLocked(n)
}

// Time returns a random UTC instant with second precision.
func (r *Random) Time() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	offset := time.Duration(r.rng.Int64N(int64(timeSpan/time.Second))) * time.Second
	return timeBase.Add(offset)
}

// Read fills p with pseudo-random bytes; it never fails. It lets the
// sequence feed readers such as uuid.NewRandomFromReader.
func (r *Random) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range p {
		p[i] = byte(r.rng.Uint32())
	}
	return len(p), nil
}

func (r *Random) stringLocked(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.rng.IntN(len(alphabet))]
	}
	return string(b)
}
