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

package provider_test

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/blueprint/check"
	"dirpx.dev/blueprint/config"
	"dirpx.dev/blueprint/provider"
)

type Celsius float64
type Code string
type ID [16]byte

func TestZero(t *testing.T) {
	p := provider.Zero()
	for _, v := range []any{0, "", false, 1.5, Celsius(3), []int{1}, time.Now()} {
		got, err := p.Provide(reflect.TypeOf(v))
		require.NoError(t, err)
		assert.Equal(t, reflect.Zero(reflect.TypeOf(v)).Interface(), got)
	}

	_, err := p.Provide(nil)
	assert.ErrorIs(t, err, check.ErrNullArgument)
}

func TestConstAndFunc(t *testing.T) {
	got, err := provider.Const("fixed@example.com").Provide(reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "fixed@example.com", got)

	n := 0
	p := provider.Func(func() int { n++; return n * 10 })
	first, _ := p.Provide(reflect.TypeOf(0))
	second, _ := p.Provide(reflect.TypeOf(0))
	assert.Equal(t, 10, first)
	assert.Equal(t, 20, second)
}

func TestSequence(t *testing.T) {
	p := provider.Sequence(5)

	got, err := p.Provide(reflect.TypeOf(int32(0)))
	require.NoError(t, err)
	assert.Equal(t, int32(5), got)

	got, err = p.Provide(reflect.TypeOf(uint8(0)))
	require.NoError(t, err)
	assert.Equal(t, uint8(6), got)

	got, err = p.Provide(reflect.TypeOf(Code("")))
	require.NoError(t, err)
	assert.Equal(t, Code("7"), got)

	got, err = p.Provide(reflect.TypeOf(Celsius(0)))
	require.NoError(t, err)
	assert.Equal(t, Celsius(8), got)

	_, err = p.Provide(reflect.TypeOf(true))
	assert.ErrorIs(t, err, provider.ErrUnsupportedType)
}

func TestSequence_Concurrent(t *testing.T) {
	p := provider.Sequence(0)
	const workers, iters = 8, 500

	var (
		mu   sync.Mutex
		seen = make(map[int64]bool, workers*iters)
		wg   sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				v, err := p.Provide(reflect.TypeOf(int64(0)))
				if err != nil {
					t.Errorf("Provide: %v", err)
					return
				}
				mu.Lock()
				seen[v.(int64)] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*iters)
}

func TestRandom_Kinds(t *testing.T) {
	r := provider.NewRandom(config.NewConfig(config.WithSeed(7), config.WithStringLength(9)))

	samples := []any{
		true, int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0), uintptr(0),
		float32(0), float64(0), complex64(0), complex128(0),
		"", Celsius(0), Code(""), time.Time{},
	}
	for _, s := range samples {
		typ := reflect.TypeOf(s)
		t.Run(typ.String(), func(t *testing.T) {
			got, err := r.Provide(typ)
			require.NoError(t, err)
			assert.Equal(t, typ, reflect.TypeOf(got))

			rv := reflect.ValueOf(got)
			switch rv.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				assert.GreaterOrEqual(t, rv.Int(), int64(0))
			case reflect.String:
				assert.Len(t, rv.String(), 9)
			}
		})
	}

	got, err := r.Provide(reflect.TypeOf(time.Time{}))
	require.NoError(t, err)
	ts := got.(time.Time)
	assert.False(t, ts.Before(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, ts.Before(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestRandom_Unsupported(t *testing.T) {
	r := provider.NewRandom(config.DefaultConfig())
	for _, v := range []any{[]int{}, struct{}{}, map[string]int{}, func() {}} {
		_, err := r.Provide(reflect.TypeOf(v))
		assert.ErrorIs(t, err, provider.ErrUnsupportedType, "%T", v)
	}
	_, err := r.Provide(nil)
	assert.ErrorIs(t, err, check.ErrNullArgument)
}

func TestRandom_Deterministic(t *testing.T) {
	a := provider.NewRandom(config.NewConfig(config.WithSeed(42)))
	b := provider.NewRandom(config.NewConfig(config.WithSeed(42)))
	c := provider.NewRandom(config.NewConfig(config.WithSeed(43)))

	var sa, sb, sc []any
	for i := 0; i < 16; i++ {
		va, _ := a.Provide(reflect.TypeOf(int64(0)))
		vb, _ := b.Provide(reflect.TypeOf(int64(0)))
		vc, _ := c.Provide(reflect.TypeOf(int64(0)))
		sa, sb, sc = append(sa, va), append(sb, vb), append(sc, vc)
	}
	assert.Equal(t, sa, sb)
	assert.NotEqual(t, sa, sc)
	assert.Equal(t, a.Alnum(20), b.Alnum(20))
}

func TestUUID(t *testing.T) {
	src := provider.NewRandom(config.NewConfig(config.WithSeed(3)))
	p := provider.UUID(src)

	got, err := p.Provide(reflect.TypeOf(uuid.UUID{}))
	require.NoError(t, err)
	id := got.(uuid.UUID)
	assert.Equal(t, uuid.Version(4), id.Version())

	got, err = p.Provide(reflect.TypeOf(""))
	require.NoError(t, err)
	_, err = uuid.Parse(got.(string))
	assert.NoError(t, err)

	got, err = p.Provide(reflect.TypeOf(ID{}))
	require.NoError(t, err)
	assert.IsType(t, ID{}, got)

	_, err = p.Provide(reflect.TypeOf(0))
	assert.ErrorIs(t, err, provider.ErrUnsupportedType)

	// Same seed, same UUID.
	again := provider.UUID(provider.NewRandom(config.NewConfig(config.WithSeed(3))))
	v1, _ := again.Provide(reflect.TypeOf(uuid.UUID{}))
	assert.Equal(t, id, v1)

	crypto, err := provider.UUID(nil).Provide(reflect.TypeOf(uuid.UUID{}))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, crypto)
}

func TestTime(t *testing.T) {
	ts := time.Date(2013, 5, 1, 12, 0, 0, 0, time.UTC)
	p := provider.Time(ts)

	got, err := p.Provide(reflect.TypeOf(time.Time{}))
	require.NoError(t, err)
	assert.Equal(t, ts, got)

	_, err = p.Provide(reflect.TypeOf(""))
	assert.ErrorIs(t, err, provider.ErrUnsupportedType)
}
