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

package session_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/blueprint/check"
	"dirpx.dev/blueprint/session"
)

type A struct{}
type B struct{}

var (
	typeA = reflect.TypeOf(A{})
	typeB = reflect.TypeOf(B{})
)

func TestContext_Empty(t *testing.T) {
	s := session.New()
	assert.Equal(t, "", s.Context())

	require.NoError(t, s.SetLastAction("resolve field Email"))
	assert.Equal(t, " {resolve field Email}", s.Context())
}

func TestContext_Path(t *testing.T) {
	s := session.New()

	cycle, err := s.Push(typeA)
	require.NoError(t, err)
	assert.False(t, cycle)
	cycle, err = s.Push(typeB)
	require.NoError(t, err)
	assert.False(t, cycle)

	assert.Equal(t, "session_test.A->session_test.B", s.Context())

	require.NoError(t, s.SetLastAction("assign"))
	assert.Equal(t, "session_test.A->session_test.B {assign}", s.Context())

	s.Pop()
	assert.Equal(t, "session_test.A {assign}", s.Context())
}

func TestPush_DetectsCycleOnReentry(t *testing.T) {
	s := session.New()

	cycle, err := s.Push(typeA)
	require.NoError(t, err)
	assert.False(t, cycle)

	cycle, err = s.Push(typeB)
	require.NoError(t, err)
	assert.False(t, cycle)

	// A is anywhere on the path: cycle, but still pushed.
	cycle, err = s.Push(typeA)
	require.NoError(t, err)
	assert.True(t, cycle)
	assert.Equal(t, 3, s.Depth())
	assert.Equal(t, "session_test.A->session_test.B->session_test.A", s.Context())
}

func TestPush_ReenterAfterPopIsNotACycle(t *testing.T) {
	s := session.New()

	_, err := s.Push(typeA)
	require.NoError(t, err)
	s.Pop()

	cycle, err := s.Push(typeA)
	require.NoError(t, err)
	assert.False(t, cycle)
}

func TestPush_NilDoesNotMutate(t *testing.T) {
	s := session.New()
	_, err := s.Push(typeA)
	require.NoError(t, err)

	cycle, err := s.Push(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrNullArgument)
	assert.False(t, cycle)

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, []reflect.Type{typeA}, s.BlueprintTypes())
}

func TestPop_CountsCompletions(t *testing.T) {
	s := session.New()
	for _, tt := range []reflect.Type{typeA, typeB, typeA} {
		_, err := s.Push(tt)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, s.BlueprintCount())

	s.Pop()
	s.Pop()
	s.Pop()
	assert.Equal(t, 3, s.BlueprintCount())
	assert.Equal(t, 0, s.Depth())
}

func TestPop_EmptyPanics(t *testing.T) {
	s := session.New()
	assert.PanicsWithError(t, "check: illegal state: session: pop on empty stack", func() {
		s.Pop()
	})
}

func TestBlueprintTypes_AccumulatesAndIsACopy(t *testing.T) {
	s := session.New()
	_, _ = s.Push(typeA)
	_, _ = s.Push(typeB)
	s.Pop()
	s.Pop()
	_, _ = s.Push(typeA)

	got := s.BlueprintTypes()
	assert.Equal(t, []reflect.Type{typeA, typeB}, got)
	assert.True(t, s.Seen(typeB))
	assert.False(t, s.Seen(reflect.TypeOf(0)))

	got[0] = nil
	assert.Equal(t, typeA, s.BlueprintTypes()[0])
}

func TestSetLastAction_Empty(t *testing.T) {
	s := session.New()
	require.NoError(t, s.SetLastAction("first"))

	err := s.SetLastAction("")
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrEmptyArgument)
	assert.Equal(t, " {first}", s.Context())
}

func TestRestoreLastAction(t *testing.T) {
	s := session.New()
	assert.Equal(t, "", s.LastAction())

	prev := s.LastAction()
	require.NoError(t, s.SetLastAction("resolve field M"))
	assert.Equal(t, "resolve field M", s.LastAction())

	s.RestoreLastAction(prev)
	assert.Equal(t, "", s.LastAction())
	assert.Equal(t, "", s.Context())
}
