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

// Package session tracks the state of one top-level blueprint call.
//
// A Session records the path of types currently under construction (used
// for cycle detection), every type encountered, the number of finished
// constructions and a free-form description of the last action, which is
// appended to Context for diagnostics.
//
// A Session belongs to exactly one synchronous call tree and is not safe
// for concurrent use.
package session

import (
	"reflect"
	"strings"

	"dirpx.dev/blueprint/check"
	uref "dirpx.dev/blueprint/utils/reflect"
)

// separator joins the type names of the construction path.
const separator = "->"

// Session holds information acquired while creating a blueprint.
type Session struct {
	// stack is the construction path, innermost last.
	stack []reflect.Type
	// seen holds every type pushed during the session's lifetime.
	seen map[reflect.Type]struct{}
	// order keeps seen types in first-push order for stable snapshots.
	order []reflect.Type
	// count is incremented on every Pop.
	count int
	// lastAction is rendered in braces after the path.
	lastAction string
}

// New returns an empty Session.
func New() *Session {
	return &Session{seen: make(map[reflect.Type]struct{})}
}

// Push enters t. It reports true if t is already on the construction path.
// t is pushed and recorded regardless of the result; the caller decides how
// to react to a cycle and must Pop in either case.
func (s *Session) Push(t reflect.Type) (bool, error) {
	if err := check.NotNil(t, "t"); err != nil {
		return false, err
	}

	cycle := s.onStack(t)

	s.stack = append(s.stack, t)
	if _, ok := s.seen[t]; !ok {
		s.seen[t] = struct{}{}
		s.order = append(s.order, t)
	}
	return cycle, nil
}

// Pop leaves the innermost type and counts one finished construction.
// Popping an empty session is a push/pop mismatch in the caller and panics.
func (s *Session) Pop() {
	if err := check.StateIsTrue(len(s.stack) > 0, "session: pop on empty stack"); err != nil {
		panic(err)
	}
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
	s.count++
}

// Context renders the construction path as "a.A->b.B", followed by
// " {last action}" when one was set. An empty path renders as "".
func (s *Session) Context() string {
	var b strings.Builder
	for i, t := range s.stack {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(uref.TypeName(t))
	}
	if s.lastAction != "" {
		b.WriteString(" {")
		b.WriteString(s.lastAction)
		b.WriteByte('}')
	}
	return b.String()
}

// SetLastAction describes the action in progress for Context.
func (s *Session) SetLastAction(text string) error {
	if err := check.NotEmpty(text, "lastAction"); err != nil {
		return err
	}
	s.lastAction = text
	return nil
}

// LastAction returns the action set by SetLastAction, or "".
func (s *Session) LastAction() string {
	return s.lastAction
}

// RestoreLastAction puts back a value obtained from LastAction, including
// "" for no action.
func (s *Session) RestoreLastAction(text string) {
	s.lastAction = text
}

// BlueprintCount returns the number of constructions finished so far.
func (s *Session) BlueprintCount() int {
	return s.count
}

// BlueprintTypes returns every type encountered, in first-push order.
// The returned slice is a copy.
func (s *Session) BlueprintTypes() []reflect.Type {
	out := make([]reflect.Type, len(s.order))
	copy(out, s.order)
	return out
}

// Seen reports whether t was pushed during the session.
func (s *Session) Seen(t reflect.Type) bool {
	_, ok := s.seen[t]
	return ok
}

// Depth returns the current length of the construction path.
func (s *Session) Depth() int {
	return len(s.stack)
}

// onStack reports whether t is anywhere on the construction path.
func (s *Session) onStack(t reflect.Type) bool {
	for _, x := range s.stack {
		if x == t {
			return true
		}
	}
	return false
}
