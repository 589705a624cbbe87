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

package registry

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/blueprint/apis"
	"dirpx.dev/blueprint/check"
)

var (
	// ErrSealed is returned when mutating a registry after Seal.
	ErrSealed = errors.New("blueprint(registry): registry is sealed")
)

// New constructs an empty, unsealed Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is an ordered Registry guarded by a RWMutex.
// Lookups take the read lock only, so concurrent traversals sharing one
// registry never contend with each other.
type registry struct {
	// mu guards bindings.
	mu sync.RWMutex
	// bindings in registration order.
	bindings []apis.Binding
	// sealed forbids mutation once set.
	sealed atomic.Bool
}

// Register appends a binding. Strategies equal to an earlier one are
// accepted; the earlier binding keeps winning.
func (r *registry) Register(s apis.MatchingStrategy, p apis.ValueProvider) error {
	// Validate inputs early.
	if err := check.NotNil(s, "strategy"); err != nil {
		return err
	}
	if err := check.NotNil(p, "provider"); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case Seal ran meanwhile.
	if r.sealed.Load() {
		return ErrSealed
	}
	r.bindings = append(r.bindings, apis.Binding{Strategy: s, Provider: p})
	return nil
}

// Lookup returns the provider of the first binding accepting f.
// A strategy error aborts the lookup and is returned as is.
func (r *registry) Lookup(f apis.Field) (apis.ValueProvider, bool, error) {
	if err := check.NotNil(f.Type, "field.Type"); err != nil {
		return nil, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bindings {
		ok, err := apis.MatchField(b.Strategy, f)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return b.Provider, true, nil
		}
	}
	return nil, false, nil
}

// Bindings returns a snapshot in registration order.
func (r *registry) Bindings() []apis.Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]apis.Binding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// Count returns the number of registered bindings.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// Reset clears all bindings.
func (r *registry) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed.Load() {
		return ErrSealed
	}
	r.bindings = nil
	return nil
}

// Seal forbids further mutation.
func (r *registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed.Store(true)
}

// Sealed reports whether Seal has been called.
func (r *registry) Sealed() bool {
	return r.sealed.Load()
}
