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

// Registry is the ordered list of (strategy, provider) bindings consulted
// for every field. The first binding whose strategy accepts a field wins.
type Registry interface {
	// Register appends a binding. Registration order is resolution order.
	Register(s MatchingStrategy, p ValueProvider) error
	// Lookup returns the provider of the first binding accepting f.
	Lookup(f Field) (p ValueProvider, ok bool, err error)
	// Bindings returns a snapshot in registration order.
	Bindings() []Binding
	// Count returns the number of registered bindings.
	Count() int
	// Reset clears all bindings. It fails on a sealed registry.
	Reset() error
	// Seal forbids further registration. Sealing is idempotent.
	Seal()
	// Sealed reports whether Seal has been called.
	Sealed() bool
}

// Binding is a single (strategy, provider) association in a Registry snapshot.
type Binding struct {
	// Strategy selects the fields this binding serves.
	Strategy MatchingStrategy
	// Provider supplies values for the selected fields.
	Provider ValueProvider
}
