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

import "reflect"

// ValueProvider is a source of values for a field or type.
// The returned value must be assignable or convertible to t.
type ValueProvider interface {
	Provide(t reflect.Type) (any, error)
}

// ProviderFunc adapts a function to ValueProvider.
type ProviderFunc func(t reflect.Type) (any, error)

// Provide calls f(t).
func (f ProviderFunc) Provide(t reflect.Type) (any, error) {
	return f(t)
}

// Initializer is called on a freshly allocated instance before the engine
// fills its fields. Every exported field is overwritten afterwards, so only
// unexported state set here survives.
type Initializer interface {
	InitBlueprint() error
}
