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

// Config carries read-only generation knobs for a blueprint run.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Values selects the default provider used for terminal fields that
	// no binding claims.
	Values ValueMode

	// Seed seeds the random default provider. Equal seeds yield equal
	// blueprints for equal registries.
	Seed uint64

	// CollectionSize is the number of elements generated for slices and maps.
	// Arrays always use their declared length.
	CollectionSize int

	// StringLength is the length of generated random strings.
	StringLength int

	// CyclePolicy decides what the engine places where a type re-enters
	// itself on the current construction path.
	CyclePolicy CyclePolicy

	// MaxUnwrap limits pointer unwrapping when classifying a type.
	// Acts as a safety guard against pathological **T chains.
	MaxUnwrap int
}
