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

// Resolver decides how a single field is filled.
// Typical chain: registry binding -> recursive blueprint -> default provider.
type Resolver interface {
	// Resolve returns the resolution for f.
	Resolve(f Field) (Resolution, error)
}

// Resolution is the outcome of resolving one field.
// Exactly one of Provider and Recurse is set.
type Resolution struct {
	// Provider supplies the value directly.
	Provider ValueProvider
	// Recurse asks the engine to blueprint f.Type itself.
	Recurse bool
	// Default reports that Provider is the default provider because
	// no binding claimed the field.
	Default bool
}
