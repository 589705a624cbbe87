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

// Package blueprint synthesizes fully populated instances of Go types for
// tests: a "blueprint" of T is a T whose fields, elements and nested
// structs are all filled in.
//
// # Design
//
// A Blueprinter is an immutable snapshot of four things:
//
//   - Config: generation knobs (zero or seeded random values, collection
//     size, string length, cycle policy, pointer unwrap limit). See the
//     config package for defaults and YAML loading.
//
//   - Registry: an ordered list of (MatchingStrategy, ValueProvider)
//     bindings. A field is served by the first binding whose strategy
//     accepts it, by name, by type, or both. Registration order is part
//     of the contract: overlapping strategies rely on first-match-wins.
//
//   - Resolver: decides how each position is filled, in priority order:
//     1. a caller binding from the Registry;
//     2. a stock binding (time.Time, uuid.UUID) installed by the Builder;
//     3. recursive blueprinting for structs, pointers, slices, arrays
//     and maps;
//     4. the default provider.
//
//   - Builder: constructs Registry and Resolver for a Config and migrates
//     bindings from a previous Registry.
//
// The engine walks the type depth-first. Each struct type is entered on a
// session path; re-entering a type already on the path is a cycle, handled
// by Config.CyclePolicy ("nil" leaves the reference unset, "shallow"
// places an unpopulated instance, "fail" returns engine.ErrCycle).
//
// The registry is sealed before the first traversal, so it is read-only
// while values are built. To add bindings later, derive a new snapshot:
//
//	bp, _ := blueprint.New(
//		blueprint.WithBinding(strategy.MustCaseInsensitive("email"), provider.Const("neo@example.org")),
//	)
//	bp2, _ := bp.With(strategy.TypeOf[time.Time](), provider.Time(fixed))
//	user, err := blueprint.Of[User](bp2)
//
// Def and Random are shortcuts for one-off zero-valued and seeded random
// blueprints.
//
// # Errors
//
// A nil type yields check.ErrNullArgument unwrapped. Every other failure is
// an *engine.Error matching engine.ErrInstantiation, engine.ErrAccess or
// engine.ErrCycle, and carrying the session context, e.g.
//
//	blueprint(engine): field access failed: app.User (field Age) at [app.User {resolve field Age}]: ...
//
// # Concurrency
//
// A Blueprinter may be shared between goroutines. Each call owns its own
// session; the random provider serializes access to its generator, so the
// sequence is deterministic per seed only for sequential use.
package blueprint
