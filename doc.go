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

// Package typedef identifies Go types at runtime and names them.
//
// A Token pairs an opaque, comparable identity of a type with a
// human-readable display name. Generic code that holds values of a type it
// otherwise treats opaquely can use tokens to brand, compare or log that type:
//
//	func describe[T any](v T) string {
//		return fmt.Sprintf("the value of %v type is %v", typedef.Of[T](), v)
//	}
//
//	describe(15) // "the value of int type is 15"
//
// # Identity
//
// Identities come from package identity: every distinct reflect.Type gets
// the next value of a process-wide counter the first time it is seen. The
// same type always yields the same identity; distinct types never share one.
// Identities are only meaningful inside the running process. They MUST NOT
// be persisted, sent to other processes or compared across runs.
//
// Equality is decided by identity alone:
//
//	typedef.Of[int64]().Equals(typedef.Of[int64]()) // true
//	typedef.Is[int32](typedef.Of[int64]())          // false
//
// # Names
//
// A display name is resolved once, when the token is built, by the global
// Resolver. The default resolver tries, in order:
//
//  1. apis.Namer: the type names itself via TypeName().
//  2. Registry: a name registered with Register or Registry().Register.
//  3. Reflection: Go's own spelling, e.g. "int64", "[]string",
//     "typedef.Point", or "dirpx.dev/typedef.Point" with StyleQualified.
//
// When the package is built with -tags typedef_noname, names are never
// resolved. Every display name is then the identity rendered in decimal
// (or hexadecimal with FallbackBase 16). This degraded mode is still
// self-consistent within a process and NameResolution reports it.
//
// # Global state
//
// Config, Registry, Resolver and Builder live in one immutable snapshot
// published through an atomic pointer. Reads never lock. SetConfig,
// SetRegistry, SetResolver, SetBuilder and SetAll build a new snapshot under
// a mutex and swap it in, rebuilding layers that are not pinned.
// SetRegistry and SetResolver pin what they install; UnpinRegistry and
// UnpinResolver undo that.
//
// All functions in this package are safe for concurrent use.
package typedef
