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

// Namer lets a type choose its own display name.
//
// Namer is a type-level contract: TypeName describes the type, not a
// particular instance. Resolution calls it on a zero value (for pointer
// types, on a pointer to a fresh zero value), so implementations MUST NOT
// depend on field values and MUST NOT perform I/O.
//
//	type Point struct{ X, Y int }
//
//	func (Point) TypeName() string { return "geo.Point" }
//
// An empty return value is treated as "no opinion" and resolution continues
// with the next strategy.
type Namer interface {
	// TypeName returns the display name for the implementing type.
	TypeName() string
}
