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

// Config carries read-only resolution knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Style selects how reflect-derived names spell named types:
	// "pkg.Type" (StyleShort) or "import/path.Type" (StyleQualified).
	Style NameStyle

	// MaxDepth limits how many nested composite levels (ptr/slice/array/
	// chan/map/func) are rendered. Acts as a safety guard against
	// pathological nesting; <= 0 means the default.
	MaxDepth int

	// FallbackBase is the base (10 or 16) used to render a type identity
	// when no human-readable name is available.
	FallbackBase int
}
