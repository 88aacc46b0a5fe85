//go:build !typedef_noname

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

package typedef

import (
	"reflect"

	"dirpx.dev/typedef/identity"
)

// NameResolution reports whether human-readable type names are compiled in.
// Build with -tags typedef_noname to render every name as its identity.
const NameResolution = true

// resolveName asks the global resolver for a name and falls back to the
// identity when no strategy produced one.
func resolveName(t reflect.Type, id identity.ID) string {
	s := st.Load()
	if name := s.res.ResolveType(t, s.cfg); name != "" {
		return name
	}
	return fallbackName(id, s.cfg)
}
