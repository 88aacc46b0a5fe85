//go:build typedef_noname

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
const NameResolution = false

// resolveName renders every display name from the identity. Same type gives
// the same string; distinct types give distinct strings.
func resolveName(_ reflect.Type, id identity.ID) string {
	return fallbackName(id, Config())
}
