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

package strategy

import (
	"reflect"

	"dirpx.dev/typedef/apis"
)

// NewNamerStrategy creates an apis.Strategy that uses apis.Namer.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

// namerStrategy lets a type name itself: if t implements apis.Namer, the
// name is TypeName() called on a zero value of t.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

var namerType = reflect.TypeFor[apis.Namer]()

// TryResolveType calls TypeName on a zero value of t. Pointer types get a
// pointer to a fresh zero value so value-receiver methods do not see nil.
// Interface types are never handled: they have no zero value to ask.
func (*namerStrategy) TryResolveType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil || t.Kind() == reflect.Interface || !t.Implements(namerType) {
		return "", false
	}

	var v reflect.Value
	if t.Kind() == reflect.Ptr {
		v = reflect.New(t.Elem())
	} else {
		v = reflect.Zero(t)
	}

	name := v.Interface().(apis.Namer).TypeName()
	if name == "" {
		return "", false
	}
	return name, true
}
