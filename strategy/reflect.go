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
	"sync"

	"dirpx.dev/typedef/apis"
	uref "dirpx.dev/typedef/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that derives names from the
// type descriptor via utils/reflect.TypeName, with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It handles every non-nil type:
// when rendering gives up on pathological nesting it returns t.String().
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect rendering.
type cacheKey struct {
	t        reflect.Type
	style    apis.NameStyle
	maxDepth int
}

// typeNameCache caches rendered type names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TryResolveType renders the display name for t.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg), true
}

// byType renders the display name for t with memoization.
func byType(t reflect.Type, cfg apis.Config) string {
	key := cacheKey{t: t, style: cfg.Style, maxDepth: cfg.MaxDepth}
	if v, ok := typeNameCache.Load(key); ok {
		return v.(string)
	}

	name, err := uref.TypeName(t, cfg)
	if err != nil {
		name = t.String()
	}

	typeNameCache.Store(key, name)
	return name
}
