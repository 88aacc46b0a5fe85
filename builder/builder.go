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

package builder

import (
	"dirpx.dev/typedef/apis"
	"dirpx.dev/typedef/registry"
	"dirpx.dev/typedef/resolver"
	"dirpx.dev/typedef/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds a new apis.Registry. If prev is non-nil, its entries
// are copied into the new registry.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New()
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e.Type, e.Name)
		}
	}
	return nreg
}

// BuildResolver builds the default resolution chain over reg:
// Namer, then Registry, then Reflect.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry) apis.Resolver {
	return resolver.New(
		strategy.NewNamerStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewReflectStrategy(),
	)
}
