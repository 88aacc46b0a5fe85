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
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/typedef/apis"
	"dirpx.dev/typedef/builder"
	"dirpx.dev/typedef/config"
)

// init publishes the default snapshot.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.reg = s.bld.BuildRegistry(s.cfg, nil)
	s.res = s.bld.BuildResolver(s.cfg, s.reg)
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("typedef: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("typedef: builder returned nil resolver")
)

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global snapshot.
var st atomic.Pointer[state]

// state is the global snapshot.
// Immutable once published via st.Store; writers copy, modify and swap.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg holds explicit name overrides.
	reg apis.Registry
	// res resolves display names.
	res apis.Resolver
	// bld constructs reg and res.
	bld apis.Builder
	// preg indicates whether reg is pinned (not rebuilt).
	preg bool
	// pres indicates whether res is pinned (not rebuilt).
	pres bool
}

// rebuild rebuilds the unpinned layers of s with its own builder and config.
// It panics if the builder produces nil layers.
func (s *state) rebuild(prev apis.Registry) {
	if !s.preg {
		s.reg = s.bld.BuildRegistry(s.cfg, prev)
	}
	if !s.pres {
		s.res = s.bld.BuildResolver(s.cfg, s.reg)
	}
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
}

// update copies the current snapshot, lets fn modify the copy, and publishes it.
func update(fn func(next *state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	fn(&next)
	st.Store(&next)
}

// SetAll replaces the whole snapshot in one step.
//
// A nil cfg or bld keeps the current one. A nil reg or res is rebuilt by
// the builder and left unpinned; a non-nil one is installed and pinned.
// Tests use it to get a clean, deterministic snapshot.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	update(func(next *state) {
		prev := next.reg
		if cfg != nil {
			next.cfg = *cfg
		}
		if bld != nil {
			next.bld = bld
		}
		next.reg, next.preg = reg, reg != nil
		next.res, next.pres = res, res != nil
		next.rebuild(prev)
	})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds unpinned layers.
// Tokens constructed before the call keep their names.
func SetConfig(cfg apis.Config) {
	update(func(next *state) {
		next.cfg = cfg
		next.rebuild(next.reg)
	})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs and pins reg, rebuilding the resolver unless it is pinned.
// A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(func(next *state) {
		next.reg, next.preg = reg, true
		next.rebuild(nil)
	})
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs and pins res. A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(func(next *state) {
		next.res, next.pres = res, true
	})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder installs b and rebuilds unpinned layers with it. A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(next *state) {
		next.bld = b
		next.rebuild(next.reg)
	})
}

// IsRegistryPinned reports whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops automatic rebuilds of the global registry.
func PinRegistry() {
	update(func(next *state) { next.preg = true })
}

// UnpinRegistry lets the global registry be rebuilt again.
func UnpinRegistry() {
	update(func(next *state) { next.preg = false })
}

// IsResolverPinned reports whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops automatic rebuilds of the global resolver.
func PinResolver() {
	update(func(next *state) { next.pres = true })
}

// UnpinResolver lets the global resolver be rebuilt again.
func UnpinResolver() {
	update(func(next *state) { next.pres = false })
}
