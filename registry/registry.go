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

package registry

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"dirpx.dev/typedef/apis"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("typedef(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty or blank name is provided.
	ErrEmptyName = errors.New("typedef(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different name.
	ErrConflictingRegistration = errors.New("typedef(registry): conflicting type registration")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
// Keys are exact types: *T, []T and T are registered independently.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to registered name.
	m sync.Map // map[reflect.Type]string
	// count tracks the number of registered entries.
	count int
}

// Register associates t with name. Names are trimmed and NFC-normalized, so
// canonically equivalent spellings count as the same name.
// It is idempotent for the same (type, name) pair.
func (r *registry) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	name = canonical(name)
	if name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(t); ok {
		if old.(string) == name {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(t); ok {
		if old.(string) == name {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(t, name)
	r.count++
	return nil
}

// Lookup returns the name registered for t.
func (r *registry) Lookup(t reflect.Type) (name string, ok bool) {
	if t == nil {
		return "", false
	}
	if v, ok := r.m.Load(t); ok {
		return v.(string), true
	}
	return "", false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type: key.(reflect.Type),
			Name: value.(string),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}

func canonical(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
