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

// Package identity assigns process-local identities to Go types.
//
// Every distinct reflect.Type seen by Of receives the next value of a
// counter, starting at 1. The same type always maps to the same ID for the
// lifetime of the process; distinct types never share one. IDs depend on the
// order in which types are first seen and therefore MUST NOT be persisted or
// compared across processes.
package identity

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"fortio.org/safecast"
)

// ID is an opaque, totally ordered type identity.
type ID uint64

// None is the zero ID. It identifies no type.
const None ID = 0

// IsValid reports whether id was assigned by Of.
func (id ID) IsValid() bool { return id != None }

// String renders id in decimal.
func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Hex renders id in hexadecimal with a "0x" prefix.
func (id ID) Hex() string { return "0x" + strconv.FormatUint(uint64(id), 16) }

// Format renders id in base 16 when base is 16 and in decimal otherwise.
func (id ID) Format(base int) string {
	if base == 16 {
		return id.Hex()
	}
	return id.String()
}

// Compare returns -1, 0 or +1 depending on whether id orders before,
// equal to, or after other.
func (id ID) Compare(other ID) int {
	switch {
	case id < other:
		return -1
	case id > other:
		return 1
	default:
		return 0
	}
}

// table is the process-wide interner.
var table = newInterner()

// Of returns the identity of t, assigning one on first use.
// Of(nil) returns None.
func Of(t reflect.Type) ID {
	return table.of(t)
}

// TypeOf returns the type that was assigned id.
func TypeOf(id ID) (reflect.Type, bool) {
	return table.lookup(id)
}

// Count returns the number of types that have been assigned an identity.
func Count() int {
	return table.count()
}

// interner maps types to IDs. Reads go through a sync.Map; assignment is
// serialized by mu so that the counter and the reverse table stay in step.
type interner struct {
	// index maps reflect.Type to ID.
	index sync.Map
	// mu guards types.
	mu sync.RWMutex
	// types holds the reverse mapping; slot 0 is reserved for None.
	types []reflect.Type
}

func newInterner() *interner {
	return &interner{types: make([]reflect.Type, 1, 64)}
}

func (in *interner) of(t reflect.Type) ID {
	if t == nil {
		return None
	}
	if id, ok := in.index.Load(t); ok {
		return id.(ID)
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	// Re-check under lock in case another goroutine assigned meanwhile.
	if id, ok := in.index.Load(t); ok {
		return id.(ID)
	}

	n, err := safecast.Conv[uint64](len(in.types))
	if err != nil {
		panic(fmt.Errorf("identity: table size overflow: %w", err))
	}
	id := ID(n)
	in.types = append(in.types, t)
	in.index.Store(t, id)
	return id
}

func (in *interner) lookup(id ID) (reflect.Type, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if id == None || id >= ID(len(in.types)) {
		return nil, false
	}
	return in.types[id], true
}

func (in *interner) count() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.types) - 1
}
