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

	"dirpx.dev/typedef/apis"
	"dirpx.dev/typedef/identity"
)

// Token identifies a Go type and carries its display name.
//
// A Token is an immutable value: copy it freely. Two tokens are equal under
// Equals exactly when they were constructed from the same type; the display
// name is informational and never takes part in the comparison. Do not use
// == on tokens: the name is resolved at construction, so two tokens of the
// same type can carry different names if the configuration or registry
// changed in between.
//
// The zero Token identifies no type.
type Token struct {
	id   identity.ID
	name string
	typ  reflect.Type
}

// Of returns the token for the type parameter T.
//
//	tok := typedef.Of[int64]()
//	typedef.Is[int64](tok) // true
//	tok.String()           // "int64"
func Of[T any]() Token {
	return OfType(reflect.TypeFor[T]())
}

// OfType returns the token for t. A nil t yields the zero Token.
func OfType(t reflect.Type) Token {
	if t == nil {
		return Token{}
	}
	id := identity.Of(t)
	return Token{id: id, name: resolveName(t, id), typ: t}
}

// OfValue returns the token for the dynamic type of v.
// A nil interface value yields the zero Token.
func OfValue(v any) Token {
	return OfType(reflect.TypeOf(v))
}

// IDOf returns the identity of T without resolving a display name.
// It equals Of[T]().ID().
func IDOf[T any]() identity.ID {
	return identity.Of(reflect.TypeFor[T]())
}

// NameOf returns the display name of T without building a Token.
// Without name resolution (see NameResolution) it returns the fallback
// rendering of IDOf[T]().
func NameOf[T any]() string {
	t := reflect.TypeFor[T]()
	return resolveName(t, identity.Of(t))
}

// Is reports whether tok was constructed from the type U.
func Is[U any](tok Token) bool {
	return tok.id.IsValid() && tok.id == IDOf[U]()
}

// Register records name as the display name of T in the global registry.
// Tokens constructed earlier keep their names.
func Register[T any](name string) error {
	return Registry().Register(reflect.TypeFor[T](), name)
}

// ID returns the opaque identity of the token's type.
func (t Token) ID() identity.ID { return t.id }

// Name returns the display name fixed at construction.
func (t Token) Name() string { return t.name }

// Type returns the runtime type descriptor, or nil for the zero Token.
func (t Token) Type() reflect.Type { return t.typ }

// IsZero reports whether t is the zero Token.
func (t Token) IsZero() bool { return !t.id.IsValid() }

// Equals reports whether t and other identify the same type.
func (t Token) Equals(other Token) bool { return t.id == other.id }

// IsType reports whether t identifies rt.
func (t Token) IsType(rt reflect.Type) bool {
	return rt != nil && t.id == identity.Of(rt)
}

// Compare orders tokens by identity. The order is stable within a process
// but differs between runs; use it for deterministic output, not persistence.
func (t Token) Compare(other Token) int { return t.id.Compare(other.id) }

// String returns the display name.
func (t Token) String() string { return t.name }

// fallbackName renders id as the display name of last resort.
func fallbackName(id identity.ID, cfg apis.Config) string {
	return id.Format(cfg.FallbackBase)
}
