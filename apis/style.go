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

import (
	"fmt"
	"strings"
)

// NameStyle controls how named types are spelled in resolved display names.
//
// NameStyle is a small enumerated type. It only affects names derived by
// reflection; names supplied by a Namer or by the Registry are used verbatim.
//
//   - StyleShort     — "typedef.Point", the spelling used by reflect.Type.String.
//   - StyleQualified — "dirpx.dev/typedef.Point", the full import path.
//
// NameStyle values are plain integers and safe to share across goroutines.
type NameStyle int

const (
	// StyleShort qualifies named types with the last element of their
	// package path. Builtins ("int64", "string") are never qualified.
	StyleShort NameStyle = iota

	// StyleQualified qualifies named types with their full import path.
	// Two distinct types never share a qualified name unless they are
	// declared in function scope.
	StyleQualified
)

// String returns a human-readable representation of the NameStyle value.
// Unknown values render as "Unknown(<n>)" and never panic.
func (s NameStyle) String() string {
	switch s {
	case StyleShort:
		return "short"
	case StyleQualified:
		return "qualified"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// ParseNameStyle parses a textual representation of a NameStyle.
//
// Accepted (case-insensitive, surrounding whitespace trimmed) inputs are
// "short" and "qualified". On failure it returns StyleShort and a non-nil error.
func ParseNameStyle(s string) (NameStyle, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return StyleShort, fmt.Errorf("typedef: empty name style")
	}

	switch strings.ToLower(trimmed) {
	case "short":
		return StyleShort, nil
	case "qualified":
		return StyleQualified, nil
	default:
		return StyleShort, fmt.Errorf("typedef: unknown name style %q", s)
	}
}

// MustParseNameStyle is like ParseNameStyle but panics on invalid input.
func MustParseNameStyle(s string) NameStyle {
	style, err := ParseNameStyle(s)
	if err != nil {
		panic(err)
	}
	return style
}

// MarshalText implements encoding.TextMarshaler.
// Unknown values are rejected rather than persisted as "Unknown(...)".
func (s NameStyle) MarshalText() ([]byte, error) {
	switch s {
	case StyleShort, StyleQualified:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("typedef: cannot marshal unknown name style %d", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// On failure *s is left unchanged.
func (s *NameStyle) UnmarshalText(text []byte) error {
	value, err := ParseNameStyle(string(text))
	if err != nil {
		return err
	}
	*s = value
	return nil
}
