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

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"dirpx.dev/typedef/apis"
)

var (
	// ErrUnknownKey is returned when a configuration file contains keys
	// this package does not understand.
	ErrUnknownKey = errors.New("typedef(config): unknown configuration key")
	// ErrInvalidBase is returned when fallback_base is neither 10 nor 16.
	ErrInvalidBase = errors.New("typedef(config): fallback_base must be 10 or 16")
	// ErrInvalidDepth is returned when max_depth is negative.
	ErrInvalidDepth = errors.New("typedef(config): max_depth must not be negative")
)

// file mirrors the on-disk TOML layout. Pointers distinguish "absent"
// from zero so absent keys keep their defaults.
type file struct {
	Style        *apis.NameStyle `toml:"style"`
	MaxDepth     *int            `toml:"max_depth"`
	FallbackBase *int            `toml:"fallback_base"`
}

// Load reads a TOML configuration file and applies it on top of DefaultConfig.
//
//	style = "qualified"
//	max_depth = 8
//	fallback_base = 16
func Load(path string) (apis.Config, error) {
	var f file
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return apis.Config{}, fmt.Errorf("typedef(config): read %s: %w", path, err)
	}
	cfg, err := apply(f, meta)
	if err != nil {
		return apis.Config{}, fmt.Errorf("typedef(config): %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text the same way Load parses a file.
func Decode(text string) (apis.Config, error) {
	var f file
	meta, err := toml.Decode(text, &f)
	if err != nil {
		return apis.Config{}, fmt.Errorf("typedef(config): decode: %w", err)
	}
	return apply(f, meta)
}

func apply(f file, meta toml.MetaData) (apis.Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return apis.Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	opts := make([]Option, 0, 3)
	if f.Style != nil {
		opts = append(opts, WithStyle(*f.Style))
	}
	if f.MaxDepth != nil {
		if *f.MaxDepth < 0 {
			return apis.Config{}, ErrInvalidDepth
		}
		opts = append(opts, WithMaxDepth(*f.MaxDepth))
	}
	if f.FallbackBase != nil {
		if *f.FallbackBase != 10 && *f.FallbackBase != 16 {
			return apis.Config{}, ErrInvalidBase
		}
		opts = append(opts, WithFallbackBase(*f.FallbackBase))
	}
	return NewConfig(opts...), nil
}
