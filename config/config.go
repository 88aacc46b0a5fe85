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
	"dirpx.dev/typedef/apis"
)

const (
	// DefaultStyle represents the default for Style.
	DefaultStyle = apis.StyleShort
	// DefaultMaxDepth represents the default for MaxDepth.
	// Real programs rarely nest composite types more than a handful of levels.
	DefaultMaxDepth = 16
	// DefaultFallbackBase represents the default for FallbackBase.
	DefaultFallbackBase = 10
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Style:        DefaultStyle,
		MaxDepth:     DefaultMaxDepth,
		FallbackBase: DefaultFallbackBase,
	}
}

// Sanitize replaces out-of-range values in cfg with their defaults.
func Sanitize(cfg apis.Config) apis.Config {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.FallbackBase != 10 && cfg.FallbackBase != 16 {
		cfg.FallbackBase = DefaultFallbackBase
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStyle sets the Style option.
func WithStyle(style apis.NameStyle) Option {
	return func(c *apis.Config) {
		c.Style = style
	}
}

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(depth int) Option {
	return func(c *apis.Config) {
		if depth <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = depth
	}
}

// WithFallbackBase sets the FallbackBase option.
// Only 10 and 16 are meaningful; anything else resets to the default.
func WithFallbackBase(base int) Option {
	return func(c *apis.Config) {
		if base != 10 && base != 16 {
			c.FallbackBase = DefaultFallbackBase
			return
		}
		c.FallbackBase = base
	}
}
