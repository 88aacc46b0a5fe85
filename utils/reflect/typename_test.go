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

package reflect_test

import (
	"errors"
	"reflect"
	"runtime"
	"testing"

	"golang.org/x/sync/errgroup"

	"dirpx.dev/typedef/apis"
	uref "dirpx.dev/typedef/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}

const pkg = "dirpx.dev/typedef/utils/reflect_test"

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{
		Style:        apis.StyleShort,
		MaxDepth:     8,
		FallbackBase: 10,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func qualified(c *apis.Config) { c.Style = apis.StyleQualified }

// Short style must agree with reflect.Type.String for everything it renders.
func TestTypeName_ShortMatchesReflect(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeFor[int16](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[string](),
		reflect.TypeFor[error](),
		reflect.TypeFor[any](),
		reflect.TypeFor[A](),
		reflect.TypeFor[*A](),
		reflect.TypeFor[[]A](),
		reflect.TypeFor[[4]*A](),
		reflect.TypeFor[map[string][]A](),
		reflect.TypeFor[chan A](),
		reflect.TypeFor[<-chan A](),
		reflect.TypeFor[chan<- A](),
		reflect.TypeFor[chan (<-chan int)](),
		reflect.TypeFor[func()](),
		reflect.TypeFor[func(int, ...string) error](),
		reflect.TypeFor[func(A) (int, error)](),
		reflect.TypeFor[struct{ X int }](),
		reflect.TypeFor[G[int]](),
	}
	for _, tt := range types {
		t.Run(tt.String(), func(t *testing.T) {
			got, err := uref.TypeName(tt, cfg())
			if err != nil {
				t.Fatalf("TypeName(%v): %v", tt, err)
			}
			if got != tt.String() {
				t.Fatalf("TypeName(%v) = %q, want %q", tt, got, tt.String())
			}
		})
	}
}

func TestTypeName_Qualified(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"builtin", reflect.TypeFor[int64](), "int64"},
		{"error", reflect.TypeFor[error](), "error"},
		{"named", reflect.TypeFor[A](), pkg + ".A"},
		{"ptr", reflect.TypeFor[*A](), "*" + pkg + ".A"},
		{"map", reflect.TypeFor[map[string]*A](), "map[string]*" + pkg + ".A"},
		{"func", reflect.TypeFor[func(A) error](), "func(" + pkg + ".A) error"},
		{"stdlib", reflect.TypeFor[reflect.Kind](), "reflect.Kind"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.TypeName(tc.typ, cfg(qualified))
			if err != nil {
				t.Fatalf("TypeName(%v): %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("TypeName(%v) = %q, want %q", tc.typ, got, tc.want)
			}
		})
	}
}

func TestTypeName_MaxDepth(t *testing.T) {
	tPP := reflect.TypeFor[**A]()

	// Tight limit -> expect an error.
	if _, err := uref.TypeName(tPP, cfg(func(c *apis.Config) { c.MaxDepth = 1 })); !errors.Is(err, uref.ErrReflectDepthExceeded) {
		t.Fatalf("MaxDepth=1: err = %v, want ErrReflectDepthExceeded", err)
	}

	// Exact limit -> expect success.
	if got, err := uref.TypeName(tPP, cfg(func(c *apis.Config) { c.MaxDepth = 2 })); err != nil || got != "**reflect_test.A" {
		t.Fatalf("MaxDepth=2: got (%q,%v), want (**reflect_test.A,nil)", got, err)
	}

	// Zero falls back to the default limit.
	if _, err := uref.TypeName(tPP, cfg(func(c *apis.Config) { c.MaxDepth = 0 })); err != nil {
		t.Fatalf("MaxDepth=0: unexpected error %v", err)
	}
}

func TestTypeName_Nil(t *testing.T) {
	if _, err := uref.TypeName(nil, cfg()); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: err = %v, want ErrReflectNilType", err)
	}
}

// TypeName is pure; this smoke-tests it under concurrent use.
func TestTypeName_Concurrent(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeFor[A](),
		reflect.TypeFor[*A](),
		reflect.TypeFor[[]A](),
		reflect.TypeFor[map[string]A](),
		reflect.TypeFor[G[int]](),
		reflect.TypeFor[int](),
	}
	conf := cfg()

	var g errgroup.Group
	for w := 0; w < runtime.GOMAXPROCS(0)*4; w++ {
		g.Go(func() error {
			for i := 0; i < 2000; i++ {
				tt := types[i%len(types)]
				got, err := uref.TypeName(tt, conf)
				if err != nil {
					return err
				}
				if got != tt.String() {
					return errors.New("unexpected name " + got)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent TypeName: %v", err)
	}
}
