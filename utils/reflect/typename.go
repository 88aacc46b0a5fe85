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

package reflect

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"dirpx.dev/typedef/apis"
	"dirpx.dev/typedef/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectDepthExceeded indicates that the type nests composite types
	// deeper than the configured MaxDepth.
	ErrReflectDepthExceeded = errors.New("reflect: type nesting exceeds max depth")
)

// TypeName renders the display name of t according to cfg.
//
// Rendering policy:
//   - named types: builtins ("int64", "error") as-is; others as "pkg.Name"
//     (StyleShort, same spelling as reflect.Type.String) or
//     "import/path.Name" (StyleQualified).
//   - ptr/slice/array/chan/map/func: rendered structurally, recursing into
//     element, key, parameter and result types.
//   - unnamed struct and interface literals: reflect.Type.String.
//
// Every composite level counts against cfg.MaxDepth (DefaultMaxDepth when
// <= 0); exceeding it yields ErrReflectDepthExceeded.
func TypeName(t reflect.Type, cfg apis.Config) (string, error) {
	if t == nil {
		return "", ErrReflectNilType
	}
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxDepth
	}
	r := renderer{style: cfg.Style, maxDepth: maxDepth}
	if err := r.write(t, 0); err != nil {
		return "", err
	}
	return r.b.String(), nil
}

type renderer struct {
	b        strings.Builder
	style    apis.NameStyle
	maxDepth int
}

func (r *renderer) write(t reflect.Type, depth int) error {
	if t.Name() != "" {
		r.named(t)
		return nil
	}
	if depth >= r.maxDepth {
		return ErrReflectDepthExceeded
	}
	depth++

	switch t.Kind() {
	case reflect.Ptr:
		r.b.WriteByte('*')
		return r.write(t.Elem(), depth)

	case reflect.Slice:
		r.b.WriteString("[]")
		return r.write(t.Elem(), depth)

	case reflect.Array:
		r.b.WriteByte('[')
		r.b.WriteString(strconv.Itoa(t.Len()))
		r.b.WriteByte(']')
		return r.write(t.Elem(), depth)

	case reflect.Chan:
		return r.channel(t, depth)

	case reflect.Map:
		r.b.WriteString("map[")
		if err := r.write(t.Key(), depth); err != nil {
			return err
		}
		r.b.WriteByte(']')
		return r.write(t.Elem(), depth)

	case reflect.Func:
		r.b.WriteString("func")
		return r.signature(t, depth)

	default:
		// Unnamed struct/interface literals.
		r.b.WriteString(t.String())
		return nil
	}
}

func (r *renderer) named(t reflect.Type) {
	pkg := t.PkgPath()
	switch {
	case pkg == "":
		r.b.WriteString(t.Name())
	case r.style == apis.StyleQualified:
		r.b.WriteString(pkg)
		r.b.WriteByte('.')
		r.b.WriteString(t.Name())
	default:
		r.b.WriteString(t.String())
	}
}

func (r *renderer) channel(t reflect.Type, depth int) error {
	switch t.ChanDir() {
	case reflect.RecvDir:
		r.b.WriteString("<-chan ")
	case reflect.SendDir:
		r.b.WriteString("chan<- ")
	default:
		r.b.WriteString("chan ")
		// "chan (<-chan T)" keeps the element's direction unambiguous.
		if e := t.Elem(); e.Name() == "" && e.Kind() == reflect.Chan && e.ChanDir() == reflect.RecvDir {
			r.b.WriteByte('(')
			if err := r.write(e, depth); err != nil {
				return err
			}
			r.b.WriteByte(')')
			return nil
		}
	}
	return r.write(t.Elem(), depth)
}

func (r *renderer) signature(t reflect.Type, depth int) error {
	r.b.WriteByte('(')
	for i := 0; i < t.NumIn(); i++ {
		if i > 0 {
			r.b.WriteString(", ")
		}
		in := t.In(i)
		if t.IsVariadic() && i == t.NumIn()-1 {
			r.b.WriteString("...")
			in = in.Elem()
		}
		if err := r.write(in, depth); err != nil {
			return err
		}
	}
	r.b.WriteByte(')')

	switch n := t.NumOut(); n {
	case 0:
		return nil
	case 1:
		r.b.WriteByte(' ')
		return r.write(t.Out(0), depth)
	default:
		r.b.WriteString(" (")
		for i := 0; i < n; i++ {
			if i > 0 {
				r.b.WriteString(", ")
			}
			if err := r.write(t.Out(i), depth); err != nil {
				return err
			}
		}
		r.b.WriteByte(')')
		return nil
	}
}
