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

import "testing"

func TestNameStyle_String(t *testing.T) {
	cases := []struct {
		in   NameStyle
		want string
	}{
		{StyleShort, "short"},
		{StyleQualified, "qualified"},
		{NameStyle(42), "Unknown(42)"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("String(%d) = %q, want %q", int(tc.in), got, tc.want)
		}
	}
}

func TestParseNameStyle(t *testing.T) {
	cases := []struct {
		in      string
		want    NameStyle
		wantErr bool
	}{
		{"short", StyleShort, false},
		{"  Qualified ", StyleQualified, false},
		{"SHORT", StyleShort, false},
		{"", StyleShort, true},
		{"long", StyleShort, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseNameStyle(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseNameStyle(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("ParseNameStyle(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMustParseNameStyle_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParseNameStyle did not panic on invalid input")
		}
	}()
	_ = MustParseNameStyle("nope")
}

func TestNameStyle_Text(t *testing.T) {
	b, err := StyleQualified.MarshalText()
	if err != nil || string(b) != "qualified" {
		t.Fatalf("MarshalText = (%q, %v), want (qualified, nil)", b, err)
	}
	if _, err := NameStyle(9).MarshalText(); err == nil {
		t.Fatalf("MarshalText of unknown style: expected error")
	}

	s := StyleQualified
	if err := s.UnmarshalText([]byte("bogus")); err == nil {
		t.Fatalf("UnmarshalText(bogus): expected error")
	}
	if s != StyleQualified {
		t.Fatalf("failed UnmarshalText modified target: %v", s)
	}
	if err := s.UnmarshalText([]byte("short")); err != nil || s != StyleShort {
		t.Fatalf("UnmarshalText(short) = %v, %v", s, err)
	}
}
