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

package main

import (
	"time"

	"dirpx.dev/typedef"
)

// catalog lists the types reported by the names command. Tokens are built
// lazily so that they pick up the configuration chosen on the command line.
var catalog = []func() typedef.Token{
	typedef.Of[bool],
	typedef.Of[int],
	typedef.Of[int8],
	typedef.Of[int16],
	typedef.Of[int32],
	typedef.Of[int64],
	typedef.Of[uint],
	typedef.Of[uint8],
	typedef.Of[uint16],
	typedef.Of[uint32],
	typedef.Of[uint64],
	typedef.Of[uintptr],
	typedef.Of[float32],
	typedef.Of[float64],
	typedef.Of[complex64],
	typedef.Of[complex128],
	typedef.Of[string],
	typedef.Of[[]byte],
	typedef.Of[error],
	typedef.Of[any],
	typedef.Of[map[string]any],
	typedef.Of[func(string) (int, error)],
	typedef.Of[chan struct{}],
	typedef.Of[time.Duration],
	typedef.Of[*time.Time],
}
