// Copyright 2025 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package byteview implements View, a borrowing window into an
// immutable byte blob. It plays the role the Rust source gives
// im_rc::vector::Focus (aliased there to a plain &[u8], see
// forest/util.rs) -- a cheap (base, offset, length) slice that never
// copies the underlying bytes.
//
// A plain Go []byte slice already borrows without copying, so View is
// a thin wrapper rather than a reimplementation: the standard library
// slice is the "suitable third-party library" here, because there
// isn't a more specialized one in the example pack for this concern.
package byteview

// View is an immutable window into a shared byte blob.
type View struct {
	base []byte
}

// Of wraps an existing byte slice as a View. The caller must not
// mutate base afterwards; View never copies it.
func Of(base []byte) View {
	return View{base: base}
}

// Slice returns the sub-window [offset, offset+length) of v. It
// panics if the requested window falls outside v, matching the
// fatal-on-malformed-schema posture of the rest of this library.
func (v View) Slice(offset, length int) View {
	if offset < 0 || length < 0 || offset+length > len(v.base) {
		panic("byteview: slice out of range")
	}
	return View{base: v.base[offset : offset+length]}
}

// Len reports the number of bytes in the window.
func (v View) Len() int {
	return len(v.base)
}

// Bytes returns the raw bytes of the window. The returned slice
// aliases v's storage and must not be mutated by the caller.
func (v View) Bytes() []byte {
	return v.base
}

// Empty is the canonical zero-length window.
var Empty = View{}
