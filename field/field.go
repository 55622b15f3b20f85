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

// Package field defines the opaque primitive identifiers and leaf
// value shared by every tree representation: FieldKey (the name of a
// field under a node), TreeType (a node's type/definition tag), and
// Value (a node's optional scalar payload).
package field

import "github.com/cespare/xxhash/v2"

// Key is the name of a field under a node. It is opaque outside this
// package except for equality and hashing, matching the data model's
// "opaque identifier, equality+hash" contract.
type Key struct {
	name string
}

// NewKey wraps a string as a FieldKey. Two Keys built from equal
// strings compare equal.
func NewKey(name string) Key {
	return Key{name: name}
}

// String returns the field key's underlying name.
func (k Key) String() string {
	return k.name
}

// Hash returns a stable 64-bit hash of the key, suitable for
// hash-table indexing of large field maps.
func (k Key) Hash() uint64 {
	return xxhash.Sum64String(k.name)
}

// Type is a node's type/definition tag.
type Type struct {
	name string
}

// NewType wraps a string as a TreeType.
func NewType(name string) Type {
	return Type{name: name}
}

// String returns the tree type's underlying name.
func (t Type) String() string {
	return t.name
}

// Hash returns a stable 64-bit hash of the type tag.
func (t Type) Hash() uint64 {
	return xxhash.Sum64String(t.name)
}

// Value is a node's optional scalar leaf value. A zero Value with
// Present == false represents "no payload", mirroring the source's
// Option<f64>.
type Value struct {
	Number  float64
	Present bool
}

// None is the canonical absent Value.
var None = Value{}

// Some wraps a present numeric value.
func Some(n float64) Value {
	return Value{Number: n, Present: true}
}

// DecodeValue interprets a payload byte slice as a node's scalar
// Value. The source leaves this conversion as a todo!() (see
// cursor.rs and wasm.rs); this library resolves it by treating the
// payload as an unsigned little-endian integer of its own width (0,
// 1, 2, 4, or 8 bytes) widened to float64. A zero-length payload
// decodes to 0.
func DecodeValue(payload []byte) Value {
	var n uint64
	for i := len(payload) - 1; i >= 0; i-- {
		n = n<<8 | uint64(payload[i])
	}
	return Some(float64(n))
}
