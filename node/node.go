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

// Package node declares the navigation contracts that any concrete
// node representation (boxed or uniform-chunk) must satisfy to plug
// into the generic cursor in package cursor. These correspond to the
// source's Indexable, FieldMap, NodeNav and NodeData traits.
//
// Rust expresses per-representation child-sequence and iterator types
// as generic associated types on those traits. Go has no GATs, so
// here every representation's field sequence and node view are
// required to satisfy the *same* interfaces (Field, FieldIterator,
// Node) -- the cursor package is then non-generic and works over any
// Node implementation uniformly, which is the idiomatic Go substitute
// for the source's per-representation generic parameterization.
package node

import "github.com/dolthub/chunktree/byteview"
import "github.com/dolthub/chunktree/field"

// Field is an ordered, indexable sequence of sibling nodes under one
// field key. Out-of-range Index calls return ok == false ("absent")
// rather than panicking; this resolves the Open Question in the
// source's ChunkIndexer::View (one variant panicked, another returned
// absent -- this library standardizes on absent everywhere).
type Field interface {
	// Index returns the node at position i, or ok == false if i is
	// outside [0, Len()).
	Index(i int) (n Node, ok bool)
	// Len reports the number of nodes in the sequence.
	Len() int
}

// FieldIterator yields the non-empty fields of a node one at a time.
// Iteration order is unspecified but stable for the iterator's
// lifetime, per the data model's contract.
type FieldIterator interface {
	// Next returns the next (key, field) pair, or ok == false when
	// exhausted.
	Next() (key field.Key, seq Field, ok bool)
}

// Node is the full navigation + data surface a tree node exposes:
// FieldMap (GetField), NodeNav (GetFields, IsLeaf) and NodeData
// (GetDef, GetPayload) combined, matching the source's `Node: NodeNav
// + NodeData` bound.
type Node interface {
	// GetDef returns the node's type/definition tag.
	GetDef() field.Type
	// GetPayload returns the node's optional immutable byte payload.
	GetPayload() (byteview.View, bool)
	// GetField returns the (possibly empty) sequence of children
	// under key. Querying an absent key returns EmptyField, never an
	// error.
	GetField(key field.Key) Field
	// GetFields iterates all non-empty fields of the node.
	GetFields() FieldIterator
	// IsLeaf reports whether GetFields would yield nothing. It must
	// be O(1).
	IsLeaf() bool
}

// Slice is a Field backed by a concrete, pre-materialized list of
// nodes. It is the Field implementation boxed nodes use for their
// children, and is also used to wrap a single root node into a
// one-element top-level field for cursor construction.
type Slice []Node

// Index implements Field.
func (s Slice) Index(i int) (Node, bool) {
	if i < 0 || i >= len(s) {
		return nil, false
	}
	return s[i], true
}

// Len implements Field.
func (s Slice) Len() int {
	return len(s)
}

// EmptyField is the canonical zero-length sequence returned for
// absent fields.
var EmptyField Field = Slice(nil)
