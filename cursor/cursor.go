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

// Package cursor implements the generic, move-by-value cursor state
// machine described in spec.md section 4.4, grounded on
// original_source/compressed_tree/src/cursor.rs. It is "generic" in
// the Go sense: it operates against the node.Node/node.Field
// interfaces from package node, so it drives a boxed.Node tree or a
// chunk.UniformChunkNode tree identically, with no type parameter and
// no per-representation duplication.
//
// Every operation is a method with a value receiver that returns an
// Either, modeling the source's EitherCursor<Nodes, Fields> sum type:
// the cursor is never observably in an intermediate state between
// calls.
package cursor

import (
	"github.com/dolthub/chunktree/field"
	"github.com/dolthub/chunktree/node"
)

// nodesLevel is one level of "a node is selected": the sibling
// sequence and the index of the selected node within it.
type nodesLevel struct {
	nodes node.Field
	index int
}

// fieldsLevel is one level of "a field is selected": the field key
// and, if the field was reached by iteration (first_field/next_field)
// rather than direct lookup (enter_field), the unconsumed remainder
// of the parent's field iterator.
type fieldsLevel struct {
	key       field.Key
	remainder node.FieldIterator // nil means "entered via EnterField"
}

// frame records how to return to one ancestor level: its node-level
// (sequence + index) and its field-level (key + iterator remainder).
type frame struct {
	nodes  nodesLevel
	fields fieldsLevel
}

// NodesCursor points at a single selected node. See the operation
// table in spec.md section 4.4.
type NodesCursor struct {
	current nodesLevel
	parents []frame
}

// FieldsCursor points at a field (a sequence of siblings) under a
// node. See the operation table in spec.md section 4.4.
type FieldsCursor struct {
	nodes   node.Field // cache of the nodes at the current field key
	current frame
	parents []frame
}

// NewNodesCursor builds a cursor over a single top-level field,
// initially selecting index 0. This is the entry point a tree
// construction API hands to a caller after building a root field
// view (spec.md section 2, "Data flow").
func NewNodesCursor(root node.Field) NodesCursor {
	return NodesCursor{current: nodesLevel{nodes: root, index: 0}}
}

func (c NodesCursor) currentNode() node.Node {
	n, ok := c.current.nodes.Index(c.current.index)
	if !ok {
		panic("cursor: current node index out of range")
	}
	return n
}

// FieldIndex returns the index of the current node in its field.
func (c NodesCursor) FieldIndex() uint32 {
	return uint32(c.current.index)
}

// ChunkStart returns the first index covered by the "current chunk".
// In this core chunk_length is always 1, so this always equals
// FieldIndex; the method exists so a future multi-node-chunk
// representation has somewhere to plug in without changing the cursor
// API (spec.md section 4.4, "Chunk-awareness hook").
func (c NodesCursor) ChunkStart() uint32 {
	return c.FieldIndex()
}

// ChunkLength always returns 1 in this core.
func (c NodesCursor) ChunkLength() uint32 {
	return 1
}

// SeekNodes moves the selected index by offset (signed, widened to
// avoid overflow). Landing inside [0, len) stays in Nodes mode;
// landing at or beyond either boundary exits to the containing Fields
// cursor.
func (c NodesCursor) SeekNodes(offset int32) Either {
	idx := int64(c.current.index) + int64(offset)
	if idx < 0 || idx >= int64(c.current.nodes.Len()) {
		return fields(c.exitNode())
	}
	c.current.index = int(idx)
	return nodes(c)
}

// NextNode is SeekNodes(1).
func (c NodesCursor) NextNode() Either {
	return c.SeekNodes(1)
}

func (c NodesCursor) exitNode() FieldsCursor {
	if len(c.parents) == 0 {
		panic("cursor: exit_node called at the root")
	}
	top := c.parents[len(c.parents)-1]
	parents := c.parents[:len(c.parents)-1]
	return FieldsCursor{
		nodes:   c.current.nodes,
		current: top,
		parents: parents,
	}
}

// ExitNode pops one frame, returning the containing Fields cursor. It
// panics if called at the root (spec.md section 4.4, edge-case
// policy: "Exiting past the root is a program error").
func (c NodesCursor) ExitNode() FieldsCursor {
	return c.exitNode()
}

// Value returns the current node's scalar payload, if any.
func (c NodesCursor) Value() field.Value {
	payload, ok := c.currentNode().GetPayload()
	if !ok {
		return field.None
	}
	return field.DecodeValue(payload.Bytes())
}

// NodeType returns the current node's type/definition tag.
func (c NodesCursor) NodeType() field.Type {
	return c.currentNode().GetDef()
}

// IsLeaf reports whether the current node has no fields, which is
// exactly when FirstField stays in Nodes mode. FirstField itself does
// not call it.
func (c NodesCursor) IsLeaf() bool {
	return c.currentNode().IsLeaf()
}

// FirstField enters the node's first non-empty field, or stays in
// Nodes mode (self, unchanged) if the node is a leaf.
func (c NodesCursor) FirstField() Either {
	it := c.currentNode().GetFields()
	key, seq, ok := it.Next()
	if !ok {
		return nodes(c)
	}
	return fields(FieldsCursor{
		nodes:   seq,
		current: frame{nodes: c.current, fields: fieldsLevel{key: key, remainder: it}},
		parents: c.parents,
	})
}

// EnterField always transitions to Fields mode, selecting the
// (possibly empty) sequence of children under key. Because it was
// reached by direct lookup rather than iteration, the resulting
// cursor has no iterator remainder: NextField on it exits directly to
// Nodes mode.
func (c NodesCursor) EnterField(key field.Key) Either {
	return fields(FieldsCursor{
		nodes:   c.currentNode().GetField(key),
		current: frame{nodes: c.current, fields: fieldsLevel{key: key, remainder: nil}},
		parents: c.parents,
	})
}

// GetFieldLength returns the number of children in the current field.
func (f FieldsCursor) GetFieldLength() uint32 {
	return uint32(f.nodes.Len())
}

// NextField advances to the next field the iterator yields, or exits
// to Nodes mode when the iterator is exhausted (or absent, meaning
// this field was reached via EnterField rather than iteration).
func (f FieldsCursor) NextField() Either {
	if f.current.fields.remainder == nil {
		return nodes(f.exitField())
	}
	key, seq, ok := f.current.fields.remainder.Next()
	if !ok {
		return nodes(f.exitField())
	}
	f.current.fields.key = key
	f.nodes = seq
	return fields(f)
}

func (f FieldsCursor) exitField() NodesCursor {
	return NodesCursor{current: f.current.nodes, parents: f.parents}
}

// ExitField pops the field frame, returning the containing node.
func (f FieldsCursor) ExitField() NodesCursor {
	return f.exitField()
}

// SkipPendingFields is always a no-op in this core: there is no
// pending/lazy chunk support (spec.md's Non-goals), so it always
// returns Fields(self). The method exists so a future representation
// with pending fields has somewhere to plug in.
func (f FieldsCursor) SkipPendingFields() Either {
	return fields(f)
}

// FirstNode enters index 0 of the current field if it is non-empty,
// or stays in Fields mode (self, unchanged) if the field is empty.
func (f FieldsCursor) FirstNode() Either {
	if f.nodes.Len() > 0 {
		return nodes(f.enterNode(0))
	}
	return fields(f)
}

func (f FieldsCursor) enterNode(i uint32) NodesCursor {
	if int(i) >= f.nodes.Len() {
		panic("cursor: enter_node index out of range")
	}
	// f is a plain value the caller may have forked from a shared
	// ancestor (spec.md section 2, "cheap to clone"; section 5,
	// "multiple independent cursors may traverse the same immutable
	// tree in parallel"). A bare append(f.parents, f.current) would
	// reuse f.parents' backing array whenever it has spare capacity,
	// so a second fork's append could silently overwrite the first
	// fork's pushed frame. Reslicing to cap == len forces a fresh
	// backing array on every push, so forks never alias.
	parents := append(f.parents[:len(f.parents):len(f.parents)], f.current)
	return NodesCursor{
		current: nodesLevel{nodes: f.nodes, index: int(i)},
		parents: parents,
	}
}

// EnterNode pushes the current field frame and selects index i of the
// current field. It panics if i is out of range, matching the
// out-of-range policy in spec.md section 7, item 2.
func (f FieldsCursor) EnterNode(i uint32) NodesCursor {
	return f.enterNode(i)
}
