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

package cursorhandle

import "github.com/dolthub/chunktree/field"

// Mode returns 0 for Nodes, 1 for Fields. Always legal to call.
func (h *CursorHandle) Mode() int {
	switch h.mode {
	case modeNodes:
		return 0
	case modeFields:
		return 1
	default:
		h.protocolError("interior is Empty")
		panic("unreachable")
	}
}

// Pending always returns false in this core: there is no pending/lazy
// chunk support (spec.md Non-goals).
func (h *CursorHandle) Pending() bool {
	return false
}

// FieldIndex is legal only in Nodes mode.
func (h *CursorHandle) FieldIndex() uint32 {
	if h.mode != modeNodes {
		h.protocolError("fieldIndex called outside Nodes mode")
	}
	return h.nodes.FieldIndex()
}

// ChunkStart is legal only in Nodes mode.
func (h *CursorHandle) ChunkStart() uint32 {
	if h.mode != modeNodes {
		h.protocolError("chunkStart called outside Nodes mode")
	}
	return h.nodes.ChunkStart()
}

// ChunkLength is legal only in Nodes mode and always returns 1 in
// this core.
func (h *CursorHandle) ChunkLength() uint32 {
	if h.mode != modeNodes {
		h.protocolError("chunkLength called outside Nodes mode")
	}
	return h.nodes.ChunkLength()
}

// Value is legal only in Nodes mode.
func (h *CursorHandle) Value() field.Value {
	if h.mode != modeNodes {
		h.protocolError("value called outside Nodes mode")
	}
	return h.nodes.Value()
}

// Type is legal only in Nodes mode.
func (h *CursorHandle) Type() string {
	if h.mode != modeNodes {
		h.protocolError("type called outside Nodes mode")
	}
	return h.nodes.NodeType().String()
}

// GetFieldLength is legal only in Fields mode.
func (h *CursorHandle) GetFieldLength() uint32 {
	if h.mode != modeFields {
		h.protocolError("getFieldLength called outside Fields mode")
	}
	return h.fields.GetFieldLength()
}

// SeekNodes moves the selected index by offset. Returns true if still
// in Nodes mode, false if it transitioned to Fields mode (exited).
// Legal only in Nodes mode.
func (h *CursorHandle) SeekNodes(offset int32) bool {
	n := h.takeNodes()
	either := n.SeekNodes(offset)
	if either.IsNodes() {
		h.putNodes(either.AsNodes())
		return true
	}
	h.putFields(either.AsFields())
	return false
}

// NextNode is SeekNodes(1).
func (h *CursorHandle) NextNode() bool {
	return h.SeekNodes(1)
}

// ExitNode transitions to Fields mode. The caller must verify the
// cursor is not already at the root; calling it at the root panics in
// the underlying cursor. Legal only in Nodes mode.
func (h *CursorHandle) ExitNode() {
	n := h.takeNodes()
	h.putFields(n.ExitNode())
}

// FirstField enters the node's first field. Returns true if it
// entered Fields mode (the node has at least one field), false if it
// remained in Nodes mode (the node is a leaf). Legal only in Nodes
// mode.
func (h *CursorHandle) FirstField() bool {
	n := h.takeNodes()
	either := n.FirstField()
	if either.IsNodes() {
		h.putNodes(either.AsNodes())
		return false
	}
	h.putFields(either.AsFields())
	return true
}

// EnterField enters the field named key. The underlying cursor
// operation always transitions to Fields mode; the bool this method
// returns instead reports whether the entered field is non-empty
// (true) or empty (false) -- this is the Open Question resolution
// from spec.md section 9 ("this specification picks the latter").
// Legal only in Nodes mode.
func (h *CursorHandle) EnterField(key string) bool {
	n := h.takeNodes()
	fc := n.EnterField(field.NewKey(key)).AsFields()
	h.putFields(fc)
	return fc.GetFieldLength() > 0
}

// NextField advances to the next field. Returns true if still in
// Fields mode, false if it transitioned to Nodes mode (exited). Legal
// only in Fields mode.
func (h *CursorHandle) NextField() bool {
	f := h.takeFields()
	either := f.NextField()
	if either.IsNodes() {
		h.putNodes(either.AsNodes())
		return false
	}
	h.putFields(either.AsFields())
	return true
}

// ExitField transitions to Nodes mode, pointing at the containing
// node. Legal only in Fields mode.
func (h *CursorHandle) ExitField() {
	f := h.takeFields()
	h.putNodes(f.ExitField())
}

// SkipPendingFields always returns true in this core (no pending
// fields exist to skip). Legal only in Fields mode.
func (h *CursorHandle) SkipPendingFields() bool {
	f := h.takeFields()
	either := f.SkipPendingFields()
	h.putFields(either.AsFields())
	return true
}

// FirstNode enters index 0 of the current field. Returns true if it
// entered Nodes mode (the field is non-empty), false if it remained
// in Fields mode (the field is empty). Legal only in Fields mode.
func (h *CursorHandle) FirstNode() bool {
	f := h.takeFields()
	either := f.FirstNode()
	if either.IsNodes() {
		h.putNodes(either.AsNodes())
		return true
	}
	h.putFields(either.AsFields())
	return false
}

// EnterNode enters index of the current field. It panics (fatal) in
// the underlying cursor if index is out of range. Legal only in Fields
// mode.
func (h *CursorHandle) EnterNode(index uint32) {
	f := h.takeFields()
	h.putNodes(f.EnterNode(index))
}
