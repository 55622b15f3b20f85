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

// Package cursorhandle is the foreign-binding shim: a single mutable
// CursorHandle that reifies the move-only cursor.NodesCursor/
// cursor.FieldsCursor into an object an imperative caller can drive
// through ordinary method calls, grounded on
// original_source/compressed_tree/src/wasm.rs's WasmCursor.
//
// CursorHandle also owns the tree storage the cursor borrows from.
// The source needs an arena/owning-handle trick for this (spec.md
// section 9) because Rust has no garbage collector; in Go the handle
// simply holds the root []boxed.Node slice by reference; interface
// values inside the cursor keep the backing array alive through
// ordinary GC reachability, so there is no self-referential-ownership
// problem to solve here (see DESIGN.md).
package cursorhandle

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/chunktree/boxed"
	"github.com/dolthub/chunktree/cursor"
	"github.com/dolthub/chunktree/field"
	"github.com/dolthub/chunktree/node"
)

type cursorMode int

const (
	modeEmpty cursorMode = iota
	modeNodes
	modeFields
)

// CursorHandle is the single handle type the foreign-binding surface
// exposes. Its interior is one of {Nodes, Fields, Empty}; Empty is a
// transient sentinel that must never be observable across a method
// call boundary (spec.md section 4.5).
type CursorHandle struct {
	root []boxed.Node
	id   uuid.UUID
	log  logrus.FieldLogger

	mode   cursorMode
	nodes  cursor.NodesCursor
	fields cursor.FieldsCursor
}

// NewFromTestData builds a test tree and positions a new handle at
// its single root, matching the source's `new_from_test_data`: a
// production tree-construction API is deliberately out of scope (see
// spec.md section 6), this scaffolding exists to make the surface
// testable end-to-end. The root has `fields` fields, each containing
// `perField` leaf children.
func NewFromTestData(fields, perField int) *CursorHandle {
	root := boxed.New(field.NewType(""))
	for i := 0; i < fields; i++ {
		children := make([]boxed.Node, perField)
		for j := range children {
			children[j] = *boxed.New(field.NewType(""))
		}
		root.SetField(field.NewKey(strconv.Itoa(i)), children)
	}

	h := &CursorHandle{
		root: []boxed.Node{*root},
		id:   uuid.New(),
		log:  logrus.StandardLogger(),
	}
	h.putNodes(cursor.NewNodesCursor(rootField(h.root)))
	h.log.WithField("tree_id", h.id).WithField("fields", fields).WithField("per_field", perField).Debug("cursorhandle: built test tree")
	return h
}

func rootField(root []boxed.Node) node.Field {
	s := make(node.Slice, len(root))
	for i := range root {
		s[i] = &root[i]
	}
	return s
}

// TreeID returns the uuid assigned to this handle's tree at
// construction, for log/debug correlation.
func (h *CursorHandle) TreeID() uuid.UUID {
	return h.id
}

// SetLogger overrides the handle's logger, which is otherwise
// logrus.StandardLogger(). Only construction and protocol-violation
// diagnostics use it; the traversal hot path never logs.
func (h *CursorHandle) SetLogger(log logrus.FieldLogger) {
	h.log = log
}

func (h *CursorHandle) takeNodes() cursor.NodesCursor {
	if h.mode != modeNodes {
		h.protocolError("expected Nodes mode")
	}
	n := h.nodes
	h.mode = modeEmpty
	return n
}

func (h *CursorHandle) takeFields() cursor.FieldsCursor {
	if h.mode != modeFields {
		h.protocolError("expected Fields mode")
	}
	f := h.fields
	h.mode = modeEmpty
	return f
}

func (h *CursorHandle) putNodes(n cursor.NodesCursor) {
	h.nodes = n
	h.mode = modeNodes
}

func (h *CursorHandle) putFields(f cursor.FieldsCursor) {
	h.fields = f
	h.mode = modeFields
}

func (h *CursorHandle) protocolError(msg string) {
	h.log.WithField("tree_id", h.id).Error("cursorhandle: protocol error: " + msg)
	panic("cursorhandle: protocol error: " + msg)
}
