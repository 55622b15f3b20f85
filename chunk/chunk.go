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

package chunk

import (
	"github.com/pkg/errors"

	"github.com/dolthub/chunktree/byteview"
	"github.com/dolthub/chunktree/field"
	"github.com/dolthub/chunktree/node"
)

// UniformChunk is a sequence of trees with identical schema and
// sequential layout: one shared ChunkSchema plus one contiguous byte
// blob encoding every top-level node.
type UniformChunk struct {
	Schema *ChunkSchema
	Data   []byte
}

// NewUniformChunk validates the size invariant (invariant 1 of
// spec.md section 3) and returns a UniformChunk. A mismatch is a
// construction-time error: unlike traversal-time protocol violations,
// this is the one place a caller can sensibly check for and report a
// malformed chunk before any cursor exists, so it returns an error
// built with github.com/pkg/errors' Errorf rather than panicking.
func NewUniformChunk(schema *ChunkSchema, data []byte) (*UniformChunk, error) {
	want := int(schema.BytesPerTopLevelNode) * int(schema.TopLevelLength)
	if len(data) != want {
		return nil, errors.Errorf("chunk: data length %d does not match schema.BytesPerTopLevelNode * schema.TopLevelLength = %d", len(data), want)
	}
	return &UniformChunk{Schema: schema, Data: data}, nil
}

// EmptyChunk returns the canonical empty chunk used to represent a
// missing field: a zero-length blob paired with EmptySchema.
func EmptyChunk() *UniformChunk {
	return &UniformChunk{Schema: EmptySchema(), Data: nil}
}

// View produces the top-level ChunkInfo for the chunk: a node.Field
// whose window is the whole blob and whose per-element schema is the
// chunk's root schema.
func (c *UniformChunk) View() ChunkInfo {
	return ChunkInfo{schema: c.Schema, window: byteview.Of(c.Data)}
}

// ChunkInfo is the pair (sub-schema, byte window) representing one
// field inside a chunk: a sequence of sibling nodes that all share
// schema and are laid out contiguously, stride schema.BytesPerTopLevelNode
// apart, within window.
type ChunkInfo struct {
	schema *ChunkSchema
	window byteview.View
}

// Index implements node.Field: it yields the UniformChunkNode at
// position i, or ok == false if i is out of [0, Len()) -- the
// "absent" resolution of the source's ChunkIndexer::View Open
// Question (spec.md section 9).
func (ci ChunkInfo) Index(i int) (node.Node, bool) {
	if i < 0 || uint32(i) >= ci.schema.TopLevelLength {
		return nil, false
	}
	return UniformChunkNode{view: ci, offset: uint32(i)}, true
}

// Len implements node.Field.
func (ci ChunkInfo) Len() int {
	return int(ci.schema.TopLevelLength)
}

// UniformChunkNode is the pair (ChunkInfo, offset): a single node
// selected from within a field of a uniform chunk.
type UniformChunkNode struct {
	view   ChunkInfo
	offset uint32
}

// byteWindow returns this node's own byte window: offset *
// bytesPerTopLevelNode, length bytesPerTopLevelNode, measured from the
// start of the ChunkInfo's own (already-narrowed) window, not from
// the chunk's origin.
func (n UniformChunkNode) byteWindow() byteview.View {
	stride := int(n.view.schema.BytesPerTopLevelNode)
	start := int(n.offset) * stride
	return n.view.window.Slice(start, stride)
}

// GetDef implements node.Node.
func (n UniformChunkNode) GetDef() field.Type {
	return n.view.schema.Def
}

// GetPayload implements node.Node.
func (n UniformChunkNode) GetPayload() (byteview.View, bool) {
	if n.view.schema.PayloadSize == nil {
		return byteview.View{}, false
	}
	return n.byteWindow().Slice(0, int(*n.view.schema.PayloadSize)), true
}

// GetField implements node.Node. On a schema hit, it returns the
// sub-field's ChunkInfo: the sub-schema windowed at
// parent_node_start + byte_offset, spanning
// sub.BytesPerTopLevelNode * sub.TopLevelLength bytes. On a miss, it
// returns the canonical empty ChunkInfo, a zero-length window at this
// node's first byte -- fields are never reported as errors.
func (n UniformChunkNode) GetField(key field.Key) node.Field {
	off, ok := n.view.schema.fieldsByKey[key]
	if !ok {
		return ChunkInfo{schema: EmptySchema(), window: n.byteWindow().Slice(0, 0)}
	}
	span := int(off.Schema.BytesPerTopLevelNode) * int(off.Schema.TopLevelLength)
	window := n.byteWindow().Slice(int(off.ByteOffset), span)
	return ChunkInfo{schema: off.Schema, window: window}
}

// GetFields implements node.Node, yielding one (key, ChunkInfo) pair
// per entry in the parent schema's field table, in the schema's
// precomputed, byte-offset-sorted order. All fields are "present" in
// the uniform representation: a field with zero nodes must have been
// omitted from the schema entirely.
func (n UniformChunkNode) GetFields() node.FieldIterator {
	return &chunkFieldIterator{node: n, pos: 0}
}

// IsLeaf implements node.Node.
func (n UniformChunkNode) IsLeaf() bool {
	return len(n.view.schema.fieldList) == 0
}

type chunkFieldIterator struct {
	node UniformChunkNode
	pos  int
}

func (it *chunkFieldIterator) Next() (field.Key, node.Field, bool) {
	list := it.node.view.schema.fieldList
	if it.pos >= len(list) {
		return field.Key{}, nil, false
	}
	entry := list[it.pos]
	it.pos++
	span := int(entry.offset.Schema.BytesPerTopLevelNode) * int(entry.offset.Schema.TopLevelLength)
	window := it.node.byteWindow().Slice(int(entry.offset.ByteOffset), span)
	return entry.key, ChunkInfo{schema: entry.offset.Schema, window: window}, true
}
