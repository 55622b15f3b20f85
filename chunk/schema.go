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

// Package chunk implements the uniform-chunk representation: a shared,
// immutable ChunkSchema tree plus one contiguous byte blob encoding
// many nodes of identical shape. This is the compressed,
// schema-directed columnar layout described in spec.md section 4.3,
// grounded on original_source/compressed_tree/src/forest/uniform_chunk.rs.
package chunk

import (
	"sort"
	"sync"

	"github.com/dolthub/chunktree/field"
)

// OffsetSchema locates one field's first element relative to the
// start of its containing node instance, plus the schema that
// describes each element of that field.
//
// OffsetSchema.ByteOffset is measured relative to the first byte of
// the parent node instance (not of the field), and subsequent
// elements of that field follow at Schema.BytesPerTopLevelNode-byte
// strides.
type OffsetSchema struct {
	ByteOffset uint32
	Schema     *ChunkSchema
}

// ChunkSchema recursively describes the layout of one node level
// within a uniform chunk: its type, its byte footprint, its optional
// leading payload, and the table of fields found inside each node
// instance of this shape.
//
// ChunkSchema is shared by reference across every chunk that has this
// shape; callers must never mutate a ChunkSchema after NewChunkSchema
// returns it. Go's garbage collector makes this "reference counted
// and immutable" the same way any other shared pointer is: there is
// no manual Rc, just *ChunkSchema kept alive by ordinary reachability.
type ChunkSchema struct {
	Def                  field.Type
	TopLevelLength       uint32
	BytesPerTopLevelNode uint32
	PayloadSize          *uint16

	fieldsByKey map[field.Key]OffsetSchema
	fieldList   []fieldEntry
}

type fieldEntry struct {
	key    field.Key
	offset OffsetSchema
}

// NewChunkSchema builds a ChunkSchema from its per-field offsets. The
// field table is validated against invariant 2 of spec.md section 3:
// for every sub-field at byte offset o with element stride s and
// count n, o + s*n must not exceed the parent's BytesPerTopLevelNode.
// Violations panic, since a malformed schema is a construction-time
// programmer error (spec.md section 7, item 3) with no caller to
// report an error to at traversal time.
func NewChunkSchema(def field.Type, topLevelLength, bytesPerTopLevelNode uint32, payloadSize *uint16, fields map[field.Key]OffsetSchema) *ChunkSchema {
	s := &ChunkSchema{
		Def:                  def,
		TopLevelLength:       topLevelLength,
		BytesPerTopLevelNode: bytesPerTopLevelNode,
		PayloadSize:          payloadSize,
		fieldsByKey:          make(map[field.Key]OffsetSchema, len(fields)),
	}
	entries := make([]fieldEntry, 0, len(fields))
	for k, off := range fields {
		span := uint64(off.ByteOffset) + uint64(off.Schema.BytesPerTopLevelNode)*uint64(off.Schema.TopLevelLength)
		if span > uint64(bytesPerTopLevelNode) {
			panic("chunk: field offset schema exceeds parent node footprint")
		}
		s.fieldsByKey[k] = off
		entries = append(entries, fieldEntry{key: k, offset: off})
	}
	// field_list order is the contract for GetFields: sort by byte
	// offset so iteration order is deterministic and reproducible
	// across runs, matching the source's note that "the uniform
	// chunk's field list is pre-sorted by byte offset".
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].offset.ByteOffset != entries[j].offset.ByteOffset {
			return entries[i].offset.ByteOffset < entries[j].offset.ByteOffset
		}
		return entries[i].key.String() < entries[j].key.String()
	})
	s.fieldList = entries
	return s
}

var (
	emptySchemaOnce sync.Once
	emptySchema     *ChunkSchema
)

// EmptySchema returns the process-wide canonical empty ChunkSchema:
// TopLevelLength 0, no fields, used to represent a missing field. It
// is initialized once and is thereafter read-only, per spec.md
// section 5.
func EmptySchema() *ChunkSchema {
	emptySchemaOnce.Do(func() {
		emptySchema = &ChunkSchema{
			fieldsByKey: map[field.Key]OffsetSchema{},
		}
	})
	return emptySchema
}
