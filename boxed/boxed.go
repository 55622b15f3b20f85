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

// Package boxed is the reference node representation: each node owns
// its type, optional payload, and a map from field key to its
// children. It is the simplest way to implement node.Node (see the
// source's forest/example_node.go, whose doc comment calls it "not
// actually used" there -- here it backs the test-tree constructor
// exposed through the foreign-binding shim).
package boxed

import (
	"sort"

	"github.com/dolthub/chunktree/byteview"
	"github.com/dolthub/chunktree/field"
	"github.com/dolthub/chunktree/node"
)

// Node owns its children directly: a type tag, an optional payload,
// and a field-key -> children mapping. Empty fields are simply absent
// from Fields and resolve to node.EmptyField.
type Node struct {
	Def        field.Type
	Payload    []byte
	HasPayload bool
	Fields     map[field.Key][]Node
}

// New constructs a leaf node (no fields, no payload).
func New(def field.Type) *Node {
	return &Node{Def: def}
}

// WithPayload returns a copy of n with the given payload bytes set.
func (n *Node) WithPayload(payload []byte) *Node {
	cp := *n
	cp.Payload = payload
	cp.HasPayload = true
	return &cp
}

// SetField attaches children under key, replacing any existing
// children for that key. An empty children slice is equivalent to not
// calling SetField at all (the field is simply absent).
func (n *Node) SetField(key field.Key, children []Node) {
	if len(children) == 0 {
		return
	}
	if n.Fields == nil {
		n.Fields = make(map[field.Key][]Node)
	}
	n.Fields[key] = children
}

// GetDef implements node.Node.
func (n *Node) GetDef() field.Type {
	return n.Def
}

// GetPayload implements node.Node.
func (n *Node) GetPayload() (byteview.View, bool) {
	if !n.HasPayload {
		return byteview.View{}, false
	}
	return byteview.Of(n.Payload), true
}

// GetField implements node.Node. A miss returns node.EmptyField,
// never an error, matching the FieldMap contract.
func (n *Node) GetField(key field.Key) node.Field {
	children, ok := n.Fields[key]
	if !ok || len(children) == 0 {
		return node.EmptyField
	}
	return childSlice(children)
}

// GetFields implements node.Node. Go map iteration order is
// unspecified, so the keys are sorted by name before the iterator is
// built: the data model only requires stability within a single
// iteration, and a deterministic order makes the boxed representation
// easier to test against, at the cost of an O(k log k) sort per call
// (k = number of populated fields, typically small).
func (n *Node) GetFields() node.FieldIterator {
	keys := make([]field.Key, 0, len(n.Fields))
	for k := range n.Fields {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return &fieldIterator{node: n, keys: keys}
}

// IsLeaf implements node.Node.
func (n *Node) IsLeaf() bool {
	return len(n.Fields) == 0
}

func childSlice(children []Node) node.Slice {
	s := make(node.Slice, len(children))
	for i := range children {
		s[i] = &children[i]
	}
	return s
}

type fieldIterator struct {
	node *Node
	keys []field.Key
	pos  int
}

func (it *fieldIterator) Next() (field.Key, node.Field, bool) {
	if it.pos >= len(it.keys) {
		return field.Key{}, nil, false
	}
	k := it.keys[it.pos]
	it.pos++
	return k, childSlice(it.node.Fields[k]), true
}
