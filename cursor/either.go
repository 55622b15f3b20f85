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

package cursor

// Either is the Go rendering of the source's EitherCursor<Nodes,
// Fields> enum: the result of a move that can land in either mode.
// Go has no sum types, so this is the standard tagged-struct idiom --
// callers branch on IsNodes and then call AsNodes/AsFields, each of
// which panics if called against the wrong variant (there is no
// silent zero-value cursor to fall back on).
type Either struct {
	isNodes bool
	nodes   NodesCursor
	fields  FieldsCursor
}

func nodes(n NodesCursor) Either {
	return Either{isNodes: true, nodes: n}
}

func fields(f FieldsCursor) Either {
	return Either{isNodes: false, fields: f}
}

// IsNodes reports whether the move landed in Nodes mode.
func (e Either) IsNodes() bool {
	return e.isNodes
}

// AsNodes returns the Nodes-mode cursor. It panics if the move landed
// in Fields mode.
func (e Either) AsNodes() NodesCursor {
	if !e.isNodes {
		panic("cursor: Either holds Fields, not Nodes")
	}
	return e.nodes
}

// AsFields returns the Fields-mode cursor. It panics if the move
// landed in Nodes mode.
func (e Either) AsFields() FieldsCursor {
	if e.isNodes {
		panic("cursor: Either holds Nodes, not Fields")
	}
	return e.fields
}
