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

// WalkSubtree walks the subtree under the cursor's current node and
// returns its size, including the root, leaving the cursor back in
// Nodes mode on the original node. Exposed for benchmarking per
// spec.md section 6.
func WalkSubtree(h *CursorHandle) int {
	count := 1
	inFields := h.FirstField()
	for inFields {
		inNodes := h.FirstNode()
		for inNodes {
			count += WalkSubtree(h)
			inNodes = h.NextNode()
		}
		inFields = h.NextField()
	}
	return count
}

// WalkSubtreeDepth is WalkSubtree bounded to depth levels below the
// cursor's current node: at depth 0 it counts the current node
// without descending into its fields.
func WalkSubtreeDepth(h *CursorHandle, depth int) int {
	count := 1
	if depth <= 0 {
		return count
	}
	inFields := h.FirstField()
	for inFields {
		inNodes := h.FirstNode()
		for inNodes {
			count += WalkSubtreeDepth(h, depth-1)
			inNodes = h.NextNode()
		}
		inFields = h.NextField()
	}
	return count
}
