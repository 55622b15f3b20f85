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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkSubtreeOverTestData(t *testing.T) {
	h := NewFromTestData(10, 10)
	assert.Equal(t, 101, WalkSubtree(h))
	// WalkSubtree must leave the handle back where it started.
	assert.Equal(t, 0, h.Mode())
}

func TestWalkSubtreeDepthZeroDoesNotDescend(t *testing.T) {
	h := NewFromTestData(10, 10)
	assert.Equal(t, 1, WalkSubtreeDepth(h, 0))
}

func TestWalkSubtreeDepthOneStopsAtFields(t *testing.T) {
	h := NewFromTestData(3, 5)
	// depth 1: root + its 3 fields' worth of leaves (5 each) = 1 + 15
	assert.Equal(t, 16, WalkSubtreeDepth(h, 1))
}

func TestSingleLeafScenario(t *testing.T) {
	h := NewFromTestData(0, 0)
	assert.Equal(t, 0, h.Mode())
	assert.False(t, h.FirstField())
	assert.Equal(t, 1, WalkSubtree(h))
}

func TestOneFieldThreeChildrenScenario(t *testing.T) {
	h := NewFromTestData(1, 3)

	require.True(t, h.EnterField("0"))
	assert.Equal(t, 1, h.Mode())
	assert.Equal(t, uint32(3), h.GetFieldLength())

	require.True(t, h.FirstNode())
	assert.Equal(t, 0, h.Mode())
	assert.Equal(t, uint32(0), h.FieldIndex())

	require.True(t, h.NextNode())
	assert.Equal(t, uint32(1), h.FieldIndex())

	h.ExitNode()
	assert.Equal(t, 1, h.Mode())

	h.ExitField()
	assert.Equal(t, 0, h.Mode())
}

func TestSeekPastEndScenario(t *testing.T) {
	h := NewFromTestData(1, 3)
	require.True(t, h.EnterField("0"))
	require.True(t, h.FirstNode())
	require.True(t, h.SeekNodes(2)) // now at index 2, last valid

	assert.False(t, h.SeekNodes(1)) // would be index 3, exits to Fields
	assert.Equal(t, 1, h.Mode())
	assert.Equal(t, uint32(3), h.GetFieldLength())
}

func TestEmptyFieldScenario(t *testing.T) {
	h := NewFromTestData(1, 3)
	assert.False(t, h.EnterField("missing"))
	assert.Equal(t, 1, h.Mode())
	assert.Equal(t, uint32(0), h.GetFieldLength())
	assert.False(t, h.FirstNode())
}

func TestModeOnEmptyInteriorIsProtocolError(t *testing.T) {
	h := NewFromTestData(0, 0)
	h.takeNodes() // leave the handle in the Empty sentinel state
	assert.Panics(t, func() { h.Mode() })
}

func TestCallingNodesMethodInFieldsModeIsProtocolError(t *testing.T) {
	h := NewFromTestData(1, 3)
	require.True(t, h.EnterField("0"))
	assert.Panics(t, func() { h.Value() })
}

func TestEnterNodeOutOfRangeIsFatal(t *testing.T) {
	h := NewFromTestData(1, 3)
	require.True(t, h.EnterField("0"))
	assert.Panics(t, func() { h.EnterNode(3) })
}

func TestTreeIDIsStableAcrossMoves(t *testing.T) {
	h := NewFromTestData(2, 2)
	id := h.TreeID()
	h.FirstField()
	assert.Equal(t, id, h.TreeID())
}

func TestSkipPendingFieldsIsAlwaysTrue(t *testing.T) {
	h := NewFromTestData(1, 3)
	require.True(t, h.EnterField("0"))
	assert.True(t, h.SkipPendingFields())
	assert.Equal(t, 1, h.Mode())
}
