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

package boxed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/chunktree/field"
)

func TestLeafNodeIsLeaf(t *testing.T) {
	n := New(field.NewType("L"))
	assert.True(t, n.IsLeaf())
	_, ok := n.GetPayload()
	assert.False(t, ok)

	it := n.GetFields()
	_, _, ok = it.Next()
	assert.False(t, ok)
}

func TestGetFieldAbsentReturnsEmpty(t *testing.T) {
	n := New(field.NewType("L"))
	f := n.GetField(field.NewKey("missing"))
	assert.Equal(t, 0, f.Len())
	_, ok := f.Index(0)
	assert.False(t, ok)
}

func TestSetFieldAndGetField(t *testing.T) {
	n := New(field.NewType("root"))
	children := []Node{*New(field.NewType("leaf")), *New(field.NewType("leaf")), *New(field.NewType("leaf"))}
	n.SetField(field.NewKey("a"), children)

	assert.False(t, n.IsLeaf())
	f := n.GetField(field.NewKey("a"))
	require.Equal(t, 3, f.Len())
	for i := 0; i < 3; i++ {
		child, ok := f.Index(i)
		require.True(t, ok)
		assert.Equal(t, "leaf", child.GetDef().String())
	}
	_, ok := f.Index(3)
	assert.False(t, ok)
}

func TestGetFieldsOrderIsStable(t *testing.T) {
	n := New(field.NewType("root"))
	n.SetField(field.NewKey("z"), []Node{*New(field.NewType("leaf"))})
	n.SetField(field.NewKey("a"), []Node{*New(field.NewType("leaf"))})

	var keys []string
	it := n.GetFields()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, k.String())
	}
	assert.Equal(t, []string{"a", "z"}, keys)
}

func TestWithPayload(t *testing.T) {
	n := New(field.NewType("num")).WithPayload([]byte{42})
	v, ok := n.GetPayload()
	require.True(t, ok)
	assert.Equal(t, []byte{42}, v.Bytes())
}
