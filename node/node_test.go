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

package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceIndexOutOfRangeIsAbsent(t *testing.T) {
	s := Slice{nil, nil}
	_, ok := s.Index(2)
	assert.False(t, ok)
	_, ok = s.Index(-1)
	assert.False(t, ok)
	n, ok := s.Index(0)
	assert.True(t, ok)
	assert.Nil(t, n)
}

func TestSliceLen(t *testing.T) {
	assert.Equal(t, 0, Slice(nil).Len())
	assert.Equal(t, 3, Slice{nil, nil, nil}.Len())
}

func TestEmptyFieldIsEmpty(t *testing.T) {
	assert.Equal(t, 0, EmptyField.Len())
	_, ok := EmptyField.Index(0)
	assert.False(t, ok)
}
