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

package byteview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	v := Of([]byte{1, 2, 3, 4, 5})
	sub := v.Slice(1, 3)
	assert.Equal(t, []byte{2, 3, 4}, sub.Bytes())
	assert.Equal(t, 3, sub.Len())
}

func TestSliceOutOfRangePanics(t *testing.T) {
	v := Of([]byte{1, 2, 3})
	assert.Panics(t, func() { v.Slice(2, 5) })
	assert.Panics(t, func() { v.Slice(-1, 1) })
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, 0, Empty.Len())
}
