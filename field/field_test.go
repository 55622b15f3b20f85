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

package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEquality(t *testing.T) {
	a := NewKey("a")
	b := NewKey("a")
	c := NewKey("b")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestTypeEquality(t *testing.T) {
	a := NewType("Point")
	b := NewType("Point")
	assert.Equal(t, a, b)
	assert.Equal(t, "Point", a.String())
}

func TestValueNone(t *testing.T) {
	assert.False(t, None.Present)
}

func TestDecodeValue(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
		want    float64
	}{
		{"empty", nil, 0},
		{"one byte", []byte{2}, 2},
		{"one byte max", []byte{40}, 40},
		{"two bytes LE", []byte{0x01, 0x01}, 257},
		{"four bytes LE", []byte{0xFF, 0, 0, 0}, 255},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := DecodeValue(tc.payload)
			assert.True(t, v.Present)
			assert.Equal(t, tc.want, v.Number)
		})
	}
}
