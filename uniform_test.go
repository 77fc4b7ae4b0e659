// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUniform(t *testing.T) {
	tests := []struct {
		value   interface{}
		integer bool
		dim     int
		kind    uniformKind
	}{
		{value: 1.5, kind: uniformFloat},
		{value: float32(1), kind: uniformFloat},
		{value: true, kind: uniformFloat},
		{value: 3, integer: true, kind: uniformInt},
		{value: uint32(3), integer: true, kind: uniformInt},
		{value: []float32{1}, kind: uniformVec1f},
		{value: [2]float32{1, 2}, kind: uniformVec2f},
		{value: []float64{1, 2, 3}, kind: uniformVec3f},
		{value: [4]float32{}, kind: uniformVec4f},
		{value: []float32{1, 2, 3, 4, 5, 6}, dim: 3, kind: uniformVec3f},
		{value: []int32{1, 2}, integer: true, kind: uniformVec2i},
		{value: []int{1, 2, 3}, integer: true, kind: uniformVec3i},
		{value: []float32{1, 2, 3, 4}, integer: true, kind: uniformVec4i},
		{value: []int{1, 2, 3, 4}, kind: uniformVec4f},
		{value: int64(3), kind: uniformFloat},
		{value: int64(3), integer: true, kind: uniformInt},
		{value: uint8(7), kind: uniformFloat},
		{value: int8(-1), integer: true, kind: uniformInt},
		{value: uint64(9), integer: true, kind: uniformInt},
		{value: [2]float64{1, 2}, kind: uniformVec2f},
		{value: [3]int32{1, 2, 3}, integer: true, kind: uniformVec3i},
		{value: []uint8{1, 2, 3, 4}, kind: uniformVec4f},
		{value: []uint16{1, 2}, integer: true, kind: uniformVec2i},
	}
	for _, test := range tests {
		v, ok := classifyUniform(test.value, test.integer, test.dim)
		if assert.True(t, ok, "%#v", test.value) {
			assert.Equal(t, test.kind, v.kind, "%#v: got %v", test.value, v.kind)
		}
	}
}

func TestClassifyUniformConversions(t *testing.T) {
	v, ok := classifyUniform(true, true, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, v.i)

	v, ok = classifyUniform(2.9, true, 0)
	assert.True(t, ok)
	assert.Equal(t, 2, v.i)

	v, ok = classifyUniform([]float32{1.7, -2.2}, true, 0)
	assert.True(t, ok)
	assert.Equal(t, []int32{1, -2}, v.iv)

	v, ok = classifyUniform([]int{1, 2}, false, 0)
	assert.True(t, ok)
	assert.Equal(t, []float32{1, 2}, v.fv)

	v, ok = classifyUniform(int64(1)<<40, false, 0)
	assert.True(t, ok)
	assert.Equal(t, float32(1<<40), v.f)

	v, ok = classifyUniform(uint8(200), true, 0)
	assert.True(t, ok)
	assert.Equal(t, 200, v.i)

	v, ok = classifyUniform([3]int32{4, 5, 16777217}, true, 0)
	assert.True(t, ok)
	assert.Equal(t, []int32{4, 5, 16777217}, v.iv)

	v, ok = classifyUniform([2]float64{0.5, 1.5}, false, 0)
	assert.True(t, ok)
	assert.Equal(t, []float32{0.5, 1.5}, v.fv)
}

func TestClassifyUniformRejects(t *testing.T) {
	for _, test := range []struct {
		value interface{}
		dim   int
	}{
		{value: "1"},
		{value: nil},
		{value: map[string]float32{}},
		{value: []float32{}},
		{value: []float32{1, 2, 3, 4, 5}},
		{value: []float32{1, 2}, dim: 5},
		{value: []float32{1, 2}, dim: -1},
		{value: []string{"a"}},
		{value: []bool{true}},
		{value: complex(1, 2)},
		{value: [0]float64{}},
	} {
		_, ok := classifyUniform(test.value, false, test.dim)
		assert.False(t, ok, "%#v dim %d", test.value, test.dim)
	}
}

func TestClassifyMatrix(t *testing.T) {
	for n, kind := range map[int]uniformKind{4: uniformMat2, 9: uniformMat3, 16: uniformMat4} {
		v, ok := classifyMatrix(make([]float32, n), true)
		assert.True(t, ok)
		assert.Equal(t, kind, v.kind)
		assert.True(t, v.transpose)
	}
	for _, n := range []int{0, 1, 3, 8, 15, 17} {
		_, ok := classifyMatrix(make([]float32, n), false)
		assert.False(t, ok, "length %d", n)
	}
}
