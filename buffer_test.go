// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package igloo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igloo.dev/gl"
	"igloo.dev/internal/gltest"
)

func TestBufferUpdateReallocatesOnNewLength(t *testing.T) {
	f := gltest.New()
	b := NewBuffer(f, 0)
	require.Equal(t, gl.Enum(gl.ARRAY_BUFFER), b.Target())
	require.Equal(t, -1, b.Size())

	b.Update([]float32{1, 2, 3, 4}, 0)
	require.Equal(t, 1, f.Count("BufferData"))
	assert.Equal(t, 0, f.Count("BufferSubData"))
	assert.Equal(t, 16, b.Size())
	call := f.Named("BufferData")[0]
	assert.Equal(t, gl.Enum(gl.DYNAMIC_DRAW), call.Args[2])

	b.Update([]float32{5, 6}, gl.STREAM_DRAW)
	require.Equal(t, 2, f.Count("BufferData"))
	assert.Equal(t, 8, b.Size())
	assert.Equal(t, gl.Enum(gl.STREAM_DRAW), f.Named("BufferData")[1].Args[2])
}

func TestBufferUpdateSameLengthOverwrites(t *testing.T) {
	f := gltest.New()
	b := NewBuffer(f, gl.ARRAY_BUFFER)
	b.Update([]float32{1, 2}, 0)
	f.Reset()

	b.Update([]float32{3, 4}, 0)
	assert.Equal(t, []string{"BindBuffer", "BufferSubData"}, f.Names())
	call := f.Named("BufferSubData")[0]
	assert.Equal(t, 0, call.Args[1])
	assert.Equal(t, float32Bytes([]float32{3, 4}), call.Args[2])
	assert.Equal(t, 8, b.Size())
}

func TestBufferEmptyUploadAllocates(t *testing.T) {
	f := gltest.New()
	b := NewBuffer(f, gl.ELEMENT_ARRAY_BUFFER)
	b.UpdateBytes([]byte{}, 0)
	assert.Equal(t, 1, f.Count("BufferData"))
	assert.Equal(t, 0, b.Size())

	// Nothing to copy into an empty store.
	b.UpdateBytes(nil, 0)
	b.Update(nil, 0)
	assert.Equal(t, 1, f.Count("BufferData"))
	assert.Equal(t, 0, f.Count("BufferSubData"))
	assert.Equal(t, 0, b.Size())
}

func TestBufferBindsItsTarget(t *testing.T) {
	f := gltest.New()
	b := NewBuffer(f, gl.ELEMENT_ARRAY_BUFFER)
	f.Reset()
	b.Bind()
	require.Len(t, f.Calls, 1)
	assert.Equal(t, gl.Enum(gl.ELEMENT_ARRAY_BUFFER), f.Calls[0].Args[0])
	assert.Equal(t, b.obj, f.Calls[0].Args[1])
}

func TestBufferRelease(t *testing.T) {
	f := gltest.New()
	b := NewBuffer(f, 0)
	b.Update([]float32{1}, 0)
	b.Release()
	assert.Equal(t, 1, f.Count("DeleteBuffer"))
	assert.Equal(t, -1, b.Size())
}
