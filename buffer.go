// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"igloo.dev/gl"
)

// Buffer is a GPU data store for vertex attributes or element indices.
type Buffer struct {
	funcs  gl.Functions
	obj    gl.Buffer
	target gl.Enum
	// size is the byte size of the current data store, or -1 before the
	// first upload.
	size int
}

// NewBuffer creates an empty buffer for target, ARRAY_BUFFER or
// ELEMENT_ARRAY_BUFFER. A zero target means ARRAY_BUFFER.
func NewBuffer(f gl.Functions, target gl.Enum) *Buffer {
	if target == 0 {
		target = gl.ARRAY_BUFFER
	}
	return &Buffer{
		funcs:  f,
		obj:    f.CreateBuffer(),
		target: target,
		size:   -1,
	}
}

// Bind binds the buffer to its target.
func (b *Buffer) Bind() *Buffer {
	b.funcs.BindBuffer(b.target, b.obj)
	return b
}

// Update uploads data as float32 values. A zero usage means DYNAMIC_DRAW.
func (b *Buffer) Update(data []float32, usage gl.Enum) *Buffer {
	return b.UpdateBytes(float32Bytes(data), usage)
}

// UpdateBytes uploads data already in its GPU layout. A zero usage means
// DYNAMIC_DRAW.
//
// A payload of a new length reallocates the data store, which lets the
// driver orphan the old one instead of waiting for pending draws. A
// payload of the same length overwrites the store in place.
func (b *Buffer) UpdateBytes(data []byte, usage gl.Enum) *Buffer {
	if usage == 0 {
		usage = gl.DYNAMIC_DRAW
	}
	b.Bind()
	if len(data) != b.size {
		b.funcs.BufferData(b.target, data, usage)
		b.size = len(data)
	} else if len(data) > 0 {
		b.funcs.BufferSubData(b.target, 0, data)
	}
	return b
}

// Size returns the byte size of the data store, or -1 if nothing has been
// uploaded.
func (b *Buffer) Size() int {
	return b.size
}

// Target returns the binding target.
func (b *Buffer) Target() gl.Enum {
	return b.target
}

// Release deletes the GPU buffer.
func (b *Buffer) Release() {
	b.funcs.DeleteBuffer(b.obj)
	b.size = -1
}
