// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

// Package glcore implements gl.Functions on desktop OpenGL 3.3 core
// profile contexts.
//
// The core profile has no LUMINANCE, LUMINANCE_ALPHA or ALPHA textures.
// Those formats are stored as RED or RG with a texture swizzle, so
// shaders sample them as they would on WebGL.
package glcore

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	igl "igloo.dev/gl"
)

// Functions calls into the OpenGL context current on the calling thread.
type Functions struct {
	// vertArray stays bound for the lifetime of the context. The core
	// profile rejects attribute setup without a vertex array bound.
	vertArray uint32
}

var _ igl.Functions = (*Functions)(nil)

// New loads the OpenGL entry points for the current context. The context
// must be current on the calling thread.
func New() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glcore: %w", err)
	}
	f := new(Functions)
	gl.GenVertexArrays(1, &f.vertArray)
	if f.vertArray == 0 {
		return nil, errors.New("glcore: glGenVertexArrays failed")
	}
	gl.BindVertexArray(f.vertArray)
	// Texture uploads are tightly packed.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return f, nil
}

// Release deletes the vertex array created by New.
func (f *Functions) Release() {
	if f.vertArray != 0 {
		gl.DeleteVertexArrays(1, &f.vertArray)
		f.vertArray = 0
	}
}

func (f *Functions) ActiveTexture(texture igl.Enum) {
	gl.ActiveTexture(uint32(texture))
}

func (f *Functions) AttachShader(p igl.Program, s igl.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BindBuffer(target igl.Enum, b igl.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindFramebuffer(target igl.Enum, fb igl.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb.V))
}

func (f *Functions) BindRenderbuffer(target igl.Enum, rb igl.Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), uint32(rb.V))
}

func (f *Functions) BindTexture(target igl.Enum, t igl.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) BufferData(target igl.Enum, src []byte, usage igl.Enum) {
	gl.BufferData(uint32(target), len(src), ptr(src), uint32(usage))
}

func (f *Functions) BufferSubData(target igl.Enum, offset int, src []byte) {
	gl.BufferSubData(uint32(target), offset, len(src), ptr(src))
}

func (f *Functions) CheckFramebufferStatus(target igl.Enum) igl.Enum {
	return igl.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) CompileShader(s igl.Shader) {
	gl.CompileShader(uint32(s.V))
}

func (f *Functions) CopyTexImage2D(target igl.Enum, level int, internalFormat igl.Enum, x, y, width, height int) {
	gl.CopyTexImage2D(uint32(target), int32(level), allocFormat(target, internalFormat), int32(x), int32(y), int32(width), int32(height), 0)
}

func (f *Functions) CreateBuffer() igl.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return igl.Buffer{V: uint(b)}
}

func (f *Functions) CreateFramebuffer() igl.Framebuffer {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return igl.Framebuffer{V: uint(fb)}
}

func (f *Functions) CreateProgram() igl.Program {
	return igl.Program{V: uint(gl.CreateProgram())}
}

func (f *Functions) CreateRenderbuffer() igl.Renderbuffer {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	return igl.Renderbuffer{V: uint(rb)}
}

func (f *Functions) CreateShader(ty igl.Enum) igl.Shader {
	return igl.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}

func (f *Functions) CreateTexture() igl.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return igl.Texture{V: uint(t)}
}

func (f *Functions) DeleteBuffer(v igl.Buffer) {
	b := uint32(v.V)
	gl.DeleteBuffers(1, &b)
}

func (f *Functions) DeleteFramebuffer(v igl.Framebuffer) {
	fb := uint32(v.V)
	gl.DeleteFramebuffers(1, &fb)
}

func (f *Functions) DeleteProgram(p igl.Program) {
	gl.DeleteProgram(uint32(p.V))
}

func (f *Functions) DeleteRenderbuffer(v igl.Renderbuffer) {
	rb := uint32(v.V)
	gl.DeleteRenderbuffers(1, &rb)
}

func (f *Functions) DeleteShader(s igl.Shader) {
	gl.DeleteShader(uint32(s.V))
}

func (f *Functions) DeleteTexture(v igl.Texture) {
	t := uint32(v.V)
	gl.DeleteTextures(1, &t)
}

func (f *Functions) DisableVertexAttribArray(a igl.Attrib) {
	gl.DisableVertexAttribArray(uint32(a))
}

func (f *Functions) DrawArrays(mode igl.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) DrawElements(mode igl.Enum, count int, ty igl.Enum, offset int) {
	gl.DrawElementsWithOffset(uint32(mode), int32(count), uint32(ty), uintptr(offset))
}

func (f *Functions) EnableVertexAttribArray(a igl.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbufferTarget igl.Enum, rb igl.Renderbuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbufferTarget), uint32(rb.V))
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget igl.Enum, t igl.Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t.V), int32(level))
}

func (f *Functions) GetAttribLocation(p igl.Program, name string) igl.Attrib {
	cname, free := gl.Strs(name + "\x00")
	defer free()
	return igl.Attrib(gl.GetAttribLocation(uint32(p.V), *cname))
}

func (f *Functions) GetError() igl.Enum {
	return igl.Enum(gl.GetError())
}

func (f *Functions) GetProgrami(p igl.Program, pname igl.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgramInfoLog(p igl.Program) string {
	n := f.GetProgrami(p, igl.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(uint32(p.V), int32(n), nil, &buf[0])
	return goString(buf)
}

func (f *Functions) GetShaderi(s igl.Shader, pname igl.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetShaderInfoLog(s igl.Shader) string {
	n := f.GetShaderi(s, igl.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(uint32(s.V), int32(n), nil, &buf[0])
	return goString(buf)
}

func (f *Functions) GetString(pname igl.Enum) string {
	return gl.GoStr(gl.GetString(uint32(pname)))
}

func (f *Functions) GetUniformLocation(p igl.Program, name string) igl.Uniform {
	cname, free := gl.Strs(name + "\x00")
	defer free()
	return igl.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), *cname))}
}

func (f *Functions) LinkProgram(p igl.Program) {
	gl.LinkProgram(uint32(p.V))
}

func (f *Functions) RenderbufferStorage(target, internalFormat igl.Enum, width, height int) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) ShaderSource(s igl.Shader, src string) {
	csrc, free := gl.Strs(src)
	defer free()
	length := int32(len(src))
	gl.ShaderSource(uint32(s.V), 1, csrc, &length)
}

func (f *Functions) TexImage2D(target igl.Enum, level int, internalFormat igl.Enum, width, height int, format, ty igl.Enum, pixels []byte) {
	core, _, _ := coreFormat(format)
	gl.TexImage2D(uint32(target), int32(level), int32(allocFormat(target, internalFormat)), int32(width), int32(height), 0, core, uint32(ty), ptr(pixels))
}

func (f *Functions) TexParameteri(target, pname igl.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) TexSubImage2D(target igl.Enum, level int, x, y, width, height int, format, ty igl.Enum, pixels []byte) {
	core, _, _ := coreFormat(format)
	gl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), core, uint32(ty), ptr(pixels))
}

func (f *Functions) Uniform1f(dst igl.Uniform, v float32) {
	gl.Uniform1f(int32(dst.V), v)
}

func (f *Functions) Uniform1i(dst igl.Uniform, v int) {
	gl.Uniform1i(int32(dst.V), int32(v))
}

func (f *Functions) Uniform1fv(dst igl.Uniform, v []float32) {
	if len(v) > 0 {
		gl.Uniform1fv(int32(dst.V), int32(len(v)), &v[0])
	}
}

func (f *Functions) Uniform2fv(dst igl.Uniform, v []float32) {
	if len(v) >= 2 {
		gl.Uniform2fv(int32(dst.V), int32(len(v)/2), &v[0])
	}
}

func (f *Functions) Uniform3fv(dst igl.Uniform, v []float32) {
	if len(v) >= 3 {
		gl.Uniform3fv(int32(dst.V), int32(len(v)/3), &v[0])
	}
}

func (f *Functions) Uniform4fv(dst igl.Uniform, v []float32) {
	if len(v) >= 4 {
		gl.Uniform4fv(int32(dst.V), int32(len(v)/4), &v[0])
	}
}

func (f *Functions) Uniform1iv(dst igl.Uniform, v []int32) {
	if len(v) > 0 {
		gl.Uniform1iv(int32(dst.V), int32(len(v)), &v[0])
	}
}

func (f *Functions) Uniform2iv(dst igl.Uniform, v []int32) {
	if len(v) >= 2 {
		gl.Uniform2iv(int32(dst.V), int32(len(v)/2), &v[0])
	}
}

func (f *Functions) Uniform3iv(dst igl.Uniform, v []int32) {
	if len(v) >= 3 {
		gl.Uniform3iv(int32(dst.V), int32(len(v)/3), &v[0])
	}
}

func (f *Functions) Uniform4iv(dst igl.Uniform, v []int32) {
	if len(v) >= 4 {
		gl.Uniform4iv(int32(dst.V), int32(len(v)/4), &v[0])
	}
}

func (f *Functions) UniformMatrix2fv(dst igl.Uniform, transpose bool, v []float32) {
	if len(v) >= 4 {
		gl.UniformMatrix2fv(int32(dst.V), int32(len(v)/4), transpose, &v[0])
	}
}

func (f *Functions) UniformMatrix3fv(dst igl.Uniform, transpose bool, v []float32) {
	if len(v) >= 9 {
		gl.UniformMatrix3fv(int32(dst.V), int32(len(v)/9), transpose, &v[0])
	}
}

func (f *Functions) UniformMatrix4fv(dst igl.Uniform, transpose bool, v []float32) {
	if len(v) >= 16 {
		gl.UniformMatrix4fv(int32(dst.V), int32(len(v)/16), transpose, &v[0])
	}
}

func (f *Functions) UseProgram(p igl.Program) {
	gl.UseProgram(uint32(p.V))
}

func (f *Functions) VertexAttribPointer(dst igl.Attrib, size int, ty igl.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// goString converts a NUL-terminated C string to a Go string.
func goString(s []byte) string {
	if i := strings.IndexByte(string(s), 0); i >= 0 {
		s = s[:i]
	}
	return string(s)
}
