// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

// Package gltest provides a recording implementation of gl.Functions for
// tests.
package gltest

import (
	"fmt"
	"strings"

	"igloo.dev/gl"
)

// Call is one recorded entry point invocation.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// Functions records every call and hands out increasing handles. The
// exported fields script driver behaviour.
type Functions struct {
	// Version is returned for GetString(gl.VERSION).
	Version string
	// CompileErrors maps a shader type to the info log of a failed
	// compilation.
	CompileErrors map[gl.Enum]string
	// LinkError, if set, fails LinkProgram with the log.
	LinkError string
	// Uniforms and Attribs map names to locations. Missing names resolve
	// to -1.
	Uniforms map[string]int
	Attribs  map[string]int
	// Errors is consumed one per GetError call.
	Errors []gl.Enum
	// FramebufferStatus is returned by CheckFramebufferStatus. Zero
	// means complete.
	FramebufferStatus gl.Enum

	Calls []Call

	next    uint
	shaders map[uint]gl.Enum
}

var _ gl.Functions = (*Functions)(nil)

// New returns a fake WebGL 1 context.
func New() *Functions {
	return &Functions{
		Version:       "WebGL 1.0",
		CompileErrors: make(map[gl.Enum]string),
		Uniforms:      make(map[string]int),
		Attribs:       make(map[string]int),
		shaders:       make(map[uint]gl.Enum),
	}
}

// Reset forgets the recorded calls.
func (f *Functions) Reset() {
	f.Calls = nil
}

// Named returns the recorded calls to the named entry point.
func (f *Functions) Named(name string) []Call {
	var calls []Call
	for _, c := range f.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Count returns the number of calls to the named entry point.
func (f *Functions) Count(name string) int {
	return len(f.Named(name))
}

// Names returns the sequence of recorded entry point names.
func (f *Functions) Names() []string {
	names := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		names[i] = c.Name
	}
	return names
}

func (f *Functions) record(name string, args ...interface{}) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
}

func (f *Functions) handle() uint {
	f.next++
	return f.next
}

func (f *Functions) ActiveTexture(texture gl.Enum) {
	f.record("ActiveTexture", texture)
}
func (f *Functions) AttachShader(p gl.Program, s gl.Shader) {
	f.record("AttachShader", p, s)
}
func (f *Functions) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.record("BindBuffer", target, b)
}
func (f *Functions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.record("BindFramebuffer", target, fb)
}
func (f *Functions) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	f.record("BindRenderbuffer", target, rb)
}
func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) {
	f.record("BindTexture", target, t)
}
func (f *Functions) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	f.record("BufferData", target, append([]byte(nil), src...), usage)
}
func (f *Functions) BufferSubData(target gl.Enum, offset int, src []byte) {
	f.record("BufferSubData", target, offset, append([]byte(nil), src...))
}
func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	f.record("CheckFramebufferStatus", target)
	if f.FramebufferStatus == 0 {
		return gl.FRAMEBUFFER_COMPLETE
	}
	return f.FramebufferStatus
}
func (f *Functions) CompileShader(s gl.Shader) {
	f.record("CompileShader", s)
}
func (f *Functions) CopyTexImage2D(target gl.Enum, level int, internalFormat gl.Enum, x, y, width, height int) {
	f.record("CopyTexImage2D", target, level, internalFormat, x, y, width, height)
}
func (f *Functions) CreateBuffer() gl.Buffer {
	b := gl.Buffer{V: f.handle()}
	f.record("CreateBuffer", b)
	return b
}
func (f *Functions) CreateFramebuffer() gl.Framebuffer {
	fb := gl.Framebuffer{V: f.handle()}
	f.record("CreateFramebuffer", fb)
	return fb
}
func (f *Functions) CreateProgram() gl.Program {
	p := gl.Program{V: f.handle()}
	f.record("CreateProgram", p)
	return p
}
func (f *Functions) CreateRenderbuffer() gl.Renderbuffer {
	rb := gl.Renderbuffer{V: f.handle()}
	f.record("CreateRenderbuffer", rb)
	return rb
}
func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{V: f.handle()}
	f.shaders[s.V] = ty
	f.record("CreateShader", ty)
	return s
}
func (f *Functions) CreateTexture() gl.Texture {
	t := gl.Texture{V: f.handle()}
	f.record("CreateTexture", t)
	return t
}
func (f *Functions) DeleteBuffer(b gl.Buffer) {
	f.record("DeleteBuffer", b)
}
func (f *Functions) DeleteFramebuffer(fb gl.Framebuffer) {
	f.record("DeleteFramebuffer", fb)
}
func (f *Functions) DeleteProgram(p gl.Program) {
	f.record("DeleteProgram", p)
}
func (f *Functions) DeleteRenderbuffer(rb gl.Renderbuffer) {
	f.record("DeleteRenderbuffer", rb)
}
func (f *Functions) DeleteShader(s gl.Shader) {
	f.record("DeleteShader", s)
}
func (f *Functions) DeleteTexture(t gl.Texture) {
	f.record("DeleteTexture", t)
}
func (f *Functions) DisableVertexAttribArray(a gl.Attrib) {
	f.record("DisableVertexAttribArray", a)
}
func (f *Functions) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays", mode, first, count)
}
func (f *Functions) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	f.record("DrawElements", mode, count, ty, offset)
}
func (f *Functions) EnableVertexAttribArray(a gl.Attrib) {
	f.record("EnableVertexAttribArray", a)
}
func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbufferTarget gl.Enum, rb gl.Renderbuffer) {
	f.record("FramebufferRenderbuffer", target, attachment, renderbufferTarget, rb)
}
func (f *Functions) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	f.record("FramebufferTexture2D", target, attachment, texTarget, t, level)
}
func (f *Functions) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	f.record("GetAttribLocation", p, name)
	if loc, ok := f.Attribs[name]; ok {
		return gl.Attrib(loc)
	}
	return -1
}
func (f *Functions) GetError() gl.Enum {
	f.record("GetError")
	if len(f.Errors) == 0 {
		return gl.NO_ERROR
	}
	code := f.Errors[0]
	f.Errors = f.Errors[1:]
	return code
}
func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	f.record("GetProgrami", p, pname)
	if pname == gl.LINK_STATUS && f.LinkError != "" {
		return gl.FALSE
	}
	return gl.TRUE
}
func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	f.record("GetProgramInfoLog", p)
	return f.LinkError
}
func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	f.record("GetShaderi", s, pname)
	if _, failed := f.CompileErrors[f.shaders[s.V]]; pname == gl.COMPILE_STATUS && failed {
		return gl.FALSE
	}
	return gl.TRUE
}
func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	f.record("GetShaderInfoLog", s)
	return f.CompileErrors[f.shaders[s.V]]
}
func (f *Functions) GetString(pname gl.Enum) string {
	f.record("GetString", pname)
	if pname == gl.VERSION {
		return f.Version
	}
	return ""
}
func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation", p, name)
	if loc, ok := f.Uniforms[name]; ok {
		return gl.Uniform{V: loc}
	}
	return gl.Uniform{V: -1}
}
func (f *Functions) LinkProgram(p gl.Program) {
	f.record("LinkProgram", p)
}
func (f *Functions) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	f.record("RenderbufferStorage", target, internalFormat, width, height)
}
func (f *Functions) ShaderSource(s gl.Shader, src string) {
	f.record("ShaderSource", s, src)
}
func (f *Functions) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, pixels []byte) {
	f.record("TexImage2D", target, level, internalFormat, width, height, format, ty, append([]byte(nil), pixels...))
}
func (f *Functions) TexParameteri(target, pname gl.Enum, param int) {
	f.record("TexParameteri", target, pname, param)
}
func (f *Functions) TexSubImage2D(target gl.Enum, level int, x, y, width, height int, format, ty gl.Enum, pixels []byte) {
	f.record("TexSubImage2D", target, level, x, y, width, height, format, ty, append([]byte(nil), pixels...))
}
func (f *Functions) Uniform1f(dst gl.Uniform, v float32) {
	f.record("Uniform1f", dst, v)
}
func (f *Functions) Uniform1i(dst gl.Uniform, v int) {
	f.record("Uniform1i", dst, v)
}
func (f *Functions) Uniform1fv(dst gl.Uniform, v []float32) {
	f.record("Uniform1fv", dst, append([]float32(nil), v...))
}
func (f *Functions) Uniform2fv(dst gl.Uniform, v []float32) {
	f.record("Uniform2fv", dst, append([]float32(nil), v...))
}
func (f *Functions) Uniform3fv(dst gl.Uniform, v []float32) {
	f.record("Uniform3fv", dst, append([]float32(nil), v...))
}
func (f *Functions) Uniform4fv(dst gl.Uniform, v []float32) {
	f.record("Uniform4fv", dst, append([]float32(nil), v...))
}
func (f *Functions) Uniform1iv(dst gl.Uniform, v []int32) {
	f.record("Uniform1iv", dst, append([]int32(nil), v...))
}
func (f *Functions) Uniform2iv(dst gl.Uniform, v []int32) {
	f.record("Uniform2iv", dst, append([]int32(nil), v...))
}
func (f *Functions) Uniform3iv(dst gl.Uniform, v []int32) {
	f.record("Uniform3iv", dst, append([]int32(nil), v...))
}
func (f *Functions) Uniform4iv(dst gl.Uniform, v []int32) {
	f.record("Uniform4iv", dst, append([]int32(nil), v...))
}
func (f *Functions) UniformMatrix2fv(dst gl.Uniform, transpose bool, v []float32) {
	f.record("UniformMatrix2fv", dst, transpose, append([]float32(nil), v...))
}
func (f *Functions) UniformMatrix3fv(dst gl.Uniform, transpose bool, v []float32) {
	f.record("UniformMatrix3fv", dst, transpose, append([]float32(nil), v...))
}
func (f *Functions) UniformMatrix4fv(dst gl.Uniform, transpose bool, v []float32) {
	f.record("UniformMatrix4fv", dst, transpose, append([]float32(nil), v...))
}
func (f *Functions) UseProgram(p gl.Program) {
	f.record("UseProgram", p)
}
func (f *Functions) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}
