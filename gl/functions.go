// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the set of graphics entry points igloo calls. Each backend
// provides an adapter; see NewWebGL for browsers and package glcore for
// desktop OpenGL.
//
// Slices passed to the upload functions are only read for the duration
// of the call.
type Functions interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindBuffer(target Enum, b Buffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	BindRenderbuffer(target Enum, rb Renderbuffer)
	BindTexture(target Enum, t Texture)
	// BufferData allocates a new data store of len(src) bytes.
	BufferData(target Enum, src []byte, usage Enum)
	BufferSubData(target Enum, offset int, src []byte)
	CheckFramebufferStatus(target Enum) Enum
	CompileShader(s Shader)
	CopyTexImage2D(target Enum, level int, internalFormat Enum, x, y, width, height int)
	CreateBuffer() Buffer
	CreateFramebuffer() Framebuffer
	CreateProgram() Program
	CreateRenderbuffer() Renderbuffer
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	DeleteBuffer(b Buffer)
	DeleteFramebuffer(fb Framebuffer)
	DeleteProgram(p Program)
	DeleteRenderbuffer(rb Renderbuffer)
	DeleteShader(s Shader)
	DeleteTexture(t Texture)
	DisableVertexAttribArray(a Attrib)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, ty Enum, offset int)
	EnableVertexAttribArray(a Attrib)
	FramebufferRenderbuffer(target, attachment, renderbufferTarget Enum, rb Renderbuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	GetAttribLocation(p Program, name string) Attrib
	GetError() Enum
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetString(pname Enum) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	RenderbufferStorage(target, internalFormat Enum, width, height int)
	ShaderSource(s Shader, src string)
	// TexImage2D allocates storage for the bound texture. A nil pixels
	// slice leaves the contents undefined.
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, pixels []byte)
	TexParameteri(target, pname Enum, param int)
	TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, pixels []byte)
	Uniform1f(dst Uniform, v float32)
	Uniform1i(dst Uniform, v int)
	Uniform1fv(dst Uniform, v []float32)
	Uniform2fv(dst Uniform, v []float32)
	Uniform3fv(dst Uniform, v []float32)
	Uniform4fv(dst Uniform, v []float32)
	Uniform1iv(dst Uniform, v []int32)
	Uniform2iv(dst Uniform, v []int32)
	Uniform3iv(dst Uniform, v []int32)
	Uniform4iv(dst Uniform, v []int32)
	UniformMatrix2fv(dst Uniform, transpose bool, v []float32)
	UniformMatrix3fv(dst Uniform, transpose bool, v []float32)
	UniformMatrix4fv(dst Uniform, transpose bool, v []float32)
	UseProgram(p Program)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
}
