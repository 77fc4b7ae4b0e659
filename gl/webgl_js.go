// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"syscall/js"
)

// WebGL implements Functions for a WebGLRenderingContext.
type WebGL struct {
	Ctx js.Value

	// Cached reference to the typed array constructors.
	uint8Array   js.Value
	float32Array js.Value
	int32Array   js.Value

	// Cached backing store for uploads.
	arrayBuf js.Value
}

var _ Functions = (*WebGL)(nil)

// NewWebGL wraps a WebGLRenderingContext value.
func NewWebGL(ctx js.Value) *WebGL {
	g := js.Global()
	return &WebGL{
		Ctx:          ctx,
		uint8Array:   g.Get("Uint8Array"),
		float32Array: g.Get("Float32Array"),
		int32Array:   g.Get("Int32Array"),
	}
}

func (f *WebGL) ActiveTexture(t Enum) {
	f.Ctx.Call("activeTexture", int(t))
}
func (f *WebGL) AttachShader(p Program, s Shader) {
	f.Ctx.Call("attachShader", js.Value(p), js.Value(s))
}
func (f *WebGL) BindBuffer(target Enum, b Buffer) {
	f.Ctx.Call("bindBuffer", int(target), js.Value(b))
}
func (f *WebGL) BindFramebuffer(target Enum, fb Framebuffer) {
	v := js.Value(fb)
	if !fb.Valid() {
		v = js.Null()
	}
	f.Ctx.Call("bindFramebuffer", int(target), v)
}
func (f *WebGL) BindRenderbuffer(target Enum, rb Renderbuffer) {
	f.Ctx.Call("bindRenderbuffer", int(target), js.Value(rb))
}
func (f *WebGL) BindTexture(target Enum, t Texture) {
	f.Ctx.Call("bindTexture", int(target), js.Value(t))
}
func (f *WebGL) BufferData(target Enum, src []byte, usage Enum) {
	if len(src) == 0 {
		f.Ctx.Call("bufferData", int(target), 0, int(usage))
		return
	}
	f.Ctx.Call("bufferData", int(target), f.byteArrayOf(src), int(usage))
}
func (f *WebGL) BufferSubData(target Enum, offset int, src []byte) {
	// bufferSubData rejects a null source.
	if len(src) == 0 {
		return
	}
	f.Ctx.Call("bufferSubData", int(target), offset, f.byteArrayOf(src))
}
func (f *WebGL) CheckFramebufferStatus(target Enum) Enum {
	return Enum(f.Ctx.Call("checkFramebufferStatus", int(target)).Int())
}
func (f *WebGL) CompileShader(s Shader) {
	f.Ctx.Call("compileShader", js.Value(s))
}
func (f *WebGL) CopyTexImage2D(target Enum, level int, internalFormat Enum, x, y, width, height int) {
	f.Ctx.Call("copyTexImage2D", int(target), level, int(internalFormat), x, y, width, height, 0)
}
func (f *WebGL) CreateBuffer() Buffer {
	return Buffer(f.Ctx.Call("createBuffer"))
}
func (f *WebGL) CreateFramebuffer() Framebuffer {
	return Framebuffer(f.Ctx.Call("createFramebuffer"))
}
func (f *WebGL) CreateProgram() Program {
	return Program(f.Ctx.Call("createProgram"))
}
func (f *WebGL) CreateRenderbuffer() Renderbuffer {
	return Renderbuffer(f.Ctx.Call("createRenderbuffer"))
}
func (f *WebGL) CreateShader(ty Enum) Shader {
	return Shader(f.Ctx.Call("createShader", int(ty)))
}
func (f *WebGL) CreateTexture() Texture {
	return Texture(f.Ctx.Call("createTexture"))
}
func (f *WebGL) DeleteBuffer(v Buffer) {
	f.Ctx.Call("deleteBuffer", js.Value(v))
}
func (f *WebGL) DeleteFramebuffer(v Framebuffer) {
	f.Ctx.Call("deleteFramebuffer", js.Value(v))
}
func (f *WebGL) DeleteProgram(p Program) {
	f.Ctx.Call("deleteProgram", js.Value(p))
}
func (f *WebGL) DeleteRenderbuffer(v Renderbuffer) {
	f.Ctx.Call("deleteRenderbuffer", js.Value(v))
}
func (f *WebGL) DeleteShader(s Shader) {
	f.Ctx.Call("deleteShader", js.Value(s))
}
func (f *WebGL) DeleteTexture(v Texture) {
	f.Ctx.Call("deleteTexture", js.Value(v))
}
func (f *WebGL) DisableVertexAttribArray(a Attrib) {
	f.Ctx.Call("disableVertexAttribArray", int(a))
}
func (f *WebGL) DrawArrays(mode Enum, first, count int) {
	f.Ctx.Call("drawArrays", int(mode), first, count)
}
func (f *WebGL) DrawElements(mode Enum, count int, ty Enum, offset int) {
	f.Ctx.Call("drawElements", int(mode), count, int(ty), offset)
}
func (f *WebGL) EnableVertexAttribArray(a Attrib) {
	f.Ctx.Call("enableVertexAttribArray", int(a))
}
func (f *WebGL) FramebufferRenderbuffer(target, attachment, renderbufferTarget Enum, rb Renderbuffer) {
	f.Ctx.Call("framebufferRenderbuffer", int(target), int(attachment), int(renderbufferTarget), js.Value(rb))
}
func (f *WebGL) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	f.Ctx.Call("framebufferTexture2D", int(target), int(attachment), int(texTarget), js.Value(t), level)
}
func (f *WebGL) GetAttribLocation(p Program, name string) Attrib {
	return Attrib(f.Ctx.Call("getAttribLocation", js.Value(p), name).Int())
}
func (f *WebGL) GetError() Enum {
	return Enum(f.Ctx.Call("getError").Int())
}
func (f *WebGL) GetProgrami(p Program, pname Enum) int {
	return paramVal(f.Ctx.Call("getProgramParameter", js.Value(p), int(pname)))
}
func (f *WebGL) GetProgramInfoLog(p Program) string {
	return f.Ctx.Call("getProgramInfoLog", js.Value(p)).String()
}
func (f *WebGL) GetShaderi(s Shader, pname Enum) int {
	return paramVal(f.Ctx.Call("getShaderParameter", js.Value(s), int(pname)))
}
func (f *WebGL) GetShaderInfoLog(s Shader) string {
	return f.Ctx.Call("getShaderInfoLog", js.Value(s)).String()
}
func (f *WebGL) GetString(pname Enum) string {
	return f.Ctx.Call("getParameter", int(pname)).String()
}
func (f *WebGL) GetUniformLocation(p Program, name string) Uniform {
	return Uniform(f.Ctx.Call("getUniformLocation", js.Value(p), name))
}
func (f *WebGL) LinkProgram(p Program) {
	f.Ctx.Call("linkProgram", js.Value(p))
}
func (f *WebGL) RenderbufferStorage(target, internalFormat Enum, width, height int) {
	f.Ctx.Call("renderbufferStorage", int(target), int(internalFormat), width, height)
}
func (f *WebGL) ShaderSource(s Shader, src string) {
	f.Ctx.Call("shaderSource", js.Value(s), src)
}
func (f *WebGL) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, pixels []byte) {
	f.Ctx.Call("texImage2D", int(target), level, int(internalFormat), width, height, 0, int(format), int(ty), f.pixelsOf(pixels, ty))
}
func (f *WebGL) TexParameteri(target, pname Enum, param int) {
	f.Ctx.Call("texParameteri", int(target), int(pname), param)
}
func (f *WebGL) TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	f.Ctx.Call("texSubImage2D", int(target), level, x, y, width, height, int(format), int(ty), f.pixelsOf(pixels, ty))
}
func (f *WebGL) Uniform1f(dst Uniform, v float32) {
	f.Ctx.Call("uniform1f", js.Value(dst), v)
}
func (f *WebGL) Uniform1i(dst Uniform, v int) {
	f.Ctx.Call("uniform1i", js.Value(dst), v)
}
func (f *WebGL) Uniform1fv(dst Uniform, v []float32) {
	f.Ctx.Call("uniform1fv", js.Value(dst), f.float32ArrayOf(v))
}
func (f *WebGL) Uniform2fv(dst Uniform, v []float32) {
	f.Ctx.Call("uniform2fv", js.Value(dst), f.float32ArrayOf(v))
}
func (f *WebGL) Uniform3fv(dst Uniform, v []float32) {
	f.Ctx.Call("uniform3fv", js.Value(dst), f.float32ArrayOf(v))
}
func (f *WebGL) Uniform4fv(dst Uniform, v []float32) {
	f.Ctx.Call("uniform4fv", js.Value(dst), f.float32ArrayOf(v))
}
func (f *WebGL) Uniform1iv(dst Uniform, v []int32) {
	f.Ctx.Call("uniform1iv", js.Value(dst), f.int32ArrayOf(v))
}
func (f *WebGL) Uniform2iv(dst Uniform, v []int32) {
	f.Ctx.Call("uniform2iv", js.Value(dst), f.int32ArrayOf(v))
}
func (f *WebGL) Uniform3iv(dst Uniform, v []int32) {
	f.Ctx.Call("uniform3iv", js.Value(dst), f.int32ArrayOf(v))
}
func (f *WebGL) Uniform4iv(dst Uniform, v []int32) {
	f.Ctx.Call("uniform4iv", js.Value(dst), f.int32ArrayOf(v))
}
func (f *WebGL) UniformMatrix2fv(dst Uniform, transpose bool, v []float32) {
	f.Ctx.Call("uniformMatrix2fv", js.Value(dst), transpose, f.float32ArrayOf(v))
}
func (f *WebGL) UniformMatrix3fv(dst Uniform, transpose bool, v []float32) {
	f.Ctx.Call("uniformMatrix3fv", js.Value(dst), transpose, f.float32ArrayOf(v))
}
func (f *WebGL) UniformMatrix4fv(dst Uniform, transpose bool, v []float32) {
	f.Ctx.Call("uniformMatrix4fv", js.Value(dst), transpose, f.float32ArrayOf(v))
}
func (f *WebGL) UseProgram(p Program) {
	f.Ctx.Call("useProgram", js.Value(p))
}
func (f *WebGL) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	f.Ctx.Call("vertexAttribPointer", int(dst), size, int(ty), normalized, stride, offset)
}

// pixelsOf returns a view of data matching the array type WebGL expects
// for ty. FLOAT uploads must be Float32Arrays.
func (f *WebGL) pixelsOf(data []byte, ty Enum) js.Value {
	ba := f.byteArrayOf(data)
	if ba.IsNull() || ty != FLOAT {
		return ba
	}
	return f.float32Array.New(ba.Get("buffer"), ba.Get("byteOffset"), len(data)/4)
}

func (f *WebGL) byteArrayOf(data []byte) js.Value {
	if len(data) == 0 {
		return js.Null()
	}
	f.resizeByteBuffer(len(data))
	ba := f.uint8Array.New(f.arrayBuf, int(0), int(len(data)))
	js.CopyBytesToJS(ba, data)
	return ba
}

func (f *WebGL) resizeByteBuffer(n int) {
	if !f.arrayBuf.IsUndefined() && f.arrayBuf.Get("byteLength").Int() >= n {
		return
	}
	f.arrayBuf = js.Global().Get("ArrayBuffer").New(n)
}

func (f *WebGL) float32ArrayOf(v []float32) js.Value {
	arr := f.float32Array.New(len(v))
	for i, x := range v {
		arr.SetIndex(i, x)
	}
	return arr
}

func (f *WebGL) int32ArrayOf(v []int32) js.Value {
	arr := f.int32Array.New(len(v))
	for i, x := range v {
		arr.SetIndex(i, x)
	}
	return arr
}

func paramVal(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if b := v.Bool(); b {
			return 1
		} else {
			return 0
		}
	case js.TypeNumber:
		return v.Int()
	default:
		panic("unknown parameter type")
	}
}
