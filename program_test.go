// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package igloo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igloo.dev/gl"
	"igloo.dev/internal/gltest"
)

const (
	testVertex   = "attribute vec2 position;\nvoid main() { gl_Position = vec4(position, 0, 1); }"
	testFragment = "precision mediump float;\nuniform vec3 color;\nvoid main() { gl_FragColor = vec4(color, 1); }"
)

func newTestProgram(t *testing.T, f *gltest.Functions) *Program {
	t.Helper()
	p, err := NewProgram(f, testVertex, testFragment)
	require.NoError(t, err)
	f.Reset()
	return p
}

func TestNewProgram(t *testing.T) {
	f := gltest.New()
	p, err := NewProgram(f, testVertex, testFragment)
	require.NoError(t, err)
	require.NotNil(t, p)

	sources := f.Named("ShaderSource")
	require.Len(t, sources, 2)
	assert.Equal(t, testVertex, sources[0].Args[1])
	assert.Equal(t, testFragment, sources[1].Args[1])
	assert.Equal(t, 2, f.Count("AttachShader"))
	assert.Equal(t, 1, f.Count("LinkProgram"))
	// Shaders are not needed once the program is linked.
	assert.Equal(t, 2, f.Count("DeleteShader"))
	assert.Equal(t, 0, f.Count("DeleteProgram"))
}

func TestNewProgramCompileError(t *testing.T) {
	f := gltest.New()
	f.CompileErrors[gl.FRAGMENT_SHADER] = "0:3: 'colour' : undeclared identifier\n"

	p, err := NewProgram(f, testVertex, testFragment)
	require.Error(t, err)
	assert.Nil(t, p)
	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "fragment", cerr.Stage)
	assert.Contains(t, cerr.Log, "undeclared identifier")
	assert.Equal(t, "igloo: fragment shader compilation failed: 0:3: 'colour' : undeclared identifier", err.Error())
	assert.Equal(t, 0, f.Count("LinkProgram"))
	assert.Equal(t, 1, f.Count("DeleteProgram"))
}

func TestNewProgramVertexCompileError(t *testing.T) {
	f := gltest.New()
	f.CompileErrors[gl.VERTEX_SHADER] = "syntax error"

	_, err := NewProgram(f, testVertex, testFragment)
	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "vertex", cerr.Stage)
	// The fragment shader is never compiled.
	assert.Equal(t, 1, f.Count("CompileShader"))
}

func TestNewProgramLinkError(t *testing.T) {
	f := gltest.New()
	f.LinkError = "varying mismatch"

	_, err := NewProgram(f, testVertex, testFragment)
	var lerr *LinkError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "varying mismatch", lerr.Log)
	assert.Equal(t, 1, f.Count("DeleteProgram"))
	assert.Equal(t, 2, f.Count("DeleteShader"))
}

func TestProgramUse(t *testing.T) {
	f := gltest.New()
	p := newTestProgram(t, f)
	assert.Same(t, p, p.Use())
	require.Equal(t, []string{"UseProgram"}, f.Names())
	assert.Equal(t, p.obj, f.Calls[0].Args[0])
}

func TestProgramUniformMemoized(t *testing.T) {
	f := gltest.New()
	f.Uniforms["time"] = 2
	p := newTestProgram(t, f)

	require.NoError(t, p.Uniform("time", 1.5))
	require.NoError(t, p.Uniform("time", 2.5))
	assert.Equal(t, 1, f.Count("GetUniformLocation"))
	calls := f.Named("Uniform1f")
	require.Len(t, calls, 2)
	assert.Equal(t, gl.Uniform{V: 2}, calls[0].Args[0])
	assert.Equal(t, float32(2.5), calls[1].Args[1])
}

func TestProgramUniformLookupError(t *testing.T) {
	f := gltest.New()
	p := newTestProgram(t, f)

	err := p.Uniform("unused", 1)
	var lerr *LookupError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "unused", lerr.Name)

	// Misses are retried.
	_ = p.Uniform("unused", 1)
	assert.Equal(t, 2, f.Count("GetUniformLocation"))
	assert.Equal(t, 0, f.Count("Uniform1f"))
}

func TestProgramUniformVectors(t *testing.T) {
	f := gltest.New()
	f.Uniforms["color"] = 0
	f.Uniforms["offsets"] = 1
	p := newTestProgram(t, f)

	require.NoError(t, p.Uniform("color", []float64{1, 0.5, 0}))
	calls := f.Named("Uniform3fv")
	require.Len(t, calls, 1)
	assert.Equal(t, []float32{1, 0.5, 0}, calls[0].Args[1])

	require.NoError(t, p.UniformVec("offsets", []float32{0, 1, 2, 3, 4, 5}, false, 2))
	calls = f.Named("Uniform2fv")
	require.Len(t, calls, 1)
	assert.Equal(t, []float32{0, 1, 2, 3, 4, 5}, calls[0].Args[1])
}

func TestProgramUniformInteger(t *testing.T) {
	f := gltest.New()
	f.Uniforms["sampler"] = 4
	f.Uniforms["cells"] = 5
	p := newTestProgram(t, f)

	require.NoError(t, p.Uniformi("sampler", 1))
	calls := f.Named("Uniform1i")
	require.Len(t, calls, 1)
	assert.Equal(t, 1, calls[0].Args[1])

	require.NoError(t, p.Uniformi("cells", []int{16777217, 2}))
	calls = f.Named("Uniform2iv")
	require.Len(t, calls, 1)
	assert.Equal(t, []int32{16777217, 2}, calls[0].Args[1])
}

func TestProgramUniformNumberKinds(t *testing.T) {
	f := gltest.New()
	f.Uniforms["u"] = 1
	p := newTestProgram(t, f)

	require.NoError(t, p.Uniform("u", int64(3)))
	require.NoError(t, p.Uniformi("u", uint8(2)))
	require.NoError(t, p.Uniform("u", [2]float64{0.5, 1}))
	require.NoError(t, p.Uniformi("u", [3]int32{1, 2, 3}))

	require.Len(t, f.Named("Uniform1f"), 1)
	assert.Equal(t, float32(3), f.Named("Uniform1f")[0].Args[1])
	require.Len(t, f.Named("Uniform1i"), 1)
	assert.Equal(t, 2, f.Named("Uniform1i")[0].Args[1])
	require.Len(t, f.Named("Uniform2fv"), 1)
	assert.Equal(t, []float32{0.5, 1}, f.Named("Uniform2fv")[0].Args[1])
	require.Len(t, f.Named("Uniform3iv"), 1)
	assert.Equal(t, []int32{1, 2, 3}, f.Named("Uniform3iv")[0].Args[1])
}

func TestProgramUniformInvalid(t *testing.T) {
	f := gltest.New()
	f.Uniforms["v"] = 0
	p := newTestProgram(t, f)

	for _, v := range []interface{}{"red", []float32{}, []float32{1, 2, 3, 4, 5}, nil} {
		err := p.Uniform("v", v)
		var verr *InvalidValueError
		assert.True(t, errors.As(err, &verr), "value %#v", v)
	}
	assert.Empty(t, f.Named("Uniform1f"))
}

func TestProgramMatrix(t *testing.T) {
	f := gltest.New()
	f.Uniforms["m"] = 3
	p := newTestProgram(t, f)

	identity := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	require.NoError(t, p.Matrix("m", identity, false))
	calls := f.Named("UniformMatrix4fv")
	require.Len(t, calls, 1)
	assert.Equal(t, false, calls[0].Args[1])
	assert.Equal(t, identity, calls[0].Args[2])

	require.NoError(t, p.Matrix("m", make([]float32, 9), true))
	calls = f.Named("UniformMatrix3fv")
	require.Len(t, calls, 1)
	assert.Equal(t, true, calls[0].Args[1])

	require.NoError(t, p.Matrix("m", make([]float32, 4), false))
	assert.Equal(t, 1, f.Count("UniformMatrix2fv"))

	err := p.Matrix("m", make([]float32, 6), false)
	var verr *InvalidValueError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "m", verr.Name)
}

func TestProgramAttrib(t *testing.T) {
	f := gltest.New()
	f.Attribs["position"] = 0
	f.Attribs["uv"] = 1
	p := newTestProgram(t, f)
	b := NewBuffer(f, 0)
	f.Reset()

	p.Attrib("position", b, 2, 0).Attrib("position", b, 2, 0)
	assert.Equal(t, 1, f.Count("GetAttribLocation"))
	assert.Equal(t, 2, f.Count("BindBuffer"))
	ptrs := f.Named("VertexAttribPointer")
	require.Len(t, ptrs, 2)
	assert.Equal(t, []interface{}{gl.Attrib(0), 2, gl.Enum(gl.FLOAT), false, 0, 0}, ptrs[0].Args)

	p.Attrib("uv", b, 2, 16)
	assert.Equal(t, 16, f.Named("VertexAttribPointer")[2].Args[4])
}

func TestProgramAttribUnresolved(t *testing.T) {
	f := gltest.New()
	p := newTestProgram(t, f)
	b := NewBuffer(f, 0)
	f.Reset()

	p.Attrib("removed", b, 3, 0)
	assert.Equal(t, []string{"GetAttribLocation", "BindBuffer"}, f.Names())
}

func TestProgramDisable(t *testing.T) {
	f := gltest.New()
	f.Attribs["position"] = 0
	f.Attribs["uv"] = 1
	f.Uniforms["time"] = 0
	p := newTestProgram(t, f)
	b := NewBuffer(f, 0)
	p.Attrib("position", b, 2, 0).Attrib("uv", b, 2, 0).Attrib("removed", b, 2, 0)
	require.NoError(t, p.Uniform("time", 0))
	f.Reset()

	p.Disable()
	calls := f.Named("DisableVertexAttribArray")
	require.Len(t, calls, 2)
	assert.Equal(t, gl.Attrib(0), calls[0].Args[0])
	assert.Equal(t, gl.Attrib(1), calls[1].Args[0])
	assert.Len(t, f.Calls, 2)
}

func TestProgramDraw(t *testing.T) {
	f := gltest.New()
	p := newTestProgram(t, f)

	require.NoError(t, p.Draw(gl.TRIANGLE_STRIP, 4, 0))
	assert.Equal(t, []interface{}{gl.Enum(gl.TRIANGLE_STRIP), 0, 4}, f.Named("DrawArrays")[0].Args)

	require.NoError(t, p.Draw(gl.TRIANGLES, 6, gl.UNSIGNED_SHORT))
	assert.Equal(t, []interface{}{gl.Enum(gl.TRIANGLES), 6, gl.Enum(gl.UNSIGNED_SHORT), 0}, f.Named("DrawElements")[0].Args)
}

func TestProgramDrawError(t *testing.T) {
	f := gltest.New()
	p := newTestProgram(t, f)
	f.Errors = []gl.Enum{gl.INVALID_OPERATION}

	err := p.Draw(gl.TRIANGLES, 3, 0)
	var rerr *RenderError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, gl.Enum(gl.INVALID_OPERATION), rerr.Code)
	assert.Equal(t, "igloo: rendering error: INVALID_OPERATION", err.Error())

	require.NoError(t, p.Draw(gl.TRIANGLES, 3, 0))
}

func TestProgramRelease(t *testing.T) {
	f := gltest.New()
	p := newTestProgram(t, f)
	p.Release()
	assert.Equal(t, 1, f.Count("DeleteProgram"))
}
