// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"igloo.dev/gl"
)

// Program is a linked vertex and fragment shader pair.
type Program struct {
	funcs    gl.Functions
	obj      gl.Program
	uniforms map[string]gl.Uniform
	attribs  map[string]gl.Attrib
	// order lists attribute names in resolution order.
	order []string
}

// NewProgram compiles and links a program from GLSL sources. A failed
// program is unusable; build a new one.
func NewProgram(f gl.Functions, vertex, fragment string) (*Program, error) {
	prog := f.CreateProgram()
	vs, err := compileShader(f, gl.VERTEX_SHADER, vertex)
	if err != nil {
		f.DeleteProgram(prog)
		return nil, err
	}
	defer f.DeleteShader(vs)
	fs, err := compileShader(f, gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		f.DeleteProgram(prog)
		return nil, err
	}
	defer f.DeleteShader(fs)
	f.AttachShader(prog, vs)
	f.AttachShader(prog, fs)
	f.LinkProgram(prog)
	if f.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		log := f.GetProgramInfoLog(prog)
		f.DeleteProgram(prog)
		return nil, &LinkError{Log: log}
	}
	Logger().Debug("igloo: program linked")
	return &Program{
		funcs:    f,
		obj:      prog,
		uniforms: make(map[string]gl.Uniform),
		attribs:  make(map[string]gl.Attrib),
	}, nil
}

func compileShader(f gl.Functions, typ gl.Enum, src string) (gl.Shader, error) {
	sh := f.CreateShader(typ)
	f.ShaderSource(sh, src)
	f.CompileShader(sh)
	if f.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		log := f.GetShaderInfoLog(sh)
		f.DeleteShader(sh)
		stage := "vertex"
		if typ == gl.FRAGMENT_SHADER {
			stage = "fragment"
		}
		return sh, &CompileError{Stage: stage, Log: log}
	}
	return sh, nil
}

// Use makes p the current program.
func (p *Program) Use() *Program {
	p.funcs.UseProgram(p.obj)
	return p
}

// uniform returns the memoized location of a uniform. Misses are not
// cached.
func (p *Program) uniform(name string) (gl.Uniform, error) {
	if u, ok := p.uniforms[name]; ok {
		return u, nil
	}
	u := p.funcs.GetUniformLocation(p.obj, name)
	if !u.Valid() {
		return u, &LookupError{Name: name}
	}
	p.uniforms[name] = u
	return u, nil
}

// Uniform sets a float uniform of the current program. Scalars (numbers
// and booleans) use the scalar entry point. Slices and arrays use the
// vector entry point sized by their length.
func (p *Program) Uniform(name string, value interface{}) error {
	return p.UniformVec(name, value, false, 0)
}

// Uniformi is like Uniform for integer (and sampler) uniforms.
func (p *Program) Uniformi(name string, value interface{}) error {
	return p.UniformVec(name, value, true, 0)
}

// UniformVec sets a uniform with explicit integer flag and vector size.
// A dim of zero sizes vectors by their length; otherwise the value is
// uploaded as a sequence of dim-component vectors, as for uniform arrays.
func (p *Program) UniformVec(name string, value interface{}, integer bool, dim int) error {
	u, err := p.uniform(name)
	if err != nil {
		return err
	}
	v, ok := classifyUniform(value, integer, dim)
	if !ok {
		return &InvalidValueError{Name: name, Value: value}
	}
	v.upload(p.funcs, u)
	return nil
}

// Matrix sets a square matrix uniform from its 4, 9 or 16 elements in
// column-major order unless transpose is set.
func (p *Program) Matrix(name string, m []float32, transpose bool) error {
	u, err := p.uniform(name)
	if err != nil {
		return err
	}
	v, ok := classifyMatrix(m, transpose)
	if !ok {
		return &InvalidValueError{Name: name, Value: m}
	}
	v.upload(p.funcs, u)
	return nil
}

// Attrib sources the named attribute from buf, size float components per
// vertex, stride bytes apart. An attribute the linker removed is left
// disabled.
func (p *Program) Attrib(name string, buf *Buffer, size, stride int) *Program {
	loc, ok := p.attribs[name]
	if !ok {
		loc = p.funcs.GetAttribLocation(p.obj, name)
		p.attribs[name] = loc
		p.order = append(p.order, name)
	}
	buf.Bind()
	if loc.Valid() {
		p.funcs.EnableVertexAttribArray(loc)
		p.funcs.VertexAttribPointer(loc, size, gl.FLOAT, false, stride, 0)
	}
	return p
}

// Draw draws count vertices, or count indices from the bound element
// buffer if indexType is non-zero, and reports any driver error.
func (p *Program) Draw(mode gl.Enum, count int, indexType gl.Enum) error {
	if indexType == 0 {
		p.funcs.DrawArrays(mode, 0, count)
	} else {
		p.funcs.DrawElements(mode, count, indexType, 0)
	}
	if code := p.funcs.GetError(); code != gl.NO_ERROR {
		return &RenderError{Code: code}
	}
	return nil
}

// Disable disables the vertex arrays of every attribute set through
// Attrib.
func (p *Program) Disable() *Program {
	for _, name := range p.order {
		if loc := p.attribs[name]; loc.Valid() {
			p.funcs.DisableVertexAttribArray(loc)
		}
	}
	return p
}

// Release deletes the GPU program.
func (p *Program) Release() {
	p.funcs.DeleteProgram(p.obj)
}
