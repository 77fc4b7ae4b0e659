// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"reflect"

	"igloo.dev/gl"
)

// uniformKind selects a uniform upload entry point.
type uniformKind uint8

const (
	uniformFloat uniformKind = iota
	uniformInt
	uniformVec1f
	uniformVec2f
	uniformVec3f
	uniformVec4f
	uniformVec1i
	uniformVec2i
	uniformVec3i
	uniformVec4i
	uniformMat2
	uniformMat3
	uniformMat4
)

// uniformValue is a classified uniform upload.
type uniformValue struct {
	kind      uniformKind
	f         float32
	i         int
	fv        []float32
	iv        []int32
	transpose bool
}

var uniformFuncs = [...]func(f gl.Functions, u gl.Uniform, v *uniformValue){
	uniformFloat: func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.Uniform1f(u, v.f) },
	uniformInt:   func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.Uniform1i(u, v.i) },
	uniformVec1f: func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.Uniform1fv(u, v.fv) },
	uniformVec2f: func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.Uniform2fv(u, v.fv) },
	uniformVec3f: func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.Uniform3fv(u, v.fv) },
	uniformVec4f: func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.Uniform4fv(u, v.fv) },
	uniformVec1i: func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.Uniform1iv(u, v.iv) },
	uniformVec2i: func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.Uniform2iv(u, v.iv) },
	uniformVec3i: func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.Uniform3iv(u, v.iv) },
	uniformVec4i: func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.Uniform4iv(u, v.iv) },
	uniformMat2:  func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.UniformMatrix2fv(u, v.transpose, v.fv) },
	uniformMat3:  func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.UniformMatrix3fv(u, v.transpose, v.fv) },
	uniformMat4:  func(f gl.Functions, u gl.Uniform, v *uniformValue) { f.UniformMatrix4fv(u, v.transpose, v.fv) },
}

func (v *uniformValue) upload(f gl.Functions, u gl.Uniform) {
	uniformFuncs[v.kind](f, u, v)
}

// classifyUniform matches value against the supported shapes: booleans,
// numbers of any kind, and slices or arrays of numbers. Vectors use dim
// components per element, or the length of value if dim is zero.
func classifyUniform(value interface{}, integer bool, dim int) (uniformValue, bool) {
	var (
		fv []float32
		iv []int32
	)
	switch v := value.(type) {
	case []float32:
		fv = v
	case []int32:
		iv = v
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Bool:
			var n int64
			if rv.Bool() {
				n = 1
			}
			return intUniform(n, integer), true
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return intUniform(rv.Int(), integer), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return intUniform(int64(rv.Uint()), integer), true
		case reflect.Float32, reflect.Float64:
			return floatUniform(rv.Float(), integer), true
		case reflect.Slice, reflect.Array:
			var ok bool
			if fv, iv, ok = uniformElems(rv); !ok {
				return uniformValue{}, false
			}
		default:
			return uniformValue{}, false
		}
	}
	n := len(fv) + len(iv)
	if dim == 0 {
		dim = n
	}
	if n == 0 || dim < 1 || dim > 4 {
		return uniformValue{}, false
	}
	if integer {
		if iv == nil {
			iv = make([]int32, len(fv))
			for i, f := range fv {
				iv[i] = int32(f)
			}
		}
		return uniformValue{kind: uniformVec1i + uniformKind(dim-1), iv: iv}, true
	}
	if fv == nil {
		fv = Floats(iv)
	}
	return uniformValue{kind: uniformVec1f + uniformKind(dim-1), fv: fv}, true
}

// uniformElems converts a slice or array of numbers. Integer elements are
// returned in iv, floating point elements in fv.
func uniformElems(rv reflect.Value) (fv []float32, iv []int32, ok bool) {
	n := rv.Len()
	switch rv.Type().Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		iv = make([]int32, n)
		for i := range iv {
			iv[i] = int32(rv.Index(i).Int())
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		iv = make([]int32, n)
		for i := range iv {
			iv[i] = int32(rv.Index(i).Uint())
		}
	case reflect.Float32, reflect.Float64:
		fv = make([]float32, n)
		for i := range fv {
			fv[i] = float32(rv.Index(i).Float())
		}
	default:
		return nil, nil, false
	}
	return fv, iv, true
}

func intUniform(v int64, integer bool) uniformValue {
	if integer {
		return uniformValue{kind: uniformInt, i: int(v)}
	}
	return uniformValue{kind: uniformFloat, f: float32(v)}
}

func floatUniform(v float64, integer bool) uniformValue {
	if integer {
		return uniformValue{kind: uniformInt, i: int(v)}
	}
	return uniformValue{kind: uniformFloat, f: float32(v)}
}

// classifyMatrix picks the square matrix entry point for a flattened
// matrix of 4, 9 or 16 elements.
func classifyMatrix(m []float32, transpose bool) (uniformValue, bool) {
	v := uniformValue{fv: m, transpose: transpose}
	switch len(m) {
	case 4:
		v.kind = uniformMat2
	case 9:
		v.kind = uniformMat3
	case 16:
		v.kind = uniformMat4
	default:
		return uniformValue{}, false
	}
	return v, true
}
