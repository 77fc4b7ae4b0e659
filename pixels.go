// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"encoding/binary"
	"image"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/draw"
	"golang.org/x/sys/cpu"

	"igloo.dev/gl"
)

// Number is the set of element types accepted by the numeric sequence
// helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// byteOrder is the native order GL expects for multi-byte uploads.
var byteOrder binary.ByteOrder = binary.LittleEndian

func init() {
	if cpu.IsBigEndian {
		byteOrder = binary.BigEndian
	}
}

// Floats converts a numeric sequence to the float32 layout used by vertex
// buffers and float uniforms.
func Floats[T Number](s []T) []float32 {
	if s == nil {
		return nil
	}
	f := make([]float32, len(s))
	for i, v := range s {
		f[i] = float32(v)
	}
	return f
}

// Indices16 encodes a numeric sequence as UNSIGNED_SHORT element indices.
func Indices16[T constraints.Integer](s []T) []byte {
	b := make([]byte, 2*len(s))
	for i, v := range s {
		byteOrder.PutUint16(b[2*i:], uint16(v))
	}
	return b
}

// float32Bytes returns the native byte representation of v.
func float32Bytes(v []float32) []byte {
	if v == nil {
		return nil
	}
	b := make([]byte, 4*len(v))
	for i, f := range v {
		byteOrder.PutUint32(b[4*i:], math.Float32bits(f))
	}
	return b
}

// texels normalizes a numeric sequence for a texture of component type
// ty: FLOAT textures take float32 components, every other type takes
// bytes.
func texels(data []float64, ty gl.Enum) []byte {
	if data == nil {
		return nil
	}
	if ty == gl.FLOAT {
		return float32Bytes(Floats(data))
	}
	b := make([]byte, len(data))
	for i, v := range data {
		b[i] = toUint8(v)
	}
	return b
}

// toUint8 truncates v and wraps it modulo 256. NaN and infinities map to
// zero.
func toUint8(v float64) byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(v), 256)
	if m < 0 {
		m += 256
	}
	return byte(m)
}

// components returns the number of components per pixel for format.
func components(format gl.Enum) int {
	switch format {
	case gl.RGBA:
		return 4
	case gl.RGB:
		return 3
	case gl.LUMINANCE_ALPHA:
		return 2
	default:
		return 1
	}
}

// imagePixels converts img into tightly packed rows of the given format
// and component type.
func imagePixels(img image.Image, format, ty gl.Enum) (pix []byte, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	src, ok := img.(*image.NRGBA)
	if !ok || src.Rect.Min != (image.Point{}) || src.Stride != 4*width {
		src = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
	}
	n := components(format)
	comps := make([]byte, 0, n*width*height)
	// A sub-image shares Pix with its parent past the last row.
	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+4*width]
		for i := 0; i < len(row); i += 4 {
			r, g, bl, a := row[i], row[i+1], row[i+2], row[i+3]
			switch format {
			case gl.RGBA:
				comps = append(comps, r, g, bl, a)
			case gl.RGB:
				comps = append(comps, r, g, bl)
			case gl.LUMINANCE_ALPHA:
				comps = append(comps, luminance(r, g, bl), a)
			case gl.ALPHA:
				comps = append(comps, a)
			default:
				comps = append(comps, luminance(r, g, bl))
			}
		}
	}
	if ty != gl.FLOAT {
		return comps, width, height
	}
	f := make([]float32, len(comps))
	for i, c := range comps {
		f[i] = float32(c) / 0xff
	}
	return float32Bytes(f), width, height
}

// luminance matches the weights of image/color.GrayModel.
func luminance(r, g, b byte) byte {
	y := (19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16
	return byte(y)
}
