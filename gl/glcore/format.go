// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package glcore

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	igl "igloo.dev/gl"
)

// coreFormat maps the single and dual channel formats removed from the
// core profile onto RED and RG. The returned swizzle restores the
// channel layout shaders expect from the original format. ok is false
// for formats that need no mapping.
func coreFormat(format igl.Enum) (core uint32, swizzle [4]int32, ok bool) {
	switch format {
	case igl.LUMINANCE:
		return gl.RED, [4]int32{gl.RED, gl.RED, gl.RED, gl.ONE}, true
	case igl.LUMINANCE_ALPHA:
		return gl.RG, [4]int32{gl.RED, gl.RED, gl.RED, gl.GREEN}, true
	case igl.ALPHA:
		return gl.RED, [4]int32{gl.ZERO, gl.ZERO, gl.ZERO, gl.RED}, true
	}
	return uint32(format), [4]int32{gl.RED, gl.GREEN, gl.BLUE, gl.ALPHA}, false
}

// allocFormat maps the formats of a texture allocation and updates the
// swizzle of the texture bound to target to match.
func allocFormat(target, internalFormat igl.Enum) uint32 {
	core, swizzle, _ := coreFormat(internalFormat)
	gl.TexParameteriv(uint32(target), gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])
	return core
}
