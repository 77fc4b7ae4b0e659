// SPDX-License-Identifier: Unlicense OR MIT

// Package gl defines the subset of the OpenGL ES 2.0 / WebGL 1 API that
// igloo drives, along with adapters for concrete graphics backends.
package gl

type (
	// Attrib is a vertex attribute location. Negative values mean the
	// attribute did not resolve in the linked program.
	Attrib int
	Enum   uint
)

// Valid reports whether the location refers to an active attribute.
func (a Attrib) Valid() bool {
	return a >= 0
}

const (
	ALPHA                   = 0x1906
	ARRAY_BUFFER            = 0x8892
	BYTE                    = 0x1400
	CLAMP_TO_EDGE           = 0x812f
	COLOR_ATTACHMENT0       = 0x8ce0
	COMPILE_STATUS          = 0x8b81
	DEPTH_ATTACHMENT        = 0x8d00
	DEPTH_COMPONENT16       = 0x81a5
	DYNAMIC_DRAW            = 0x88e8
	ELEMENT_ARRAY_BUFFER    = 0x8893
	FALSE                   = 0
	FLOAT                   = 0x1406
	FRAGMENT_SHADER         = 0x8b30
	FRAMEBUFFER             = 0x8d40
	FRAMEBUFFER_COMPLETE    = 0x8cd5
	INFO_LOG_LENGTH         = 0x8b84
	INT                     = 0x1404
	INVALID_ENUM            = 0x500
	INVALID_FRAMEBUFFER_OP  = 0x506
	INVALID_OPERATION       = 0x502
	INVALID_VALUE           = 0x501
	LINEAR                  = 0x2601
	LINES                   = 0x1
	LINE_LOOP               = 0x2
	LINE_STRIP              = 0x3
	LINK_STATUS             = 0x8b82
	LUMINANCE               = 0x1909
	LUMINANCE_ALPHA         = 0x190a
	MIRRORED_REPEAT         = 0x8370
	NEAREST                 = 0x2600
	NO_ERROR                = 0x0
	OUT_OF_MEMORY           = 0x505
	POINTS                  = 0x0
	RED                     = 0x1903
	RENDERBUFFER            = 0x8d41
	REPEAT                  = 0x2901
	RGB                     = 0x1907
	RGBA                    = 0x1908
	SHORT                   = 0x1402
	STATIC_DRAW             = 0x88e4
	STREAM_DRAW             = 0x88e0
	TEXTURE_2D              = 0xde1
	TEXTURE_MAG_FILTER      = 0x2800
	TEXTURE_MIN_FILTER      = 0x2801
	TEXTURE_WRAP_S          = 0x2802
	TEXTURE_WRAP_T          = 0x2803
	TEXTURE0                = 0x84c0
	TRIANGLE_FAN            = 0x6
	TRIANGLE_STRIP          = 0x5
	TRIANGLES               = 0x4
	TRUE                    = 1
	UNPACK_ALIGNMENT        = 0xcf5
	UNSIGNED_BYTE           = 0x1401
	UNSIGNED_INT            = 0x1405
	UNSIGNED_SHORT          = 0x1403
	VERSION                 = 0x1f02
	VERTEX_SHADER           = 0x8b31
	ZERO                    = 0x0
)
