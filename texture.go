// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"image"

	"igloo.dev/gl"
)

// TextureOptions configures a Texture. Zero fields take the defaults
// listed per field.
type TextureOptions struct {
	// Format is the pixel format. Default RGBA.
	Format gl.Enum
	// Wrap is applied to both texture axes. Default CLAMP_TO_EDGE.
	Wrap gl.Enum
	// Filter is used for minification and magnification. Default LINEAR.
	Filter gl.Enum
	// Type is the component type. Default UNSIGNED_BYTE.
	Type gl.Enum
	// InternalFormat is the storage format. Default Format.
	InternalFormat gl.Enum
}

// Texture is a 2D image resource.
type Texture struct {
	funcs          gl.Functions
	obj            gl.Texture
	format         gl.Enum
	internalFormat gl.Enum
	typ            gl.Enum
}

// NewTexture creates a texture with the options applied and leaves it
// bound to TEXTURE_2D.
func NewTexture(f gl.Functions, opts TextureOptions) *Texture {
	if opts.Format == 0 {
		opts.Format = gl.RGBA
	}
	if opts.Wrap == 0 {
		opts.Wrap = gl.CLAMP_TO_EDGE
	}
	if opts.Filter == 0 {
		opts.Filter = gl.LINEAR
	}
	if opts.Type == 0 {
		opts.Type = gl.UNSIGNED_BYTE
	}
	if opts.InternalFormat == 0 {
		opts.InternalFormat = opts.Format
	}
	t := &Texture{
		funcs:          f,
		obj:            f.CreateTexture(),
		format:         opts.Format,
		internalFormat: opts.InternalFormat,
		typ:            opts.Type,
	}
	f.BindTexture(gl.TEXTURE_2D, t.obj)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int(opts.Wrap))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int(opts.Wrap))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int(opts.Filter))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int(opts.Filter))
	return t
}

// Bind binds the texture to TEXTURE_2D. A non-negative unit is made the
// active texture unit first.
func (t *Texture) Bind(unit int) *Texture {
	if unit >= 0 {
		t.funcs.ActiveTexture(gl.Enum(gl.TEXTURE0 + unit))
	}
	t.funcs.BindTexture(gl.TEXTURE_2D, t.obj)
	return t
}

// Blank allocates width×height storage without uploading pixels.
func (t *Texture) Blank(width, height int) *Texture {
	t.Bind(-1)
	t.funcs.TexImage2D(gl.TEXTURE_2D, 0, t.internalFormat, width, height, t.format, t.typ, nil)
	return t
}

// Set replaces the image with width×height pixels given as plain numbers.
// They are stored as float32 for FLOAT textures and as bytes otherwise.
func (t *Texture) Set(data []float64, width, height int) *Texture {
	return t.SetPixels(texels(data, t.typ), width, height)
}

// SetPixels replaces the image with pixels already in the texture's
// format and type.
func (t *Texture) SetPixels(pix []byte, width, height int) *Texture {
	t.Bind(-1)
	t.funcs.TexImage2D(gl.TEXTURE_2D, 0, t.internalFormat, width, height, t.format, t.typ, pix)
	return t
}

// SetImage replaces the image with img, sized to its bounds.
func (t *Texture) SetImage(img image.Image) *Texture {
	pix, w, h := imagePixels(img, t.format, t.typ)
	return t.SetPixels(pix, w, h)
}

// Subset writes width×height plain-number pixels at (x, y) without
// reallocating. The region is not checked against the allocated size.
func (t *Texture) Subset(data []float64, x, y, width, height int) *Texture {
	return t.SubsetPixels(texels(data, t.typ), x, y, width, height)
}

// SubsetPixels is like Subset for pixels already in the texture's format
// and type. An empty pix is a no-op.
func (t *Texture) SubsetPixels(pix []byte, x, y, width, height int) *Texture {
	if len(pix) == 0 {
		return t
	}
	t.Bind(-1)
	t.funcs.TexSubImage2D(gl.TEXTURE_2D, 0, x, y, width, height, t.format, t.typ, pix)
	return t
}

// SubsetImage writes img at (x, y).
func (t *Texture) SubsetImage(img image.Image, x, y int) *Texture {
	pix, w, h := imagePixels(img, t.format, t.typ)
	return t.SubsetPixels(pix, x, y, w, h)
}

// Copy replaces the image with a region of the bound render target.
func (t *Texture) Copy(x, y, width, height int) *Texture {
	t.Bind(-1)
	t.funcs.CopyTexImage2D(gl.TEXTURE_2D, 0, t.internalFormat, x, y, width, height)
	return t
}

// Format returns the pixel format.
func (t *Texture) Format() gl.Enum { return t.format }

// Type returns the component type.
func (t *Texture) Type() gl.Enum { return t.typ }

// Release deletes the GPU texture.
func (t *Texture) Release() {
	t.funcs.DeleteTexture(t.obj)
}
