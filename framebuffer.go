// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"igloo.dev/gl"
)

// Framebuffer is a render target. The zero handle denotes the default
// surface of the canvas.
type Framebuffer struct {
	funcs    gl.Functions
	obj      gl.Framebuffer
	depthBuf gl.Renderbuffer
	hasDepth bool
}

// NewFramebuffer creates an off-screen framebuffer.
func NewFramebuffer(f gl.Functions) *Framebuffer {
	return WrapFramebuffer(f, f.CreateFramebuffer())
}

// WrapFramebuffer wraps an existing framebuffer. The zero gl.Framebuffer
// wraps the default surface.
func WrapFramebuffer(f gl.Functions, fbo gl.Framebuffer) *Framebuffer {
	return &Framebuffer{funcs: f, obj: fbo}
}

// Bind makes the framebuffer the target of subsequent draws.
func (fb *Framebuffer) Bind() *Framebuffer {
	fb.funcs.BindFramebuffer(gl.FRAMEBUFFER, fb.obj)
	return fb
}

// Unbind makes the default surface the target of subsequent draws.
func (fb *Framebuffer) Unbind() *Framebuffer {
	fb.funcs.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{})
	return fb
}

// Attach attaches tex as color attachment i, replacing any previous
// attachment there. Attaching at index 0 binds the framebuffer.
func (fb *Framebuffer) Attach(tex *Texture, i int) *Framebuffer {
	if i == 0 {
		fb.Bind()
	}
	fb.funcs.FramebufferTexture2D(gl.FRAMEBUFFER, gl.Enum(gl.COLOR_ATTACHMENT0+i), gl.TEXTURE_2D, tex.obj, 0)
	return fb
}

// AttachDepth creates and attaches a 16 bit depth renderbuffer of the
// given size. Only the first call allocates; later calls keep the
// original renderbuffer whatever their size. To resize, release the
// framebuffer and create a new one.
func (fb *Framebuffer) AttachDepth(width, height int) *Framebuffer {
	fb.Bind()
	if fb.hasDepth {
		return fb
	}
	f := fb.funcs
	fb.depthBuf = f.CreateRenderbuffer()
	fb.hasDepth = true
	f.BindRenderbuffer(gl.RENDERBUFFER, fb.depthBuf)
	f.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, width, height)
	f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depthBuf)
	return fb
}

// Status binds the framebuffer and returns its completeness status.
func (fb *Framebuffer) Status() gl.Enum {
	fb.Bind()
	return fb.funcs.CheckFramebufferStatus(gl.FRAMEBUFFER)
}

// Default reports whether fb wraps the default surface.
func (fb *Framebuffer) Default() bool {
	return !fb.obj.Valid()
}

// Release deletes the framebuffer and its depth renderbuffer. Releasing
// the default framebuffer does nothing.
func (fb *Framebuffer) Release() {
	if fb.hasDepth {
		fb.funcs.DeleteRenderbuffer(fb.depthBuf)
		fb.hasDepth = false
	}
	if fb.obj.Valid() {
		fb.funcs.DeleteFramebuffer(fb.obj)
		fb.obj = gl.Framebuffer{}
	}
}
