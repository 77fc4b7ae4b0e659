// SPDX-License-Identifier: Unlicense OR MIT

/*
Package igloo is a thin layer over OpenGL ES 2.0 and WebGL 1 that takes the
boilerplate out of textures, framebuffers, vertex buffers and shader
programs.

An Igloo wraps a rendering context and creates the other objects:

	ig, err := igloo.NewCanvas(igloo.HTMLCanvas{Value: canvas})
	if err != nil {
		return err
	}
	prog, err := ig.Program(ctx, "quad.vert", "quad.frag", nil)
	if err != nil {
		return err
	}
	quad := ig.Array(igloo.Quad2, 0)
	prog.Use().Attrib("position", quad, 2, 0)
	if err := prog.Draw(gl.TRIANGLE_STRIP, 4, 0); err != nil {
		return err
	}

All objects must be used from the goroutine that owns the context.
*/
package igloo

import (
	"context"
	"image"

	"gioui.org/shader"
	"golang.org/x/sync/errgroup"

	"igloo.dev/gl"
)

// Quad2 is a triangle strip of two triangles covering the square from
// (-1, -1) to (1, 1), for drawing over a whole render target.
var Quad2 = []float32{-1, -1, 1, -1, -1, 1, 1, 1}

// Igloo wraps a rendering context and its canvas.
type Igloo struct {
	funcs   gl.Functions
	canvas  Canvas
	cfg     Config
	fetcher *Fetcher
	defFBO  *Framebuffer

	glver [2]int
	gles  bool
}

// New wraps an existing rendering context.
func New(f gl.Functions, opts ...Option) (*Igloo, error) {
	return newIgloo(f, nil, configFor(opts))
}

// NewCanvas creates a rendering context for c. If no context is available
// it returns a *ContextError, or a nil Igloo and nil error when the
// NoError option is set.
func NewCanvas(c Canvas, opts ...Option) (*Igloo, error) {
	cfg := configFor(opts)
	f := c.GetContext(cfg.Attributes)
	if f == nil {
		if cfg.NoError {
			return nil, nil
		}
		return nil, &ContextError{Attributes: cfg.Attributes}
	}
	return newIgloo(f, c, cfg)
}

func configFor(opts []Option) Config {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

func newIgloo(f gl.Functions, c Canvas, cfg Config) (*Igloo, error) {
	fetcher, err := NewFetcher(cfg)
	if err != nil {
		return nil, err
	}
	ig := &Igloo{
		funcs:   f,
		canvas:  c,
		cfg:     cfg,
		fetcher: fetcher,
		defFBO:  WrapFramebuffer(f, gl.Framebuffer{}),
	}
	glVer := f.GetString(gl.VERSION)
	ver, gles, err := gl.ParseGLVersion(glVer)
	if err != nil {
		Logger().Warn("igloo: unknown GL version, assuming OpenGL ES 2.0", "version", glVer)
		ver, gles = [2]int{2, 0}, true
	}
	ig.glver, ig.gles = ver, gles
	Logger().Debug("igloo: context ready", "version", glVer, "gles", gles)
	return ig, nil
}

// Functions returns the wrapped context.
func (ig *Igloo) Functions() gl.Functions {
	return ig.funcs
}

// Canvas returns the canvas the context was created for, or nil if the
// Igloo wraps a bare context.
func (ig *Igloo) Canvas() Canvas {
	return ig.canvas
}

// Config returns the effective configuration.
func (ig *Igloo) Config() Config {
	return ig.cfg
}

// Fetcher returns the fetcher used for source and image references.
func (ig *Igloo) Fetcher() *Fetcher {
	return ig.fetcher
}

// Default returns the framebuffer of the canvas itself.
func (ig *Igloo) Default() *Framebuffer {
	return ig.defFBO
}

// Version returns the OpenGL (ES) version of the context and whether it
// is an ES or WebGL context.
func (ig *Igloo) Version() (ver [2]int, gles bool) {
	return ig.glver, ig.gles
}

// Program builds a program. Sources that look like URLs are fetched
// first, concurrently. A non-nil transform rewrites both sources before
// compilation, for example to prepend #defines.
func (ig *Igloo) Program(ctx context.Context, vertex, fragment string, transform func(string) string) (*Program, error) {
	srcs := [2]string{vertex, fragment}
	g, gctx := errgroup.WithContext(ctx)
	for i := range srcs {
		i := i
		if !LooksLikeURL(srcs[i]) {
			continue
		}
		g.Go(func() error {
			src, err := ig.fetcher.Fetch(gctx, srcs[i])
			srcs[i] = src
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if transform != nil {
		srcs[0], srcs[1] = transform(srcs[0]), transform(srcs[1])
	}
	return NewProgram(ig.funcs, srcs[0], srcs[1])
}

// ProgramSources builds a program from cross-compiled shaders, choosing
// the GLSL dialect of the context.
func (ig *Igloo) ProgramSources(vertex, fragment shader.Sources) (*Program, error) {
	vsrc, fsrc := vertex.GLSL100ES, fragment.GLSL100ES
	if !ig.gles {
		vsrc, fsrc = vertex.GLSL150, fragment.GLSL150
	}
	return NewProgram(ig.funcs, vsrc, fsrc)
}

// Array creates a vertex buffer. Non-nil data is uploaded right away,
// with STATIC_DRAW if usage is zero.
func (ig *Igloo) Array(data []float32, usage gl.Enum) *Buffer {
	b := NewBuffer(ig.funcs, gl.ARRAY_BUFFER)
	if data != nil {
		b.Update(data, staticUsage(usage))
	}
	return b
}

// Elements creates an element buffer. Non-nil data, typically built with
// Indices16, is uploaded right away with STATIC_DRAW if usage is zero.
func (ig *Igloo) Elements(data []byte, usage gl.Enum) *Buffer {
	b := NewBuffer(ig.funcs, gl.ELEMENT_ARRAY_BUFFER)
	if data != nil {
		b.UpdateBytes(data, staticUsage(usage))
	}
	return b
}

func staticUsage(usage gl.Enum) gl.Enum {
	if usage == 0 {
		return gl.STATIC_DRAW
	}
	return usage
}

// Texture creates a texture without storage.
func (ig *Igloo) Texture(opts TextureOptions) *Texture {
	return NewTexture(ig.funcs, opts)
}

// TextureImage creates a texture holding img.
func (ig *Igloo) TextureImage(img image.Image, opts TextureOptions) *Texture {
	return NewTexture(ig.funcs, opts).SetImage(img)
}

// TextureData creates a width×height texture from plain-number pixels.
func (ig *Igloo) TextureData(data []float64, width, height int, opts TextureOptions) *Texture {
	return NewTexture(ig.funcs, opts).Set(data, width, height)
}

// Framebuffer creates an off-screen framebuffer, with tex attached as its
// first color attachment if non-nil.
func (ig *Igloo) Framebuffer(tex *Texture) *Framebuffer {
	fb := NewFramebuffer(ig.funcs)
	if tex != nil {
		fb.Attach(tex, 0)
	}
	return fb
}

// Image fetches and decodes the image behind ref.
func (ig *Igloo) Image(ctx context.Context, ref string) (image.Image, error) {
	return ig.fetcher.Image(ctx, ref)
}
