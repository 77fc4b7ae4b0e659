// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

// Package window provides a desktop igloo.Canvas backed by a GLFW window
// and an OpenGL 3.3 core profile context.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"igloo.dev"
	"igloo.dev/gl"
	"igloo.dev/gl/glcore"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

// Window is a GLFW window. The window and its context are created by
// GetContext, so the context attributes can be applied as hints.
type Window struct {
	title         string
	width, height int

	w     *glfw.Window
	funcs *glcore.Functions
	err   error
}

var _ igloo.Canvas = (*Window)(nil)

// New initializes GLFW and prepares a window. It must be called from the
// main goroutine.
func New(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	return &Window{title: title, width: width, height: height}, nil
}

// GetContext creates the window and its context and makes the context
// current. It returns nil on failure; Err reports the cause.
func (w *Window) GetContext(attrs igloo.ContextAttributes) gl.Functions {
	if w.funcs != nil {
		return w.funcs
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.AlphaBits, bits(attrs.Alpha, 8))
	glfw.WindowHint(glfw.DepthBits, bits(attrs.Depth, 24))
	glfw.WindowHint(glfw.StencilBits, bits(attrs.Stencil, 8))
	glfw.WindowHint(glfw.Samples, bits(attrs.Antialias, 4))
	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		w.err = fmt.Errorf("window: %w", err)
		return nil
	}
	win.MakeContextCurrent()
	funcs, err := glcore.New()
	if err != nil {
		win.Destroy()
		w.err = err
		return nil
	}
	w.w, w.funcs = win, funcs
	return funcs
}

func bits(enabled bool, n int) int {
	if enabled {
		return n
	}
	return 0
}

// Err returns the reason the last GetContext failed.
func (w *Window) Err() error {
	return w.err
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.w == nil || w.w.ShouldClose()
}

// Present swaps the window buffers and processes pending events.
func (w *Window) Present() {
	w.w.SwapBuffers()
	glfw.PollEvents()
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (width, height int) {
	if w.w == nil {
		return w.width, w.height
	}
	return w.w.GetFramebufferSize()
}

// Time returns the seconds elapsed since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.funcs != nil {
		w.funcs.Release()
	}
	if w.w != nil {
		w.w.Destroy()
	}
	glfw.Terminate()
}
