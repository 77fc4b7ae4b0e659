// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"fmt"
	"strings"

	"igloo.dev/gl"
)

// ContextError is returned when a Canvas cannot provide a rendering
// context.
type ContextError struct {
	Attributes ContextAttributes
}

func (e *ContextError) Error() string {
	return "igloo: could not create a rendering context"
}

// CompileError reports a shader that failed to compile. Log holds the
// driver's diagnostics.
type CompileError struct {
	// Stage is "vertex" or "fragment".
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("igloo: %s shader compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("igloo: program link failed: %s", strings.TrimSpace(e.Log))
}

// LookupError reports a uniform name that has no location in the linked
// program. The GLSL compiler removes uniforms that do not contribute to
// the output, so this is expected for unused variables.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("igloo: uniform %q not found", e.Name)
}

// InvalidValueError reports a uniform value of unsupported shape.
type InvalidValueError struct {
	Name  string
	Value interface{}
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("igloo: invalid value for uniform %q: %T %v", e.Name, e.Value, e.Value)
}

// RenderError reports a driver error raised by a draw call.
type RenderError struct {
	Code gl.Enum
}

func (e *RenderError) Error() string {
	return "igloo: rendering error: " + gl.ErrorString(e.Code)
}
