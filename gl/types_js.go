// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "syscall/js"

type (
	Buffer       js.Value
	Framebuffer  js.Value
	Program      js.Value
	Renderbuffer js.Value
	Shader       js.Value
	Texture      js.Value
	Uniform      js.Value
)

func (f Framebuffer) Valid() bool {
	return valid(js.Value(f))
}

func (r Renderbuffer) Valid() bool {
	return valid(js.Value(r))
}

func (p Program) Valid() bool {
	return valid(js.Value(p))
}

func (s Shader) Valid() bool {
	return valid(js.Value(s))
}

func (u Uniform) Valid() bool {
	return valid(js.Value(u))
}

func valid(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}
