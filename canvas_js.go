// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"syscall/js"

	"igloo.dev/gl"
)

// HTMLCanvas is a <canvas> element.
type HTMLCanvas struct {
	js.Value
}

// GetContext requests a "webgl" context, falling back to
// "experimental-webgl".
func (c HTMLCanvas) GetContext(attrs ContextAttributes) gl.Functions {
	opts := map[string]interface{}{
		"alpha":                 attrs.Alpha,
		"depth":                 attrs.Depth,
		"stencil":               attrs.Stencil,
		"antialias":             attrs.Antialias,
		"premultipliedAlpha":    attrs.PremultipliedAlpha,
		"preserveDrawingBuffer": attrs.PreserveDrawingBuffer,
	}
	for _, kind := range []string{"webgl", "experimental-webgl"} {
		ctx, ok := getContext(c.Value, kind, opts)
		if ok {
			return gl.NewWebGL(ctx)
		}
	}
	return nil
}

func getContext(canvas js.Value, kind string, opts map[string]interface{}) (ctx js.Value, ok bool) {
	defer func() {
		// getContext throws on some browsers instead of returning null.
		if recover() != nil {
			ctx, ok = js.Null(), false
		}
	}()
	ctx = canvas.Call("getContext", kind, opts)
	return ctx, ctx.Truthy()
}
