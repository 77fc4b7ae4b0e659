// SPDX-License-Identifier: Unlicense OR MIT

package igloo

import (
	"igloo.dev/gl"
)

// Canvas is a drawable surface able to create a rendering context.
type Canvas interface {
	// GetContext returns a context for the surface, or nil if none can
	// be created with the attributes.
	GetContext(attrs ContextAttributes) gl.Functions
}
