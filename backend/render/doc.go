/*
Package render defines the interface between the UI engine and a render
backend.

The engine never rasterizes by itself. It tells a backend where to clip
(a scissor rectangle in whole pixels) and which transform to apply to
subsequent geometry. Backends implementing Interface may be GPU renderers,
terminal renderers or, for testing and debugging, a Recorder.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/f64"
)

// tracer traces with key 'rui.render'.
func tracer() tracing.Trace {
	return tracing.Select("rui.render")
}

// Interface is implemented by render backends.
type Interface interface {
	// EnableScissorRegion switches clipping by the scissor region on or off.
	EnableScissorRegion(enable bool)
	// SetScissorRegion sets the scissor region, in pixels.
	SetScissorRegion(x, y, width, height int)
	// SetTransform sets the transform for subsequent geometry.
	// A nil transform resets to the identity.
	SetTransform(transform *f64.Mat4)
}

// Identity is the identity transform.
var Identity = f64.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}
