/*
Package frame deals with the geometry of element frames.

Every element of the UI tree is laid out as a box following the CSS box
model: a content area, surrounded by padding, border and margin. The layout
engine computes these boxes; this package answers questions about them, e.g.
where the padding area of a box starts relative to its border area, and
holds the pixel-snapped clip regions derived from boxes, as well as the
display modes deciding which kind of box an element generates.

All dimensions are of type dimen.Dimen, i.e. scaled pixels. Clip regions are
given in whole pixels, as expected by render backends.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rui.frame'.
func tracer() tracing.Trace {
	return tracing.Select("rui.frame")
}
