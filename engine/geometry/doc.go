/*
Package geometry positions elements and computes their clip regions.

Elements which clip their overflow (any overflow other than `visible`, or
`clip: always`) restrict the rendering of their descendants to their client
area. ClippingRegion walks the chain of offset parents of an element and
intersects the client areas of all clipping ancestors, honouring the `clip`
property of the element and of the ancestors:

	clip: none      the element is never clipped; on an ancestor, no
	                ancestor further up may clip
	clip: always    the ancestor clips, even without overflow
	clip: <n>       skip the n nearest clipping ancestors

SetClippingRegion submits the result to the render backend of the element's
context, skipping the backend whenever the region did not change.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package geometry

import (
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rui.geometry'.
func tracer() tracing.Trace {
	return tracing.Select("rui.geometry")
}

// DensityIndependentPixelRatio returns the dp-ratio of the context of an
// element, or 1 if the element is not part of a context.
func DensityIndependentPixelRatio(el *dom.Element) float64 {
	ctx := el.Context()
	if ctx == nil {
		return 1.0
	}
	return ctx.DensityIndependentPixelRatio()
}
