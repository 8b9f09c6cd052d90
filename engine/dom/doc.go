/*
Package dom implements the element tree of the UI engine.

Elements are built on top of HTML nodes from golang.org/x/net/html. Every
element links to an HTML element node, which holds the element's tag and
attributes; the element adds everything the engine needs beyond markup:
computed style values, the resolved box, the offset-parent relation used for
positioning and clipping, scrolling state, an optional transform and an
optional data model.

Elements own their children. Attaching an element to another one detaches
it from its previous parent, for the element tree and the HTML tree alike.

Elements live in a Context, which represents a render target: it carries
the render backend and the state last submitted to it (active clip region,
last transform). An element's context is the context of the root of its
tree.

All functions of this package expect to be called from a single goroutine
(the UI thread); nothing is synchronized.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rui.dom'.
func tracer() tracing.Trace {
	return tracing.Select("rui.dom")
}
