package geometry

import (
	"github.com/npillmayer/rui/engine/dom"
)

// ApplyTransform submits the transform of an element to the render backend
// of its context. Transforms are submitted only if they differ from the
// transform last submitted to the same context: first by identity, then by
// value. A transform which is changed in place after submission is not
// recognized as changed.
//
// ApplyTransform returns false if the element has no context or the context
// has no render backend.
func ApplyTransform(el *dom.Element) bool {
	ctx := el.Context()
	if ctx == nil || ctx.RenderBackend() == nil {
		return false
	}
	next := el.Transform()
	last, lastValue := ctx.SubmittedTransform()
	if last != next {
		if last == nil || next == nil || lastValue != *next {
			tracer().Debugf("context %q: new transform for %s", ctx.Name(), el)
			ctx.RenderBackend().SetTransform(next)
		}
		ctx.SetSubmittedTransform(next)
	}
	return true
}
