package geometry

import (
	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/dom/style"
	"github.com/npillmayer/rui/engine/frame"
)

// ClippingRegion returns the region an element is clipped to by its
// ancestors. If no ancestor clips the element, frame.NoClip and false are
// returned. A region of size 0 is a valid result and means the element is
// clipped away completely.
func ClippingRegion(el *dom.Element) (frame.ClipRegion, bool) {
	region := frame.NoClip
	clip := el.ComputedValues().Clip
	if clip.Kind == style.ClipNone {
		return region, false
	}
	ignore := clip.Number()
	for ancestor := el.OffsetParent(); ancestor != nil; ancestor = ancestor.OffsetParent() {
		c := ancestor.ComputedValues()
		clipEnabled := c.ClipsOverflow()
		clipAlways := c.Clip.Kind == style.ClipAlways
		clipNone := c.Clip.Kind == style.ClipNone
		clipNumber := c.Clip.Number()
		if (clipAlways || clipEnabled) && ignore == 0 {
			if clipAlways || hasOverflow(ancestor) {
				area := ancestor.ClientArea()
				r := frame.ClipRegionFor(ancestor.AbsoluteOffset(area), ancestor.Box().Size(area))
				tracer().Debugf("%s clips to %v", ancestor, r)
				region = region.Intersect(r)
			}
		}
		if ignore > 0 && clipEnabled { // only clipping ancestors consume a skip
			ignore--
		}
		ignore = max(ignore, clipNumber)
		if clipNone {
			break
		}
	}
	return region, region.IsClipped()
}

// hasOverflow is true if the content of el does not fit into its client area.
func hasOverflow(el *dom.Element) bool {
	return el.ClientWidth() < el.ScrollWidth()-dimen.HalfPixel ||
		el.ClientHeight() < el.ScrollHeight()-dimen.HalfPixel
}

// SetClippingRegion makes the clip region of an element the active clip
// region of a context. If ctx is nil, the context of el is used. If el is
// nil, clipping is switched off.
//
// The render backend is called only if the active clip region changes.
// SetClippingRegion returns false if no context is available.
func SetClippingRegion(el *dom.Element, ctx *dom.Context) bool {
	if el != nil && ctx == nil {
		ctx = el.Context()
	}
	if ctx == nil {
		return false
	}
	region, clip := frame.NoClip, false
	if el != nil {
		region, clip = ClippingRegion(el)
	}
	current, currentClip := ctx.ActiveClipRegion()
	if currentClip != clip || (clip && region != current) {
		ctx.SetActiveClipRegion(region)
		ApplyActiveClipRegion(ctx)
	}
	return true
}

// ApplyActiveClipRegion submits the active clip region of a context to its
// render backend.
func ApplyActiveClipRegion(ctx *dom.Context) {
	backend := ctx.RenderBackend()
	if backend == nil {
		return
	}
	region, enabled := ctx.ActiveClipRegion()
	tracer().Infof("context %q: scissor %v", ctx.Name(), region)
	backend.EnableScissorRegion(enabled)
	if enabled {
		backend.SetScissorRegion(region.Origin.X, region.Origin.Y, region.Size.X, region.Size.Y)
	}
}
