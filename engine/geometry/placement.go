package geometry

import (
	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/frame"
)

// BoxBuilder is implemented by the layout engine. It creates the box of an
// element for a given containing block.
type BoxBuilder interface {
	BuildBox(containingBlock dimen.Point, el *dom.Element, inline bool) frame.Box
}

// Formatter is implemented by the layout engine. It lays out an element
// and its descendants.
type Formatter interface {
	FormatElement(el *dom.Element, containingBlock dimen.Point)
}

// Anchor selects the corner of the parent's content area an offset is
// measured from.
type Anchor uint8

// Anchors may be combined; the default is top-left.
const (
	AnchorTop    Anchor = 0
	AnchorLeft   Anchor = 0
	AnchorRight  Anchor = 1 << 0
	AnchorBottom Anchor = 1 << 1

	AnchorTopLeft     = AnchorTop | AnchorLeft
	AnchorTopRight    = AnchorTop | AnchorRight
	AnchorBottomLeft  = AnchorBottom | AnchorLeft
	AnchorBottomRight = AnchorBottom | AnchorRight
)

// BuildBox lets the layout engine create the box of an element.
func BuildBox(builder BoxBuilder, containingBlock dimen.Point, el *dom.Element, inline bool) frame.Box {
	return builder.BuildBox(containingBlock, el, inline)
}

// FormatElement lets the layout engine lay out an element.
func FormatElement(f Formatter, el *dom.Element, containingBlock dimen.Point) {
	f.FormatElement(el, containingBlock)
}

// SetBox builds and sets the box of an element, using the content area of
// its parent, less the parent's scrollbars, as containing block. It returns
// false if el has no parent.
//
// Elements with a height other than `auto` get the full height of the
// containing block.
func SetBox(builder BoxBuilder, el *dom.Element) bool {
	parent := el.Parent()
	if parent == nil {
		return false
	}
	cb := parent.Box().Size(frame.ContentBox)
	cb.X -= parent.ScrollbarSize(dom.Vertical)
	cb.Y -= parent.ScrollbarSize(dom.Horizontal)
	box := builder.BuildBox(cb, el, false)
	if !el.ComputedValues().HeightAuto {
		box.SetContent(dimen.Point{X: box.Size(frame.ContentBox).X, Y: cb.Y})
	}
	el.SetBox(box)
	return true
}

// PositionElement builds the box of an element and positions it within the
// content area of its parent. The offset is measured from the corner of the
// parent's content area selected by anchor to the corresponding corner of
// the element's margin box. It returns false if el has no parent.
func PositionElement(builder BoxBuilder, el *dom.Element, offset dimen.Point, anchor Anchor) bool {
	parent := el.Parent()
	if parent == nil {
		return false
	}
	SetBox(builder, el)
	cb := parent.Box().Size(frame.ContentBox)
	eb := el.Box().Size(frame.MarginBox)
	resolved := offset
	if anchor&AnchorRight != 0 {
		resolved.X = cb.X - (eb.X + offset.X)
	}
	if anchor&AnchorBottom != 0 {
		resolved.Y = cb.Y - (eb.Y + offset.Y)
	}
	rel := parent.Box().Position(frame.ContentBox).Add(resolved)
	rel.X += el.Box().Edge(frame.MarginBox, frame.Left)
	rel.Y += el.Box().Edge(frame.MarginBox, frame.Top)
	el.SetOffset(rel, parent)
	tracer().Debugf("positioned %s at %v", el, rel)
	return true
}
