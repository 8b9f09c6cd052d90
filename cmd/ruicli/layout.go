package main

import (
	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/dom/style"
	"github.com/npillmayer/rui/engine/frame"
	"github.com/npillmayer/rui/engine/geometry"
)

// inlineBuilder builds boxes from the inline declarations `width`,
// `height`, `padding`, `border-width` and `margin`. Edges take a single
// value for all four sides. Without a width, boxes fill their containing
// block; without a height, they are as high as their content.
type inlineBuilder struct{}

var _ geometry.BoxBuilder = inlineBuilder{}

func (inlineBuilder) BuildBox(cb dimen.Point, el *dom.Element, inline bool) frame.Box {
	c := el.ComputedValues()
	var box frame.Box
	for _, e := range []int{frame.Top, frame.Right, frame.Bottom, frame.Left} {
		box.Padding[e] = length(c, "padding", cb.X)
		box.BorderWidth[e] = length(c, "border-width", cb.X)
		box.Margins[e] = length(c, "margin", cb.X)
	}
	box.Content.X = max(0, cb.X-box.DecorationWidth(true))
	if !c.GetPropertyValue("width").IsEmpty() {
		box.Content.X = length(c, "width", cb.X)
	}
	box.Content.Y = length(c, "height", cb.Y)
	return box
}

// length resolves a declared length, with percentages relative to ref.
// Missing or illegal values are 0.
func length(c *style.Computed, key string, ref dimen.Dimen) dimen.Dimen {
	p := c.GetPropertyValue(key)
	if p.IsEmpty() {
		return 0
	}
	d, ispcnt, err := dimen.ParseDimen(p.String())
	if err != nil {
		tracer().Debugf("ignoring %s: %v", key, err)
		return 0
	}
	if ispcnt {
		return ref * d / 100
	}
	return d
}

// displayMode returns the declared display mode of an element, or the
// default mode of its tag.
func displayMode(el *dom.Element) frame.DisplayMode {
	declared := el.ComputedValues().GetPropertyValue("display")
	if declared.IsEmpty() {
		return frame.DefaultDisplayMode(el.TagName())
	}
	mode, err := frame.ParseDisplay(declared.String())
	if err != nil {
		tracer().Debugf("%s: %v", el, err)
	}
	return mode
}

func isOutOfFlow(el *dom.Element) bool {
	p := el.ComputedValues().Position
	return p == style.PositionAbsolute || p == style.PositionFixed
}

// Layout lays out a document within its parent, usually the root of a
// context.
func Layout(doc *dom.Element) {
	var builder inlineBuilder
	if !geometry.SetBox(builder, doc) {
		doc.SetBox(frame.Box{})
	}
	doc.SetOffset(dimen.Point{
		X: doc.Box().Margins[frame.Left],
		Y: doc.Box().Margins[frame.Top],
	}, doc.Parent())
	layoutChildren(builder, doc)
}

// layoutChildren stacks the in-flow children of el vertically, then
// positions out-of-flow children from their `left|right` and `top|bottom`
// declarations.
func layoutChildren(builder inlineBuilder, el *dom.Element) {
	cb := el.Box().Size(frame.ContentBox)
	origin := el.Box().Position(frame.ContentBox)
	var cursor dimen.Dimen
	var extent dimen.Point
	var outOfFlow []*dom.Element
	for _, ch := range el.Children() {
		if isOutOfFlow(ch) {
			outOfFlow = append(outOfFlow, ch)
			continue
		}
		if displayMode(ch).Contains(frame.DisplayNone) {
			ch.SetBox(frame.Box{})
			continue
		}
		box := geometry.BuildBox(builder, cb, ch, false)
		ch.SetBox(box)
		ch.SetOffset(dimen.Point{
			X: origin.X + box.Margins[frame.Left],
			Y: origin.Y + cursor + box.Margins[frame.Top],
		}, el)
		layoutChildren(builder, ch)
		size := ch.Box().Size(frame.MarginBox)
		cursor += size.Y
		extent.X = max(extent.X, size.X)
	}
	if el.ComputedValues().HeightAuto {
		box := *el.Box()
		box.Content.Y = cursor
		el.SetBox(box)
	}
	pad := el.Box()
	el.SetScrollableOverflow(dimen.Point{
		X: extent.X + pad.Padding[frame.Left] + pad.Padding[frame.Right],
		Y: cursor + pad.Padding[frame.Top] + pad.Padding[frame.Bottom],
	})
	for _, ch := range outOfFlow {
		c := ch.ComputedValues()
		anchor := geometry.AnchorTopLeft
		offset := dimen.Point{X: length(c, "left", cb.X), Y: length(c, "top", cb.Y)}
		if c.GetPropertyValue("left").IsEmpty() && !c.GetPropertyValue("right").IsEmpty() {
			anchor |= geometry.AnchorRight
			offset.X = length(c, "right", cb.X)
		}
		if c.GetPropertyValue("top").IsEmpty() && !c.GetPropertyValue("bottom").IsEmpty() {
			anchor |= geometry.AnchorBottom
			offset.Y = length(c, "bottom", cb.Y)
		}
		geometry.PositionElement(builder, ch, offset, anchor)
		layoutChildren(builder, ch)
	}
}
