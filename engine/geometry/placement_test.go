package geometry

import (
	"testing"

	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// fixedBuilder builds 100×50 boxes with a 5px margin and remembers the
// containing block it has been called with.
type fixedBuilder struct {
	containingBlock dimen.Point
}

func (b *fixedBuilder) BuildBox(cb dimen.Point, el *dom.Element, inline bool) frame.Box {
	b.containingBlock = cb
	box := frame.NewBox(dimen.Point{X: dimen.Px(100), Y: dimen.Px(50)})
	for _, e := range []int{frame.Top, frame.Right, frame.Bottom, frame.Left} {
		box.Margins[e] = dimen.Px(5)
	}
	return box
}

func placementParent() *dom.Element {
	parent := dom.NewElement("div")
	parent.SetBox(frame.NewBox(dimen.Point{X: dimen.Px(400), Y: dimen.Px(300)}))
	return parent
}

func TestSetBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.geometry")
	defer teardown()
	//
	parent := placementParent()
	parent.SetScrollbarSize(dom.Vertical, dimen.Px(12))
	el := parent.AppendChild(dom.NewElement("div"))
	b := &fixedBuilder{}
	assert.True(t, SetBox(b, el))
	assert.Equal(t, dimen.Point{X: dimen.Px(388), Y: dimen.Px(300)}, b.containingBlock)
	assert.Equal(t, dimen.Px(50), el.Box().Content.Y)
	el.SetProperty("height", "100%")
	SetBox(b, el)
	assert.Equal(t, dimen.Px(300), el.Box().Content.Y, "fixed height fills the containing block")
	assert.False(t, SetBox(b, dom.NewElement("div")))
}

func TestPositionElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.geometry")
	defer teardown()
	//
	parent := placementParent()
	el := parent.AppendChild(dom.NewElement("div"))
	b := &fixedBuilder{}
	offset := dimen.Point{X: dimen.Px(10), Y: dimen.Px(20)}
	assert.True(t, PositionElement(b, el, offset, AnchorTopLeft))
	assert.Equal(t, dimen.Point{X: dimen.Px(15), Y: dimen.Px(25)}, el.Offset(frame.BorderBox))
	assert.Equal(t, parent, el.OffsetParent())
	PositionElement(b, el, offset, AnchorBottomRight)
	// margin box is 110×60
	assert.Equal(t, dimen.Point{X: dimen.Px(285), Y: dimen.Px(225)}, el.Offset(frame.BorderBox))
	PositionElement(b, el, offset, AnchorTopRight)
	assert.Equal(t, dimen.Point{X: dimen.Px(285), Y: dimen.Px(25)}, el.Offset(frame.BorderBox))
	assert.False(t, PositionElement(b, dom.NewElement("div"), offset, AnchorTopLeft))
}

func TestDensityIndependentPixelRatio(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.geometry")
	defer teardown()
	//
	ctx := newContext(dom.WithDensityIndependentPixelRatio(1.5))
	el := ctx.Root().AppendChild(dom.NewElement("div"))
	assert.Equal(t, 1.5, DensityIndependentPixelRatio(el))
	assert.Equal(t, 1.0, DensityIndependentPixelRatio(dom.NewElement("p")))
}
