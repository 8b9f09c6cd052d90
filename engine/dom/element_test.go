package dom

import (
	"testing"

	"github.com/npillmayer/rui/core"
	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom/style"
	"github.com/npillmayer/rui/engine/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testModel string

func (m testModel) Name() string { return string(m) }

func TestAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	el := NewElement("DIV")
	assert.Equal(t, "div", el.TagName())
	el.SetAttribute("id", "main")
	el.SetAttribute("data-if", "visible")
	assert.Equal(t, "main", el.ID())
	assert.Equal(t, 2, el.NumAttributes())
	snapshot := el.Attributes()
	el.SetAttribute("data-if", "hidden")
	el.SetAttribute("data-class-active", "flag")
	assert.Len(t, snapshot, 2)
	assert.Equal(t, "visible", snapshot[1].Val)
	v, ok := el.GetAttribute("data-if")
	assert.True(t, ok)
	assert.Equal(t, "hidden", v)
	assert.True(t, el.RemoveAttribute("data-if"))
	assert.False(t, el.RemoveAttribute("data-if"))
	assert.False(t, el.HasAttribute("data-if"))
}

func TestStyleAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	el := NewElement("div")
	el.SetAttribute("style", "overflow-y: scroll; clip: 1")
	assert.Equal(t, style.OverflowScroll, el.ComputedValues().OverflowY)
	assert.Equal(t, 1, el.ComputedValues().Clip.Number())
	require.NoError(t, el.SetProperty("clip", "none"))
	assert.Equal(t, style.ClipNone, el.ComputedValues().Clip.Kind)
	s, _ := el.GetAttribute("style")
	assert.Equal(t, "clip: none; overflow-y: scroll;", s)
	err := el.SetProperty("overflow", "sideways")
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Equal(t, el.Address(), core.ElementAddress(err))
	el.RemoveAttribute("style")
	assert.False(t, el.ComputedValues().ClipsOverflow())
}

func TestClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	el := NewElement("span")
	el.SetClass("a", true)
	el.SetClass("b", true)
	el.SetClass("a", true)
	assert.Equal(t, []string{"b", "a"}, el.Classes())
	assert.True(t, el.IsClassSet("a"))
	el.SetClass("a", false)
	el.SetClass("b", false)
	assert.False(t, el.HasAttribute("class"))
}

func TestTreeOwnership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	a, b, c := NewElement("div"), NewElement("div"), NewElement("p")
	a.AppendChild(c)
	assert.Equal(t, a, c.Parent())
	b.AppendChild(c) // moves c
	assert.Equal(t, 0, a.NumChildren())
	assert.Equal(t, b, c.Parent())
	assert.Equal(t, b.HTMLNode(), c.HTMLNode().Parent)
	assert.Nil(t, a.HTMLNode().FirstChild)
	assert.True(t, b.RemoveChild(c))
	assert.False(t, b.RemoveChild(c))
	assert.Nil(t, c.Parent())
	assert.Nil(t, c.Child(0))
}

func TestDataModelInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	outer, inner := NewElement("div"), NewElement("div")
	outer.AppendChild(inner)
	assert.Nil(t, inner.DataModel())
	outer.SetDataModel(testModel("m"))
	require.NotNil(t, inner.DataModel())
	assert.Equal(t, "m", inner.DataModel().Name())
}

func TestAddress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	ctx := NewContext("test")
	body := NewElement("body")
	div := NewElement("div")
	div.SetAttribute("id", "main")
	div.SetAttribute("class", "panel wide")
	span := NewElement("span")
	body.AppendChild(div)
	div.AppendChild(span)
	ctx.AddDocument(body)
	assert.Equal(t, "span < div#main.panel.wide < body", span.Address())
	assert.Equal(t, ctx, span.Context())
}

func TestOffsetParentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	root, positioned, static, abs := NewElement("body"), NewElement("div"),
		NewElement("div"), NewElement("div")
	positioned.SetAttribute("style", "position: relative")
	abs.SetAttribute("style", "position: absolute")
	root.AppendChild(positioned)
	positioned.AppendChild(static)
	static.AppendChild(abs)
	assert.Nil(t, root.OffsetParent())
	assert.Equal(t, positioned, static.OffsetParent())
	assert.Equal(t, positioned, abs.OffsetParent())
	abs.SetOffset(dimen.Origin, root)
	assert.Equal(t, root, abs.OffsetParent())
}

func TestAbsoluteOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	outer, inner := NewElement("div"), NewElement("div")
	outer.AppendChild(inner)
	box := frame.NewBox(dimen.Point{X: dimen.Px(100), Y: dimen.Px(100)})
	box.BorderWidth[frame.Left] = dimen.Px(1)
	box.BorderWidth[frame.Top] = dimen.Px(1)
	outer.SetBox(box)
	outer.SetOffset(dimen.Point{X: dimen.Px(10), Y: dimen.Px(20)}, nil)
	inner.SetBox(box)
	inner.SetOffset(dimen.Point{X: dimen.Px(5), Y: dimen.Px(5)}, outer)
	outer.SetScrollOffset(dimen.Point{X: 0, Y: dimen.Px(3)})
	assert.Equal(t, dimen.Point{X: dimen.Px(10), Y: dimen.Px(20)}, outer.AbsoluteOffset(frame.BorderBox))
	assert.Equal(t, dimen.Point{X: dimen.Px(15), Y: dimen.Px(22)}, inner.AbsoluteOffset(frame.BorderBox))
	assert.Equal(t, dimen.Point{X: dimen.Px(16), Y: dimen.Px(23)}, inner.AbsoluteOffset(frame.PaddingBox))
}

func TestClientAndScrollExtents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	el := NewElement("div")
	box := frame.NewBox(dimen.Point{X: dimen.Px(100), Y: dimen.Px(40)})
	box.Padding[frame.Left] = dimen.Px(5)
	el.SetBox(box)
	el.SetScrollbarSize(Vertical, dimen.Px(10))
	assert.Equal(t, dimen.Px(95), el.ClientWidth())
	assert.Equal(t, dimen.Px(40), el.ClientHeight())
	assert.Equal(t, dimen.Px(95), el.ScrollWidth())
	el.SetScrollableOverflow(dimen.Point{X: dimen.Px(50), Y: dimen.Px(300)})
	assert.Equal(t, dimen.Px(95), el.ScrollWidth())
	assert.Equal(t, dimen.Px(300), el.ScrollHeight())
}
