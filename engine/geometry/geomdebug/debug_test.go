package geomdebug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.geometry")
	defer teardown()
	//
	ctx := dom.NewContext("g", dom.WithDimensions(dimen.Point{X: dimen.Px(100), Y: dimen.Px(100)}))
	outer := ctx.Root().AppendChild(dom.NewElement("div"))
	outer.SetAttribute("id", "outer")
	require.NoError(t, outer.SetProperty("clip", "always"))
	outer.SetBox(frame.NewBox(dimen.Point{X: dimen.Px(50), Y: dimen.Px(50)}))
	inner := outer.AppendChild(dom.NewElement("span"))
	inner.SetOffset(dimen.Origin, ctx.Root()) // offset parent skips outer
	require.NoError(t, inner.SetProperty("position", "absolute"))
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(ctx.Root(), &buf))
	dot := buf.String()
	t.Log(dot)
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.Equal(t, 3, strings.Count(dot, "shape=box"))
	assert.Contains(t, dot, "node00001 -> node00002 [weight=1]")
	assert.Contains(t, dot, "node00001 -> node00003 [weight=1 style=dashed constraint=false]")
	assert.Equal(t, 0, strings.Count(dot, "peripheries=2"), "inner is not below outer for clipping")
	assert.Contains(t, Label(outer), "div#outer")
}
