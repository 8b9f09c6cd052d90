package main

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/frame"
	"github.com/npillmayer/rui/engine/geometry"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `<html><body style="margin: 0">
<div id="outer" style="width: 100px; height: 50px; padding: 5px; overflow: hidden">
  <div id="inner" style="height: 80px"></div>
</div>
<div id="abs" style="position: absolute; right: 10px; top: 5px; width: 20px; height: 20px"></div>
</body></html>`

func loadTestDoc(t *testing.T) (*Intp, *dom.Element) {
	intp := NewIntp(dimen.Point{X: dimen.Px(800), Y: dimen.Px(600)}, 1)
	doc, err := dom.Parse(strings.NewReader(testDoc))
	require.NoError(t, err)
	intp.doc = doc
	intp.ctx.AddDocument(doc)
	doc.SetDataModel(intp.model)
	Layout(doc)
	return intp, doc
}

func TestLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.cli")
	defer teardown()
	//
	_, doc := loadTestDoc(t)
	assert.Equal(t, dimen.Px(800), doc.Box().Content.X)
	assert.Equal(t, dimen.Px(60), doc.Box().Content.Y)
	outer := dom.ElementByID(doc, "outer")
	require.NotNil(t, outer)
	assert.Equal(t, dimen.Point{X: dimen.Px(110), Y: dimen.Px(60)}, outer.Box().Size(frame.BorderBox))
	inner := dom.ElementByID(doc, "inner")
	assert.Equal(t, dimen.Point{X: dimen.Px(5), Y: dimen.Px(5)}, inner.AbsoluteOffset(frame.BorderBox))
	assert.Equal(t, dimen.Px(100), inner.Box().Content.X)
	abs := dom.ElementByID(doc, "abs")
	assert.Equal(t, dimen.Point{X: dimen.Px(770), Y: dimen.Px(5)}, abs.Offset(frame.BorderBox))
}

func TestLayoutClipping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.cli")
	defer teardown()
	//
	_, doc := loadTestDoc(t)
	inner := dom.ElementByID(doc, "inner")
	r, clipped := geometry.ClippingRegion(inner)
	assert.True(t, clipped)
	assert.Equal(t, frame.ClipRegion{Origin: image.Pt(0, 0), Size: image.Pt(110, 60)}, r)
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.cli")
	defer teardown()
	//
	intp, _ := loadTestDoc(t)
	run := func(line string) {
		cmd, err := parseCommand(line)
		require.NoError(t, err, line)
		_, err = intp.execute(cmd)
		require.NoError(t, err, line)
	}
	run("select: div#outer > div")
	assert.Equal(t, "inner", intp.current.ID())
	run("xpath: //div[@id='abs']")
	assert.Equal(t, "abs", intp.current.ID())
	run("clip:inner")
	assert.Len(t, intp.rec.Calls, 2, "enable plus one scissor call")
	run("var:flag:true")
	assert.True(t, intp.model.IsBound("flag"))
	run("width:inner:abc")
	quit, err := intp.execute(&Command{code: QUIT})
	assert.NoError(t, err)
	assert.True(t, quit)
	_, err = parseCommand("frobnicate")
	assert.Error(t, err)
}

func TestParseSize(t *testing.T) {
	p, err := parseSize("640x480")
	require.NoError(t, err)
	assert.Equal(t, dimen.Point{X: dimen.Px(640), Y: dimen.Px(480)}, p)
	_, err = parseSize("640")
	assert.Error(t, err)
}

func TestDisplayNoneIsSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.cli")
	defer teardown()
	//
	doc, err := dom.ParseString(`<body><div style="height: 10px"></div><div style="height: 10px; display: none"></div></body>`)
	require.NoError(t, err)
	ctx := dom.NewContext("t", dom.WithDimensions(dimen.Point{X: dimen.Px(100), Y: dimen.Px(100)}))
	ctx.AddDocument(doc)
	Layout(doc)
	assert.Equal(t, dimen.Px(10), doc.Box().Content.Y)
	assert.Equal(t, frame.DisplayNone, displayMode(doc.Child(1)))
	assert.True(t, displayMode(doc).Contains(frame.BlockMode))
}

func TestWriteGraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.cli")
	defer teardown()
	//
	intp, _ := loadTestDoc(t)
	name := filepath.Join(t.TempDir(), "tree.dot")
	cmd, err := parseCommand("dot:" + name)
	require.NoError(t, err)
	_, err = intp.execute(cmd)
	require.NoError(t, err)
	dot, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(dot), "div#inner")
}
