package monospace

import (
	"testing"

	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/text"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.text")
	defer teardown()
	//
	engine := New(nil)
	face := engine.AddFace(dimen.Px(8))
	ctx := text.ShapingContext{}
	assert.Equal(t, dimen.Px(24), engine.StringWidth(face, "abc", ctx, 0))
	assert.Equal(t, dimen.Px(32), engine.StringWidth(face, "日本", ctx, 0))
	assert.Equal(t, dimen.Px(8), engine.StringWidth(face, "é", ctx, 0), "one grapheme")
	assert.Equal(t, dimen.Dimen(0), engine.StringWidth(face, "", ctx, 0))
	ctx.LetterSpacing = dimen.Px(1)
	assert.Equal(t, dimen.Px(18), engine.StringWidth(face, "ab", ctx, 'x'))
	assert.Equal(t, dimen.Dimen(0), engine.StringWidth(99, "ab", ctx, 0))
}

func TestElementStringWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.text")
	defer teardown()
	//
	engine := New(nil)
	face := engine.AddFace(dimen.Px(10))
	el := dom.NewElement("span")
	assert.Equal(t, dimen.Dimen(0), text.StringWidth(engine, el, "abc", 0), "no font face")
	el.SetFontFaceHandle(face)
	assert.Equal(t, dimen.Px(30), text.StringWidth(engine, el, "abc", 0))
	assert.Equal(t, dimen.Dimen(0), text.StringWidth(engine, el, "", 'a'))
	require.NoError(t, el.SetProperty("letter-spacing", "2px"))
	assert.Equal(t, dimen.Px(36), text.StringWidth(engine, el, "abc", 0))
	cell, ok := engine.CellWidth(face)
	assert.True(t, ok)
	assert.Equal(t, dimen.Px(10), cell)
}
