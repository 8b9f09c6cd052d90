package dom

import (
	"image"
	"testing"

	"github.com/npillmayer/rui/backend/render"
	"github.com/npillmayer/rui/engine/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestContextState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	rec := render.NewRecorder()
	ctx := NewContext("main", WithBackend(rec), WithDensityIndependentPixelRatio(2))
	assert.Equal(t, 2.0, ctx.DensityIndependentPixelRatio())
	assert.Equal(t, rec, ctx.RenderBackend())
	r, on := ctx.ActiveClipRegion()
	assert.False(t, on)
	assert.Equal(t, frame.NoClip, r)
	ctx.SetActiveClipRegion(frame.ClipRegion{Origin: image.Pt(1, 1), Size: image.Pt(0, 0)})
	_, on = ctx.ActiveClipRegion()
	assert.True(t, on)
	m := render.Identity
	ctx.SetSubmittedTransform(&m)
	ptr, value := ctx.SubmittedTransform()
	assert.Equal(t, &m, ptr)
	assert.Equal(t, render.Identity, value)
	ctx.SetRenderBackend(nil)
	ptr, _ = ctx.SubmittedTransform()
	assert.Nil(t, ptr)
}

func TestContextsAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.dom")
	defer teardown()
	//
	a, b := NewContext("a"), NewContext("b")
	a.SetActiveClipRegion(frame.ClipRegion{Size: image.Pt(5, 5)})
	_, on := b.ActiveClipRegion()
	assert.False(t, on)
}
