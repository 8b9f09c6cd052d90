package frame

import (
	"image"
	"testing"

	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func region(x, y, w, h int) ClipRegion {
	return ClipRegion{Origin: image.Pt(x, y), Size: image.Pt(w, h)}
}

func TestClipRegionSentinel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.frame")
	defer teardown()
	//
	assert.False(t, NoClip.IsClipped())
	assert.True(t, region(0, 0, 0, 0).IsClipped())
	r := region(10, 10, 20, 20)
	assert.Equal(t, r, NoClip.Intersect(r))
	assert.Equal(t, r, r.Intersect(NoClip))
	assert.Equal(t, "clip{none}", NoClip.String())
}

func TestClipRegionIntersect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.frame")
	defer teardown()
	//
	a := region(0, 0, 100, 100)
	b := region(50, 20, 100, 30)
	assert.Equal(t, region(50, 20, 50, 30), a.Intersect(b))
	assert.Equal(t, a.Intersect(b), b.Intersect(a))
}

func TestClipRegionDisjoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.frame")
	defer teardown()
	//
	a := region(0, 0, 10, 10)
	b := region(20, 20, 10, 10)
	isect := a.Intersect(b)
	assert.Equal(t, image.Pt(0, 0), isect.Size)
	assert.True(t, isect.IsClipped())
}

func TestClipRegionFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rui.frame")
	defer teardown()
	//
	r := ClipRegionFor(dimen.Point{X: dimen.Px(3) + dimen.HalfPixel, Y: 0},
		dimen.Point{X: dimen.Px(10), Y: dimen.Px(10) + dimen.HalfPixel})
	assert.Equal(t, region(3, 0, 10, 10), r)
}
