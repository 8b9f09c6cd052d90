package frame

import (
	"fmt"
	"image"

	"github.com/npillmayer/rui/core/dimen"
)

// ClipRegion is a scissor rectangle in whole pixels, in the same space as
// element boxes.
//
// The zero size is a valid region ("clipped to nothing"). NoClip is a
// sentinel for "no active clip".
type ClipRegion struct {
	Origin image.Point
	Size   image.Point
}

// NoClip denotes the absence of a clip region.
var NoClip = ClipRegion{
	Origin: image.Point{X: -1, Y: -1},
	Size:   image.Point{X: -1, Y: -1},
}

// ClipRegionFor snaps a rectangle given in element space to the pixel grid.
func ClipRegionFor(origin, size dimen.Point) ClipRegion {
	x, y, w, h := dimen.SnapToPixelGrid(origin, size)
	return ClipRegion{
		Origin: image.Point{X: x, Y: y},
		Size:   image.Point{X: w, Y: h},
	}
}

// IsClipped returns true if r is not the NoClip sentinel.
func (r ClipRegion) IsClipped() bool {
	return r.Size.X >= 0 && r.Size.Y >= 0
}

// Intersect returns the intersection of two clip regions. A NoClip operand
// does not restrict the other one. Regions which do not overlap intersect
// to a region of size (0,0).
func (r ClipRegion) Intersect(other ClipRegion) ClipRegion {
	if r == NoClip {
		return other
	}
	if other == NoClip {
		return r
	}
	topL := image.Point{X: max(r.Origin.X, other.Origin.X), Y: max(r.Origin.Y, other.Origin.Y)}
	botR := image.Point{
		X: min(r.Origin.X+r.Size.X, other.Origin.X+other.Size.X),
		Y: min(r.Origin.Y+r.Size.Y, other.Origin.Y+other.Size.Y),
	}
	isect := ClipRegion{
		Origin: topL,
		Size: image.Point{
			X: max(0, botR.X-topL.X),
			Y: max(0, botR.Y-topL.Y),
		},
	}
	if isect.Size.X == 0 || isect.Size.Y == 0 {
		tracer().Debugf("clip regions %v and %v do not overlap", r, other)
	}
	return isect
}

func (r ClipRegion) String() string {
	if r == NoClip {
		return "clip{none}"
	}
	return fmt.Sprintf("clip{%d,%d %dx%d}", r.Origin.X, r.Origin.Y, r.Size.X, r.Size.Y)
}
