// Package dimen implements dimensions, units and pixel-grid snapping.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Dimen is a dimension type.
// Values are in scaled pixels: one device pixel is 65536 scaled points.
// With 64 bits, extents of long scrollable content stay far from overflow.
type Dimen int64

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = PX / 65536
	PX   Dimen = 65536   // device pixel
	BP   Dimen = 65536   // big point, treated like a pixel
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// HalfPixel is the tolerance used when comparing visible and scrollable
// extents.
const HalfPixel Dimen = PX / 2

// Infinity is the largest possible dimension
const Infinity Dimen = math.MaxInt64

// MaxPixels is the largest number of whole pixels a dimension can hold.
const MaxPixels = int64(Infinity / PX)

// Stringer implementation.
func (d Dimen) String() string {
	if d%PX == 0 {
		return fmt.Sprintf("%dpx", int64(d/PX))
	}
	return fmt.Sprintf("%.3fpx", d.Pixels())
}

// Pixels returns a dimension in (fractional) pixels.
func (d Dimen) Pixels() float64 {
	return float64(d) / float64(PX)
}

// Px creates a dimension from a number of whole pixels.
// Values beyond ±MaxPixels saturate to ±Infinity.
func Px(n int) Dimen {
	if int64(n) > MaxPixels {
		return Infinity
	} else if int64(n) < -MaxPixels {
		return -Infinity
	}
	return Dimen(n) * PX
}

// FromPixels creates a dimension from fractional pixels, rounding to
// the nearest scaled point. Values out of range saturate to ±Infinity.
func FromPixels(px float64) Dimen {
	return saturate(math.Round(px * float64(PX)))
}

// saturate clamps a scaled value to the range of Dimen.
func saturate(sp float64) Dimen {
	if math.IsNaN(sp) {
		return 0
	}
	if sp >= float64(Infinity) {
		return Infinity
	} else if sp <= -float64(Infinity) {
		return -Infinity
	}
	return Dimen(sp)
}

// --- Pixel grid ------------------------------------------------------------

// Snap rounds a dimension down to the pixel grid and returns the number of
// whole pixels.
//
// Snap is the single rounding function for pixel-accurate rectangles.
// It rounds towards negative infinity, i.e. -0.5px snaps to -1.
func (d Dimen) Snap() int {
	if d >= 0 {
		return int(d / PX)
	}
	return -int((-d + PX - 1) / PX)
}

// SnapToPixelGrid snaps a rectangle given by origin and size to whole
// pixels. Both corners are snapped with Dimen.Snap, the size is derived
// from the snapped corners. Adjacent rectangles therefore stay adjacent
// after snapping, and the intersection of snapped rectangles equals the
// snapped intersection.
func SnapToPixelGrid(origin, size Point) (x, y, w, h int) {
	x, y = origin.X.Snap(), origin.Y.Snap()
	r, b := (origin.X + size.X).Snap(), (origin.Y + size.Y).Snap()
	return x, y, r - x, b - y
}

// ---------------------------------------------------------------------------

// Point is a point or a vector in element space.
type Point struct {
	X, Y Dimen
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Rect is a rectangle given by two corners.
type Rect struct {
	TopL, BotR Point
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() Dimen {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() Dimen {
	return r.BotR.Y - r.TopL.Y
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)(%|[cminpxtc]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// Unitless numbers are taken as pixels.
// If a percentage value is given (`80%`), the second return value will be true
// and the dimension holds the percentage as a whole number.
//
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, errors.New("format error parsing dimension")
	}
	scale := PX
	ispcnt := false
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = PT
		case "mm", "MM":
			scale = MM
		case "bp", "px", "BP", "PX", "":
			scale = PX
		case "cm", "CM":
			scale = CM
		case "in", "IN":
			scale = IN
		case "sp", "SP":
			scale = SP
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, errors.New("format error parsing dimension")
		}
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, false, errors.New("format error parsing dimension")
	}
	sp := math.Round(n * float64(scale))
	if math.Abs(sp) >= float64(Infinity) {
		return 0, false, fmt.Errorf("dimension out of range: %s", s)
	}
	return Dimen(sp), ispcnt, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
