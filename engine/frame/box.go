package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/rui/core/dimen"
)

// BoxArea selects one of the nested areas of the CSS box model.
type BoxArea int8

// Box areas, from the outside in.
const (
	MarginBox BoxArea = iota
	BorderBox
	PaddingBox
	ContentBox
)

func (area BoxArea) String() string {
	switch area {
	case MarginBox:
		return "margin"
	case BorderBox:
		return "border"
	case PaddingBox:
		return "padding"
	case ContentBox:
		return "content"
	}
	return "?"
}

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// Box type, following the CSS box model.
//
// A box is a resolved box: every dimension is known. Boxes are produced by the
// layout engine; this package only answers geometric questions about them.
type Box struct {
	Content     dimen.Point    // size of the content box
	Padding     [4]dimen.Dimen // inside of border
	BorderWidth [4]dimen.Dimen // thickness of border
	Margins     [4]dimen.Dimen // outside of border
}

// NewBox creates a box with a content size and no decorations.
func NewBox(content dimen.Point) Box {
	return Box{Content: content}
}

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	s := fmt.Sprintf("box{\n   w=%v, h=%v\n", box.Content.X, box.Content.Y)
	s += fmt.Sprintf("   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		box.Padding[Top], box.Padding[Right],
		box.Padding[Bottom], box.Padding[Left])
	s += fmt.Sprintf("   b.top=%v, b.right=%v, b.bottom=%v, b.left=%v\n",
		box.BorderWidth[Top], box.BorderWidth[Right],
		box.BorderWidth[Bottom], box.BorderWidth[Left])
	s += fmt.Sprintf("   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		box.Margins[Top], box.Margins[Right],
		box.Margins[Bottom], box.Margins[Left])
	s += "}"
	return s
}

// SetContent sets the size of the content box.
func (box *Box) SetContent(size dimen.Point) {
	box.Content = size
}

// Edge returns the thickness of an edge of a box area. The content area
// does not have edges and always returns 0.
func (box *Box) Edge(area BoxArea, edge int) dimen.Dimen {
	switch area {
	case MarginBox:
		return box.Margins[edge]
	case BorderBox:
		return box.BorderWidth[edge]
	case PaddingBox:
		return box.Padding[edge]
	}
	return 0
}

// Size returns the outer size of a box area.
func (box *Box) Size(area BoxArea) dimen.Point {
	size := box.Content
	for a := area; a < ContentBox; a++ {
		size.X += box.Edge(a, Left) + box.Edge(a, Right)
		size.Y += box.Edge(a, Top) + box.Edge(a, Bottom)
	}
	return size
}

// Position returns the top-left corner of a box area, relative to the
// top-left corner of the border box. The margin box has a negative position
// for positive margins.
func (box *Box) Position(area BoxArea) dimen.Point {
	if area == MarginBox {
		return dimen.Point{X: -box.Margins[Left], Y: -box.Margins[Top]}
	}
	pos := dimen.Origin
	for a := BorderBox; a < area; a++ {
		pos.X += box.Edge(a, Left)
		pos.Y += box.Edge(a, Top)
	}
	return pos
}

// DecorationWidth returns the cumulated horizontal width of padding and borders,
// optionally including the margins.
func (box *Box) DecorationWidth(includeMargins bool) dimen.Dimen {
	w := box.Padding[Left] + box.Padding[Right] + box.BorderWidth[Left] + box.BorderWidth[Right]
	if includeMargins {
		w += box.Margins[Left] + box.Margins[Right]
	}
	return w
}

// DecorationHeight returns the cumulated vertical height of padding and borders,
// optionally including the margins.
func (box *Box) DecorationHeight(includeMargins bool) dimen.Dimen {
	h := box.Padding[Top] + box.Padding[Bottom] + box.BorderWidth[Top] + box.BorderWidth[Bottom]
	if includeMargins {
		h += box.Margins[Top] + box.Margins[Bottom]
	}
	return h
}
