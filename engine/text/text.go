/*
Package text measures strings for elements.

Font handling is left to a FontEngine. Elements refer to font faces by
handle; the font engine maps handles to faces.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/dom/style"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'rui.text'.
func tracer() tracing.Trace {
	return tracing.Select("rui.text")
}

// ShapingContext holds the style values affecting the width of a string.
type ShapingContext struct {
	Language      language.Tag
	Direction     style.Direction
	LetterSpacing dimen.Dimen
}

// FontEngine measures strings set in a font face.
type FontEngine interface {
	// StringWidth returns the advance width of s. prior is the character
	// preceding s, or 0; engines may use it for kerning.
	StringWidth(face dom.FontFaceHandle, s string, ctx ShapingContext, prior rune) dimen.Dimen
}

// ShapingContextFor collects the shaping values of an element.
func ShapingContextFor(el *dom.Element) ShapingContext {
	c := el.ComputedValues()
	return ShapingContext{
		Language:      c.Language,
		Direction:     c.Direction,
		LetterSpacing: c.LetterSpacing,
	}
}

// StringWidth returns the width of a string set in the font face of an
// element. It returns 0 if the element has no font face.
func StringWidth(engine FontEngine, el *dom.Element, s string, prior rune) dimen.Dimen {
	face := el.FontFaceHandle()
	if face == 0 || engine == nil {
		tracer().Debugf("no font face for %s", el)
		return 0
	}
	return engine.StringWidth(face, s, ShapingContextFor(el), prior)
}
