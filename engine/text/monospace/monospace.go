/*
Package monospace is a font engine for monospace fonts.

Every grapheme advances by one or two cells, depending on its East Asian
width.
*/
package monospace

import (
	"sync"

	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/text"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// tracer traces with key 'rui.text'.
func tracer() tracing.Trace {
	return tracing.Select("rui.text")
}

// Engine is a monospace font engine. Font faces are identified by their
// cell width.
type Engine struct {
	mx      sync.RWMutex
	cells   []dimen.Dimen // cell width per face handle-1
	context *uax11.Context
}

var _ text.FontEngine = (*Engine)(nil)

var setupGraphemes sync.Once

// New creates a font engine. If context is nil, widths are determined in
// a Latin context.
func New(context *uax11.Context) *Engine {
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return &Engine{context: context}
}

// AddFace registers a font face with a given cell width and returns its
// handle.
func (e *Engine) AddFace(cell dimen.Dimen) dom.FontFaceHandle {
	e.mx.Lock()
	defer e.mx.Unlock()
	e.cells = append(e.cells, cell)
	return dom.FontFaceHandle(len(e.cells))
}

// CellWidth returns the cell width of a font face.
func (e *Engine) CellWidth(face dom.FontFaceHandle) (dimen.Dimen, bool) {
	e.mx.RLock()
	defer e.mx.RUnlock()
	if face == 0 || int(face) > len(e.cells) {
		return 0, false
	}
	return e.cells[face-1], true
}

// StringWidth returns the width of s. Letter spacing is added after every
// grapheme. Monospace fonts do not kern, so prior is ignored.
func (e *Engine) StringWidth(face dom.FontFaceHandle, s string, ctx text.ShapingContext, prior rune) dimen.Dimen {
	cell, ok := e.CellWidth(face)
	if !ok {
		tracer().Errorf("monospace engine: unknown font face %d", face)
		return 0
	}
	if s == "" {
		return 0
	}
	gstr := grapheme.StringFromString(s)
	var w dimen.Dimen
	for i := 0; i < gstr.Len(); i++ {
		cells := uax11.Width([]byte(gstr.Nth(i)), e.context)
		w += dimen.Dimen(cells)*cell + ctx.LetterSpacing
	}
	return w
}
