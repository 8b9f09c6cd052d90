package dom

import (
	"github.com/npillmayer/rui/backend/render"
	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/frame"
	"golang.org/x/image/math/f64"
)

// Context is a render target holding a tree of documents.
//
// The context remembers the state last submitted to its render backend,
// which lets callers avoid redundant backend calls. Every context keeps its
// own state; contexts do not interfere with each other.
type Context struct {
	name       string
	root       *Element
	dimensions dimen.Point
	dpRatio    float64
	backend    render.Interface
	activeClip frame.ClipRegion
	transform  submittedTransform
}

type submittedTransform struct {
	ptr   *f64.Mat4 // transform last submitted, nil for identity
	value f64.Mat4  // copy of *ptr at the time of submission
}

// Option configures a context.
type Option func(*Context)

// WithBackend sets the render backend of a context.
func WithBackend(b render.Interface) Option {
	return func(ctx *Context) {
		ctx.backend = b
	}
}

// WithDensityIndependentPixelRatio sets the ratio of device pixels to
// density independent pixels.
func WithDensityIndependentPixelRatio(r float64) Option {
	return func(ctx *Context) {
		if r > 0 {
			ctx.dpRatio = r
		}
	}
}

// WithDimensions sets the size of the render target.
func WithDimensions(size dimen.Point) Option {
	return func(ctx *Context) {
		ctx.dimensions = size
	}
}

// NewContext creates a context without documents.
func NewContext(name string, opts ...Option) *Context {
	ctx := &Context{
		name:       name,
		dpRatio:    1.0,
		activeClip: frame.NoClip,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	ctx.root = NewElement("#root")
	ctx.root.context = ctx
	ctx.root.box = frame.NewBox(ctx.dimensions)
	tracer().Infof("created context %q", name)
	return ctx
}

// Name returns the name of the context.
func (ctx *Context) Name() string {
	return ctx.name
}

// Root returns the root element of the context. Documents are children of
// the root element.
func (ctx *Context) Root() *Element {
	return ctx.root
}

// AddDocument attaches a document to the context.
func (ctx *Context) AddDocument(doc *Element) {
	ctx.root.AppendChild(doc)
}

// Dimensions returns the size of the render target.
func (ctx *Context) Dimensions() dimen.Point {
	return ctx.dimensions
}

// DensityIndependentPixelRatio returns the ratio of device pixels to
// density independent pixels.
func (ctx *Context) DensityIndependentPixelRatio() float64 {
	return ctx.dpRatio
}

// RenderBackend returns the render backend of the context, or nil.
func (ctx *Context) RenderBackend() render.Interface {
	return ctx.backend
}

// SetRenderBackend replaces the render backend. State remembered for the
// previous backend is forgotten.
func (ctx *Context) SetRenderBackend(b render.Interface) {
	ctx.backend = b
	ctx.activeClip = frame.NoClip
	ctx.transform = submittedTransform{}
}

// ActiveClipRegion returns the clip region last applied to the context and
// whether clipping is enabled.
func (ctx *Context) ActiveClipRegion() (frame.ClipRegion, bool) {
	return ctx.activeClip, ctx.activeClip.IsClipped()
}

// SetActiveClipRegion stores the clip region applied to the context.
// It does not talk to the backend.
func (ctx *Context) SetActiveClipRegion(r frame.ClipRegion) {
	ctx.activeClip = r
}

// SubmittedTransform returns the transform last submitted to the backend
// and a copy of its value at submission time.
func (ctx *Context) SubmittedTransform() (*f64.Mat4, f64.Mat4) {
	return ctx.transform.ptr, ctx.transform.value
}

// SetSubmittedTransform remembers the transform submitted to the backend.
func (ctx *Context) SetSubmittedTransform(m *f64.Mat4) {
	ctx.transform.ptr = m
	if m != nil {
		ctx.transform.value = *m
	}
}
