package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/rui/core"
	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/dom/style"
	"github.com/npillmayer/rui/engine/frame"
	"golang.org/x/image/math/f64"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DataModel is the handle an element keeps to its data model. The data
// binding engine defines the concrete type.
type DataModel interface {
	Name() string
}

// FontFaceHandle identifies a font face of the font engine. 0 means "no
// font face".
type FontFaceHandle uint32

// Orientation selects a scrollbar.
type Orientation int8

// Scrollbar orientations
const (
	Vertical Orientation = iota
	Horizontal
)

// Element is a node of the UI tree.
type Element struct {
	node         *html.Node
	parent       *Element
	children     []*Element
	context      *Context  // set for the root of a context only
	model        DataModel // data model declared at this element, if any
	computed     *style.Computed
	box          frame.Box
	clientArea   frame.BoxArea
	offset       dimen.Point // border box, relative to the offset parent's border box
	offsetParent *Element
	hasOffset    bool
	scrollOffset dimen.Point
	scrollbars   [2]dimen.Dimen // gutter sizes of vertical and horizontal scrollbar
	overflow     dimen.Point    // extent of the scrollable content, relative to the client area
	transform    *f64.Mat4
	fontFace     FontFaceHandle
}

// NewElement creates a detached element with a tag name.
func NewElement(tag string) *Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return newElementForNode(n)
}

func newElementForNode(n *html.Node) *Element {
	el := &Element{
		node:       n,
		computed:   style.Default(),
		clientArea: frame.PaddingBox,
	}
	if s, ok := el.GetAttribute("style"); ok {
		el.restyle(s)
	}
	return el
}

// HTMLNode gets the HTML node corresponding to this element.
func (el *Element) HTMLNode() *html.Node {
	return el.node
}

// TagName returns the tag of the element.
func (el *Element) TagName() string {
	return el.node.Data
}

// ID returns the value of the `id` attribute.
func (el *Element) ID() string {
	id, _ := el.GetAttribute("id")
	return id
}

func (el *Element) String() string {
	return "<" + el.localAddress() + ">"
}

// Address renders the element and its ancestors in the form
//
//     span.label < div#main.panel < body
//
func (el *Element) Address() string {
	var b strings.Builder
	for e := el; e != nil; e = e.parent {
		if e.context != nil && e.parent == nil { // context root is not part of addresses
			break
		}
		if e != el {
			b.WriteString(" < ")
		}
		b.WriteString(e.localAddress())
	}
	return b.String()
}

func (el *Element) localAddress() string {
	s := el.TagName()
	if id := el.ID(); id != "" {
		s += "#" + id
	}
	for _, c := range el.Classes() {
		s += "." + c
	}
	return s
}

// --- Attributes ------------------------------------------------------------

// Attributes returns a copy of the attributes of el. Changing the attributes
// of el afterwards will not change the copy.
func (el *Element) Attributes() []html.Attribute {
	attrs := make([]html.Attribute, len(el.node.Attr))
	copy(attrs, el.node.Attr)
	return attrs
}

// NumAttributes returns the number of attributes.
func (el *Element) NumAttributes() int {
	return len(el.node.Attr)
}

// GetAttribute returns the value of an attribute.
func (el *Element) GetAttribute(key string) (string, bool) {
	for _, a := range el.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttribute returns true if an attribute is set.
func (el *Element) HasAttribute(key string) bool {
	_, ok := el.GetAttribute(key)
	return ok
}

// SetAttribute sets or replaces an attribute. Setting `style` updates the
// computed values of el.
func (el *Element) SetAttribute(key, value string) {
	key = strings.ToLower(key)
	found := false
	for i, a := range el.node.Attr {
		if a.Namespace == "" && a.Key == key {
			el.node.Attr[i].Val = value
			found = true
			break
		}
	}
	if !found {
		el.node.Attr = append(el.node.Attr, html.Attribute{Key: key, Val: value})
	}
	if key == "style" {
		el.restyle(value)
	}
}

// RemoveAttribute removes an attribute. It returns false if the attribute
// has not been set.
func (el *Element) RemoveAttribute(key string) bool {
	for i, a := range el.node.Attr {
		if a.Namespace == "" && a.Key == key {
			el.node.Attr = append(el.node.Attr[:i], el.node.Attr[i+1:]...)
			if key == "style" {
				el.computed = style.Default()
			}
			return true
		}
	}
	return false
}

// Classes returns the classes of the `class` attribute.
func (el *Element) Classes() []string {
	c, _ := el.GetAttribute("class")
	return strings.Fields(c)
}

// IsClassSet returns true if a class is part of the `class` attribute.
func (el *Element) IsClassSet(class string) bool {
	for _, c := range el.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// SetClass adds a class to or removes a class from the `class` attribute.
func (el *Element) SetClass(class string, activate bool) {
	classes := el.Classes()
	out := classes[:0]
	for _, c := range classes {
		if c != class {
			out = append(out, c)
		}
	}
	if activate {
		out = append(out, class)
	}
	if len(out) == 0 {
		el.RemoveAttribute("class")
		return
	}
	el.SetAttribute("class", strings.Join(out, " "))
}

// --- Styles ----------------------------------------------------------------

// ComputedValues returns the computed style values of el.
func (el *Element) ComputedValues() *style.Computed {
	return el.computed
}

// SetComputedValues replaces the computed values of el, e.g. with values
// from a style engine.
func (el *Element) SetComputedValues(c *style.Computed) {
	if c == nil {
		c = style.Default()
	}
	el.computed = c
}

// SetProperty declares a single style property and writes the resulting
// declarations back to the `style` attribute.
func (el *Element) SetProperty(key string, value style.Property) error {
	c := el.computed.Clone()
	if err := c.Set(key, value); err != nil {
		return core.AtElement(err, el.Address())
	}
	el.SetAttribute("style", c.Format())
	return nil
}

func (el *Element) restyle(s string) {
	c, err := style.ParseInline(s)
	if err != nil {
		tracer().Errorf("%s", core.UserMessage(core.AtElement(err, el.localAddress())))
	}
	el.computed = c
}

// --- Tree ------------------------------------------------------------------

// Parent returns the parent element, or nil.
func (el *Element) Parent() *Element {
	return el.parent
}

// NumChildren returns the number of child elements.
func (el *Element) NumChildren() int {
	return len(el.children)
}

// Child returns the child element at position i, or nil.
func (el *Element) Child(i int) *Element {
	if i < 0 || i >= len(el.children) {
		return nil
	}
	return el.children[i]
}

// Children returns a copy of the list of child elements.
func (el *Element) Children() []*Element {
	ch := make([]*Element, len(el.children))
	copy(ch, el.children)
	return ch
}

// IndexOfChild returns the position of a child element, or -1.
func (el *Element) IndexOfChild(child *Element) int {
	for i, ch := range el.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// AppendChild attaches an element as the last child of el. If child is
// already attached to a parent, it is first detached from it.
// AppendChild returns child.
func (el *Element) AppendChild(child *Element) *Element {
	if child == nil || child == el {
		return child
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	} else if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	child.parent = el
	el.children = append(el.children, child)
	el.node.AppendChild(child.node)
	return child
}

// RemoveChild detaches a child element. The child keeps its own subtree.
// It returns false if child is not a child of el.
func (el *Element) RemoveChild(child *Element) bool {
	i := el.IndexOfChild(child)
	if i < 0 {
		return false
	}
	el.children = append(el.children[:i], el.children[i+1:]...)
	if child.node.Parent == el.node {
		el.node.RemoveChild(child.node)
	}
	child.parent = nil
	if child.offsetParent != nil && child.offsetParent.isSelfOrAncestorOf(el) {
		child.offsetParent, child.hasOffset = nil, false
	}
	return true
}

// RemoveAllChildren detaches all children, including non-element content
// of the underlying HTML node (text, comments).
func (el *Element) RemoveAllChildren() {
	for _, ch := range el.children {
		ch.parent = nil
		ch.offsetParent, ch.hasOffset = nil, false
	}
	el.children = el.children[:0]
	for n := el.node.FirstChild; n != nil; n = el.node.FirstChild {
		el.node.RemoveChild(n)
	}
}

func (el *Element) isSelfOrAncestorOf(other *Element) bool {
	for e := other; e != nil; e = e.parent {
		if e == el {
			return true
		}
	}
	return false
}

// Context returns the context of the tree el is part of, or nil.
func (el *Element) Context() *Context {
	root := el
	for root.parent != nil {
		root = root.parent
	}
	return root.context
}

// DataModel returns the data model el is associated with: the data model
// set at el or at its nearest ancestor which has one. It returns nil if no
// data model is associated.
func (el *Element) DataModel() DataModel {
	for e := el; e != nil; e = e.parent {
		if e.model != nil {
			return e.model
		}
	}
	return nil
}

// SetDataModel associates a data model with el and its descendants.
func (el *Element) SetDataModel(m DataModel) {
	el.model = m
}

// --- Geometry --------------------------------------------------------------

// Box returns the box of el.
func (el *Element) Box() *frame.Box {
	return &el.box
}

// SetBox sets the box of el, as computed by the layout engine.
func (el *Element) SetBox(box frame.Box) {
	el.box = box
}

// ClientArea returns the box area which makes up the visible area for
// children, usually the padding area.
func (el *Element) ClientArea() frame.BoxArea {
	return el.clientArea
}

// SetClientArea sets the box area used as the client area.
func (el *Element) SetClientArea(area frame.BoxArea) {
	el.clientArea = area
}

// SetOffset positions the border box of el relative to the border box of
// an offset parent.
func (el *Element) SetOffset(offset dimen.Point, offsetParent *Element) {
	el.offset = offset
	el.offsetParent = offsetParent
	el.hasOffset = offsetParent != nil
}

// Offset returns the position of an area of el, relative to the border box
// of its offset parent.
func (el *Element) Offset(area frame.BoxArea) dimen.Point {
	return el.offset.Add(el.box.Position(area))
}

// OffsetParent returns the element el is positioned against.
//
// If the layout engine has not set an offset parent explicitly, absolutely
// positioned elements use their nearest positioned ancestor (or the root),
// all other elements their parent.
func (el *Element) OffsetParent() *Element {
	if el.hasOffset {
		return el.offsetParent
	}
	if el.parent == nil {
		return nil
	}
	switch el.computed.Position {
	case style.PositionAbsolute:
		e := el.parent
		for ; e.parent != nil; e = e.parent {
			if e.computed.IsPositioned() {
				return e
			}
		}
		return e
	case style.PositionFixed:
		e := el.parent
		for e.parent != nil {
			e = e.parent
		}
		return e
	}
	return el.parent
}

// AbsoluteOffset returns the position of an area of el in context space,
// i.e. including the offsets of all offset parents and the scroll offsets
// of all ancestors up to the offset parent.
func (el *Element) AbsoluteOffset(area frame.BoxArea) dimen.Point {
	pos := el.offset
	if op := el.OffsetParent(); op != nil {
		pos = pos.Add(op.AbsoluteOffset(frame.BorderBox))
		if el.computed.Position != style.PositionFixed {
			for a := el.parent; a != nil; a = a.parent {
				pos = pos.Sub(a.scrollOffset)
				if a == op {
					break
				}
			}
		}
	}
	return pos.Add(el.box.Position(area))
}

// ScrollOffset returns how far the content of el is scrolled.
func (el *Element) ScrollOffset() dimen.Point {
	return el.scrollOffset
}

// SetScrollOffset sets how far the content of el is scrolled.
func (el *Element) SetScrollOffset(offset dimen.Point) {
	el.scrollOffset = offset
}

// ScrollbarSize returns the size of the gutter of a scrollbar, i.e. the
// width for the vertical and the height for the horizontal scrollbar.
func (el *Element) ScrollbarSize(o Orientation) dimen.Dimen {
	return el.scrollbars[o]
}

// SetScrollbarSize sets the size of the gutter of a scrollbar.
func (el *Element) SetScrollbarSize(o Orientation, size dimen.Dimen) {
	el.scrollbars[o] = size
}

// SetScrollableOverflow sets the extent of el's content, relative to the
// top-left corner of the client area.
func (el *Element) SetScrollableOverflow(extent dimen.Point) {
	el.overflow = extent
}

// ClientWidth returns the width of the client area, without the vertical
// scrollbar.
func (el *Element) ClientWidth() dimen.Dimen {
	return el.box.Size(el.clientArea).X - el.scrollbars[Vertical]
}

// ClientHeight returns the height of the client area, without the horizontal
// scrollbar.
func (el *Element) ClientHeight() dimen.Dimen {
	return el.box.Size(el.clientArea).Y - el.scrollbars[Horizontal]
}

// ScrollWidth returns the width of el's content, which is at least the
// client width.
func (el *Element) ScrollWidth() dimen.Dimen {
	return dimen.Max(el.ClientWidth(), el.overflow.X)
}

// ScrollHeight returns the height of el's content, which is at least the
// client height.
func (el *Element) ScrollHeight() dimen.Dimen {
	return dimen.Max(el.ClientHeight(), el.overflow.Y)
}

// Transform returns the transform of el, or nil.
func (el *Element) Transform() *f64.Mat4 {
	return el.transform
}

// SetTransform sets the transform of el. The element keeps the pointer, so
// transforms shared between elements are recognized as identical.
func (el *Element) SetTransform(m *f64.Mat4) {
	el.transform = m
}

// FontFaceHandle returns the font face of el.
func (el *Element) FontFaceHandle() FontFaceHandle {
	return el.fontFace
}

// SetFontFaceHandle sets the font face of el.
func (el *Element) SetFontFaceHandle(h FontFaceHandle) {
	el.fontFace = h
}

// DebugString returns the address and geometry of el.
func (el *Element) DebugString() string {
	return fmt.Sprintf("%s @%v %s", el.Address(), el.AbsoluteOffset(frame.BorderBox),
		el.box.DebugString())
}
