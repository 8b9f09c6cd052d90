/*
Package xpathadapter implements an xpath.NodeNavigator for element trees.

We use this library for XPath queries:

	github.com/antchfx/xpath

The navigator visits elements and their attributes. The element the
navigator is created for acts as the document root, i.e. `//div` selects
all div elements below it. Text content is not
represented by nodes of its own; the value of an element is its inner text.
For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

BSD License

Copyright (c) 2017–18, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of Norbert Pillmayer nor the names of its contributors
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
package xpathadapter

import (
	"bytes"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/rui/core"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'rui.dom'.
func tracer() tracing.Trace {
	return tracing.Select("rui.dom")
}

// NodeNavigator navigates an element tree.
type NodeNavigator struct {
	root, current *dom.Element
	attr          int // attributes index
}

// NewNavigator creates a new xpath.NodeNavigator for an element tree.
func NewNavigator(root *dom.Element) *NodeNavigator {
	return &NodeNavigator{
		current: root,
		root:    root,
		attr:    -1,
	}
}

// Current returns the element the navigator is positioned at.
func (nav *NodeNavigator) Current() *dom.Element {
	return nav.current
}

// Find selects all elements of the tree below root matching an XPath
// expression. Attribute matches select the element carrying the attribute.
func Find(root *dom.Element, expr string) ([]*dom.Element, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.ESYNTAX, "illegal XPath expression %q", expr)
	}
	var elements []*dom.Element
	seen := make(map[*dom.Element]bool)
	iter := compiled.Select(NewNavigator(root))
	for iter.MoveNext() {
		nav, ok := iter.Current().(*NodeNavigator)
		if !ok || seen[nav.current] {
			continue
		}
		seen[nav.current] = true
		elements = append(elements, nav.current)
	}
	tracer().Debugf("XPath %q selects %d elements", expr, len(elements))
	return elements, nil
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if nav.current == nav.root && nav.attr == -1 {
		return xpath.RootNode
	}
	if nav.attr != -1 {
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.HTMLNode().Attr[nav.attr].Key
	}
	return nav.current.TagName()
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	if nav.attr != -1 {
		return nav.current.HTMLNode().Attr[nav.attr].Val
	}
	return innerText(nav.current.HTMLNode())
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.current == nav.root {
		return false
	}
	parent := nav.current.Parent()
	if parent == nil {
		return false
	}
	nav.current = parent
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.attr >= nav.current.NumAttributes()-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	child := nav.current.Child(0)
	if child == nil {
		return false
	}
	nav.current = child
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	first := nav.current.Parent().Child(0)
	if first == nil || first == nav.current {
		return false
	}
	nav.current = first
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) MoveToNext() bool {
	return nav.moveSibling(+1)
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	return nav.moveSibling(-1)
}

func (nav *NodeNavigator) moveSibling(delta int) bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	parent := nav.current.Parent()
	if parent == nil {
		return false
	}
	sibling := parent.Child(parent.IndexOfChild(nav.current) + delta)
	if sibling == nil {
		return false
	}
	nav.current = sibling
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// innerText returns the text between the start and end tags of the object.
func innerText(n *html.Node) string {
	var output func(*bytes.Buffer, *html.Node)
	output = func(buf *bytes.Buffer, n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
			return
		case html.CommentNode:
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			output(buf, child)
		}
	}

	var buf bytes.Buffer
	output(&buf, n)
	return buf.String()
}
