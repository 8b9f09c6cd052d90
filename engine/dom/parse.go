package dom

import (
	"bytes"
	"io"
	"strings"

	"github.com/npillmayer/rui/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads a markup document and returns the element for its body.
// The body element is detached from the surrounding HTML document.
func Parse(r io.Reader) (*Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.ESYNTAX, "cannot parse document")
	}
	body := findBody(doc)
	if body == nil {
		return nil, core.Error(core.EMISSING, "document has no body")
	}
	if body.Parent != nil {
		body.Parent.RemoveChild(body)
	}
	root := buildTree(body)
	tracer().Debugf("parsed document with body %s", root.Address())
	return root, nil
}

// ParseString is a convenience wrapper for Parse.
func ParseString(markup string) (*Element, error) {
	return Parse(strings.NewReader(markup))
}

// ParseFragment parses markup in the context of an element and returns the
// top-level nodes. Top-level elements are wrapped as (detached) elements,
// all other nodes are returned as HTML nodes only.
func ParseFragment(context *Element, markup string) ([]*html.Node, []*Element, error) {
	ctxNode := context.node
	if ctxNode.DataAtom == 0 { // custom tags parse like a <div>
		ctxNode = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctxNode)
	if err != nil {
		return nil, nil, core.WrapError(err, core.ESYNTAX, "cannot parse fragment")
	}
	var elements []*Element
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements = append(elements, buildTree(n))
		}
	}
	return nodes, elements, nil
}

// SetInnerMarkup replaces the content of el with parsed markup.
func (el *Element) SetInnerMarkup(markup string) error {
	nodes, _, err := ParseFragment(el, markup)
	if err != nil {
		return err
	}
	el.RemoveAllChildren()
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			child := buildTree(n)
			el.AppendChild(child)
			continue
		}
		el.node.AppendChild(n)
	}
	return nil
}

// InnerMarkup renders the content of el.
func (el *Element) InnerMarkup() string {
	var buf bytes.Buffer
	for n := el.node.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(&buf, n); err != nil {
			tracer().Errorf("cannot render content of %s: %v", el.localAddress(), err)
			break
		}
	}
	return buf.String()
}

// buildTree wraps an HTML element node and all of its element descendants.
// The HTML tree is left unchanged.
func buildTree(n *html.Node) *Element {
	el := newElementForNode(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		child := buildTree(c)
		child.parent = el
		el.children = append(el.children, child)
	}
	return el
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
