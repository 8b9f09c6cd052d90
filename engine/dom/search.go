package dom

import (
	"github.com/andybalholm/cascadia"
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/npillmayer/rui/core"
)

// Tree searches are breadth-first, with an explicit work-queue.

// walk visits root (if includeRoot) and all of its descendants breadth
// first. The visit stops as soon as visit returns false.
func walk(root *Element, includeRoot bool, visit func(*Element) bool) {
	queue := singlylinkedlist.New()
	if includeRoot {
		queue.Add(root)
	} else {
		for _, ch := range root.children {
			queue.Add(ch)
		}
	}
	for !queue.Empty() {
		front, _ := queue.Get(0)
		queue.Remove(0)
		el := front.(*Element)
		if !visit(el) {
			return
		}
		for _, ch := range el.children {
			queue.Add(ch)
		}
	}
}

// ElementByID returns the first element with a given id, searching root and
// its descendants breadth first. It returns nil if no element matches.
func ElementByID(root *Element, id string) *Element {
	var found *Element
	walk(root, true, func(el *Element) bool {
		if el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// ElementsByTagName returns all descendants of root with a given tag, in
// breadth-first order. root itself is not included.
func ElementsByTagName(root *Element, tag string) []*Element {
	var elements []*Element
	walk(root, false, func(el *Element) bool {
		if el.TagName() == tag {
			elements = append(elements, el)
		}
		return true
	})
	return elements
}

// ElementsByClassName returns all descendants of root which have a given
// class set, in breadth-first order. root itself is not included.
func ElementsByClassName(root *Element, class string) []*Element {
	var elements []*Element
	walk(root, false, func(el *Element) bool {
		if el.IsClassSet(class) {
			elements = append(elements, el)
		}
		return true
	})
	return elements
}

// QuerySelectorAll returns all descendants of root matching a CSS selector,
// in breadth-first order.
func QuerySelectorAll(root *Element, selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.ESYNTAX, "illegal selector %q", selector)
	}
	var elements []*Element
	walk(root, false, func(el *Element) bool {
		if sel.Match(el.node) {
			elements = append(elements, el)
		}
		return true
	})
	return elements, nil
}

// QuerySelector returns the first descendant of root matching a CSS
// selector, or nil.
func QuerySelector(root *Element, selector string) (*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.ESYNTAX, "illegal selector %q", selector)
	}
	var found *Element
	walk(root, false, func(el *Element) bool {
		if sel.Match(el.node) {
			found = el
			return false
		}
		return true
	})
	return found, nil
}

// Matches returns true if el matches a CSS selector.
func (el *Element) Matches(selector string) (bool, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return false, core.WrapError(err, core.ESYNTAX, "illegal selector %q", selector)
	}
	return sel.Match(el.node), nil
}
