package databind

import (
	"strings"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/npillmayer/rui/engine/dom"
)

// Attacher attaches the bindings declared by `data-` attributes to elements.
type Attacher struct {
	factory *Factory
}

// NewAttacher creates an attacher using the view and controller types of
// a factory. If f is nil, DefaultFactory() is used.
func NewAttacher(f *Factory) *Attacher {
	if f == nil {
		f = DefaultFactory()
	}
	return &Attacher{factory: f}
}

// viewControllerInitializer is a binding found during the attribute scan,
// waiting to be initialized.
type viewControllerInitializer struct {
	kind              string
	modifierOrContent string
	expression        string
	view              View
	controller        Controller
}

func (vci viewControllerInitializer) ok() bool {
	return vci.view != nil || vci.controller != nil
}

// Attach binds the `data-` attributes of an element to the element's data
// model. It returns true if at least one view or controller has been bound.
//
// With structural unset, ordinary views and controllers are bound; if the
// element carries a structural binding, nothing is bound at all. With
// structural set, only structural views are bound, using content as their
// markup.
//
// All bindings are collected before any of them is initialized, as
// initialization may change the attributes of the element.
//
// Views and controllers bind to a *Model only. Elements without a data model
// and elements associated with another DataModel implementation get no
// bindings; the latter case is traced.
func (a *Attacher) Attach(el *dom.Element, structural bool, content string) bool {
	dm := el.DataModel()
	if dm == nil {
		return false
	}
	model, ok := dm.(*Model)
	if !ok || model == nil {
		tracer().Debugf("data model %T of %s is not bindable, skipping", dm, el.Address())
		return false
	}
	var staged []viewControllerInitializer
	for _, attr := range el.Attributes() {
		if !strings.HasPrefix(attr.Key, "data-") {
			continue
		}
		kind, modifier, _ := strings.Cut(attr.Key[len("data-"):], "-")
		vci := viewControllerInitializer{kind: kind, expression: attr.Val}
		if structural {
			if view := a.factory.InstanceDataView(kind, el, true); view != nil {
				vci.view = view
				vci.modifierOrContent = content
			}
		} else {
			if a.factory.IsStructuralDataView(kind) {
				tracer().Debugf("structural data-%s at %s, skipping other bindings", kind, el.Address())
				return false
			}
			vci.modifierOrContent = modifier
			vci.view = a.factory.InstanceDataView(kind, el, false)
			vci.controller = a.factory.InstanceDataController(kind, el)
		}
		if vci.ok() {
			staged = append(staged, vci)
		}
	}
	boundAny := false
	for _, vci := range staged {
		if vci.view != nil {
			if vci.view.Initialize(model, el, vci.expression, vci.modifierOrContent) {
				model.AddView(vci.view)
				boundAny = true
			} else {
				tracer().Errorf("could not add data-%s view to element: %s", vci.kind, el.Address())
			}
		}
		if vci.controller != nil {
			if vci.controller.Initialize(model, el, vci.expression, vci.modifierOrContent) {
				model.AddController(vci.controller)
				boundAny = true
			} else {
				tracer().Errorf("could not add data-%s controller to element: %s", vci.kind, el.Address())
			}
		}
	}
	return boundAny
}

// HasStructuralBinding returns true if el carries a `data-` attribute of a
// structural view type.
func (a *Attacher) HasStructuralBinding(el *dom.Element) bool {
	for _, attr := range el.Attributes() {
		if !strings.HasPrefix(attr.Key, "data-") {
			continue
		}
		kind, _, _ := strings.Cut(attr.Key[len("data-"):], "-")
		if a.factory.IsStructuralDataView(kind) {
			return true
		}
	}
	return false
}

// BindTree attaches the bindings of root and its descendants, breadth
// first. Elements with a structural binding get their inner markup as
// content and their descendants are left alone. It returns the number of
// elements with bindings.
func (a *Attacher) BindTree(root *dom.Element) int {
	n := 0
	queue := singlylinkedlist.New()
	queue.Add(root)
	for !queue.Empty() {
		front, _ := queue.Get(0)
		queue.Remove(0)
		el := front.(*dom.Element)
		if a.HasStructuralBinding(el) {
			if a.Attach(el, true, el.InnerMarkup()) {
				n++
			}
			continue
		}
		if a.Attach(el, false, "") {
			n++
		}
		for _, ch := range el.Children() {
			queue.Add(ch)
		}
	}
	return n
}

// ApplyDataViewsControllers binds the non-structural views and controllers
// of an element, using the default factory.
func ApplyDataViewsControllers(el *dom.Element) bool {
	return NewAttacher(nil).Attach(el, false, "")
}

// ApplyStructuralDataViews binds the structural views of an element, using
// the default factory. inner is the element's markup the views generate
// content from.
func ApplyStructuralDataViews(el *dom.Element, inner string) bool {
	return NewAttacher(nil).Attach(el, true, inner)
}

// BindTree attaches all bindings in a subtree, using the default factory.
func BindTree(root *dom.Element) int {
	return NewAttacher(nil).BindTree(root)
}
