package databind

import "github.com/npillmayer/rui/engine/dom"

// View pushes the value of a model variable into an element.
type View interface {
	// Initialize binds the view to an element. modifier is the attribute key
	// suffix after the type, or the inner markup for structural views.
	// Views which cannot bind return false and are discarded.
	Initialize(model *Model, el *dom.Element, expression, modifier string) bool
	Element() *dom.Element
	Variable() string
	// Update re-applies the variable's value to the element.
	Update(model *Model) bool
}

// Controller feeds values from an element back into a model.
type Controller interface {
	Initialize(model *Model, el *dom.Element, expression, modifier string) bool
	Element() *dom.Element
	Variable() string
	// Changed is called when the element's value has changed.
	Changed(model *Model) bool
}

// ViewConstructor creates an uninitialized view for an element.
type ViewConstructor func(el *dom.Element) View

// ControllerConstructor creates an uninitialized controller for an element.
type ControllerConstructor func(el *dom.Element) Controller

// binding holds what all built-in views and controllers share.
type binding struct {
	el       *dom.Element
	variable string
}

func (b *binding) Element() *dom.Element {
	return b.el
}

func (b *binding) Variable() string {
	return b.variable
}

// bind checks that a variable exists in model and remembers it.
func (b *binding) bind(model *Model, el *dom.Element, expression string) bool {
	b.el = el
	b.variable = normalize(expression)
	if !model.IsBound(b.variable) {
		tracer().Debugf("model %q has no variable %q", model.Name(), b.variable)
		return false
	}
	return true
}
