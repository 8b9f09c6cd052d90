package databind

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/dom/style"
)

// RegisterBuiltins registers the built-in views and controllers with a
// factory.
func RegisterBuiltins(f *Factory) error {
	views := []struct {
		name       string
		structural bool
		create     ViewConstructor
	}{
		{"attr", false, func(*dom.Element) View { return &attrView{} }},
		{"class", false, func(*dom.Element) View { return &classView{} }},
		{"style", false, func(*dom.Element) View { return &styleView{} }},
		{"if", false, func(*dom.Element) View { return &ifView{} }},
		{"value", false, func(*dom.Element) View { return &valueView{} }},
		{"for", true, func(*dom.Element) View { return &forView{factory: f} }},
	}
	for _, v := range views {
		if err := f.RegisterView(v.name, v.structural, v.create); err != nil {
			return err
		}
	}
	return f.RegisterController("value", func(*dom.Element) Controller { return &valueController{} })
}

// --- data-attr-<name> ------------------------------------------------------

type attrView struct {
	binding
	attr string
}

func (v *attrView) Initialize(model *Model, el *dom.Element, expression, modifier string) bool {
	if modifier == "" || !v.bind(model, el, expression) {
		return false
	}
	v.attr = modifier
	return v.Update(model)
}

func (v *attrView) Update(model *Model) bool {
	value := model.GetString(v.variable)
	if old, ok := v.el.GetAttribute(v.attr); !ok || old != value {
		v.el.SetAttribute(v.attr, value)
	}
	return true
}

// --- data-class-<name> -----------------------------------------------------

type classView struct {
	binding
	class string
}

func (v *classView) Initialize(model *Model, el *dom.Element, expression, modifier string) bool {
	if modifier == "" || !v.bind(model, el, expression) {
		return false
	}
	v.class = modifier
	return v.Update(model)
}

func (v *classView) Update(model *Model) bool {
	value, _ := model.Get(v.variable)
	v.el.SetClass(v.class, truthy(value))
	return true
}

// --- data-style-<property> -------------------------------------------------

type styleView struct {
	binding
	property string
}

func (v *styleView) Initialize(model *Model, el *dom.Element, expression, modifier string) bool {
	if modifier == "" || !v.bind(model, el, expression) {
		return false
	}
	v.property = modifier
	return v.Update(model)
}

func (v *styleView) Update(model *Model) bool {
	value := style.Property(model.GetString(v.variable))
	if err := v.el.SetProperty(v.property, value); err != nil {
		tracer().Errorf("data-style-%s at %s: %v", v.property, v.el.Address(), err)
		return false
	}
	return true
}

// --- data-if ---------------------------------------------------------------

type ifView struct {
	binding
	display style.Property // display value to restore
}

func (v *ifView) Initialize(model *Model, el *dom.Element, expression, modifier string) bool {
	if !v.bind(model, el, expression) {
		return false
	}
	v.display = el.ComputedValues().Display
	if v.display == "none" || v.display.IsEmpty() {
		v.display = "block"
	}
	return v.Update(model)
}

func (v *ifView) Update(model *Model) bool {
	value, _ := model.Get(v.variable)
	display := v.display
	if !truthy(value) {
		display = "none"
	}
	if v.el.ComputedValues().Display == display {
		return true
	}
	return v.el.SetProperty("display", display) == nil
}

// --- data-value ------------------------------------------------------------

type valueView struct {
	binding
}

func (v *valueView) Initialize(model *Model, el *dom.Element, expression, modifier string) bool {
	if !v.bind(model, el, expression) {
		return false
	}
	return v.Update(model)
}

func (v *valueView) Update(model *Model) bool {
	v.el.SetAttribute("value", model.GetString(v.variable))
	return true
}

type valueController struct {
	binding
}

func (c *valueController) Initialize(model *Model, el *dom.Element, expression, modifier string) bool {
	return c.bind(model, el, expression)
}

func (c *valueController) Changed(model *Model) bool {
	value, _ := c.el.GetAttribute("value")
	if model.GetString(c.variable) == value {
		return false
	}
	return model.Set(c.variable, value) == nil
}

// --- data-for --------------------------------------------------------------

// forView repeats its inner markup for every item of a list variable.
// Expressions have the form
//
//	[<alias>[, <index-alias>] :] <variable>
//
// with default aliases `it` and `it_index`. Occurrences of `{{alias}}` and
// `{{index-alias}}` in the markup are replaced by the item and its index.
type forView struct {
	binding
	alias, indexAlias string
	markup            string
	factory           *Factory // binds the generated content
}

func (v *forView) Initialize(model *Model, el *dom.Element, expression, content string) bool {
	v.alias, v.indexAlias = "it", "it_index"
	variable := expression
	if aliases, name, found := strings.Cut(expression, ":"); found {
		variable = name
		a, i, hasIndex := strings.Cut(aliases, ",")
		if a = strings.TrimSpace(a); a != "" {
			v.alias = a
		}
		if i = strings.TrimSpace(i); hasIndex && i != "" {
			v.indexAlias = i
		}
	}
	if !v.bind(model, el, variable) {
		return false
	}
	v.markup = content
	return v.Update(model)
}

func (v *forView) Update(model *Model) bool {
	value, _ := model.Get(v.variable)
	list, ok := items(value)
	if !ok {
		tracer().Errorf("data-for at %s: %q is not a list", v.el.Address(), v.variable)
		return false
	}
	var b strings.Builder
	for i, item := range list {
		r := strings.NewReplacer(
			"{{"+v.alias+"}}", html.EscapeString(fmt.Sprint(item)),
			"{{"+v.indexAlias+"}}", strconv.Itoa(i),
		)
		b.WriteString(r.Replace(v.markup))
	}
	model.ReleaseDescendants(v.el)
	if err := v.el.SetInnerMarkup(b.String()); err != nil {
		tracer().Errorf("data-for at %s: %v", v.el.Address(), err)
		return false
	}
	attacher := NewAttacher(v.factory)
	for _, child := range v.el.Children() {
		attacher.BindTree(child)
	}
	return true
}
