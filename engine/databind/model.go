package databind

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/npillmayer/rui/core"
	"github.com/npillmayer/rui/engine/dom"
)

// Model is a data model elements may bind to. It holds named variables and
// owns the views and controllers bound to them.
//
// Models are not synchronized; they are used from the UI thread only.
type Model struct {
	name        string
	vars        map[string]interface{}
	dirty       map[string]bool
	views       []View
	controllers []Controller
}

var _ dom.DataModel = (*Model)(nil)

// NewModel creates an empty data model.
func NewModel(name string) *Model {
	return &Model{
		name:  name,
		vars:  make(map[string]interface{}),
		dirty: make(map[string]bool),
	}
}

// Name returns the name of the model.
func (m *Model) Name() string {
	return m.name
}

// Bind defines a variable, or replaces its value. The variable is marked
// dirty.
func (m *Model) Bind(name string, value interface{}) {
	name = normalize(name)
	m.vars[name] = value
	m.dirty[name] = true
}

// IsBound returns true if a variable is defined.
func (m *Model) IsBound(name string) bool {
	_, ok := m.vars[normalize(name)]
	return ok
}

// Get returns the value of a variable.
func (m *Model) Get(name string) (interface{}, bool) {
	v, ok := m.vars[normalize(name)]
	return v, ok
}

// GetString returns the value of a variable as a string, or "".
func (m *Model) GetString(name string) string {
	v, ok := m.Get(name)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Set changes the value of a defined variable and marks it dirty.
func (m *Model) Set(name string, value interface{}) error {
	name = normalize(name)
	if _, ok := m.vars[name]; !ok {
		return core.Error(core.EMISSING, "model %q has no variable %q", m.name, name)
	}
	m.vars[name] = value
	m.dirty[name] = true
	return nil
}

// Variables returns the names of all variables, sorted.
func (m *Model) Variables() []string {
	names := make([]string, 0, len(m.vars))
	for k := range m.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// IsDirty returns true if a variable has changed since the last Update.
func (m *Model) IsDirty(name string) bool {
	return m.dirty[normalize(name)]
}

// AddView hands a bound view over to the model.
func (m *Model) AddView(v View) {
	m.views = append(m.views, v)
}

// AddController hands a bound controller over to the model.
func (m *Model) AddController(c Controller) {
	m.controllers = append(m.controllers, c)
}

// Views returns the views owned by the model.
func (m *Model) Views() []View {
	return m.views
}

// Controllers returns the controllers owned by the model.
func (m *Model) Controllers() []Controller {
	return m.controllers
}

// Update runs all views depending on dirty variables and clears the dirty
// flags. It returns the number of views updated. Views bound during the
// update do not run.
func (m *Model) Update() int {
	if len(m.dirty) == 0 {
		return 0
	}
	dirty := m.dirty
	m.dirty = make(map[string]bool)
	views := append([]View(nil), m.views...)
	n := 0
	for _, v := range views {
		if !dirty[v.Variable()] || !m.owns(v) {
			continue
		}
		if !v.Update(m) {
			tracer().Errorf("update of view for %q failed at %s", v.Variable(), v.Element().Address())
			continue
		}
		n++
	}
	tracer().Debugf("model %q: updated %d views", m.name, n)
	return n
}

// ElementChanged notifies the controllers bound to el about a change of the
// element's value. It returns true if any controller accepted the change.
func (m *Model) ElementChanged(el *dom.Element) bool {
	changed := false
	for _, c := range m.controllers {
		if c.Element() == el && c.Changed(m) {
			changed = true
		}
	}
	return changed
}

// ReleaseDescendants drops all views and controllers bound to descendants
// of el.
func (m *Model) ReleaseDescendants(el *dom.Element) {
	below := func(e *dom.Element) bool {
		for p := e.Parent(); p != nil; p = p.Parent() {
			if p == el {
				return true
			}
		}
		return false
	}
	views := m.views[:0]
	for _, v := range m.views {
		if !below(v.Element()) {
			views = append(views, v)
		}
	}
	for i := len(views); i < len(m.views); i++ {
		m.views[i] = nil
	}
	m.views = views
	controllers := m.controllers[:0]
	for _, c := range m.controllers {
		if !below(c.Element()) {
			controllers = append(controllers, c)
		}
	}
	for i := len(controllers); i < len(m.controllers); i++ {
		m.controllers[i] = nil
	}
	m.controllers = controllers
}

func (m *Model) owns(v View) bool {
	for _, w := range m.views {
		if w == v {
			return true
		}
	}
	return false
}

// --- Values ----------------------------------------------------------------

func normalize(name string) string {
	return strings.TrimSpace(name)
}

// truthy interprets a variable value as a condition.
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		s := strings.TrimSpace(strings.ToLower(x))
		return s != "" && s != "false" && s != "0"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return true
}

// items interprets a variable value as a list. Integers n are lists of
// 0…n-1.
func items(v interface{}) ([]interface{}, bool) {
	if v == nil {
		return nil, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		list := make([]interface{}, rv.Len())
		for i := range list {
			list[i] = rv.Index(i).Interface()
		}
		return list, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := int(rv.Int())
		list := make([]interface{}, 0, max(n, 0))
		for i := 0; i < n; i++ {
			list = append(list, i)
		}
		return list, true
	}
	return nil, false
}
