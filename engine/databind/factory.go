package databind

import (
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/rui/core"
	"github.com/npillmayer/rui/engine/dom"
)

// Factory is a registry of data view and data controller types, keyed by
// the type tag used in `data-<type>` attributes.
//
// A factory may be used from multiple goroutines; registration usually
// happens in init functions.
type Factory struct {
	mx          sync.RWMutex
	views       *trie.Trie
	controllers *trie.Trie
}

type viewType struct {
	structural bool
	create     ViewConstructor
}

// NewFactory creates an empty factory.
func NewFactory() *Factory {
	return &Factory{
		views:       trie.New(),
		controllers: trie.New(),
	}
}

var (
	defaultFactory     *Factory
	defaultFactoryOnce sync.Once
)

// DefaultFactory returns the process-wide factory, holding the built-in
// views and controllers.
func DefaultFactory() *Factory {
	defaultFactoryOnce.Do(func() {
		defaultFactory = NewFactory()
		if err := RegisterBuiltins(defaultFactory); err != nil {
			panic(err)
		}
	})
	return defaultFactory
}

func checkTypeName(name string) error {
	if name == "" || strings.ContainsAny(name, "- \t\n") {
		return core.Error(core.EINVALID, "illegal data binding type name %q", name)
	}
	return nil
}

// RegisterView adds a view type. Type names must not contain '-' and must
// be unique among views.
func (f *Factory) RegisterView(name string, structural bool, create ViewConstructor) error {
	if err := checkTypeName(name); err != nil {
		return err
	}
	if create == nil {
		return core.Error(core.EINVALID, "view type %q without constructor", name)
	}
	f.mx.Lock()
	defer f.mx.Unlock()
	if _, ok := f.views.Find(name); ok {
		return core.Error(core.EDUPLICATE, "view type %q already registered", name)
	}
	f.views.Add(name, viewType{structural: structural, create: create})
	tracer().Debugf("registered data view %q", name)
	return nil
}

// RegisterController adds a controller type. Type names must not contain
// '-' and must be unique among controllers.
func (f *Factory) RegisterController(name string, create ControllerConstructor) error {
	if err := checkTypeName(name); err != nil {
		return err
	}
	if create == nil {
		return core.Error(core.EINVALID, "controller type %q without constructor", name)
	}
	f.mx.Lock()
	defer f.mx.Unlock()
	if _, ok := f.controllers.Find(name); ok {
		return core.Error(core.EDUPLICATE, "controller type %q already registered", name)
	}
	f.controllers.Add(name, create)
	tracer().Debugf("registered data controller %q", name)
	return nil
}

func (f *Factory) viewType(name string) (viewType, bool) {
	f.mx.RLock()
	defer f.mx.RUnlock()
	node, ok := f.views.Find(name)
	if !ok {
		return viewType{}, false
	}
	vt, ok := node.Meta().(viewType)
	return vt, ok
}

// InstanceDataView creates a view of a given type for an element. It
// returns nil if no view of that type is registered, or if the view type
// is not of the requested structural kind.
func (f *Factory) InstanceDataView(name string, el *dom.Element, structural bool) View {
	vt, ok := f.viewType(name)
	if !ok || vt.structural != structural {
		return nil
	}
	return vt.create(el)
}

// InstanceDataController creates a controller of a given type for an
// element, or returns nil if no such controller type is registered.
func (f *Factory) InstanceDataController(name string, el *dom.Element) Controller {
	f.mx.RLock()
	node, ok := f.controllers.Find(name)
	f.mx.RUnlock()
	if !ok {
		return nil
	}
	create, ok := node.Meta().(ControllerConstructor)
	if !ok {
		return nil
	}
	return create(el)
}

// IsStructuralDataView returns true if name denotes a structural view type.
func (f *Factory) IsStructuralDataView(name string) bool {
	vt, ok := f.viewType(name)
	return ok && vt.structural
}

// ViewTypes returns the registered view type names starting with prefix,
// sorted.
func (f *Factory) ViewTypes(prefix string) []string {
	f.mx.RLock()
	defer f.mx.RUnlock()
	return search(f.views, prefix)
}

// ControllerTypes returns the registered controller type names starting
// with prefix, sorted.
func (f *Factory) ControllerTypes(prefix string) []string {
	f.mx.RLock()
	defer f.mx.RUnlock()
	return search(f.controllers, prefix)
}

func search(t *trie.Trie, prefix string) []string {
	var names []string
	if prefix == "" {
		names = t.Keys()
	} else {
		names = t.PrefixSearch(prefix)
	}
	sort.Strings(names)
	return names
}
