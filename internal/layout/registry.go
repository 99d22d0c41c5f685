package layout

import (
	"fmt"
	"sort"

	"vrcollab/internal/engine"
)

// Factory creates the GameObject for one widget definition.
type Factory func(def WidgetDef, env *Env) (*engine.GameObject, error)

var registry = map[string]Factory{}

// Register makes a widget kind available to layout files. Registering the
// same kind twice panics.
func Register(kind string, factory Factory) {
	if _, exists := registry[kind]; exists {
		panic(fmt.Sprintf("widget kind %q already registered", kind))
	}
	registry[kind] = factory
}

// Kinds returns the registered widget kinds, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func create(def WidgetDef, env *Env) (*engine.GameObject, error) {
	factory, ok := registry[def.Kind]
	if !ok {
		return nil, fmt.Errorf("widget %q: %w %q", def.Name, ErrUnknownKind, def.Kind)
	}
	return factory(def, env)
}
