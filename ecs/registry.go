package ecs

import "reflect"

// ComponentRegistry maps component types to column factories. Each World
// owns its own registry, so independent worlds never interfere.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent registers the component type T with the registry.
// Every component type must be registered before an entity carrying it is
// spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() column {
		return &componentColumn[T]{}
	}
}

// Registered reports whether a component type has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

// getFactory returns the column factory for a component type, or nil.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() column {
	return r.factories[t]
}
