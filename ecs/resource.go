package ecs

import "reflect"

// InsertResource stores a world-global value of type T and returns a
// pointer to the stored copy. Replacing an existing resource overwrites it
// in place, so pointers handed out earlier (including bound Resource
// accessors) observe the new value. Resources are not attached to
// entities; use them for clocks, configuration and other single-instance
// state.
func InsertResource[T any](w *World, value T) *T {
	t := reflect.TypeFor[T]()
	if existing, ok := w.resources[t].(*T); ok {
		*existing = value
		return existing
	}

	ptr := &value
	w.resources[t] = ptr
	return ptr
}

// GetResource returns the world's resource of type T, or nil when none
// has been inserted.
func GetResource[T any](w *World) *T {
	ptr, _ := w.resources[reflect.TypeFor[T]()].(*T)
	return ptr
}

// RemoveResource drops the world's resource of type T. Returns false when
// none existed. Removal detaches already-bound Resource accessors: they
// keep pointing at the removed copy until re-initialized.
func RemoveResource[T any](w *World) bool {
	t := reflect.TypeFor[T]()
	if _, ok := w.resources[t]; !ok {
		return false
	}
	delete(w.resources, t)
	return true
}

// Resource provides cached access to a world resource from a system
// field. The scheduler initializes Resource fields during registration,
// the same way it initializes Query fields.
type Resource[T any] struct {
	world *World
	ptr   *T
}

// NewResource creates an accessor bound to the world. When the resource
// does not exist yet it is created from the optional initializer, or the
// zero value, so the resource is guaranteed to exist afterwards.
func NewResource[T any](world *World, initializer ...T) *Resource[T] {
	if GetResource[T](world) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		InsertResource(world, value)
	}

	return &Resource[T]{
		world: world,
		ptr:   GetResource[T](world),
	}
}

// Init binds the accessor to a world. Called automatically by the
// scheduler during system registration.
func (r *Resource[T]) Init(world *World) {
	r.world = world
	r.ptr = GetResource[T](world)
}

// Get returns a pointer to the resource, or nil when it has not been
// inserted into the world.
func (r *Resource[T]) Get() *T {
	if r.ptr == nil && r.world != nil {
		r.ptr = GetResource[T](r.world)
	}
	return r.ptr
}

// Exists reports whether the resource is present in the world.
func (r *Resource[T]) Exists() bool {
	return r.Get() != nil
}
