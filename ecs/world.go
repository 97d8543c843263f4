package ecs

import (
	"reflect"
	"unsafe"
	"weak"
)

// World owns all entity data: archetypes keyed by their type-set hash,
// the component registry, and resource storage.
type World struct {
	archetypes map[uint32]*Archetype
	registry   *ComponentRegistry
	resources  map[reflect.Type]any
}

// NewWorld creates an empty world backed by the given component registry.
func NewWorld(registry *ComponentRegistry) *World {
	return &World{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		resources:  make(map[reflect.Type]any),
	}
}

// Registry returns the world's component registry.
func (w *World) Registry() *ComponentRegistry {
	return w.registry
}

// CreateEntityRef returns a stable reference to the given entity, reusing
// an existing live ref when one exists. Returns nil for unknown entities.
func (w *World) CreateEntityRef(id EntityId) *EntityRef {
	archetype := w.archetypes[id.ArchetypeId()]
	if archetype == nil {
		return nil
	}

	if weakPtr, ok := archetype.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		archetype.refs.Del(id)
	}

	ref := &EntityRef{
		Id:        id,
		Archetype: archetype,
	}

	archetype.refs.Put(id, weak.Make(ref))
	return ref
}

// ResolveEntityRef returns the current entity id behind a ref, or false
// when the ref is nil or its entity has been deleted.
func (w *World) ResolveEntityRef(ref *EntityRef) (EntityId, bool) {
	if ref == nil || ref.Id == 0 {
		return 0, false
	}
	return ref.Id, true
}

// InvalidateEntityRef detaches a ref from its entity without deleting the
// entity. Returns false if the ref was already dead.
func (w *World) InvalidateEntityRef(ref *EntityRef) bool {
	if ref == nil || ref.Id == 0 {
		return false
	}

	if archetype := w.archetypes[ref.Id.ArchetypeId()]; archetype != nil {
		archetype.refs.Del(ref.Id)
	}

	ref.Id = 0
	ref.Archetype = nil
	return true
}

// GetArchetype returns the archetype holding exactly the given component
// set, or nil if no entity with that set has been spawned.
func (w *World) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	return w.archetypes[hashTypeSet(types)]
}

// GetArchetypeByTypes is GetArchetype for callers that already hold the
// reflect.Types. The slice is sorted in place.
func (w *World) GetArchetypeByTypes(types []reflect.Type) *Archetype {
	sortTypes(types)
	return w.archetypes[hashTypeSet(types)]
}

// Archetypes returns the live archetypes in unspecified order. Debug
// tooling iterates these; callers must not mutate them.
func (w *World) Archetypes() []*Archetype {
	archetypes := make([]*Archetype, 0, len(w.archetypes))
	for _, archetype := range w.archetypes {
		archetypes = append(archetypes, archetype)
	}
	return archetypes
}

// Spawn creates a new entity with the provided components and returns its
// id. Panics when called with no components or an unregistered type.
func (w *World) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetypeId := hashTypeSet(types)

	archetype, exists := w.archetypes[archetypeId]
	if !exists {
		archetype = NewArchetype(archetypeId, types, w.registry)
		w.archetypes[archetypeId] = archetype
	}

	index := archetype.Spawn(components)
	return NewEntityId(archetypeId, index)
}

// Delete removes the entity and all of its components. Unknown ids are
// ignored.
func (w *World) Delete(id EntityId) {
	archetype, ok := w.archetypes[id.ArchetypeId()]
	if !ok {
		return
	}

	archetype.Delete(id.Index())
}

// AddComponent moves the entity into the archetype that additionally
// carries the given component, returning the entity's new id. Live
// EntityRefs follow the move.
func (w *World) AddComponent(id EntityId, component any) EntityId {
	oldArchetype := w.archetypes[id.ArchetypeId()]

	compType := reflect.TypeOf(component)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	newTypes := make([]reflect.Type, 0, len(oldArchetype.types)+1)
	newTypes = append(newTypes, oldArchetype.types...)
	newTypes = append(newTypes, compType)
	sortTypes(newTypes)

	newArchetypeId := hashTypeSet(newTypes)
	newArchetype, exists := w.archetypes[newArchetypeId]
	if !exists {
		newArchetype = NewArchetype(newArchetypeId, newTypes, w.registry)
		w.archetypes[newArchetypeId] = newArchetype
	}

	weakPtr, hasRef := oldArchetype.refs.Get(id)

	components := make([]any, 0, len(newTypes))
	for _, typ := range newTypes {
		if typ == compType {
			components = append(components, component)
		} else {
			components = append(components, oldArchetype.GetComponent(id.Index(), typ))
		}
	}

	newIndex := newArchetype.Spawn(components)
	newId := NewEntityId(newArchetypeId, newIndex)

	if hasRef {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = newId
			ref.Archetype = newArchetype
		}
		oldArchetype.refs.Del(id)
		newArchetype.refs.Put(newId, weakPtr)
	}

	oldArchetype.Delete(id.Index())
	return newId
}

// RemoveComponent moves the entity into the archetype without the given
// component type, returning the entity's new id. Removing the last
// component deletes the entity and returns 0.
func (w *World) RemoveComponent(id EntityId, compType reflect.Type) EntityId {
	oldArchetype := w.archetypes[id.ArchetypeId()]

	newTypes := make([]reflect.Type, 0, len(oldArchetype.types)-1)
	for _, typ := range oldArchetype.types {
		if typ != compType {
			newTypes = append(newTypes, typ)
		}
	}

	weakPtr, hasRef := oldArchetype.refs.Get(id)

	if len(newTypes) == 0 {
		if hasRef {
			if ref := weakPtr.Value(); ref != nil {
				ref.Id = 0
				ref.Archetype = nil
			}
			oldArchetype.refs.Del(id)
		}
		oldArchetype.Delete(id.Index())
		return 0
	}

	newArchetypeId := hashTypeSet(newTypes)
	newArchetype, exists := w.archetypes[newArchetypeId]
	if !exists {
		newArchetype = NewArchetype(newArchetypeId, newTypes, w.registry)
		w.archetypes[newArchetypeId] = newArchetype
	}

	components := make([]any, 0, len(newTypes))
	for _, typ := range newTypes {
		components = append(components, oldArchetype.GetComponent(id.Index(), typ))
	}

	newIndex := newArchetype.Spawn(components)
	newId := NewEntityId(newArchetypeId, newIndex)

	if hasRef {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = newId
			ref.Archetype = newArchetype
		}
		oldArchetype.refs.Del(id)
		newArchetype.refs.Put(newId, weakPtr)
	}

	oldArchetype.Delete(id.Index())
	return newId
}

// GetComponent returns the entity's component of the given type, or nil.
func (w *World) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := w.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}

	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent reports whether the entity carries the given component type.
func (w *World) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := w.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return archetype.HasComponent(compType)
}

// Compact defragments every archetype. Entity ids change; EntityRefs stay
// valid.
func (w *World) Compact() {
	for _, archetype := range w.archetypes {
		archetype.Compact()
	}
}

// extractComponentTypes extracts and canonically sorts component types
// from a component slice.
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := reflect.TypeOf(comp)

		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}

		// Components are value types: structs or primitives. Pointer,
		// map, channel and function components would alias shared state.
		if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
			compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	sortTypes(types)
	return types
}

// hashTypeSet generates the archetype id for a sorted slice of types
// using FNV-1a over each type's identity pointer.
func hashTypeSet(types []reflect.Type) uint32 {
	var h uint32 = 2166136261     // FNV-1a 32-bit offset basis
	const prime uint32 = 16777619 // FNV-1a 32-bit prime

	for _, t := range types {
		ptr := (*iface)(unsafe.Pointer(&t)).data
		val := uint32(uintptr(ptr))

		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uintptr(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	return h
}

// ComponentReader is the read-only component access surface shared by
// World and the deferred command buffer.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// Read returns a typed pointer to the entity's component of type T, or
// nil when the entity does not carry it.
func Read[T any](reader ComponentReader, id EntityId) *T {
	comp, _ := reader.GetComponent(id, reflect.TypeFor[T]()).(*T)
	return comp
}
