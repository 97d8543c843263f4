package ecs

import (
	"reflect"
	"slices"
	"strings"
	"weak"

	"github.com/kamstrup/intmap"
)

// sortTypes orders component types by their string name, giving every
// component set a canonical order for hashing.
func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
}

// Archetype holds every entity that carries one exact combination of
// component types, one column per type.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
	refs    *intmap.Map[EntityId, weak.Pointer[EntityRef]]
}

// NewArchetype creates an archetype for the given id and sorted component
// types. Panics if any type is not registered.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
		refs:    intmap.New[EntityId, weak.Pointer[EntityRef]](256),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[idx] = factory()
	}

	return a
}

// Spawn stores the given components in this archetype and returns the
// slot index the entity landed in. Every column appends into the same
// slot because they share a free list history.
func (a *Archetype) Spawn(components []any) uint32 {
	var slot int
	for _, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}

		for idx, typ := range a.types {
			if typ == compType {
				slot = a.columns[idx].Append(comp)
			}
		}
	}

	return uint32(slot)
}

// GetComponent returns the component of the given type at the given slot,
// or nil when the archetype lacks the type or the slot is empty.
func (a *Archetype) GetComponent(index uint32, compType reflect.Type) any {
	col := -1
	for i, typ := range a.types {
		if typ == compType {
			col = i
			break
		}
	}
	if col == -1 {
		return nil
	}

	return a.columns[col].Get(int(index))
}

// Delete clears the entity's slot in every column. Slot indices of other
// entities are unaffected; the slot is recycled by later spawns.
func (a *Archetype) Delete(index uint32) {
	entityId := NewEntityId(a.id, index)

	if weakPtr, ok := a.refs.Get(entityId); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = 0
			ref.Archetype = nil
		}
		a.refs.Del(entityId)
	}

	for _, col := range a.columns {
		col.Delete(int(index))
	}
}

// HasComponent reports whether this archetype carries the component type.
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's hash identifier.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types of this archetype.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities in this archetype.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Cap returns the number of allocated slots in this archetype.
func (a *Archetype) Cap() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Cap()
}

// Compact rewrites every column without holes. Entity ids change, but
// live EntityRefs are updated to the new slots.
func (a *Archetype) Compact() {
	if len(a.columns) == 0 {
		return
	}

	// Every column shares the same occupancy, so the first column's
	// mapping is canonical.
	indexMap := a.columns[0].Compact()
	for i := 1; i < len(a.columns); i++ {
		a.columns[i].Compact()
	}

	updated := make(map[EntityId]weak.Pointer[EntityRef])
	for oldIdx, newIdx := range indexMap {
		oldId := NewEntityId(a.id, uint32(oldIdx))
		weakPtr, ok := a.refs.Get(oldId)
		if !ok {
			continue
		}
		if ref := weakPtr.Value(); ref != nil {
			newId := NewEntityId(a.id, uint32(newIdx))
			ref.Id = newId
			updated[newId] = weakPtr
		}
	}

	// Rebuilding the map also drops dead weak pointers.
	a.refs.Clear()
	for id, weakPtr := range updated {
		a.refs.Put(id, weakPtr)
	}
}

// Iter yields the EntityId of every live entity in this archetype.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}

		for index := range a.columns[0].Iter() {
			entityId := NewEntityId(a.id, uint32(index))
			if !yield(entityId) {
				return
			}
		}
	}
}
