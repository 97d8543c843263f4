package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View projects entities onto a struct of component pointers. The type T
// must be a struct whose fields are pointers to component types; embedded
// fields are always required, named fields may carry the `kiln:"optional"`
// struct tag to match entities that lack the component.
type View[T any] struct {
	world       *World
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr

	// Archetype id matching exactly the required component set, cached
	// for Spawn.
	cachedArchetypeId *uint32
}

// NewView creates a view over the given world. Panics when T is not a
// struct of pointer fields or carries an unknown kiln tag.
func NewView[T any](world *World) *View[T] {
	var zero T
	structType := reflect.TypeOf(zero)

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	types := make([]reflect.Type, 0, structType.NumField())
	optional := make([]bool, 0, structType.NumField())
	fieldOffset := make([]uintptr, 0, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		types = append(types, fieldType.Elem())
		fieldOffset = append(fieldOffset, field.Offset)

		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("kiln")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid kiln tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}
		optional = append(optional, isOptional)
	}

	return &View[T]{
		world:       world,
		types:       types,
		optional:    optional,
		fieldOffset: fieldOffset,
	}
}

// Fill populates ptr with component pointers for the given entity.
// Returns false when the entity is missing a required component; optional
// fields are set to nil when absent.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype, ok := v.world.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}

	// Write through precomputed field offsets instead of reflection;
	// Fill sits on the iteration hot path.
	structPtr := unsafe.Pointer(ptr)

	for i := 0; i < len(v.types); i++ {
		component := archetype.GetComponent(id.Index(), v.types[i])
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
		} else {
			componentPtr := (*iface)(unsafe.Pointer(&component)).data
			*(*unsafe.Pointer)(fieldPtr) = componentPtr
		}
	}

	return true
}

// Get returns a populated view struct for the entity, or nil when a
// required component is missing.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// GetRef is Get through a stable entity reference. Returns nil for dead
// refs.
func (v *View[T]) GetRef(ref *EntityRef) *T {
	id, ok := v.world.ResolveEntityRef(ref)
	if !ok {
		return nil
	}

	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// matchesArchetype reports whether the archetype carries every required
// component type. Optional components are not checked.
func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for i, requiredType := range v.types {
		if v.optional[i] {
			continue
		}
		if !archetype.HasComponent(requiredType) {
			return false
		}
	}
	return true
}

func (v *View[T]) buildColumnIndices(archetype *Archetype) []int {
	indices := make([]int, len(v.types))
	for i, componentType := range v.types {
		indices[i] = -1
		for idx, archetypeType := range archetype.types {
			if archetypeType == componentType {
				indices[i] = idx
				break
			}
		}
	}
	return indices
}

func (v *View[T]) populateResult(resultPtr unsafe.Pointer, archetype *Archetype, index int, columnIndices []int) bool {
	for i, colIdx := range columnIndices {
		fieldPtr := unsafe.Pointer(uintptr(resultPtr) + v.fieldOffset[i])

		if colIdx == -1 {
			if v.optional[i] {
				*(*unsafe.Pointer)(fieldPtr) = nil
				continue
			}
			return false
		}

		component := archetype.columns[colIdx].Get(index)
		if component == nil {
			if v.optional[i] {
				*(*unsafe.Pointer)(fieldPtr) = nil
				continue
			}
			return false
		}

		componentPtr := (*iface)(unsafe.Pointer(&component)).data
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}
	return true
}

// Iter yields (EntityId, T) for every entity carrying all required
// components, with optional fields nil when absent.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for archetypeId, archetype := range v.world.archetypes {
			if !v.matchesArchetype(archetype) {
				continue
			}

			if len(archetype.columns) == 0 {
				continue
			}

			columnIndices := v.buildColumnIndices(archetype)
			firstColumn := archetype.columns[0]

			var result T
			resultPtr := unsafe.Pointer(&result)

			for index := range firstColumn.Iter() {
				if !v.populateResult(resultPtr, archetype, index, columnIndices) {
					continue
				}

				entityId := NewEntityId(archetypeId, uint32(index))
				if !yield(entityId, result) {
					return
				}
			}
		}
	}
}

// Values yields just the view structs, for callers that do not need
// entity ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Spawn creates an entity from the pointed-to fields of data. Optional
// nil fields are skipped; a nil required field panics.
func (v *View[T]) Spawn(data T) EntityId {
	structPtr := unsafe.Pointer(&data)

	components := make([]any, 0, len(v.types))
	componentTypes := make([]reflect.Type, 0, len(v.types))
	for i := 0; i < len(v.types); i++ {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])
		componentPtr := *(*unsafe.Pointer)(fieldPtr)

		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Spawn")
			}
			continue
		}

		componentType := v.types[i]
		component := reflect.NewAt(componentType, componentPtr).Elem().Interface()
		components = append(components, component)
		componentTypes = append(componentTypes, componentType)
	}

	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	order := make([]int, len(componentTypes))
	for i := range order {
		order[i] = i
	}
	for i := range order {
		for j := i + 1; j < len(order); j++ {
			if componentTypes[order[i]].String() > componentTypes[order[j]].String() {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	sortedComponents := make([]any, len(components))
	sortedTypes := make([]reflect.Type, len(componentTypes))
	for i, idx := range order {
		sortedComponents[i] = components[idx]
		sortedTypes[i] = componentTypes[idx]
	}

	var archetypeId uint32
	if v.cachedArchetypeId != nil && len(sortedTypes) == len(v.requiredTypes()) {
		archetypeId = *v.cachedArchetypeId
	} else {
		archetypeId = hashTypeSet(sortedTypes)
		if len(sortedTypes) == len(v.requiredTypes()) {
			v.cachedArchetypeId = &archetypeId
		}
	}

	archetype, exists := v.world.archetypes[archetypeId]
	if !exists {
		archetype = NewArchetype(archetypeId, sortedTypes, v.world.registry)
		v.world.archetypes[archetypeId] = archetype
	}

	index := archetype.Spawn(sortedComponents)
	return NewEntityId(archetypeId, index)
}

// requiredTypes returns only the non-optional component types.
func (v *View[T]) requiredTypes() []reflect.Type {
	required := make([]reflect.Type, 0, len(v.types))
	for i, typ := range v.types {
		if !v.optional[i] {
			required = append(required, typ)
		}
	}
	return required
}
