package ecs

import (
	"reflect"
	"slices"
	"strings"
)

// WorldStats is a point-in-time summary of world occupancy.
type WorldStats struct {
	ArchetypeCount int
	EntityCount    int
	ResourceCount  int
	Archetypes     []ArchetypeStats
}

// ArchetypeStats summarizes one archetype.
type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
	Capacity       int
}

// CollectStats walks the world and returns occupancy statistics, with
// archetypes sorted by descending entity count.
func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		ArchetypeCount: len(w.archetypes),
		ResourceCount:  len(w.resources),
		Archetypes:     make([]ArchetypeStats, 0, len(w.archetypes)),
	}

	for _, archetype := range w.archetypes {
		typeNames := make([]string, len(archetype.types))
		for i, t := range archetype.types {
			typeNames[i] = t.String()
		}

		count := archetype.Len()
		stats.EntityCount += count
		stats.Archetypes = append(stats.Archetypes, ArchetypeStats{
			ID:             archetype.id,
			ComponentTypes: typeNames,
			EntityCount:    count,
			Capacity:       archetype.Cap(),
		})
	}

	slices.SortFunc(stats.Archetypes, func(a, b ArchetypeStats) int {
		if a.EntityCount != b.EntityCount {
			return b.EntityCount - a.EntityCount
		}
		return strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
	})

	return stats
}

// ComponentTypeNames returns the registered component type names, sorted.
func (r *ComponentRegistry) ComponentTypeNames() []string {
	names := make([]string, 0, len(r.factories))
	for t := range r.factories {
		names = append(names, t.String())
	}
	slices.Sort(names)
	return names
}

// ResourceTypes returns the types of all inserted resources, sorted by
// name.
func (w *World) ResourceTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(w.resources))
	for t := range w.resources {
		types = append(types, t)
	}
	sortTypes(types)
	return types
}
