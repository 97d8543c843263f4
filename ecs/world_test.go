package ecs_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/kiln/ecs"
)

func TestSpawnGroupsEntitiesByComponentSet(t *testing.T) {
	world := newConvoyWorld()

	freighter := world.Spawn(Callsign("freighter-1"), Cargo{Tons: 120})
	tanker := world.Spawn(Callsign("tanker-1"), Cargo{Tons: 340})
	scout := world.Spawn(Callsign("scout-1"), Heading{Angle: 90})

	// Same component set, same archetype; the slot index distinguishes them.
	assert.Equal(t, freighter.ArchetypeId(), tanker.ArchetypeId())
	assert.NotEqual(t, freighter.Index(), tanker.Index())
	assert.NotEqual(t, freighter.ArchetypeId(), scout.ArchetypeId())
}

func TestSpawnComponentOrderDoesNotMatter(t *testing.T) {
	world := newConvoyWorld()

	a := world.Spawn(Cargo{Tons: 1}, Callsign("a"), Hull{Integrity: 1, Max: 1})
	b := world.Spawn(Hull{Integrity: 2, Max: 2}, Cargo{Tons: 2}, Callsign("b"))
	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())

	// GetArchetype canonicalizes its argument order the same way.
	archetype := world.GetArchetype(Hull{}, Callsign(""), Cargo{})
	require.NotNil(t, archetype)
	assert.Equal(t, 2, archetype.Len())
}

func TestSpawnWithoutComponentsPanics(t *testing.T) {
	world := newConvoyWorld()
	assert.PanicsWithValue(t, "cannot spawn entity without components", func() {
		world.Spawn()
	})
}

func TestSpawnUnregisteredComponentPanics(t *testing.T) {
	type contraband struct{ Kind string }

	world := newConvoyWorld()
	assert.Panics(t, func() {
		world.Spawn(contraband{Kind: "unknown"})
	})
}

func TestSpawnRejectsReferenceKinds(t *testing.T) {
	world := newConvoyWorld()

	cases := map[string]any{
		"map":  map[string]int{"a": 1},
		"chan": make(chan int),
		"func": func() {},
	}
	for name, component := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, func() {
				world.Spawn(component)
			})
		})
	}
}

func TestReadReturnsLivePointer(t *testing.T) {
	world := newConvoyWorld()
	id := world.Spawn(Hull{Integrity: 40, Max: 100})

	hull := ecs.Read[Hull](world, id)
	require.NotNil(t, hull)
	assert.Equal(t, 40, hull.Integrity)

	// Mutations through the pointer write into the archetype column.
	hull.Integrity = 100
	assert.Equal(t, 100, ecs.Read[Hull](world, id).Integrity)

	// Components the entity never carried read as nil.
	assert.Nil(t, ecs.Read[Throttle](world, id))
}

func TestAddComponentMovesEntity(t *testing.T) {
	world := newConvoyWorld()
	id := world.Spawn(Callsign("kestrel"), Hull{Integrity: 70, Max: 100})

	moved := world.AddComponent(id, Cargo{Tons: 12})
	assert.NotEqual(t, id, moved)
	assert.NotEqual(t, id.ArchetypeId(), moved.ArchetypeId())

	// The carried components follow the entity; the old slot is gone.
	assert.Equal(t, 70, ecs.Read[Hull](world, moved).Integrity)
	assert.Equal(t, float32(12), ecs.Read[Cargo](world, moved).Tons)
	assert.Nil(t, ecs.Read[Hull](world, id))
}

func TestRemoveComponentKeepsRemainingData(t *testing.T) {
	world := newConvoyWorld()
	id := world.Spawn(Callsign("kestrel"), Hull{Integrity: 70, Max: 100}, Cargo{Tons: 12})

	moved := world.RemoveComponent(id, reflect.TypeFor[Cargo]())
	require.NotEqual(t, ecs.EntityId(0), moved)

	assert.Nil(t, ecs.Read[Cargo](world, moved))
	assert.Equal(t, Callsign("kestrel"), *ecs.Read[Callsign](world, moved))
	assert.Equal(t, 70, ecs.Read[Hull](world, moved).Integrity)
}

func TestRemoveLastComponentDeletesEntity(t *testing.T) {
	world := newConvoyWorld()
	id := world.Spawn(Callsign("ghost"))

	gone := world.RemoveComponent(id, reflect.TypeFor[Callsign]())
	assert.Equal(t, ecs.EntityId(0), gone)
	assert.Nil(t, ecs.Read[Callsign](world, id))
}

func TestDeleteRecyclesSlot(t *testing.T) {
	world := newConvoyWorld()

	first := world.Spawn(Heading{Angle: 10})
	world.Spawn(Heading{Angle: 20})
	world.Delete(first)

	// The freed slot is reused, so the replacement lands on the same id.
	replacement := world.Spawn(Heading{Angle: 30})
	assert.Equal(t, first, replacement)
	assert.Equal(t, float32(30), ecs.Read[Heading](world, replacement).Angle)
}

func TestDeleteUnknownEntityIsIgnored(t *testing.T) {
	world := newConvoyWorld()
	assert.NotPanics(t, func() {
		world.Delete(ecs.NewEntityId(0xDEAD, 42))
	})
}

func TestHasComponent(t *testing.T) {
	world := newConvoyWorld()
	id := world.Spawn(Callsign("kestrel"), Shielded{})

	assert.True(t, world.HasComponent(id, reflect.TypeFor[Shielded]()))
	assert.False(t, world.HasComponent(id, reflect.TypeFor[Cargo]()))
	assert.False(t, world.HasComponent(ecs.NewEntityId(0xDEAD, 0), reflect.TypeFor[Shielded]()))
}

func TestGetArchetypeByTypesSortsInput(t *testing.T) {
	world := newConvoyWorld()
	world.Spawn(Waypoint{X: 1, Y: 2}, Throttle{Power: 0.5})

	// Deliberately unsorted.
	types := []reflect.Type{reflect.TypeFor[Waypoint](), reflect.TypeFor[Throttle]()}
	archetype := world.GetArchetypeByTypes(types)
	require.NotNil(t, archetype)
	assert.Equal(t, 1, archetype.Len())
}

func TestCompactRemapsSlotsAndKeepsRefs(t *testing.T) {
	world := newConvoyWorld()

	world.Spawn(Cargo{Tons: 1})
	middle := world.Spawn(Cargo{Tons: 2})
	last := world.Spawn(Cargo{Tons: 3})

	ref := world.CreateEntityRef(last)
	require.NotNil(t, ref)

	world.Delete(middle)
	world.Compact()

	// The surviving entity slid down a slot; the ref tracked the move.
	id, ok := world.ResolveEntityRef(ref)
	require.True(t, ok)
	assert.Equal(t, uint32(1), id.Index())
	assert.Equal(t, float32(3), ecs.Read[Cargo](world, id).Tons)
}

func TestSliceComponentsKeepIdentity(t *testing.T) {
	world := newConvoyWorld()
	id := world.Spawn(Manifest{Items: []string{"ore", "fuel"}})

	manifest := ecs.Read[Manifest](world, id)
	manifest.Items = append(manifest.Items, "parts")

	assert.Equal(t, []string{"ore", "fuel", "parts"}, ecs.Read[Manifest](world, id).Items)
}
