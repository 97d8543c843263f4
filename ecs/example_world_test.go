package ecs_test

import (
	"fmt"

	"github.com/plus3/kiln/ecs"
)

// ExampleWorld walks through the core entity lifecycle: spawning groups
// entities into archetypes by component set, components are read and
// mutated through typed pointers, and adding a component moves the entity
// to another archetype under a new id.
func ExampleWorld() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Callsign](registry)
	ecs.RegisterComponent[Hull](registry)
	ecs.RegisterComponent[Cargo](registry)
	world := ecs.NewWorld(registry)

	id := world.Spawn(Callsign("kestrel"), Hull{Integrity: 70, Max: 100})

	hull := ecs.Read[Hull](world, id)
	fmt.Printf("%s hull: %d/%d\n", *ecs.Read[Callsign](world, id), hull.Integrity, hull.Max)

	hull.Integrity = 100
	fmt.Printf("after repairs: %d/%d\n", hull.Integrity, hull.Max)

	// Ids are positional: loading cargo moves the ship to the archetype
	// that also carries Cargo, under a new id.
	loaded := world.AddComponent(id, Cargo{Tons: 40})
	fmt.Println("id changed:", loaded != id)
	fmt.Printf("cargo: %.0f tons\n", ecs.Read[Cargo](world, loaded).Tons)

	// Output:
	// kestrel hull: 70/100
	// after repairs: 100/100
	// id changed: true
	// cargo: 40 tons
}

// ExampleWorld_entityRefs shows stable handles: an EntityRef keeps
// pointing at the entity as it moves between archetypes, and reports the
// entity's death.
func ExampleWorld_entityRefs() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Callsign](registry)
	ecs.RegisterComponent[Shielded](registry)
	world := ecs.NewWorld(registry)

	id := world.Spawn(Callsign("kestrel"))
	ref := world.CreateEntityRef(id)

	id = world.AddComponent(id, Shielded{})

	current, alive := world.ResolveEntityRef(ref)
	fmt.Println("alive after move:", alive)
	fmt.Println("name:", *ecs.Read[Callsign](world, current))

	world.Delete(current)
	_, alive = world.ResolveEntityRef(ref)
	fmt.Println("alive after delete:", alive)

	// Output:
	// alive after move: true
	// name: kestrel
	// alive after delete: false
}
