package ecs_test

import (
	"fmt"

	"github.com/plus3/kiln/ecs"
)

// ExampleView projects entities onto a struct of component pointers.
// Fields are required by default; the `kiln:"optional"` tag admits
// entities that lack the component, leaving the field nil.
func ExampleView() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Callsign](registry)
	ecs.RegisterComponent[Hull](registry)
	ecs.RegisterComponent[Throttle](registry)
	world := ecs.NewWorld(registry)

	// Both ships share one archetype so iteration order is spawn order;
	// only the first has engine power.
	world.Spawn(Callsign("kestrel"), Hull{Integrity: 90, Max: 100}, Throttle{Power: 0.8})
	world.Spawn(Callsign("barge"), Hull{Integrity: 40, Max: 100}, Throttle{Power: 0})

	view := ecs.NewView[struct {
		Callsign *Callsign
		Hull     *Hull
		Throttle *Throttle `kiln:"optional"`
	}](world)

	for _, ship := range view.Iter() {
		status := "adrift"
		if ship.Throttle != nil && ship.Throttle.Power > 0 {
			status = "under way"
		}
		fmt.Printf("%s: hull %d/%d, %s\n", *ship.Callsign, ship.Hull.Integrity, ship.Hull.Max, status)
	}

	// Output:
	// kestrel: hull 90/100, under way
	// barge: hull 40/100, adrift
}
