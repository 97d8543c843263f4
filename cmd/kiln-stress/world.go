package main

import (
	"math/rand"

	"github.com/plus3/kiln/ecs"
)

// Fixed component set. Position is always present so every archetype has
// at least one system iterating it.
type Position struct{ X, Y float32 }
type Velocity struct{ DX, DY float32 }
type Spin struct{ Angle, Speed float32 }
type Health struct{ Current, Max float32 }
type Regen struct{ Rate float32 }
type Damage struct{ PerSecond float32 }
type Lifetime struct{ Remaining float64 }
type Wander struct{ Timer float64 }

// componentPool holds one constructor per optional component.
var componentPool = []func() any{
	func() any { return Velocity{DX: rand.Float32()*2 - 1, DY: rand.Float32()*2 - 1} },
	func() any { return Spin{Speed: rand.Float32() * 6} },
	func() any { return Health{Current: 100, Max: 100} },
	func() any { return Regen{Rate: rand.Float32() * 5} },
	func() any { return Damage{PerSecond: rand.Float32() * 10} },
	func() any { return Lifetime{Remaining: 30 + rand.Float64()*300} },
	func() any { return Wander{} },
}

func buildWorld(entities int) (*ecs.World, *ecs.Scheduler) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Spin](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Regen](registry)
	ecs.RegisterComponent[Damage](registry)
	ecs.RegisterComponent[Lifetime](registry)
	ecs.RegisterComponent[Wander](registry)

	world := ecs.NewWorld(registry)

	for i := 0; i < entities; i++ {
		spawnRandomEntity(world)
	}

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(ecs.Update, &movementSystem{})
	scheduler.Register(ecs.Update, &spinSystem{})
	scheduler.Register(ecs.Update, &combatSystem{})
	scheduler.Register(ecs.Update, &wanderSystem{})
	scheduler.Register(ecs.PostUpdate, &lifetimeSystem{})

	return world, scheduler
}

// spawnRandomEntity picks 1 to 5 components from the pool, plus Position.
func spawnRandomEntity(world *ecs.World) {
	count := rand.Intn(5) + 1
	picked := rand.Perm(len(componentPool))[:count]

	components := make([]any, 0, count+1)
	components = append(components, Position{
		X: rand.Float32() * 1000,
		Y: rand.Float32() * 1000,
	})
	for _, idx := range picked {
		components = append(components, componentPool[idx]())
	}

	world.Spawn(components...)
}

type movementSystem struct {
	Movers ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *movementSystem) Update(tick *ecs.Tick) {
	dt := float32(tick.DeltaSeconds)
	for item := range s.Movers.Values() {
		item.Position.X += item.Velocity.DX * dt
		item.Position.Y += item.Velocity.DY * dt
	}
}

type spinSystem struct {
	Spinners ecs.Query[struct{ *Spin }]
}

func (s *spinSystem) Update(tick *ecs.Tick) {
	dt := float32(tick.DeltaSeconds)
	for item := range s.Spinners.Values() {
		item.Spin.Angle += item.Spin.Speed * dt
	}
}

type combatSystem struct {
	Fighters ecs.Query[struct {
		*Health
		Damage *Damage `kiln:"optional"`
		Regen  *Regen  `kiln:"optional"`
	}]
}

func (s *combatSystem) Update(tick *ecs.Tick) {
	dt := float32(tick.DeltaSeconds)
	for item := range s.Fighters.Values() {
		if item.Damage != nil {
			item.Health.Current -= item.Damage.PerSecond * dt
		}
		if item.Regen != nil && item.Health.Current < item.Health.Max {
			item.Health.Current += item.Regen.Rate * dt
		}
	}
}

// wanderSystem retargets velocities on a timer, exercising per-entity
// state without structural changes.
type wanderSystem struct {
	Wanderers ecs.Query[struct {
		*Wander
		Velocity *Velocity `kiln:"optional"`
	}]
}

func (s *wanderSystem) Update(tick *ecs.Tick) {
	for item := range s.Wanderers.Values() {
		item.Wander.Timer += tick.DeltaSeconds
		if item.Wander.Timer < 1 {
			continue
		}
		item.Wander.Timer = 0
		if item.Velocity != nil {
			item.Velocity.DX = rand.Float32()*2 - 1
			item.Velocity.DY = rand.Float32()*2 - 1
		}
	}
}

// lifetimeSystem despawns expired entities and respawns replacements,
// keeping structural churn in the measurement.
type lifetimeSystem struct {
	Mortal ecs.Query[struct{ *Lifetime }]
}

func (s *lifetimeSystem) Update(tick *ecs.Tick) {
	respawns := 0
	for id, item := range s.Mortal.Iter() {
		item.Lifetime.Remaining -= tick.DeltaSeconds
		if item.Lifetime.Remaining <= 0 {
			tick.Commands.Delete(id)
			respawns++
		}
	}

	world := tick.World
	tick.Commands.Defer(func() {
		for i := 0; i < respawns; i++ {
			spawnRandomEntity(world)
		}
	})
}
