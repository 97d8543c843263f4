package ecs

// Tick carries the per-frame context handed to every system: the frame's
// delta time in seconds, the deferred command buffer, and the world.
type Tick struct {
	DeltaSeconds float64
	Commands     *Commands
	World        *World
}

func newTick(dt float64, world *World) *Tick {
	return &Tick{
		DeltaSeconds: dt,
		Commands:     newCommands(),
		World:        world,
	}
}
