package ecs

import "reflect"

// Commands buffers structural operations during system execution and
// applies them when the phase ends, so systems never mutate archetypes
// they are iterating.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues an arbitrary function to run after all structural
// commands in this flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues an entity spawn with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Delete queues an entity deletion. Deletes win over queued component
// changes on the same entity.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   entity,
		compType: compType,
	})
}

// Flush applies the buffered commands to the world in a fixed order
// (deletes, removes, adds, spawns, defers) and resets the buffer.
// Component changes move entities between archetypes and change their
// ids; Flush tracks those moves so commands queued against an entity's
// pre-flush id still land on it.
func (c *Commands) Flush(world *World) {
	deleted := make(map[EntityId]bool)
	moved := make(map[EntityId]EntityId)

	resolve := func(id EntityId) EntityId {
		for range len(moved) {
			next, ok := moved[id]
			if !ok {
				break
			}
			id = next
		}
		return id
	}

	for _, id := range c.deletes {
		world.Delete(resolve(id))
		deleted[id] = true
	}

	for _, cmd := range c.removes {
		if deleted[cmd.entity] {
			continue
		}
		id := resolve(cmd.entity)
		newId := world.RemoveComponent(id, cmd.compType)
		if newId == 0 {
			// Removing the last component deletes the entity.
			deleted[cmd.entity] = true
			continue
		}
		if newId != id {
			moved[id] = newId
		}
	}

	for _, cmd := range c.adds {
		if deleted[cmd.entity] {
			continue
		}
		id := resolve(cmd.entity)
		newId := world.AddComponent(id, cmd.component)
		if newId != id {
			moved[id] = newId
		}
	}

	for _, cmd := range c.spawns {
		world.Spawn(cmd.components...)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
