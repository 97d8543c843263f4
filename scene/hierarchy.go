package scene

import (
	"reflect"

	"github.com/plus3/kiln/ecs"
	"github.com/plus3/kiln/errs"
)

// Parent links an entity to its parent through a stable EntityRef, so the
// link survives archetype moves. A dead ref (deleted parent) makes the
// entity behave as a root.
type Parent struct {
	Ref *ecs.EntityRef
}

// Children is the parent-side half of the hierarchy: an ordered list of
// child refs. SetParent and RemoveParent keep both sides consistent;
// mutate Children directly only if you maintain the Parent side yourself.
type Children struct {
	Refs []*ecs.EntityRef
}

// Push appends a child ref.
func (c *Children) Push(ref *ecs.EntityRef) {
	c.Refs = append(c.Refs, ref)
}

// Remove deletes the first occurrence of ref, preserving order of the
// rest. Returns false when the ref is not a child.
func (c *Children) Remove(ref *ecs.EntityRef) bool {
	for i, r := range c.Refs {
		if sameRef(r, ref) {
			c.Refs = append(c.Refs[:i], c.Refs[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether ref is among the children.
func (c *Children) Contains(ref *ecs.EntityRef) bool {
	for _, r := range c.Refs {
		if sameRef(r, ref) {
			return true
		}
	}
	return false
}

// Clear drops all children refs. The children keep their Parent
// components; use RemoveParent to fully detach.
func (c *Children) Clear() {
	c.Refs = c.Refs[:0]
}

// First returns the first child ref, or nil when empty.
func (c *Children) First() *ecs.EntityRef {
	if len(c.Refs) == 0 {
		return nil
	}
	return c.Refs[0]
}

// Last returns the last child ref, or nil when empty.
func (c *Children) Last() *ecs.EntityRef {
	if len(c.Refs) == 0 {
		return nil
	}
	return c.Refs[len(c.Refs)-1]
}

// Len returns the number of children.
func (c *Children) Len() int {
	return len(c.Refs)
}

func sameRef(a, b *ecs.EntityRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a == b || (a.Id != 0 && a.Id == b.Id)
}

// SetParent makes child a child of parent, detaching it from any current
// parent. The structural changes go through the tick's command buffer and
// take effect when the phase flushes.
func SetParent(tick *ecs.Tick, child, parent ecs.EntityId) error {
	world := tick.World

	childRef := world.CreateEntityRef(child)
	parentRef := world.CreateEntityRef(parent)
	if childRef == nil || parentRef == nil {
		return errs.ECS("set parent: entity does not exist")
	}
	if sameRef(childRef, parentRef) {
		return errs.ECS("set parent: entity cannot be its own parent")
	}

	if current := ecs.Read[Parent](world, child); current != nil {
		oldParent := current.Ref
		tick.Commands.Defer(func() {
			detachChild(world, oldParent, childRef)
			if p := parentOf(world, childRef); p != nil {
				p.Ref = parentRef
			}
		})
	} else {
		tick.Commands.AddComponent(child, Parent{Ref: parentRef})
	}

	if ecs.Read[Children](world, parent) == nil {
		tick.Commands.AddComponent(parent, Children{})
	}
	tick.Commands.Defer(func() {
		id, ok := world.ResolveEntityRef(parentRef)
		if !ok {
			return
		}
		if kids := ecs.Read[Children](world, id); kids != nil && !kids.Contains(childRef) {
			kids.Push(childRef)
		}
	})

	return nil
}

// RemoveParent detaches child from its parent, removing the Parent
// component and the matching Children entry. A child with no parent is a
// no-op.
func RemoveParent(tick *ecs.Tick, child ecs.EntityId) error {
	world := tick.World

	current := ecs.Read[Parent](world, child)
	if current == nil {
		return nil
	}

	childRef := world.CreateEntityRef(child)
	if childRef == nil {
		return errs.ECS("remove parent: entity does not exist")
	}
	oldParent := current.Ref

	tick.Commands.RemoveComponent(child, reflect.TypeFor[Parent]())
	tick.Commands.Defer(func() {
		detachChild(world, oldParent, childRef)
	})

	return nil
}

func parentOf(world *ecs.World, ref *ecs.EntityRef) *Parent {
	id, ok := world.ResolveEntityRef(ref)
	if !ok {
		return nil
	}
	return ecs.Read[Parent](world, id)
}

func detachChild(world *ecs.World, parentRef *ecs.EntityRef, childRef *ecs.EntityRef) {
	id, ok := world.ResolveEntityRef(parentRef)
	if !ok {
		return
	}
	if kids := ecs.Read[Children](world, id); kids != nil {
		kids.Remove(childRef)
	}
}

// IsVisible resolves the effective visibility of an entity by walking up
// the parent chain until an explicit Visible or Hidden is found. Entities
// without a Visibility component, and all-Inherited chains, are visible.
func IsVisible(world *ecs.World, id ecs.EntityId) bool {
	visited := make(map[ecs.EntityId]bool)

	for {
		if visited[id] {
			return true
		}
		visited[id] = true

		if vis := ecs.Read[Visibility](world, id); vis != nil {
			switch *vis {
			case Visible:
				return true
			case Hidden:
				return false
			}
		}

		parent := ecs.Read[Parent](world, id)
		if parent == nil {
			return true
		}
		next, ok := world.ResolveEntityRef(parent.Ref)
		if !ok {
			return true
		}
		id = next
	}
}
