package scene

import (
	"github.com/plus3/kiln/ecs"
	"github.com/plus3/kiln/mathx"
)

// SyncSimpleTransforms copies the local transform into the global one for
// entities without a live parent. Runs in PostUpdate, before entities are
// drawn with that frame's state.
type SyncSimpleTransforms struct {
	Roots ecs.Query[struct {
		Transform *mathx.Transform
		Global    *mathx.GlobalTransform
		Parent    *Parent `kiln:"optional"`
	}]
}

func (s *SyncSimpleTransforms) Update(tick *ecs.Tick) {
	for item := range s.Roots.Values() {
		if item.Parent != nil {
			if _, alive := tick.World.ResolveEntityRef(item.Parent.Ref); alive {
				continue
			}
		}
		*item.Global = mathx.GlobalFromTransform(*item.Transform)
	}
}

// PropagateTransforms computes world-space transforms for parented
// entities by multiplying local transforms down from the chain's root.
// Dead parent refs and entities missing a Transform end the walk, so the
// entity acts as rooted at the deepest resolvable ancestor. A visited set
// breaks hierarchy cycles.
type PropagateTransforms struct {
	Nodes ecs.Query[struct {
		Transform *mathx.Transform
		Global    *mathx.GlobalTransform
		Parent    *Parent
	}]
}

func (s *PropagateTransforms) Update(tick *ecs.Tick) {
	world := tick.World

	for id, item := range s.Nodes.Iter() {
		if _, alive := world.ResolveEntityRef(item.Parent.Ref); !alive {
			// Orphaned: SyncSimpleTransforms already treated it as a root.
			continue
		}

		matrix := item.Transform.Mat4()
		visited := map[ecs.EntityId]bool{id: true}

		ref := item.Parent.Ref
		for ref != nil {
			parentId, ok := world.ResolveEntityRef(ref)
			if !ok || visited[parentId] {
				break
			}
			visited[parentId] = true

			parentTransform := ecs.Read[mathx.Transform](world, parentId)
			if parentTransform == nil {
				break
			}
			matrix = parentTransform.Mat4().Mul4(matrix)

			parent := ecs.Read[Parent](world, parentId)
			if parent == nil {
				break
			}
			ref = parent.Ref
		}

		*item.Global = mathx.GlobalFromMat4(matrix)
	}
}
