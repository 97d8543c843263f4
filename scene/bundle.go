package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/kiln/ecs"
	"github.com/plus3/kiln/mathx"
)

// SpatialBundle assembles the component set every positioned entity
// carries: Name, Transform, GlobalTransform, Visibility and Layer.
type SpatialBundle struct {
	name       Name
	transform  mathx.Transform
	visibility Visibility
	layer      Layer
}

// NewSpatialBundle starts a bundle at the identity transform, Inherited
// visibility and layer 0.
func NewSpatialBundle(name string) *SpatialBundle {
	return &SpatialBundle{
		name:      Name(name),
		transform: mathx.Identity(),
	}
}

// WithTransform sets the local transform.
func (b *SpatialBundle) WithTransform(t mathx.Transform) *SpatialBundle {
	b.transform = t
	return b
}

// WithPosition sets only the translation of the local transform.
func (b *SpatialBundle) WithPosition(x, y, z float32) *SpatialBundle {
	b.transform.Translation = mgl32.Vec3{x, y, z}
	return b
}

// WithVisibility sets the visibility.
func (b *SpatialBundle) WithVisibility(v Visibility) *SpatialBundle {
	b.visibility = v
	return b
}

// WithLayer sets the draw layer.
func (b *SpatialBundle) WithLayer(layer Layer) *SpatialBundle {
	b.layer = layer
	return b
}

// Components returns the bundle's component values, for spawning through
// a command buffer.
func (b *SpatialBundle) Components() []any {
	return []any{
		b.name,
		b.transform,
		mathx.GlobalFromTransform(b.transform),
		b.visibility,
		b.layer,
	}
}

// Spawn creates the entity directly on the world.
func (b *SpatialBundle) Spawn(world *ecs.World) ecs.EntityId {
	return world.Spawn(b.Components()...)
}
