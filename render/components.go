package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Camera frames the world onto the screen. The draw pass uses the first
// active camera it finds; with no camera, world coordinates map directly
// to screen pixels.
type Camera struct {
	Position mgl32.Vec2
	Zoom     float32
	Active   bool
}

// NewCamera returns an active camera at the origin with 1:1 zoom.
func NewCamera() Camera {
	return Camera{Zoom: 1, Active: true}
}

// Sprite draws an image at the entity's world transform. Offset shifts
// the image relative to the entity position in pixels, after centering.
type Sprite struct {
	Image  *ebiten.Image
	Offset mgl32.Vec2
	FlipX  bool
	FlipY  bool
}
