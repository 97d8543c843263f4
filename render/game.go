package render

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/kiln/app"
	"github.com/plus3/kiln/ecs"
	"github.com/plus3/kiln/mathx"
	"github.com/plus3/kiln/scene"
)

// Overlay is a UI pass drawn on top of the sprite pass. The debug UI
// backend satisfies this.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

type spriteItem struct {
	Sprite *Sprite
	Global *mathx.GlobalTransform
	Layer  *scene.Layer `kiln:"optional"`
}

type cameraItem struct {
	Camera *Camera
}

// Game adapts an App to ebiten's loop: Update drives the scheduler, Draw
// runs the sprite pass, Layout syncs the window state resource.
type Game struct {
	app     *app.App
	sprites *ecs.View[spriteItem]
	cameras *ecs.View[cameraItem]
	overlay Overlay
}

// NewGame wraps the app for ebiten.RunGame.
func NewGame(a *app.App) *Game {
	return &Game{
		app:     a,
		sprites: ecs.NewView[spriteItem](a.World()),
		cameras: ecs.NewView[cameraItem](a.World()),
	}
}

// SetOverlay installs a UI pass drawn after the sprites.
func (g *Game) SetOverlay(overlay Overlay) {
	g.overlay = overlay
}

// Update implements ebiten.Game. Returning ebiten.Termination ends
// RunGame cleanly when a system requests exit.
func (g *Game) Update() error {
	if state := app.GetResource[WindowState](g.app); state != nil {
		state.Focused = ebiten.IsFocused()
		state.Minimized = ebiten.IsWindowMinimized()
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}
	g.app.Update()
	if g.overlay != nil {
		g.overlay.EndFrame()
	}

	if g.app.ShouldExit() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := app.GetResource[RenderConfig](g.app)
	if cfg != nil {
		screen.Fill(cfg.ClearColor)
	}

	g.drawSprites(screen)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if state := app.GetResource[WindowState](g.app); state != nil {
		state.Width = outsideWidth
		state.Height = outsideHeight
		state.ScaleFactor = ebiten.Monitor().DeviceScaleFactor()
	}
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// activeCamera returns the first active camera, or nil.
func (g *Game) activeCamera() *Camera {
	for item := range g.cameras.Values() {
		if item.Camera.Active {
			return item.Camera
		}
	}
	return nil
}

type drawCall struct {
	layer  scene.Layer
	sprite *Sprite
	global *mathx.GlobalTransform
}

// collectDrawCalls gathers the visible sprites in layer order. Visibility
// resolves through the parent chain even when the sprite entity carries no
// Visibility component of its own, so children of a hidden parent are
// culled too.
func (g *Game) collectDrawCalls() []drawCall {
	world := g.app.World()

	calls := make([]drawCall, 0, 64)
	for id, item := range g.sprites.Iter() {
		if item.Sprite.Image == nil {
			continue
		}
		if !scene.IsVisible(world, id) {
			continue
		}

		call := drawCall{sprite: item.Sprite, global: item.Global}
		if item.Layer != nil {
			call.layer = *item.Layer
		}
		calls = append(calls, call)
	}

	// Stable sort keeps same-layer sprites in iteration order.
	sort.SliceStable(calls, func(i, j int) bool {
		return calls[i].layer < calls[j].layer
	})

	return calls
}

func (g *Game) drawSprites(screen *ebiten.Image) {
	calls := g.collectDrawCalls()

	camera := g.activeCamera()
	bounds := screen.Bounds()

	for _, call := range calls {
		g.drawSprite(screen, call.sprite, call.global, camera, bounds.Dx(), bounds.Dy())
	}
}

func (g *Game) drawSprite(screen *ebiten.Image, sprite *Sprite, global *mathx.GlobalTransform, camera *Camera, screenW, screenH int) {
	t := mathx.FromMat4(global.Matrix)

	// Rotation about the Z axis; 2D sprites ignore the other axes.
	angle := 2 * math.Atan2(float64(t.Rotation.V[2]), float64(t.Rotation.W))

	w := sprite.Image.Bounds().Dx()
	h := sprite.Image.Bounds().Dy()

	scaleX := float64(t.Scale.X())
	scaleY := float64(t.Scale.Y())
	if sprite.FlipX {
		scaleX = -scaleX
	}
	if sprite.FlipY {
		scaleY = -scaleY
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		-float64(w)/2+float64(sprite.Offset.X()),
		-float64(h)/2+float64(sprite.Offset.Y()),
	)
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Rotate(angle)

	if camera != nil {
		op.GeoM.Translate(
			float64(t.Translation.X()-camera.Position.X()),
			float64(t.Translation.Y()-camera.Position.Y()),
		)
		op.GeoM.Scale(float64(camera.Zoom), float64(camera.Zoom))
		op.GeoM.Translate(float64(screenW)/2, float64(screenH)/2)
	} else {
		op.GeoM.Translate(float64(t.Translation.X()), float64(t.Translation.Y()))
	}

	screen.DrawImage(sprite.Image, op)
}
