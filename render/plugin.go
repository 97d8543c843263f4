package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/kiln/app"
)

// Plugin applies the window config and inserts the WindowState and
// RenderConfig resources. The scene plugin must run first so the
// transform components exist.
type Plugin struct {
	Window WindowConfig
	Render RenderConfig
}

// NewPlugin returns a render plugin with the default window and render
// settings.
func NewPlugin() Plugin {
	return Plugin{
		Window: DefaultWindowConfig(),
		Render: DefaultRenderConfig(),
	}
}

func (Plugin) Name() string {
	return "kiln:render"
}

func (p Plugin) Build(a *app.App) error {
	if err := p.Window.Apply(); err != nil {
		return err
	}

	app.RegisterComponent[Camera](a)
	app.RegisterComponent[Sprite](a)

	app.InsertResource(a, WindowState{
		Width:  p.Window.Width,
		Height: p.Window.Height,
	})

	render := p.Render
	if render.TargetTPS <= 0 {
		render.TargetTPS = DefaultRenderConfig().TargetTPS
	}
	ebiten.SetTPS(render.TargetTPS)
	app.InsertResource(a, render)

	return nil
}

// Run hands the app's loop to ebiten. Blocks until a system requests exit
// or the window closes.
func Run(a *app.App, opts ...func(*Game)) error {
	if err := a.Err(); err != nil {
		return err
	}

	game := NewGame(a)
	for _, opt := range opts {
		opt(game)
	}
	return ebiten.RunGame(game)
}

// WithOverlay installs a UI overlay on the game before running.
func WithOverlay(overlay Overlay) func(*Game) {
	return func(g *Game) {
		g.SetOverlay(overlay)
	}
}
