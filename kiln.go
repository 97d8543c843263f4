// Package kiln assembles the engine's default plugin set. A typical app
// does:
//
//	a := app.New()
//	a.AddPlugins(kiln.DefaultPlugins())
//	// spawn entities, add systems...
//	render.Run(a)
package kiln

import (
	"github.com/plus3/kiln/app"
	"github.com/plus3/kiln/asset"
	"github.com/plus3/kiln/config"
	"github.com/plus3/kiln/render"
	"github.com/plus3/kiln/scene"
)

// DefaultPlugins returns the scene, render and asset plugins with their
// default settings.
func DefaultPlugins() app.PluginGroup {
	return app.Group{
		GroupName: "kiln:defaults",
		Members: []app.Plugin{
			scene.Plugin{},
			render.NewPlugin(),
			asset.Plugin{},
		},
	}
}

// PluginsFrom builds the default plugin set from a loaded configuration.
func PluginsFrom(cfg *config.Config) (app.PluginGroup, error) {
	clearColor, err := render.ParseHexColor(cfg.Render.ClearColor)
	if err != nil {
		return nil, err
	}

	return app.Group{
		GroupName: "kiln:defaults",
		Members: []app.Plugin{
			scene.Plugin{},
			render.Plugin{
				Window: render.WindowConfigFrom(cfg.Window),
				Render: render.RenderConfig{
					ClearColor: clearColor,
					TargetTPS:  cfg.Render.TargetTPS,
				},
			},
			asset.Plugin{Root: cfg.Asset.Root},
		},
	}, nil
}
