package scene

import (
	"github.com/plus3/kiln/app"
	"github.com/plus3/kiln/ecs"
	"github.com/plus3/kiln/mathx"
)

// Plugin registers the scene component set and schedules transform
// propagation in PostUpdate, after gameplay systems have moved things.
type Plugin struct{}

func (Plugin) Name() string {
	return "kiln:scene"
}

func (Plugin) Build(a *app.App) error {
	app.RegisterComponent[Name](a)
	app.RegisterComponent[Tag](a)
	app.RegisterComponent[Visibility](a)
	app.RegisterComponent[Layer](a)
	app.RegisterComponent[Parent](a)
	app.RegisterComponent[Children](a)
	app.RegisterComponent[mathx.Transform](a)
	app.RegisterComponent[mathx.GlobalTransform](a)

	a.AddSystem(ecs.PostUpdate, &SyncSimpleTransforms{})
	a.AddSystem(ecs.PostUpdate, &PropagateTransforms{})
	return nil
}
