package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plus3/kiln/app"
	"github.com/plus3/kiln/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct {
	X, Y float32
}

type velocity struct {
	DX, DY float32
}

type moveSystem struct {
	Entities ecs.Query[struct {
		*position
		*velocity
	}]
}

func (s *moveSystem) Update(tick *ecs.Tick) {
	for item := range s.Entities.Values() {
		item.position.X += item.velocity.DX * float32(tick.DeltaSeconds)
		item.position.Y += item.velocity.DY * float32(tick.DeltaSeconds)
	}
}

func TestAppCreation(t *testing.T) {
	a := app.New()

	assert.NotNil(t, a.World())
	assert.NotNil(t, a.Registry())
	assert.NotNil(t, a.Scheduler())
	assert.NotNil(t, a.Clock())
	assert.NotNil(t, a.Log())
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", a.RunID().String())
	assert.NoError(t, a.Err())
}

func TestAppUpdateRunsSystems(t *testing.T) {
	a := app.New()
	app.RegisterComponent[position](a)
	app.RegisterComponent[velocity](a)

	a.World().Spawn(position{}, velocity{DX: 1, DY: 2})
	a.AddSystem(ecs.Update, &moveSystem{})

	a.Update()
	a.Update()

	assert.Equal(t, uint64(2), a.Clock().FrameCount())

	moved := false
	view := ecs.NewView[struct{ *position }](a.World())
	for item := range view.Values() {
		// First frame has zero delta; second frame moves the entity.
		if item.position.X > 0 {
			moved = true
		}
	}
	assert.True(t, moved)
}

func TestAppResources(t *testing.T) {
	a := app.New()

	type score struct{ Points int }
	ptr := app.InsertResource(a, score{Points: 7})
	assert.Equal(t, 7, app.GetResource[score](a).Points)

	ptr.Points = 11
	assert.Equal(t, 11, app.GetResource[score](a).Points)

	// Clock and Exit are present out of the box.
	assert.NotNil(t, app.GetResource[app.Exit](a))
}

func TestAppPluginDeduplication(t *testing.T) {
	a := app.New()

	builds := 0
	plugin := app.PluginFunc{
		PluginName: "counter",
		BuildFunc: func(*app.App) error {
			builds++
			return nil
		},
	}

	a.AddPlugin(plugin)
	a.AddPlugin(plugin)

	assert.Equal(t, 1, builds)
	assert.True(t, a.HasPlugin("counter"))
	assert.False(t, a.HasPlugin("other"))
}

func TestAppPluginGroup(t *testing.T) {
	a := app.New()

	var order []string
	mk := func(name string) app.Plugin {
		return app.PluginFunc{
			PluginName: name,
			BuildFunc: func(*app.App) error {
				order = append(order, name)
				return nil
			},
		}
	}

	a.AddPlugins(app.Group{
		GroupName: "defaults",
		Members:   []app.Plugin{mk("first"), mk("second"), mk("third")},
	})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestAppPluginBuildError(t *testing.T) {
	a := app.New()

	boom := errors.New("boom")
	a.AddPlugin(app.PluginFunc{
		PluginName: "broken",
		BuildFunc:  func(*app.App) error { return boom },
	})

	assert.ErrorIs(t, a.Err(), boom)

	// Run refuses to start with a failed build.
	err := a.Run(context.Background(), time.Millisecond)
	assert.ErrorIs(t, err, boom)
}

type exitSystem struct {
	after int
	seen  int
	exit  *app.Exit
}

func (s *exitSystem) Update(tick *ecs.Tick) {
	s.seen++
	if s.seen >= s.after {
		s.exit.Request(3)
	}
}

func TestAppRunStopsOnExit(t *testing.T) {
	a := app.New()
	a.AddSystem(ecs.Update, &exitSystem{after: 3, exit: app.GetResource[app.Exit](a)})

	err := a.Run(context.Background(), time.Millisecond)
	require.NoError(t, err)

	assert.True(t, a.ShouldExit())
	assert.Equal(t, 3, app.GetResource[app.Exit](a).Code)
}

func TestAppRunStopsOnContextCancel(t *testing.T) {
	a := app.New()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := a.Run(ctx, time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
