// Package app ties the engine together: an App owns the ECS world and
// scheduler, the frame clock, structured logging, and the plugin
// lifecycle that assembles a game from parts.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/kiln/ecs"
	"github.com/plus3/kiln/gametime"
)

// Exit is a world resource that systems set to stop the app loop at the
// end of the current frame.
type Exit struct {
	Requested bool
	Code      int
}

// Request marks the app for shutdown with the given exit code.
func (e *Exit) Request(code int) {
	e.Requested = true
	e.Code = code
}

// App is the top-level engine container.
type App struct {
	registry  *ecs.ComponentRegistry
	world     *ecs.World
	scheduler *ecs.Scheduler
	clock     *gametime.Clock
	exit      *Exit
	log       *slog.Logger
	runID     uuid.UUID
	plugins   map[string]bool
	buildErr  error
}

// Option configures an App at construction.
type Option func(*App)

// WithLogger replaces the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// New creates an app with an empty world, a fresh frame clock and Exit
// resource, and a unique run id for log correlation.
func New(opts ...Option) *App {
	registry := ecs.NewComponentRegistry()
	world := ecs.NewWorld(registry)

	a := &App{
		registry:  registry,
		world:     world,
		scheduler: ecs.NewScheduler(world),
		log:       slog.Default(),
		runID:     uuid.New(),
		plugins:   make(map[string]bool),
	}

	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With("run_id", a.runID.String())

	a.clock = ecs.InsertResource(world, *gametime.NewClock())
	a.exit = ecs.InsertResource(world, Exit{})

	return a
}

// World returns the app's entity world.
func (a *App) World() *ecs.World {
	return a.world
}

// Registry returns the app's component registry.
func (a *App) Registry() *ecs.ComponentRegistry {
	return a.registry
}

// Scheduler returns the app's system scheduler.
func (a *App) Scheduler() *ecs.Scheduler {
	return a.scheduler
}

// Clock returns the frame clock ticked by Update.
func (a *App) Clock() *gametime.Clock {
	return a.clock
}

// Log returns the app logger, tagged with the run id.
func (a *App) Log() *slog.Logger {
	return a.log
}

// RunID returns the unique identifier of this app run.
func (a *App) RunID() uuid.UUID {
	return a.runID
}

// AddSystem registers a system in the given phase.
func (a *App) AddSystem(phase ecs.Phase, system ecs.System) *App {
	a.scheduler.Register(phase, system)
	return a
}

// AddPlugin builds a plugin into the app. Plugins are deduplicated by
// name; a second add of the same name is a no-op. A plugin build error is
// recorded and reported by Err.
func (a *App) AddPlugin(plugin Plugin) *App {
	name := plugin.Name()
	if a.plugins[name] {
		a.log.Debug("plugin already added", "plugin", name)
		return a
	}
	a.plugins[name] = true

	if err := plugin.Build(a); err != nil {
		a.log.Error("plugin build failed", "plugin", name, "error", err)
		if a.buildErr == nil {
			a.buildErr = err
		}
		return a
	}

	a.log.Debug("plugin added", "plugin", name)
	return a
}

// AddPlugins builds every plugin of a group, in group order.
func (a *App) AddPlugins(group PluginGroup) *App {
	a.log.Debug("adding plugin group", "group", group.Name())
	for _, plugin := range group.Plugins() {
		a.AddPlugin(plugin)
	}
	return a
}

// HasPlugin reports whether a plugin with the given name was added.
func (a *App) HasPlugin(name string) bool {
	return a.plugins[name]
}

// Err returns the first plugin build error, if any.
func (a *App) Err() error {
	return a.buildErr
}

// Exit requests shutdown with the given code; the loop stops at the end
// of the current frame.
func (a *App) Exit(code int) {
	a.exit.Request(code)
}

// ShouldExit reports whether shutdown has been requested.
func (a *App) ShouldExit() bool {
	return a.exit.Requested
}

// Update advances the clock and runs one scheduler frame. Platform
// adapters that own the real loop (such as the render window) call this
// once per host frame.
func (a *App) Update() {
	a.clock.Tick()
	a.scheduler.Tick(a.clock.DeltaSeconds())
}

// Run drives Update at a fixed interval until the context is cancelled
// or a system requests exit. Headless tools and simulations use this;
// windowed apps hand the loop to the render adapter instead.
func (a *App) Run(ctx context.Context, interval time.Duration) error {
	if a.buildErr != nil {
		return a.buildErr
	}

	a.log.Info("app loop starting", "interval", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("app loop stopped", "reason", "context cancelled")
			return ctx.Err()
		case <-ticker.C:
			a.Update()
			if a.exit.Requested {
				a.log.Info("app loop stopped", "reason", "exit requested", "code", a.exit.Code)
				return nil
			}
		}
	}
}

// RegisterComponent registers the component type T with the app's world.
func RegisterComponent[T any](a *App) {
	ecs.RegisterComponent[T](a.registry)
}

// InsertResource stores a world-global value on the app's world and
// returns a pointer to it.
func InsertResource[T any](a *App, value T) *T {
	return ecs.InsertResource(a.world, value)
}

// GetResource returns the app's resource of type T, or nil.
func GetResource[T any](a *App) *T {
	return ecs.GetResource[T](a.world)
}
