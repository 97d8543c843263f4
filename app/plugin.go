package app

// Plugin is a reusable bundle of components, resources and systems that
// builds itself into an App. Plugins are identified by name and added at
// most once per app.
type Plugin interface {
	Name() string
	Build(app *App) error
}

// PluginGroup is an ordered collection of plugins added together.
type PluginGroup interface {
	Name() string
	Plugins() []Plugin
}

// PluginFunc adapts a named build function to the Plugin interface.
type PluginFunc struct {
	PluginName string
	BuildFunc  func(app *App) error
}

// Name implements Plugin.
func (p PluginFunc) Name() string {
	return p.PluginName
}

// Build implements Plugin.
func (p PluginFunc) Build(app *App) error {
	if p.BuildFunc == nil {
		return nil
	}
	return p.BuildFunc(app)
}

// Group is a PluginGroup built from a name and a plugin slice.
type Group struct {
	GroupName string
	Members   []Plugin
}

// Name implements PluginGroup.
func (g Group) Name() string {
	return g.GroupName
}

// Plugins implements PluginGroup.
func (g Group) Plugins() []Plugin {
	return g.Members
}
