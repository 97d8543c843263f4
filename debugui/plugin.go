package debugui

import (
	"github.com/plus3/kiln/app"
	"github.com/plus3/kiln/ecs"
)

// Plugin registers the widget component and system, inserts the capture
// state resource, and spawns the default inspection windows.
type Plugin struct {
	// PageSize limits the entity browser listing; 0 means 100.
	PageSize int
	// HistoryFrames sizes the frame-time plot; 0 means 120.
	HistoryFrames int
}

func (Plugin) Name() string {
	return "kiln:debugui"
}

func (p Plugin) Build(a *app.App) error {
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	historyFrames := p.HistoryFrames
	if historyFrames <= 0 {
		historyFrames = 120
	}

	app.RegisterComponent[Widget](a)
	app.InsertResource(a, CaptureState{})
	a.AddSystem(ecs.Update, &WidgetSystem{})

	browser := NewEntityBrowser(a.World(), pageSize)
	inspector := NewComponentInspector(a.World(), browser)
	perf := NewPerformanceWindow(a, historyFrames)

	a.World().Spawn(Widget{Render: perf.Render})
	a.World().Spawn(Widget{Render: browser.Render})
	a.World().Spawn(Widget{Render: inspector.Render})

	return nil
}
