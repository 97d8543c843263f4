// Package debugui renders Dear ImGui inspection windows over a running
// app: performance stats, an entity browser and a component inspector.
// Widgets are plain entities holding a render closure, collected each
// frame by WidgetSystem.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/kiln/ecs"
)

// Widget holds an ImGui render function. Spawn one per debug window.
type Widget struct {
	Render func()
}

// CaptureState is a world resource mirroring ImGui's input capture.
// Gameplay input systems check it to ignore clicks landing on UI.
type CaptureState struct {
	Mouse    bool
	Keyboard bool
}

// WidgetSystem defers every widget's render call to the end of the
// phase, inside the backend's frame, and refreshes the capture state.
type WidgetSystem struct {
	Widgets ecs.Query[struct{ *Widget }]
	Capture ecs.Resource[CaptureState]
}

func (s *WidgetSystem) Update(tick *ecs.Tick) {
	capture := s.Capture.Get()
	capture.Mouse = imgui.CurrentIO().WantCaptureMouse()
	capture.Keyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for item := range s.Widgets.Values() {
		if item.Widget.Render != nil {
			tick.Commands.Defer(item.Widget.Render)
		}
	}
}
