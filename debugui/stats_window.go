package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/kiln/app"
	"github.com/plus3/kiln/ecs"
)

// PerformanceWindow shows entity, archetype and resource counts, a
// frame-time history plot, and per-system scheduler timings.
type PerformanceWindow struct {
	app          *app.App
	frameHistory []float32
	frameIndex   int
}

// NewPerformanceWindow keeps the given number of frames of history.
func NewPerformanceWindow(a *app.App, historyFrames int) *PerformanceWindow {
	return &PerformanceWindow{
		app:          a,
		frameHistory: make([]float32, historyFrames),
	}
}

func (w *PerformanceWindow) Render() {
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	clock := w.app.Clock()
	w.frameHistory[w.frameIndex] = float32(clock.DeltaSeconds() * 1000.0)
	w.frameIndex = (w.frameIndex + 1) % len(w.frameHistory)

	stats := w.app.World().CollectStats()

	imgui.Text(fmt.Sprintf("Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Resources: %d", stats.ResourceCount))
	imgui.Text(fmt.Sprintf("FPS: %.1f  Frame: %d", clock.FPS(), clock.FrameCount()))

	imgui.Separator()
	imgui.Text("Frame Time (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.frameHistory[0], int32(len(w.frameHistory)))

	if imgui.TreeNodeStr("Archetypes") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchetypeTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entities")
			imgui.TableHeadersRow()

			for _, arch := range stats.Archetypes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(strings.Join(arch.ComponentTypes, ", "))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Systems") {
		w.renderSystemTimings(w.app.Scheduler().GetStats())
		imgui.TreePop()
	}

	imgui.End()
}

func (w *PerformanceWindow) renderSystemTimings(stats *ecs.SchedulerStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}

	imgui.TableSetupColumn("Phase")
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, system := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(system.Phase.String())
		imgui.TableNextColumn()
		imgui.Text(system.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f ms", float64(system.AvgDuration.Microseconds())/1000.0))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f ms", float64(system.MaxDuration.Microseconds())/1000.0))
	}

	imgui.EndTable()
}
