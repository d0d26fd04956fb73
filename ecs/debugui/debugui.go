// Package debugui provides an immediate-mode Dear ImGui overlay for inspecting
// an ecs.Manager and scheduler timings while the loop runs.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pixecs/ecs"
)

// Overlay groups the debug windows. Render must be called between the ImGui
// backend's BeginFrame and EndFrame.
type Overlay struct {
	Performance *PerformanceStats
	Browser     *EntityBrowser
}

// NewOverlay creates an overlay keeping historyFrames of frame times and
// showing pageSize entities per browser page.
func NewOverlay(historyFrames, pageSize int) *Overlay {
	return &Overlay{
		Performance: NewPerformanceStats(historyFrames),
		Browser:     NewEntityBrowser(pageSize),
	}
}

// Render draws every window for the current frame.
func (o *Overlay) Render(m *ecs.Manager, stats *ecs.SchedulerStats, deltaTime float32) {
	o.Performance.Render(m, stats, deltaTime)
	o.Browser.Render(m)
}

// WantsKeyboard reports whether ImGui is consuming keyboard input this frame.
func WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
