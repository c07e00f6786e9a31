// Package debugui draws Dear ImGui windows over a running match: standings, tick
// timings and a competitor inspector.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockroyale/match"
)

// InputState tracks whether ImGui is consuming mouse or keyboard input this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is an ordered set of ImGui render functions.
type Overlay struct {
	Input InputState
	items []func()
}

// Add appends a render function.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, render)
}

// Render refreshes the input state and runs every render function. It must be called
// between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, render := range o.items {
		render()
	}
}

// ImguiSystem renders the overlay at the end of each match tick, after attacks and
// rankings are applied.
type ImguiSystem struct {
	Overlay *Overlay
}

func (s *ImguiSystem) Execute(frame *match.UpdateFrame) {
	frame.Commands.Defer(s.Overlay.Render)
}

// Install builds the standard windows for m, registers the overlay with m's scheduler
// and returns it.
func Install(m *match.Match, historyFrames int) *Overlay {
	overlay := &Overlay{}
	standings := NewStandingsWindow(m)
	perf := NewPerformanceStats(m, historyFrames)
	inspector := NewInspector(m)

	overlay.Add(standings.Render)
	overlay.Add(perf.Render)
	overlay.Add(func() { inspector.Render(standings.Selected()) })

	m.Scheduler().Register(&ImguiSystem{Overlay: overlay})
	return overlay
}
