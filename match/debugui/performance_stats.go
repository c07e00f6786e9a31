package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockroyale/match"
)

// FrameHistory is a ring buffer of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, frames)}
}

// Push records one frame duration.
func (h *FrameHistory) Push(dt time.Duration) {
	h.samples[h.index] = float32(dt.Seconds() * 1000)
	h.index = (h.index + 1) % len(h.samples)
}

// Average returns the mean frame time in milliseconds over the whole buffer.
func (h *FrameHistory) Average() float32 {
	var total float32
	for _, s := range h.samples {
		total += s
	}
	return total / float32(len(h.samples))
}

// PerformanceStats shows frame times and per-system tick timings.
type PerformanceStats struct {
	match   *match.Match
	history *FrameHistory
	timer   *FrameTimer
}

func NewPerformanceStats(m *match.Match, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		match:   m,
		history: NewFrameHistory(historyFrames),
		timer:   NewFrameTimer(),
	}
}

func (ps *PerformanceStats) Render() {
	ps.history.Push(ps.timer.Delta())

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(460, 280), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.history.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
	ai := ps.match.AI()
	imgui.Text(fmt.Sprintf("AI decisions: %d (deferred %d)", ai.Decisions, ai.Deferred))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history.samples[0], int32(len(ps.history.samples)))

	if imgui.TreeNodeStr("Systems") {
		stats := ps.match.Scheduler().GetStats()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, s := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall time between calls.
type FrameTimer struct {
	last time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now()}
}

// Delta returns the time since the previous call.
func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	dt := now.Sub(ft.last)
	ft.last = now
	return dt
}
