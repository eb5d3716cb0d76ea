package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/mono/scene"
)

// FrameHistory is a ring of recent frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, frames)}
}

// Record adds a frame time given in seconds.
func (h *FrameHistory) Record(dt float32) {
	h.samples[h.index] = dt * 1000.0
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average returns the mean of the recorded frame times in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var total float32
	for _, ms := range h.samples {
		total += ms
	}
	return total / float32(h.filled)
}

// Samples returns the ring in storage order.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

// PerformanceStats shows frame times, scheduler pass timings and registry
// counts.
type PerformanceStats struct {
	history *FrameHistory
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{history: NewFrameHistory(historyFrames)}
}

func (ps *PerformanceStats) Render(w *scene.World, stats *scene.SchedulerStats, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.history.Record(deltaTime)

	imgui.Text(fmt.Sprintf("Objects: %d", len(w.Objects())))
	imgui.Text(fmt.Sprintf("Lights: %d directional, %d point, %d spot",
		w.CountLightsOfType(scene.LightDirectional),
		w.CountLightsOfType(scene.LightPoint),
		w.CountLightsOfType(scene.LightSpot)))
	if cam := w.MainCamera(); cam != nil && cam.GameObject() != nil {
		imgui.Text(fmt.Sprintf("Main camera: %s", cam.GameObject()))
	} else {
		imgui.Text("Main camera: none")
	}

	avg := ps.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if stats != nil && imgui.TreeNodeStr(fmt.Sprintf("Passes (%d frames)", stats.Frames)) {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PassStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Pass")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, pass := range stats.Passes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(pass.Name)
				imgui.TableNextColumn()
				imgui.Text(pass.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(pass.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(pass.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall-clock time between frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// GetDeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
