package debugui

import "github.com/plus3/mono/scene"

// Tools bundles the debug windows and installs them as panels of a Host.
type Tools struct {
	Browser   *Browser
	Inspector *Inspector
	Lights    *LightViewer
	Stats     *PerformanceStats
	Query     *QueryDebugger

	timer *FrameTimer
}

func NewTools() *Tools {
	return &Tools{
		Browser:   NewBrowser(100),
		Inspector: NewInspector(),
		Lights:    NewLightViewer(),
		Stats:     NewPerformanceStats(120),
		Query:     NewQueryDebugger(),
		timer:     NewFrameTimer(),
	}
}

// Install adds every window to h. stats is polled once per frame and may be
// nil.
func (t *Tools) Install(h *Host, w *scene.World, stats func() *scene.SchedulerStats) {
	h.AddPanel(func() { t.Browser.Render(w) })
	h.AddPanel(func() { t.Inspector.Render(w, t.Browser.Selected()) })
	h.AddPanel(func() { t.Lights.Render(w) })
	h.AddPanel(func() {
		var s *scene.SchedulerStats
		if stats != nil {
			s = stats()
		}
		t.Stats.Render(w, s, t.timer.GetDeltaTime())
	})
	h.AddPanel(func() { t.Query.Render(w) })
}
