// Package glfw feeds GLFW window events into the scene's input sampler.
//
// GLFW reports input through callbacks; Source collects them between frames
// and replays the held keys and accumulated cursor movement on Pump. A key
// pressed and released between two pumps still reads as down for one frame.
package glfw

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/plus3/mono/input"
	"go.uber.org/zap"
)

// Source is a callback-driven input.Source.
type Source struct {
	mu sync.Mutex

	held map[input.Key]bool
	// pressed since the last Pump, even if already released
	tapped map[input.Key]bool

	dx, dy     float64
	lastX      float64
	lastY      float64
	firstMouse bool

	logger *zap.Logger
}

func NewSource(logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{
		held:       make(map[input.Key]bool),
		tapped:     make(map[input.Key]bool),
		firstMouse: true,
		logger:     logger,
	}
}

// Install registers the key and cursor callbacks on window.
func (s *Source) Install(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		s.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		s.HandleCursor(xpos, ypos)
	})
}

// HandleKeyEvent records a key transition. Repeats keep the key held.
func (s *Source) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	k := input.Key(key)
	if !k.Valid() {
		s.logger.Debug("ignoring key outside the sampler range", zap.Int("key", int(key)))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case glfw.Press:
		s.held[k] = true
		s.tapped[k] = true
	case glfw.Repeat:
		s.held[k] = true
	case glfw.Release:
		delete(s.held, k)
	}
}

// HandleCursor accumulates movement since the previous cursor event. The
// first event only primes the position.
func (s *Source) HandleCursor(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.firstMouse {
		s.lastX, s.lastY = x, y
		s.firstMouse = false
		return
	}
	s.dx += x - s.lastX
	s.dy += y - s.lastY
	s.lastX, s.lastY = x, y
}

// ResetCursor makes the next cursor event prime the position again, so a
// warp on lock or unlock does not turn the camera.
func (s *Source) ResetCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firstMouse = true
	s.dx, s.dy = 0, 0
}

// Pump replays the held and tapped keys and hands over the accumulated cursor
// movement.
func (s *Source) Pump(sampler *input.Sampler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.held {
		s.record(sampler, k)
	}
	for k := range s.tapped {
		if !s.held[k] {
			s.record(sampler, k)
		}
	}
	clear(s.tapped)
	if s.dx != 0 || s.dy != 0 {
		sampler.RecordMouseDelta(float32(s.dx), float32(s.dy))
		s.dx, s.dy = 0, 0
	}
}

func (s *Source) record(sampler *input.Sampler, k input.Key) {
	if err := sampler.RecordKey(k, true); err != nil {
		s.logger.Warn("record key", zap.Error(err))
	}
}

// SyncCursor hides and captures the cursor while the scene has the mouse
// locked. It returns the new lock state so callers can track changes.
func (s *Source) SyncCursor(window *glfw.Window, locked, wasLocked bool) bool {
	if locked == wasLocked {
		return locked
	}
	if locked {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	s.ResetCursor()
	return locked
}
