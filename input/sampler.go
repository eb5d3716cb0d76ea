// Package input samples raw keyboard and mouse state once per frame and derives
// edge events (press/release) from it.
//
// A frame looks like:
//
//	sampler.BeginFrame()
//	source.Pump(sampler)   // RecordKey / RecordMouseDelta
//	sampler.Advance()
//	// IsDown / IsPressed / IsReleased are valid until the next BeginFrame
package input

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidKeyCode is reported for key codes outside [0, KeyCount).
var ErrInvalidKeyCode = errors.New("invalid key code")

// Source feeds raw key and mouse state into a Sampler. It is called once per
// frame between BeginFrame and Advance.
type Source interface {
	Pump(s *Sampler)
}

// Sampler holds the raw key state written by a Source and the edge tables
// computed from it by Advance.
type Sampler struct {
	down     [KeyCount]bool
	pressed  [KeyCount]bool
	released [KeyCount]bool
	previous [KeyCount]bool

	mouseDelta mgl32.Vec2
}

// NewSampler returns a sampler with every key up.
func NewSampler() *Sampler {
	return &Sampler{}
}

// RecordKey sets the raw state of k for the current frame. It may be called
// any number of times before Advance; the last write wins.
func (s *Sampler) RecordKey(k Key, isDown bool) error {
	if !k.Valid() {
		return fmt.Errorf("record key %d: %w", k, ErrInvalidKeyCode)
	}
	s.down[k] = isDown
	return nil
}

// RecordMouseDelta accumulates cursor movement for the current frame.
func (s *Sampler) RecordMouseDelta(dx, dy float32) {
	s.mouseDelta = s.mouseDelta.Add(mgl32.Vec2{dx, dy})
}

// Advance derives the edge tables by comparing the raw state against the state
// committed by the previous Advance, then commits the raw state.
func (s *Sampler) Advance() {
	for i := range KeyCount {
		s.pressed[i] = s.down[i] && !s.previous[i]
		s.released[i] = !s.down[i] && s.previous[i]
	}
	s.previous = s.down
}

// BeginFrame resets the momentary state (edges, raw down state, mouse delta).
// The state committed by the last Advance is kept for the next comparison, so
// sources must re-assert held keys every frame.
func (s *Sampler) BeginFrame() {
	clear(s.down[:])
	clear(s.pressed[:])
	clear(s.released[:])
	s.mouseDelta = mgl32.Vec2{}
}

// Reset puts the sampler back into its initial state.
func (s *Sampler) Reset() {
	s.BeginFrame()
	clear(s.previous[:])
}

// IsDown reports whether k is held in the current frame.
func (s *Sampler) IsDown(k Key) bool {
	mustValid(k)
	return s.down[k]
}

// IsPressed reports whether k went from up to down in the current frame.
func (s *Sampler) IsPressed(k Key) bool {
	mustValid(k)
	return s.pressed[k]
}

// IsReleased reports whether k went from down to up in the current frame.
func (s *Sampler) IsReleased(k Key) bool {
	mustValid(k)
	return s.released[k]
}

// MouseDelta returns the cursor movement accumulated for the current frame.
func (s *Sampler) MouseDelta() mgl32.Vec2 {
	return s.mouseDelta
}

func mustValid(k Key) {
	if !k.Valid() {
		panic(fmt.Errorf("query key %d: %w", k, ErrInvalidKeyCode))
	}
}
