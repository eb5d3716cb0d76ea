// Package ebiten hosts a scene inside an Ebiten game: a polling input source,
// a wireframe render device and the ebiten.Game that drives the scheduler.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/mono/input"
	"go.uber.org/zap"
)

// Keys maps the Ebiten keys the source polls to sampler key codes.
var Keys = map[ebiten.Key]input.Key{
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyQuote:        input.KeyApostrophe,
	ebiten.KeyComma:        input.KeyComma,
	ebiten.KeyMinus:        input.KeyMinus,
	ebiten.KeyPeriod:       input.KeyPeriod,
	ebiten.KeySlash:        input.KeySlash,
	ebiten.KeyDigit0:       input.Key0,
	ebiten.KeyDigit1:       input.Key1,
	ebiten.KeyDigit2:       input.Key2,
	ebiten.KeyDigit3:       input.Key3,
	ebiten.KeyDigit4:       input.Key4,
	ebiten.KeyDigit5:       input.Key5,
	ebiten.KeyDigit6:       input.Key6,
	ebiten.KeyDigit7:       input.Key7,
	ebiten.KeyDigit8:       input.Key8,
	ebiten.KeyDigit9:       input.Key9,
	ebiten.KeyA:            input.KeyA,
	ebiten.KeyB:            input.KeyB,
	ebiten.KeyC:            input.KeyC,
	ebiten.KeyD:            input.KeyD,
	ebiten.KeyE:            input.KeyE,
	ebiten.KeyF:            input.KeyF,
	ebiten.KeyG:            input.KeyG,
	ebiten.KeyH:            input.KeyH,
	ebiten.KeyI:            input.KeyI,
	ebiten.KeyJ:            input.KeyJ,
	ebiten.KeyK:            input.KeyK,
	ebiten.KeyL:            input.KeyL,
	ebiten.KeyM:            input.KeyM,
	ebiten.KeyN:            input.KeyN,
	ebiten.KeyO:            input.KeyO,
	ebiten.KeyP:            input.KeyP,
	ebiten.KeyQ:            input.KeyQ,
	ebiten.KeyR:            input.KeyR,
	ebiten.KeyS:            input.KeyS,
	ebiten.KeyT:            input.KeyT,
	ebiten.KeyU:            input.KeyU,
	ebiten.KeyV:            input.KeyV,
	ebiten.KeyW:            input.KeyW,
	ebiten.KeyX:            input.KeyX,
	ebiten.KeyY:            input.KeyY,
	ebiten.KeyZ:            input.KeyZ,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyEnter:        input.KeyEnter,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyArrowRight:   input.KeyRight,
	ebiten.KeyArrowLeft:    input.KeyLeft,
	ebiten.KeyArrowDown:    input.KeyDown,
	ebiten.KeyArrowUp:      input.KeyUp,
	ebiten.KeyF1:           input.KeyF1,
	ebiten.KeyF2:           input.KeyF2,
	ebiten.KeyF3:           input.KeyF3,
	ebiten.KeyF4:           input.KeyF4,
	ebiten.KeyF5:           input.KeyF5,
	ebiten.KeyF6:           input.KeyF6,
	ebiten.KeyF7:           input.KeyF7,
	ebiten.KeyF8:           input.KeyF8,
	ebiten.KeyF9:           input.KeyF9,
	ebiten.KeyF10:          input.KeyF10,
	ebiten.KeyF11:          input.KeyF11,
	ebiten.KeyF12:          input.KeyF12,
	ebiten.KeyShiftLeft:    input.KeyLeftShift,
	ebiten.KeyControlLeft:  input.KeyLeftControl,
	ebiten.KeyAltLeft:      input.KeyLeftAlt,
	ebiten.KeyShiftRight:   input.KeyRightShift,
	ebiten.KeyControlRight: input.KeyRightControl,
	ebiten.KeyAltRight:     input.KeyRightAlt,
}

// CursorTracker turns absolute cursor positions into per-frame deltas. The
// first position after a reset only primes the tracker.
type CursorTracker struct {
	lastX, lastY int
	primed       bool
}

// Delta returns the movement from the previous position to (x, y).
func (c *CursorTracker) Delta(x, y int) (float32, float32) {
	if !c.primed {
		c.lastX, c.lastY = x, y
		c.primed = true
		return 0, 0
	}
	dx, dy := float32(x-c.lastX), float32(y-c.lastY)
	c.lastX, c.lastY = x, y
	return dx, dy
}

func (c *CursorTracker) Reset() {
	c.primed = false
}

// Source polls Ebiten's keyboard and cursor state once per frame. While
// Blocked reports true, for instance when ImGui has captured the input,
// nothing is recorded and every key reads as released.
type Source struct {
	Blocked func() bool

	cursor CursorTracker
	logger *zap.Logger
}

func NewSource(logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{logger: logger}
}

func (s *Source) Pump(sampler *input.Sampler) {
	if s.Blocked != nil && s.Blocked() {
		s.cursor.Reset()
		return
	}

	s.RecordKeys(sampler, ebiten.IsKeyPressed)

	if dx, dy := s.cursor.Delta(ebiten.CursorPosition()); dx != 0 || dy != 0 {
		sampler.RecordMouseDelta(dx, dy)
	}
}

// RecordKeys records every mapped key for which pressed reports true. Keys
// the sampler rejects are logged and skipped.
func (s *Source) RecordKeys(sampler *input.Sampler, pressed func(ebiten.Key) bool) {
	for ek, k := range Keys {
		if !pressed(ek) {
			continue
		}
		if err := sampler.RecordKey(k, true); err != nil {
			s.logger.Warn("record key", zap.Int("ebiten_key", int(ek)), zap.Error(err))
		}
	}
}

// SyncCursor captures the cursor while locked and shows it otherwise.
func (s *Source) SyncCursor(locked bool) {
	mode := ebiten.CursorModeVisible
	if locked {
		mode = ebiten.CursorModeCaptured
	}
	if ebiten.CursorMode() != mode {
		ebiten.SetCursorMode(mode)
		s.cursor.Reset()
	}
}
