package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/mono/debugui"
	debugui_ebiten "github.com/plus3/mono/debugui/ebiten"
	"github.com/plus3/mono/input"
	"github.com/plus3/mono/scene"
)

var background = color.RGBA{R: 20, G: 22, B: 28, A: 255}

// Game implements ebiten.Game around a scene scheduler. Escape ends the game.
type Game struct {
	Scheduler *scene.Scheduler
	Source    *Source
	Device    *Device
	UI        *debugui_ebiten.ImguiBackend
	Host      *debugui.Host

	timer *debugui.FrameTimer
}

// NewGame wires src to block while the debug host's ImGui wants the input.
func NewGame(s *scene.Scheduler, src *Source, dev *Device, ui *debugui_ebiten.ImguiBackend, host *debugui.Host) *Game {
	if host != nil {
		src.Blocked = func() bool {
			return host.Input.WantCaptureMouse || host.Input.WantCaptureKeyboard
		}
	}
	return &Game{
		Scheduler: s,
		Source:    src,
		Device:    dev,
		UI:        ui,
		Host:      host,
		timer:     debugui.NewFrameTimer(),
	}
}

func (g *Game) Update() error {
	if g.UI != nil {
		g.UI.BeginFrame()
	}

	g.Device.Reset()
	g.Scheduler.Once(g.deltaTime())

	if g.UI != nil {
		g.UI.EndFrame()
	}

	g.Source.SyncCursor(g.Scheduler.World().MouseLocked())

	if g.Scheduler.Input().IsDown(input.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) deltaTime() float32 {
	dt := g.timer.GetDeltaTime()
	if timing := g.Scheduler.World().Settings().Time; timing.Fixed {
		return timing.Delta
	}
	return dt
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.Device.Flush(screen)

	if g.UI != nil {
		g.UI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.UI != nil {
		g.UI.Layout(outsideWidth, outsideHeight)
	}
	g.Device.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
