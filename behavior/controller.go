package behavior

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/debugui"
	"github.com/plus3/mono/input"
	"github.com/plus3/mono/scene"
)

// maxPitch keeps mouse look short of straight up or down.
var maxPitch = mgl32.DegToRad(89)

// CameraController flies its owner with WASD (forward, left, back, right) and
// QE (down, up) along the owner's basis. Holding shift switches to HighSpeed.
// Space toggles the world's mouse lock, and while the mouse is locked cursor
// movement turns the owner.
type CameraController struct {
	scene.BaseBehavior

	Speed       float32
	HighSpeed   float32
	Sensitivity float32 // radians per pixel

	current float32
}

// NewCameraController returns a controller using the world's controller
// settings once started.
func NewCameraController() *CameraController {
	return &CameraController{}
}

func (c *CameraController) Start() {
	settings := c.World().Settings().Controller
	if c.Speed == 0 {
		c.Speed = settings.Speed
	}
	if c.HighSpeed == 0 {
		c.HighSpeed = settings.HighSpeed
	}
	if c.Sensitivity == 0 {
		c.Sensitivity = settings.Sensitivity
	}
	c.current = c.Speed
}

// CurrentSpeed returns the speed movement uses this frame.
func (c *CameraController) CurrentSpeed() float32 {
	return c.current
}

func (c *CameraController) Update(frame *scene.Frame) {
	in := frame.Input
	if in == nil {
		return
	}

	if in.IsPressed(input.KeyLeftShift) || in.IsPressed(input.KeyRightShift) {
		c.current = c.HighSpeed
	}
	if in.IsReleased(input.KeyLeftShift) || in.IsReleased(input.KeyRightShift) {
		c.current = c.Speed
	}

	if in.IsPressed(input.KeySpace) {
		w := c.World()
		w.SetMouseLocked(!w.MouseLocked())
	}

	t := c.Transform()
	if t == nil {
		return
	}
	step := c.current * frame.DeltaTime

	moves := []struct {
		key input.Key
		dir mgl32.Vec3
	}{
		{input.KeyW, t.Forward()},
		{input.KeyS, t.Forward().Mul(-1)},
		{input.KeyD, t.Right()},
		{input.KeyA, t.Right().Mul(-1)},
		{input.KeyE, t.Up()},
		{input.KeyQ, t.Up().Mul(-1)},
	}
	for _, m := range moves {
		if in.IsDown(m.key) {
			t.Translate(m.dir.Mul(step))
		}
	}
}

func (c *CameraController) RealUpdate(frame *scene.Frame) {
	if frame.Input == nil || !c.World().MouseLocked() {
		return
	}

	delta := frame.Input.MouseDelta()
	if delta == (mgl32.Vec2{}) {
		return
	}

	t := c.Transform()
	if t == nil {
		return
	}
	pitch := mgl32.Clamp(t.Pitch()-delta.Y()*c.Sensitivity, -maxPitch, maxPitch)
	t.SetYawPitch(t.Yaw()-delta.X()*c.Sensitivity, pitch)
}

func (c *CameraController) DebugDraw() {
	debugui.Float("speed", &c.Speed)
	debugui.Float("high speed", &c.HighSpeed)
	debugui.Float("sensitivity", &c.Sensitivity)
	debugui.Textf("current: %.2f", c.current)
}
