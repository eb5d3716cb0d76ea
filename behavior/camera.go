// Package behavior holds the concrete behaviors a scene is built from: the
// camera and its controller, lights, renderers and a small spinner, plus the
// factory that assembles GameObjects by kind.
package behavior

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/debugui"
	"github.com/plus3/mono/scene"
)

// Camera computes view and projection matrices from its owner's transform.
// The first Camera started in a world becomes the world's main camera.
type Camera struct {
	scene.BaseBehavior

	FOV      float32 // vertical, degrees
	Near     float32
	Far      float32
	Viewport mgl32.Vec4 // x, y, width, height

	main bool
	view mgl32.Mat4
	proj mgl32.Mat4
}

// NewCamera returns a camera with a 60 degree field of view.
func NewCamera() *Camera {
	return &Camera{FOV: 60, Near: 0.1, Far: 1000}
}

// Start turns the owner around to look down -Z, tilted up by 15 degrees, sizes
// the viewport to the window and claims the main camera slot if it is free.
func (c *Camera) Start() {
	if c.FOV == 0 {
		c.FOV = 60
	}
	if c.Near == 0 && c.Far == 0 {
		c.Near, c.Far = 0.1, 1000
	}

	w := c.World()
	window := w.Settings().Window
	c.Viewport = mgl32.Vec4{0, 0, float32(window.Width), float32(window.Height)}

	if t := c.Transform(); t != nil {
		t.SetYawPitch(mgl32.DegToRad(180), mgl32.DegToRad(15))
	}
	c.main = w.SetMainCamera(c)
	c.recompute()
}

func (c *Camera) RealUpdate(*scene.Frame) {
	c.recompute()
}

func (c *Camera) recompute() {
	t := c.Transform()
	if t == nil {
		return
	}

	c.view = mgl32.LookAtV(t.Position, t.Position.Add(t.Forward()), scene.WorldUp)

	aspect := float32(1)
	if c.Viewport[3] > 0 {
		aspect = c.Viewport[2] / c.Viewport[3]
	}
	c.proj = mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// IsMain reports whether this camera became the world's main camera.
func (c *Camera) IsMain() bool {
	return c.main
}

func (c *Camera) View() mgl32.Mat4       { return c.view }
func (c *Camera) Projection() mgl32.Mat4 { return c.proj }

func (c *Camera) DebugDraw() {
	debugui.Textf("main: %v", c.main)
	debugui.Float("fov", &c.FOV)
	debugui.Float("near", &c.Near)
	debugui.Float("far", &c.Far)
	debugui.Float("viewport width", &c.Viewport[2])
	debugui.Float("viewport height", &c.Viewport[3])
}
