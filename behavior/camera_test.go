package behavior_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/behavior"
	"github.com/plus3/mono/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraFirstStartedIsMain(t *testing.T) {
	w := scene.NewWorld()

	first := behavior.Spawn(w, "cam1", behavior.KindCamera, behavior.SpawnOptions{})
	second := behavior.Spawn(w, "cam2", behavior.KindCamera, behavior.SpawnOptions{})

	cam1, ok := scene.GetComponent[*behavior.Camera](first)
	require.True(t, ok)
	cam2, ok := scene.GetComponent[*behavior.Camera](second)
	require.True(t, ok)

	assert.True(t, cam1.IsMain())
	assert.False(t, cam2.IsMain())
	assert.Same(t, cam1, w.MainCamera())

	t.Run("only the main camera is controllable", func(t *testing.T) {
		_, ok := scene.GetComponent[*behavior.CameraController](first)
		assert.True(t, ok)
		_, ok = scene.GetComponent[*behavior.CameraController](second)
		assert.False(t, ok)
	})

	t.Run("destroying the main camera frees the slot", func(t *testing.T) {
		w.Destroy(first)
		assert.Nil(t, w.MainCamera())

		third := behavior.Spawn(w, "cam3", behavior.KindCamera, behavior.SpawnOptions{})
		cam3, _ := scene.GetComponent[*behavior.Camera](third)
		assert.True(t, cam3.IsMain())
	})
}

func TestCameraStart(t *testing.T) {
	w := scene.NewWorld()
	g := w.NewGameObject("cam")
	cam := scene.Attach(g, behavior.NewCamera())

	window := w.Settings().Window
	assert.Equal(t, mgl32.Vec4{0, 0, float32(window.Width), float32(window.Height)}, cam.Viewport)
	assert.InDelta(t, mgl32.DegToRad(180), g.Transform().Yaw(), 1e-6)
	assert.InDelta(t, mgl32.DegToRad(15), g.Transform().Pitch(), 1e-6)

	t.Run("projection uses fov and viewport", func(t *testing.T) {
		aspect := float32(window.Width) / float32(window.Height)
		want := mgl32.Perspective(mgl32.DegToRad(60), aspect, 0.1, 1000)
		assert.True(t, want.ApproxEqual(cam.Projection()))
	})

	t.Run("view follows the transform", func(t *testing.T) {
		g.Transform().Position = mgl32.Vec3{0, 2, 5}
		g.Transform().SetYawPitch(0, 0)

		s := newScheduler(w, &keySource{})
		s.Once(0.02)

		want := mgl32.LookAtV(mgl32.Vec3{0, 2, 5}, mgl32.Vec3{0, 2, 6}, scene.WorldUp)
		assert.True(t, want.ApproxEqualThreshold(cam.View(), 1e-5))
	})

	t.Run("zero fields get defaults", func(t *testing.T) {
		bare := scene.Attach(w.NewGameObject("bare"), &behavior.Camera{})
		assert.Equal(t, float32(60), bare.FOV)
		assert.Equal(t, float32(0.1), bare.Near)
		assert.Equal(t, float32(1000), bare.Far)
		assert.False(t, bare.IsMain())
	})
}
