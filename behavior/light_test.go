package behavior_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/behavior"
	"github.com/plus3/mono/render"
	"github.com/plus3/mono/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d of %v", i, got)
	}
}

func TestRotatorSpinsPerUpdate(t *testing.T) {
	w := scene.NewWorld()
	g := w.NewGameObject("spinner")
	scene.Attach(g, &behavior.Rotator{Rate: 2})
	s := newScheduler(w, &keySource{})

	for range 3 {
		s.Once(0.02)
	}
	assert.InDelta(t, 6, g.Transform().Rotation.Y(), 1e-6)

	t.Run("independent of frame time", func(t *testing.T) {
		s.Once(10)
		assert.InDelta(t, 8, g.Transform().Rotation.Y(), 1e-6)
	})
}

func TestLightDefaults(t *testing.T) {
	w := scene.NewWorld()

	t.Run("directional", func(t *testing.T) {
		g := w.NewGameObject("sun")
		l := scene.AttachNew[behavior.DirectionalLight](g)

		assert.Equal(t, mgl32.Vec3{1, 1, -1}, g.Transform().Position)
		assert.Equal(t, mgl32.Vec3{45, 90, 0}, g.Transform().Rotation)
		assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Color)
		assert.Equal(t, float32(1), l.Strength)
		assertVec3(t, mgl32.Vec3{-0.70710677, 0.70710677, 0}, l.Direction())
	})

	t.Run("point keeps its rotation", func(t *testing.T) {
		g := w.NewGameObject("bulb")
		g.Transform().Rotation = mgl32.Vec3{0, 90, 0}
		l := scene.AttachNew[behavior.PointLight](g)

		assert.Equal(t, mgl32.Vec3{0, 0, 10}, g.Transform().Position)
		assert.Equal(t, mgl32.Vec3{0, 90, 0}, g.Transform().Rotation)
		assert.Equal(t, mgl32.Vec3{5, 5, 5}, l.Color)
		assert.Equal(t, behavior.DefaultAttenuation, l.Attenuation)
		assertVec3(t, mgl32.Vec3{-1, 0, 0}, l.Direction())
	})

	t.Run("spot", func(t *testing.T) {
		g := w.NewGameObject("torch")
		l := scene.AttachNew[behavior.SpotLight](g)

		assert.Equal(t, mgl32.Vec3{5, 3, 20}, g.Transform().Position)
		assert.Equal(t, mgl32.Vec3{90, 0, 0}, g.Transform().Rotation)
		assert.InDelta(t, 0.976296, l.CosInner, 1e-5)
		assert.InDelta(t, 0.953717, l.CosOuter, 1e-5)
		assertVec3(t, mgl32.Vec3{0, 1, 0}, l.Direction())
	})

	t.Run("preset color is kept", func(t *testing.T) {
		l := scene.Attach(w.NewGameObject("red"), &behavior.PointLight{
			LightBase: behavior.LightBase{Color: mgl32.Vec3{1, 0, 0}, Strength: 3},
		})
		assert.Equal(t, mgl32.Vec3{1, 0, 0}, l.Color)
		assert.Equal(t, float32(3), l.Strength)
	})

	assert.Equal(t, 1, w.CountLightsOfType(scene.LightDirectional))
	assert.Equal(t, 2, w.CountLightsOfType(scene.LightPoint))
	assert.Equal(t, 1, w.CountLightsOfType(scene.LightSpot))
	assert.Len(t, w.Lights(), 4)
}

func TestLightSlots(t *testing.T) {
	w := scene.NewWorld()

	sun := scene.AttachNew[behavior.DirectionalLight](w.NewGameObject("sun"))
	p1 := scene.AttachNew[behavior.PointLight](w.NewGameObject("p1"))
	spot := scene.AttachNew[behavior.SpotLight](w.NewGameObject("spot"))
	p2 := scene.AttachNew[behavior.PointLight](w.NewGameObject("p2"))

	assert.Equal(t, 0, w.LightSlot(sun))
	assert.Equal(t, 0, w.LightSlot(p1))
	assert.Equal(t, 0, w.LightSlot(spot))
	assert.Equal(t, 1, w.LightSlot(p2))

	total := 0
	for _, lt := range []scene.LightType{scene.LightDirectional, scene.LightPoint, scene.LightSpot} {
		total += w.CountLightsOfType(lt)
	}
	assert.Equal(t, len(w.Lights()), total)

	t.Run("bind writes each light into its slot", func(t *testing.T) {
		u := render.NewUniformMap("standard")
		render.BindLights(u, w.Lights())

		assert.Equal(t, p1.Color.Mul(p1.Strength), u.Vec3("pointLights[0].color"))
		assert.Equal(t, mgl32.Vec3{0, 0, 10}, u.Vec3("pointLights[1].pos"))
		assert.Equal(t, sun.Direction(), u.Vec3("directionalLights[0].dirToLight"))

		flag, ok := u.Get("spotLights[0].flag")
		require.True(t, ok)
		assert.Equal(t, true, flag)

		inner, _ := u.Get("spotLights[0].cosPhyInner")
		assert.Equal(t, spot.CosInner, inner)
		linear, _ := u.Get("spotLights[0].linear")
		assert.Equal(t, spot.Linear, linear)
		quadratic, _ := u.Get("pointLights[1].quadratic")
		assert.Equal(t, p2.Quadratic, quadratic)

		_, ok = u.Get("directionalLights[0].constant")
		assert.False(t, ok, "directional lights have no attenuation")
	})

	t.Run("destroyed lights stay registered until pruned", func(t *testing.T) {
		w.Destroy(p1.GameObject())
		assert.Equal(t, 2, w.CountLightsOfType(scene.LightPoint))
		assert.Equal(t, 1, w.LightSlot(p2))

		u := render.NewUniformMap("standard")
		render.BindLights(u, w.Lights())
		_, ok := u.Get("pointLights[0].flag")
		assert.False(t, ok)
		assert.True(t, u.Vec3("pointLights[1].pos") == mgl32.Vec3{0, 0, 10})

		assert.Equal(t, 1, w.PruneLights())
		assert.Equal(t, 0, w.LightSlot(p2))
	})
}

func TestLightDirectionFollowsRotation(t *testing.T) {
	w := scene.NewWorld()
	g := w.NewGameObject("sun")
	l := scene.AttachNew[behavior.DirectionalLight](g)
	s := newScheduler(w, &keySource{})

	g.Transform().Rotation = mgl32.Vec3{0, 0, 0}
	assertVec3(t, mgl32.Vec3{-0.70710677, 0.70710677, 0}, l.Direction())

	s.Once(0.02)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, l.Direction())

	t.Run("override lasts until the next update", func(t *testing.T) {
		l.SetDirection(mgl32.Vec3{0, 1, 0})
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, l.Direction())
		s.Once(0.02)
		assertVec3(t, mgl32.Vec3{0, 0, -1}, l.Direction())
	})
}
