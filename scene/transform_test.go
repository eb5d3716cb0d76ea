package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/scene"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v", i, got)
	}
}

func TestTransformBasis(t *testing.T) {
	t.Run("default looks down +Z", func(t *testing.T) {
		tr := scene.NewTransform(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
		assertVec(t, mgl32.Vec3{0, 0, 1}, tr.Forward())
		assertVec(t, mgl32.Vec3{-1, 0, 0}, tr.Right())
		assertVec(t, mgl32.Vec3{0, 1, 0}, tr.Up())
	})

	t.Run("basis is orthonormal", func(t *testing.T) {
		tr := scene.NewTransform(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
		for _, yp := range [][2]float32{{0.3, 0.2}, {-2, -1.1}, {3.1, 0.9}} {
			tr.SetYawPitch(yp[0], yp[1])
			assert.InDelta(t, 1, tr.Forward().Len(), 1e-5)
			assert.InDelta(t, 1, tr.Right().Len(), 1e-5)
			assert.InDelta(t, 1, tr.Up().Len(), 1e-5)
			assert.InDelta(t, 0, tr.Forward().Dot(tr.Right()), 1e-5)
			assert.InDelta(t, 0, tr.Forward().Dot(tr.Up()), 1e-5)
			assert.InDelta(t, 0, tr.Right().Dot(tr.Up()), 1e-5)
		}
	})

	t.Run("pitch tilts forward upward", func(t *testing.T) {
		tr := scene.NewTransform(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
		tr.AddYawPitch(0, mgl32.DegToRad(30))
		assert.InDelta(t, 0.5, tr.Forward().Y(), 1e-5)
		assert.Greater(t, tr.Up().Y(), float32(0))
	})

	t.Run("straight up keeps the last right", func(t *testing.T) {
		tr := scene.NewTransform(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
		tr.SetYawPitch(0, mgl32.DegToRad(90))
		assertVec(t, mgl32.Vec3{-1, 0, 0}, tr.Right())
	})
}

func TestTransformModelMatrix(t *testing.T) {
	tr := scene.NewTransform(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{2, 2, 2})
	m := tr.ModelMatrix(mgl32.Ident4())

	// Rotating +X by 90 degrees about Y gives -Z, then scale, then translate.
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assertVec(t, mgl32.Vec3{1, 2, 1}, p)

	tr.Translate(mgl32.Vec3{0, 1, 0})
	assertVec(t, mgl32.Vec3{1, 3, 3}, tr.Position)

	parent := mgl32.Translate3D(10, 0, 0)
	p = tr.ModelMatrix(parent).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assertVec(t, mgl32.Vec3{11, 3, 3}, p)
}
