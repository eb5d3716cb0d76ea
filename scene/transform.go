package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the up axis used to derive a transform's basis.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Transform is the spatial state every GameObject starts with: position,
// Euler rotation in degrees and scale, plus a camera-style yaw/pitch (radians)
// from which the forward/right/up basis is derived.
//
// The basis is recomputed whenever yaw or pitch change through the setters and
// again in RealUpdate, which the scheduler runs in a dedicated spatial pass
// before any other RealUpdate of the frame.
type Transform struct {
	BaseBehavior

	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3

	yaw   float32
	pitch float32

	forward mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3
}

// NewTransform returns a transform with the given placement and a basis
// looking down +Z.
func NewTransform(position, rotation, scale mgl32.Vec3) *Transform {
	t := &Transform{
		Position: position,
		Rotation: rotation,
		Scale:    scale,
		right:    mgl32.Vec3{-1, 0, 0},
	}
	t.recompute()
	return t
}

// RealUpdate recomputes the basis from yaw and pitch.
func (t *Transform) RealUpdate(*Frame) {
	t.recompute()
}

func (t *Transform) recompute() {
	sy, cy := math.Sincos(float64(t.yaw))
	sp, cp := math.Sincos(float64(t.pitch))

	t.forward = mgl32.Vec3{
		float32(cp * sy),
		float32(sp),
		float32(cp * cy),
	}

	// Looking straight up or down leaves right undefined; keep the last one.
	if r := t.forward.Cross(WorldUp); r.Len() > 1e-6 {
		t.right = r.Normalize()
	}
	t.up = t.right.Cross(t.forward).Normalize()
}

func (t *Transform) Yaw() float32   { return t.yaw }
func (t *Transform) Pitch() float32 { return t.pitch }

// SetYawPitch sets both angles (radians) and refreshes the basis.
func (t *Transform) SetYawPitch(yaw, pitch float32) {
	t.yaw = yaw
	t.pitch = pitch
	t.recompute()
}

// AddYawPitch offsets both angles (radians) and refreshes the basis.
func (t *Transform) AddYawPitch(dYaw, dPitch float32) {
	t.SetYawPitch(t.yaw+dYaw, t.pitch+dPitch)
}

func (t *Transform) Forward() mgl32.Vec3 { return t.forward }
func (t *Transform) Right() mgl32.Vec3   { return t.right }
func (t *Transform) Up() mgl32.Vec3      { return t.up }

// Translate moves the transform in world space.
func (t *Transform) Translate(movement mgl32.Vec3) {
	t.Position = t.Position.Add(movement)
}

// ModelMatrix composes parent * translate * scale * rotX * rotY * rotZ.
func (t *Transform) ModelMatrix(parent mgl32.Mat4) mgl32.Mat4 {
	return parent.
		Mul4(mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation.Z())))
}
