package behavior

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/debugui"
	"github.com/plus3/mono/render"
	"github.com/plus3/mono/scene"
)

// LightBase holds what every light variant shares: color, strength and the
// direction derived from the owner's rotation. Variants register themselves
// with the world when started and stay registered until pruned.
type LightBase struct {
	scene.BaseBehavior

	Color    mgl32.Vec3
	Strength float32

	direction mgl32.Vec3
}

// Direction returns the unit vector pointing from the lit surface towards the
// light, as of the last Update.
func (l *LightBase) Direction() mgl32.Vec3 {
	return l.direction
}

// SetDirection overrides the direction until the next Update.
func (l *LightBase) SetDirection(d mgl32.Vec3) {
	l.direction = d
}

func (l *LightBase) Update(*scene.Frame) {
	l.updateDirection()
}

// updateDirection rotates +Z by the owner's Euler angles (Z, then X, then Y)
// and flips it.
func (l *LightBase) updateDirection() {
	t := l.Transform()
	if t == nil {
		return
	}
	r := t.Rotation
	d := mgl32.Vec3{0, 0, 1}
	d = mgl32.Rotate3DZ(mgl32.DegToRad(r.Z())).Mul3x1(d)
	d = mgl32.Rotate3DX(mgl32.DegToRad(r.X())).Mul3x1(d)
	d = mgl32.Rotate3DY(mgl32.DegToRad(r.Y())).Mul3x1(d)
	l.direction = d.Mul(-1)
}

func (l *LightBase) start(self scene.Light, position, rotation, color mgl32.Vec3) {
	if t := l.Transform(); t != nil {
		t.Position = position
		t.Rotation = rotation
	}
	if l.Color == (mgl32.Vec3{}) && l.Strength == 0 {
		l.Color = color
		l.Strength = 1
	}
	l.updateDirection()
	l.World().RegisterLight(self)
}

func (l *LightBase) bind(u render.Uniforms, t scene.LightType, slot int) {
	u.SetBool(render.LightField(t, slot, "flag"), true)
	u.SetVec3(render.LightField(t, slot, "color"), l.Color.Mul(l.Strength))
	if tr := l.Transform(); tr != nil {
		u.SetVec3(render.LightField(t, slot, "pos"), tr.Position)
	}
	u.SetVec3(render.LightField(t, slot, "dirToLight"), l.direction)
}

func (l *LightBase) DebugDraw() {
	debugui.Float("strength", &l.Strength)
	debugui.Vec3("color", &l.Color)
	if t := l.Transform(); t != nil {
		debugui.Vec3("angles", &t.Rotation)
	}
	debugui.Textf("dirToLight: %.2f %.2f %.2f", l.direction.X(), l.direction.Y(), l.direction.Z())
}

// DirectionalLight lights the whole scene from one direction.
type DirectionalLight struct {
	LightBase
}

func (l *DirectionalLight) LightType() scene.LightType { return scene.LightDirectional }

// Start places the owner at (1, 1, -1) with rotation (45, 90, 0) and a white
// color, then registers the light.
func (l *DirectionalLight) Start() {
	l.start(l, mgl32.Vec3{1, 1, -1}, mgl32.Vec3{45, 90, 0}, mgl32.Vec3{1, 1, 1})
}

func (l *DirectionalLight) Bind(u render.Uniforms, slot int) {
	l.bind(u, l.LightType(), slot)
}

// Attenuation is the constant/linear/quadratic falloff of a positional light.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// DefaultAttenuation reaches roughly 50 units.
var DefaultAttenuation = Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.032}

// PointLight radiates from its owner's position with distance falloff.
type PointLight struct {
	LightBase
	Attenuation
}

func (l *PointLight) LightType() scene.LightType { return scene.LightPoint }

// Start places the owner at (0, 0, 10) with a color of (5, 5, 5), keeping its
// rotation, then registers the light.
func (l *PointLight) Start() {
	var rotation mgl32.Vec3
	if t := l.Transform(); t != nil {
		rotation = t.Rotation
	}
	l.startPoint(l, mgl32.Vec3{0, 0, 10}, rotation)
}

func (l *PointLight) startPoint(self scene.Light, position, rotation mgl32.Vec3) {
	if l.Attenuation == (Attenuation{}) {
		l.Attenuation = DefaultAttenuation
	}
	l.start(self, position, rotation, mgl32.Vec3{5, 5, 5})
}

func (l *PointLight) Bind(u render.Uniforms, slot int) {
	l.bindPoint(u, l.LightType(), slot)
}

func (l *PointLight) bindPoint(u render.Uniforms, t scene.LightType, slot int) {
	l.bind(u, t, slot)
	u.SetFloat(render.LightField(t, slot, "constant"), l.Constant)
	u.SetFloat(render.LightField(t, slot, "linear"), l.Linear)
	u.SetFloat(render.LightField(t, slot, "quadratic"), l.Quadratic)
}

func (l *PointLight) DebugDraw() {
	l.LightBase.DebugDraw()
	debugui.Float("constant", &l.Constant)
	debugui.Float("linear", &l.Linear)
	debugui.Float("quadratic", &l.Quadratic)
}

// SpotLight is a point light limited to a cone around its direction. The cone
// edges are given as cosines of the inner and outer half angles.
type SpotLight struct {
	PointLight
	CosInner float32
	CosOuter float32
}

func (l *SpotLight) LightType() scene.LightType { return scene.LightSpot }

// Start places the owner at (5, 3, 20) with rotation (90, 0, 0), then
// registers the light.
func (l *SpotLight) Start() {
	if l.CosInner == 0 && l.CosOuter == 0 {
		l.CosInner = float32(0.9762960) // cos 12.5
		l.CosOuter = float32(0.9537170) // cos 17.5
	}
	l.startPoint(l, mgl32.Vec3{5, 3, 20}, mgl32.Vec3{90, 0, 0})
}

func (l *SpotLight) Bind(u render.Uniforms, slot int) {
	t := l.LightType()
	l.bindPoint(u, t, slot)
	u.SetFloat(render.LightField(t, slot, "cosPhyInner"), l.CosInner)
	u.SetFloat(render.LightField(t, slot, "cosPhyOuter"), l.CosOuter)
}

func (l *SpotLight) DebugDraw() {
	l.PointLight.DebugDraw()
	debugui.Float("cos inner", &l.CosInner)
	debugui.Float("cos outer", &l.CosOuter)
}
