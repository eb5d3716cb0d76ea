package scene

import "github.com/go-gl/mathgl/mgl32"

// LightType tags a light variant; lights of one type share a shader array.
type LightType int

const (
	LightDirectional LightType = iota
	LightPoint
	LightSpot
)

func (t LightType) String() string {
	switch t {
	case LightDirectional:
		return "directional"
	case LightPoint:
		return "point"
	case LightSpot:
		return "spot"
	default:
		return "unknown"
	}
}

// Light is a behavior the world tracks in its light list.
type Light interface {
	Behavior
	LightType() LightType
}

// Camera is a behavior that can serve as the world's main view.
type Camera interface {
	Behavior
	View() mgl32.Mat4
	Projection() mgl32.Mat4
}
