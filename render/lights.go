package render

import (
	"fmt"

	"github.com/plus3/mono/scene"
)

// ShaderLight is a light that can write its parameters into a shader array
// element.
type ShaderLight interface {
	scene.Light
	Bind(u Uniforms, slot int)
}

// UniformArray returns the name of the shader array lights of type t go in.
func UniformArray(t scene.LightType) string {
	switch t {
	case scene.LightDirectional:
		return "directionalLights"
	case scene.LightPoint:
		return "pointLights"
	case scene.LightSpot:
		return "spotLights"
	default:
		return "lights"
	}
}

// LightField names one field of a light array element, e.g.
// "pointLights[1].color".
func LightField(t scene.LightType, slot int, field string) string {
	return fmt.Sprintf("%s[%d].%s", UniformArray(t), slot, field)
}

// BindLights writes every light into u. A light's slot is the number of lights
// of its type before it in the list; it is recomputed on every call and
// matches World.LightSlot. Lights that cannot bind still take a slot.
func BindLights(u Uniforms, lights []scene.Light) {
	slots := map[scene.LightType]int{}

	for _, l := range lights {
		slot := slots[l.LightType()]
		slots[l.LightType()]++

		if !isBindable(l) {
			continue
		}
		if sl, ok := l.(ShaderLight); ok {
			sl.Bind(u, slot)
		}
	}
}

func isBindable(l scene.Light) bool {
	return l.Enabled() && scene.StateOf(l) != scene.StateDestroyed
}
