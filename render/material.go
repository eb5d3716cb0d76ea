package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/asset"
	"github.com/plus3/mono/scene"
)

// Material is a program plus the surface parameters written before a draw.
type Material struct {
	Program   Program
	Color     mgl32.Vec3
	Shininess float32
	Specular  bool
}

// NewMaterial returns a white material with shininess 32 and specular on.
func NewMaterial(p Program) *Material {
	return &Material{
		Program:   p,
		Color:     mgl32.Vec3{1, 1, 1},
		Shininess: 32,
		Specular:  true,
	}
}

// Use activates the program and writes the transforms, the surface
// parameters, the camera position and every light registered in w.
func (m *Material) Use(w *scene.World, view, proj, model mgl32.Mat4) {
	p := m.Program
	p.Use()

	p.SetMat4("viewMat", view)
	p.SetMat4("projMat", proj)
	p.SetMat4("modelMat", model)

	p.SetFloat("material.shininess", m.Shininess)
	p.SetVec3("material.color", m.Color)
	p.SetBool("specular", m.Specular)

	p.SetVec3("cameraPos", CameraPosition(w))

	BindLights(p, w.Lights())
}

// CameraPosition returns the position of the main camera's owner, or the
// origin when there is no main camera.
func CameraPosition(w *scene.World) mgl32.Vec3 {
	cam := w.MainCamera()
	if cam == nil {
		return mgl32.Vec3{}
	}
	g := cam.GameObject()
	if g == nil || g.Transform() == nil {
		return mgl32.Vec3{}
	}
	return g.Transform().Position
}

// SamplerNames returns the sampler uniform for each texture, numbering
// textures of the same type in order: "material.texture_diffuse0",
// "material.texture_diffuse1", "material.texture_specular0", ...
func SamplerNames(textures []asset.Texture) []string {
	counts := map[asset.TextureType]int{}
	names := make([]string, len(textures))
	for i, tex := range textures {
		names[i] = fmt.Sprintf("material.%s%d", tex.Type, counts[tex.Type])
		counts[tex.Type]++
	}
	return names
}
