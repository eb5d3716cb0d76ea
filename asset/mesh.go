// Package asset defines the mesh and texture data handed to a render device and
// the loaders that produce it.
package asset

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrAssetLoad wraps every failure to read or decode an asset.
var ErrAssetLoad = errors.New("asset load failure")

// TextureType names the role of a texture; it is also the sampler prefix the
// render side binds it under.
type TextureType string

const (
	TextureDiffuse  TextureType = "texture_diffuse"
	TextureSpecular TextureType = "texture_specular"
	TextureNormal   TextureType = "texture_normal"
	TextureHeight   TextureType = "texture_height"
)

// Vertex is one interleaved mesh vertex.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoord  mgl32.Vec2
	Tangent   mgl32.Vec3
	Bitangent mgl32.Vec3
}

// Texture references an image used by a mesh. ID is zero until a device
// uploads it.
type Texture struct {
	ID   uint32
	Type TextureType
	Path string
}

// MeshData is an indexed triangle list.
type MeshData struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Textures []Texture
}

// Triangles returns the number of triangles described by the index list.
func (m *MeshData) Triangles() int {
	return len(m.Indices) / 3
}

// Loader imports a model file as a list of meshes.
type Loader interface {
	LoadModel(path string) ([]MeshData, error)
}

// ComputeTangents fills Tangent and Bitangent of every vertex from positions
// and texture coordinates, accumulating over the triangles that share it.
func ComputeTangents(m *MeshData) {
	for i := range m.Vertices {
		m.Vertices[i].Tangent = mgl32.Vec3{}
		m.Vertices[i].Bitangent = mgl32.Vec3{}
	}

	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		v0, v1, v2 := &m.Vertices[i0], &m.Vertices[i1], &m.Vertices[i2]

		e1 := v1.Position.Sub(v0.Position)
		e2 := v2.Position.Sub(v0.Position)
		d1 := v1.TexCoord.Sub(v0.TexCoord)
		d2 := v2.TexCoord.Sub(v0.TexCoord)

		det := d1.X()*d2.Y() - d2.X()*d1.Y()
		if det == 0 {
			continue
		}
		r := 1 / det

		tangent := e1.Mul(d2.Y()).Sub(e2.Mul(d1.Y())).Mul(r)
		bitangent := e2.Mul(d1.X()).Sub(e1.Mul(d2.X())).Mul(r)

		for _, v := range []*Vertex{v0, v1, v2} {
			v.Tangent = v.Tangent.Add(tangent)
			v.Bitangent = v.Bitangent.Add(bitangent)
		}
	}

	for i := range m.Vertices {
		v := &m.Vertices[i]
		if v.Tangent.Len() > 0 {
			v.Tangent = v.Tangent.Normalize()
		}
		if v.Bitangent.Len() > 0 {
			v.Bitangent = v.Bitangent.Normalize()
		}
	}
}
