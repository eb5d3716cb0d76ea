package glrender

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/plus3/mono/asset"
	"github.com/plus3/mono/render"
)

// FloatsPerVertex is the interleaved vertex width: position, normal,
// texcoord, tangent, bitangent.
const FloatsPerVertex = 3 + 3 + 2 + 3 + 3

// attribute sizes in vertex order; the shader locations follow this order.
var attributeSizes = [...]int32{3, 3, 2, 3, 3}

// Interleave flattens vertices into the layout the standard program reads.
func Interleave(vertices []asset.Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Normal[:]...)
		out = append(out, v.TexCoord[:]...)
		out = append(out, v.Tangent[:]...)
		out = append(out, v.Bitangent[:]...)
	}
	return out
}

// AttributeOffsets returns the byte offset of each vertex attribute.
func AttributeOffsets() []uintptr {
	offsets := make([]uintptr, len(attributeSizes))
	var off uintptr
	for i, n := range attributeSizes {
		offsets[i] = off
		off += uintptr(n) * 4
	}
	return offsets
}

type meshTexture struct {
	id      uint32
	sampler string
}

// Mesh is an indexed vertex array with its textures.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	textures      []meshTexture
	hasDiffuse    bool
	hasSpecular   bool
}

func newMesh(data asset.MeshData, textures []asset.Texture) *Mesh {
	m := &Mesh{count: int32(len(data.Indices))}

	vertices := Interleave(data.Vertices)

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	stride := int32(FloatsPerVertex * 4)
	for i, off := range AttributeOffsets() {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), attributeSizes[i], gl.FLOAT, false, stride, off)
	}
	gl.BindVertexArray(0)

	names := render.SamplerNames(textures)
	for i, tex := range textures {
		m.textures = append(m.textures, meshTexture{id: tex.ID, sampler: names[i]})
		switch tex.Type {
		case asset.TextureDiffuse:
			m.hasDiffuse = true
		case asset.TextureSpecular:
			m.hasSpecular = true
		}
	}
	return m
}

// Draw binds the mesh textures to consecutive units and draws the elements
// with p, which must already be in use.
func (m *Mesh) Draw(p render.Program) {
	for i, tex := range m.textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		p.SetInt(tex.sampler, int32(i))
	}
	p.SetBool("material.hasDiffuse", m.hasDiffuse)
	p.SetBool("material.hasSpecular", m.hasSpecular)

	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

func (m *Mesh) Release() {
	if m.vao == 0 {
		return
	}
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao, m.vbo, m.ebo = 0, 0, 0
}

// Cubemap is a six-face cube texture.
type Cubemap struct {
	id uint32
}

func newCubemap(faces []*image.RGBA) *Cubemap {
	c := &Cubemap{}
	gl.GenTextures(1, &c.id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.id)

	for i, face := range faces {
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGBA,
			int32(face.Rect.Size().X),
			int32(face.Rect.Size().Y),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(face.Pix),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return c
}

func (c *Cubemap) Bind(unit int32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.id)
}

func (c *Cubemap) Release() {
	if c.id != 0 {
		gl.DeleteTextures(1, &c.id)
		c.id = 0
	}
}
