package asset

import "github.com/go-gl/mathgl/mgl32"

// SkyboxFaces are the cubemap face files in +X, -X, +Y, -Y, +Z, -Z order.
var SkyboxFaces = []string{"right.jpg", "left.jpg", "top.jpg", "bottom.jpg", "front.jpg", "back.jpg"}

type cubeFace struct {
	normal mgl32.Vec3
	u, v   mgl32.Vec3
}

var cubeFaces = []cubeFace{
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
}

// Box returns a unit cube centered on the origin: 36 vertices with normals and
// texture coordinates, counter-clockwise when seen from outside.
func Box() MeshData {
	m := MeshData{Name: "box"}
	corners := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range cubeFaces {
		var quad [4]Vertex
		for i, c := range corners {
			pos := f.normal.Mul(0.5).
				Add(f.u.Mul(c.X() - 0.5)).
				Add(f.v.Mul(c.Y() - 0.5))
			quad[i] = Vertex{Position: pos, Normal: f.normal, TexCoord: c}
		}
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			m.Indices = append(m.Indices, uint32(len(m.Vertices)))
			m.Vertices = append(m.Vertices, quad[i])
		}
	}

	ComputeTangents(&m)
	return m
}

// SkyboxCube returns the inward-facing cube a skybox is drawn on. Only
// positions are set.
func SkyboxCube() MeshData {
	box := Box()
	m := MeshData{Name: "skybox", Vertices: make([]Vertex, len(box.Vertices))}
	for i, v := range box.Vertices {
		m.Vertices[i] = Vertex{Position: v.Position.Mul(2)}
	}
	// Flip winding so the faces point inward.
	for i := 0; i+2 < len(box.Indices); i += 3 {
		m.Indices = append(m.Indices, box.Indices[i], box.Indices[i+2], box.Indices[i+1])
	}
	return m
}
