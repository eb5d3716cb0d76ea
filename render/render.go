// Package render is the narrow surface the scene draws through: shader
// programs that accept uniforms, uploaded meshes, and a device that creates
// both. Implementations live in render/glrender and platform/ebiten.
package render

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/asset"
)

// Uniforms sets named shader parameters.
type Uniforms interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec3(name string, value mgl32.Vec3)
	SetMat4(name string, value mgl32.Mat4)
}

// Program is a linked shader program.
type Program interface {
	Uniforms
	Name() string
	Use()
	Release()
}

// Mesh is mesh data uploaded to a device.
type Mesh interface {
	Draw(p Program)
	Release()
}

// Cubemap is a six-face texture uploaded to a device.
type Cubemap interface {
	Bind(unit int32)
	Release()
}

// Device creates programs, meshes and cubemaps.
type Device interface {
	LoadProgram(name string) (Program, error)
	UploadMesh(data asset.MeshData) (Mesh, error)
	UploadCubemap(faces []*image.RGBA) (Cubemap, error)
}

// DepthWriter is implemented by devices that can toggle depth buffer writes.
type DepthWriter interface {
	SetDepthWrite(enabled bool)
}

// Renderable is anything that can be drawn with a view and projection.
type Renderable interface {
	Draw(view, proj, model mgl32.Mat4)
}
