package behavior

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/asset"
	"github.com/plus3/mono/debugui"
	"github.com/plus3/mono/render"
	"github.com/plus3/mono/scene"
	"go.uber.org/zap"
)

// Program names the renderers load when none is set.
const (
	StandardProgram = "standard"
	SkyProgram      = "sky"
)

// ModelRenderer draws its owner with a lit material in the RealUpdate pass,
// using the main camera's matrices. With no Path it draws the built-in box.
// Load failures are logged once and kept in Err; the renderer then draws
// nothing.
type ModelRenderer struct {
	scene.BaseBehavior

	Device  render.Device
	Loader  asset.Loader
	Path    string
	Program string

	Material *render.Material

	meshes []render.Mesh
	err    error
}

func (m *ModelRenderer) Start() {
	if m.Device == nil {
		m.fail(fmt.Errorf("model renderer has no device: %w", asset.ErrAssetLoad))
		return
	}
	if m.Program == "" {
		m.Program = StandardProgram
	}

	program, err := m.Device.LoadProgram(m.Program)
	if err != nil {
		m.fail(err)
		return
	}
	if m.Material == nil {
		m.Material = render.NewMaterial(program)
	} else {
		m.Material.Program = program
	}

	data, err := m.load()
	if err != nil {
		m.fail(err)
		return
	}

	for _, d := range data {
		mesh, err := m.Device.UploadMesh(d)
		if err != nil {
			m.fail(err)
			return
		}
		m.meshes = append(m.meshes, mesh)
	}
}

func (m *ModelRenderer) load() ([]asset.MeshData, error) {
	if m.Path == "" {
		return []asset.MeshData{asset.Box()}, nil
	}
	if m.Loader == nil {
		return nil, fmt.Errorf("load %s: no loader: %w", m.Path, asset.ErrAssetLoad)
	}
	return m.Loader.LoadModel(m.Path)
}

func (m *ModelRenderer) fail(err error) {
	m.err = err
	logFailure(m.World(), m.GameObject(), "model", err)
}

// Err returns the load failure, if any.
func (m *ModelRenderer) Err() error {
	return m.err
}

// Meshes returns how many meshes were uploaded.
func (m *ModelRenderer) Meshes() int {
	return len(m.meshes)
}

func (m *ModelRenderer) RealUpdate(*scene.Frame) {
	cam := m.World().MainCamera()
	if cam == nil {
		return
	}
	m.Draw(cam.View(), cam.Projection(), modelMatrix(m.Transform()))
}

// Draw uses the material and draws every mesh.
func (m *ModelRenderer) Draw(view, proj, model mgl32.Mat4) {
	if m.err != nil || m.Material == nil {
		return
	}
	m.Material.Use(m.World(), view, proj, model)
	for _, mesh := range m.meshes {
		mesh.Draw(m.Material.Program)
	}
}

func (m *ModelRenderer) Destroy() {
	for _, mesh := range m.meshes {
		mesh.Release()
	}
	m.meshes = nil
	if m.Material != nil && m.Material.Program != nil {
		m.Material.Program.Release()
	}
}

func (m *ModelRenderer) DebugDraw() {
	source := m.Path
	if source == "" {
		source = "box"
	}
	debugui.Textf("model: %s (%d meshes)", source, len(m.meshes))
	if m.err != nil {
		debugui.Textf("error: %v", m.err)
		return
	}
	if m.Material != nil {
		debugui.Textf("program: %s", m.Material.Program.Name())
		debugui.Vec3("color", &m.Material.Color)
		debugui.Float("shininess", &m.Material.Shininess)
		debugui.Bool("specular", &m.Material.Specular)
	}
}

// SkyboxRenderer draws a cubemap around the camera. The owner's translation is
// ignored so the sky stays centered on the viewer.
type SkyboxRenderer struct {
	scene.BaseBehavior

	Device  render.Device
	Dir     string
	Faces   []string
	Program string

	material *render.Material
	mesh     render.Mesh
	cubemap  render.Cubemap
	err      error
}

func (s *SkyboxRenderer) Start() {
	if s.Device == nil {
		s.fail(fmt.Errorf("skybox has no device: %w", asset.ErrAssetLoad))
		return
	}
	if s.Program == "" {
		s.Program = SkyProgram
	}
	if s.Faces == nil {
		s.Faces = asset.SkyboxFaces
	}

	faces, err := asset.LoadCubemapFaces(s.Dir, s.Faces)
	if err != nil {
		s.fail(err)
		return
	}

	program, err := s.Device.LoadProgram(s.Program)
	if err != nil {
		s.fail(err)
		return
	}
	s.material = render.NewMaterial(program)
	program.SetInt("skybox", 0)

	if s.mesh, err = s.Device.UploadMesh(asset.SkyboxCube()); err != nil {
		s.fail(err)
		return
	}
	if s.cubemap, err = s.Device.UploadCubemap(faces); err != nil {
		s.fail(err)
	}
}

func (s *SkyboxRenderer) fail(err error) {
	s.err = err
	logFailure(s.World(), s.GameObject(), "skybox", err)
}

// Err returns the load failure, if any.
func (s *SkyboxRenderer) Err() error {
	return s.err
}

func (s *SkyboxRenderer) RealUpdate(*scene.Frame) {
	cam := s.World().MainCamera()
	if cam == nil {
		return
	}
	s.Draw(cam.View(), cam.Projection(), modelMatrix(s.Transform()))
}

// Draw draws the cube with depth writes off, dropping the translation of model.
func (s *SkyboxRenderer) Draw(view, proj, model mgl32.Mat4) {
	if s.err != nil || s.material == nil {
		return
	}

	s.material.Use(s.World(), view, proj, model.Mat3().Mat4())
	s.material.Program.SetInt("skybox", 0)

	if dw, ok := s.Device.(render.DepthWriter); ok {
		dw.SetDepthWrite(false)
		defer dw.SetDepthWrite(true)
	}
	s.cubemap.Bind(0)
	s.mesh.Draw(s.material.Program)
}

func (s *SkyboxRenderer) Destroy() {
	if s.mesh != nil {
		s.mesh.Release()
	}
	if s.cubemap != nil {
		s.cubemap.Release()
	}
	if s.material != nil {
		s.material.Program.Release()
	}
}

func (s *SkyboxRenderer) DebugDraw() {
	debugui.Textf("dir: %s", s.Dir)
	if s.err != nil {
		debugui.Textf("error: %v", s.err)
	}
}

func logFailure(w *scene.World, g *scene.GameObject, what string, err error) {
	if w == nil {
		return
	}
	w.Logger().Warn("asset load failed",
		zap.String("renderer", what),
		zap.Stringer("object", g),
		zap.Bool("asset", errors.Is(err, asset.ErrAssetLoad)),
		zap.Error(err),
	)
}

// modelMatrix returns the world matrix of t, or identity for an owner whose
// transform was removed.
func modelMatrix(t *scene.Transform) mgl32.Mat4 {
	if t == nil {
		return mgl32.Ident4()
	}
	return t.ModelMatrix(mgl32.Ident4())
}
