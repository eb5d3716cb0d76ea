package behavior_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/mono/asset"
	"github.com/plus3/mono/input"
	"github.com/plus3/mono/render"
	"github.com/plus3/mono/scene"
	"github.com/stretchr/testify/require"
)

// keySource re-asserts its held keys every frame and reports one cursor
// movement per frame.
type keySource struct {
	held   []input.Key
	dx, dy float32
}

func (s *keySource) Pump(sampler *input.Sampler) {
	for _, k := range s.held {
		_ = sampler.RecordKey(k, true)
	}
	if s.dx != 0 || s.dy != 0 {
		sampler.RecordMouseDelta(s.dx, s.dy)
	}
}

func newScheduler(w *scene.World, src *keySource) *scene.Scheduler {
	return scene.NewScheduler(w, scene.WithInput(input.NewSampler(), src))
}

type fakeMesh struct {
	data     asset.MeshData
	draws    int
	released bool
}

func (m *fakeMesh) Draw(render.Program) { m.draws++ }
func (m *fakeMesh) Release()            { m.released = true }

type fakeCubemap struct {
	faces    int
	bound    []int32
	released bool
}

func (c *fakeCubemap) Bind(unit int32) { c.bound = append(c.bound, unit) }
func (c *fakeCubemap) Release()        { c.released = true }

// fakeDevice hands out UniformMap programs and records uploads.
type fakeDevice struct {
	programs map[string]*render.UniformMap
	meshes   []*fakeMesh
	cubemaps []*fakeCubemap
	depth    []bool
	failOn   string
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{programs: map[string]*render.UniformMap{}}
}

func (d *fakeDevice) LoadProgram(name string) (render.Program, error) {
	if name == d.failOn {
		return nil, fmt.Errorf("compile %s: %w", name, asset.ErrAssetLoad)
	}
	p := render.NewUniformMap(name)
	d.programs[name] = p
	return p, nil
}

func (d *fakeDevice) UploadMesh(data asset.MeshData) (render.Mesh, error) {
	m := &fakeMesh{data: data}
	d.meshes = append(d.meshes, m)
	return m, nil
}

func (d *fakeDevice) UploadCubemap(faces []*image.RGBA) (render.Cubemap, error) {
	c := &fakeCubemap{faces: len(faces)}
	d.cubemaps = append(d.cubemaps, c)
	return c, nil
}

func (d *fakeDevice) SetDepthWrite(enabled bool) {
	d.depth = append(d.depth, enabled)
}

type fakeLoader struct {
	meshes []asset.MeshData
	err    error
	paths  []string
}

func (l *fakeLoader) LoadModel(path string) ([]asset.MeshData, error) {
	l.paths = append(l.paths, path)
	return l.meshes, l.err
}

func writeSkybox(t *testing.T, dir string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := range 2 {
		for y := range 2 {
			img.Set(x, y, color.RGBA{R: 40, G: 80, B: 200, A: 255})
		}
	}
	for _, face := range asset.SkyboxFaces {
		f, err := os.Create(filepath.Join(dir, face))
		require.NoError(t, err)
		// The decoder sniffs the format, so png bytes under a .jpg name load fine.
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
	}
}
