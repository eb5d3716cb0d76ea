package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/mono/asset"
	"github.com/plus3/mono/render"
)

var (
	meshColor = color.RGBA{R: 230, G: 230, B: 220, A: 255}
	skyColor  = color.RGBA{R: 70, G: 90, B: 130, A: 255}
)

// Line is one projected edge in screen pixels.
type Line struct {
	From, To mgl32.Vec2
	Color    color.RGBA
}

// Device is a render.Device that projects mesh triangles to screen-space
// edges and strokes them with ebiten's vector package. Programs are uniform
// recorders; the device reads the matrices a material wrote to place meshes.
type Device struct {
	mu         sync.Mutex
	width      int
	height     int
	depthWrite bool
	lines      []Line
}

func NewDevice(width, height int) *Device {
	return &Device{width: width, height: height, depthWrite: true}
}

// Resize sets the viewport edges are projected into.
func (d *Device) Resize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.width, d.height = width, height
}

func (d *Device) LoadProgram(name string) (render.Program, error) {
	return render.NewUniformMap(name), nil
}

func (d *Device) UploadMesh(data asset.MeshData) (render.Mesh, error) {
	if len(data.Vertices) == 0 {
		return nil, fmt.Errorf("upload mesh %q: no vertices: %w", data.Name, asset.ErrAssetLoad)
	}
	return &wireMesh{device: d, edges: meshEdges(data)}, nil
}

func (d *Device) UploadCubemap(faces []*image.RGBA) (render.Cubemap, error) {
	if len(faces) != 6 {
		return nil, fmt.Errorf("upload cubemap: %d faces: %w", len(faces), asset.ErrAssetLoad)
	}
	return wireCubemap{}, nil
}

// SetDepthWrite switches the color of subsequent draws: meshes drawn without
// depth writes are treated as background.
func (d *Device) SetDepthWrite(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.depthWrite = enabled
}

// Reset drops the lines queued by the previous frame.
func (d *Device) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = d.lines[:0]
}

// Lines returns a copy of the queued lines.
func (d *Device) Lines() []Line {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Line(nil), d.lines...)
}

// Flush strokes the queued lines onto screen. The queue is kept so a repeated
// Draw without an Update shows the same frame.
func (d *Device) Flush(screen *ebiten.Image) {
	for _, l := range d.Lines() {
		vector.StrokeLine(screen, l.From.X(), l.From.Y(), l.To.X(), l.To.Y(), 1, l.Color, true)
	}
}

func (d *Device) draw(edges [][2]mgl32.Vec3, mvp mgl32.Mat4) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := meshColor
	if !d.depthWrite {
		c = skyColor
	}

	for _, e := range edges {
		from, ok := Project(mvp, e[0], d.width, d.height)
		if !ok {
			continue
		}
		to, ok := Project(mvp, e[1], d.width, d.height)
		if !ok {
			continue
		}
		d.lines = append(d.lines, Line{From: from, To: to, Color: c})
	}
}

// Project maps p through mvp to pixel coordinates in a width x height
// viewport with the origin at the top left. Points behind the eye are
// rejected.
func Project(mvp mgl32.Mat4, p mgl32.Vec3, width, height int) (mgl32.Vec2, bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-5 {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl32.Vec2{
		(ndc.X() + 1) / 2 * float32(width),
		(1 - ndc.Y()) / 2 * float32(height),
	}, true
}

// meshEdges lists the distinct triangle edges of data.
func meshEdges(data asset.MeshData) [][2]mgl32.Vec3 {
	indices := data.Indices
	if len(indices) == 0 {
		indices = make([]uint32, len(data.Vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	type key struct{ a, b mgl32.Vec3 }
	seen := map[key]bool{}
	var edges [][2]mgl32.Vec3

	add := func(i, j uint32) {
		a, b := data.Vertices[i].Position, data.Vertices[j].Position
		if seen[key{a, b}] || seen[key{b, a}] {
			return
		}
		seen[key{a, b}] = true
		edges = append(edges, [2]mgl32.Vec3{a, b})
	}

	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		add(i0, i1)
		add(i1, i2)
		add(i2, i0)
	}
	return edges
}

type wireMesh struct {
	device *Device
	edges  [][2]mgl32.Vec3
}

func (m *wireMesh) Draw(p render.Program) {
	u, ok := p.(*render.UniformMap)
	if !ok {
		return
	}
	mvp := u.Mat4("projMat").Mul4(u.Mat4("viewMat")).Mul4(u.Mat4("modelMat"))
	m.device.draw(m.edges, mvp)
}

func (m *wireMesh) Release() {
	m.edges = nil
}

type wireCubemap struct{}

func (wireCubemap) Bind(int32) {}
func (wireCubemap) Release()   {}
