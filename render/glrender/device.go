// Package glrender implements render.Device on OpenGL 4.1 core. Every call
// must happen on the thread that owns the current GL context.
package glrender

import (
	"fmt"
	"image"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/plus3/mono/asset"
	"github.com/plus3/mono/render"
	"go.uber.org/zap"
)

// Device uploads programs, meshes and textures to the current GL context.
type Device struct {
	logger *zap.Logger

	mu       sync.RWMutex
	textures map[string]uint32
}

var (
	_ render.Device      = (*Device)(nil)
	_ render.DepthWriter = (*Device)(nil)
)

// NewDevice initializes the GL bindings and the fixed pipeline state. A
// context must be current.
func NewDevice(logger *zap.Logger) (*Device, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("opengl initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	return &Device{logger: logger, textures: map[string]uint32{}}, nil
}

// LoadProgram compiles a builtin program: "standard" or "sky".
func (d *Device) LoadProgram(name string) (render.Program, error) {
	vs, fs, err := ShaderSource(name)
	if err != nil {
		return nil, err
	}
	return newProgram(name, vs, fs)
}

// UploadMesh creates the vertex arrays for data. Textures that fail to load
// are logged and left unbound.
func (d *Device) UploadMesh(data asset.MeshData) (render.Mesh, error) {
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, fmt.Errorf("%w: mesh %q is empty", asset.ErrAssetLoad, data.Name)
	}

	textures := make([]asset.Texture, 0, len(data.Textures))
	for _, tex := range data.Textures {
		id, err := d.texture(tex.Path)
		if err != nil {
			d.logger.Warn("texture load failed",
				zap.String("mesh", data.Name),
				zap.String("path", tex.Path),
				zap.Error(err))
			continue
		}
		tex.ID = id
		textures = append(textures, tex)
	}

	return newMesh(data, textures), nil
}

func (d *Device) UploadCubemap(faces []*image.RGBA) (render.Cubemap, error) {
	if len(faces) != 6 {
		return nil, fmt.Errorf("%w: cubemap needs 6 faces, got %d", asset.ErrAssetLoad, len(faces))
	}
	return newCubemap(faces), nil
}

func (d *Device) SetDepthWrite(enabled bool) {
	gl.DepthMask(enabled)
}

// Clear resets the color and depth buffers.
func (d *Device) Clear(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport sets the drawable area in pixels.
func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// texture returns the GL name for the image at path, uploading it once.
func (d *Device) texture(path string) (uint32, error) {
	d.mu.RLock()
	id, ok := d.textures[path]
	d.mu.RUnlock()
	if ok {
		return id, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if id, ok := d.textures[path]; ok {
		return id, nil
	}

	rgba, err := asset.LoadImage(path)
	if err != nil {
		return 0, err
	}
	id = uploadTexture(rgba)
	d.textures[path] = id
	return id, nil
}

// Release deletes every cached texture.
func (d *Device) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for path, id := range d.textures {
		gl.DeleteTextures(1, &id)
		delete(d.textures, path)
	}
}

func uploadTexture(rgba *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}
