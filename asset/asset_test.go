package asset_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/asset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

const quadOBJ = `
# two triangles as one quad
mtllib quad.mtl
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl brick
f 1/1/1 2/2/1 3/3/1 4/4/1
`

const quadMTL = `
newmtl brick
Kd 1 1 1
map_Kd brick.png
map_Ks brick_spec.png
map_Bump -bm 0.5 brick_n.png
`

func TestOBJLoader(t *testing.T) {
	t.Run("quad with material", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "quad.obj"), []byte(quadOBJ), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "quad.mtl"), []byte(quadMTL), 0o644))

		meshes, err := asset.OBJLoader{}.LoadModel(filepath.Join(dir, "quad.obj"))
		require.NoError(t, err)
		require.Len(t, meshes, 1)

		m := meshes[0]
		assert.Equal(t, "quad", m.Name)
		assert.Len(t, m.Vertices, 4)
		assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
		assert.Equal(t, 2, m.Triangles())

		require.Len(t, m.Textures, 3)
		assert.Equal(t, asset.TextureDiffuse, m.Textures[0].Type)
		assert.Equal(t, filepath.Join(dir, "brick.png"), m.Textures[0].Path)
		assert.Equal(t, asset.TextureSpecular, m.Textures[1].Type)
		assert.Equal(t, asset.TextureNormal, m.Textures[2].Type)
		assert.Equal(t, filepath.Join(dir, "brick_n.png"), m.Textures[2].Path)

		v := m.Vertices[0]
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Normal)
		assert.InDelta(t, 1, v.Tangent.X(), 1e-5)
		assert.InDelta(t, 1, v.Bitangent.Y(), 1e-5)
	})

	t.Run("flip uvs and flat normals", func(t *testing.T) {
		src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0.25\nf 1/1 2/1 3/1\n"
		meshes, err := asset.OBJLoader{FlipUVs: true}.Parse(strings.NewReader(src), ".")
		require.NoError(t, err)
		require.Len(t, meshes, 1)

		v := meshes[0].Vertices[0]
		assert.InDelta(t, 0.75, v.TexCoord.Y(), 1e-6)
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Normal)
	})

	t.Run("negative indices and groups", func(t *testing.T) {
		src := "g a\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\ng b\nv 0 0 1\nf 1 2 4\n"
		meshes, err := asset.OBJLoader{}.Parse(strings.NewReader(src), ".")
		require.NoError(t, err)
		require.Len(t, meshes, 2)
		assert.Equal(t, "a", meshes[0].Name)
		assert.Equal(t, "b", meshes[1].Name)
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, meshes[1].Vertices[2].Position)
	})

	t.Run("failures wrap ErrAssetLoad", func(t *testing.T) {
		_, err := asset.OBJLoader{}.LoadModel(filepath.Join(t.TempDir(), "missing.obj"))
		assert.ErrorIs(t, err, asset.ErrAssetLoad)

		_, err = asset.OBJLoader{}.Parse(strings.NewReader("v 0 0 0\nf 1 2 3\n"), ".")
		assert.ErrorIs(t, err, asset.ErrAssetLoad)

		_, err = asset.OBJLoader{}.Parse(strings.NewReader("v 0 zero 0\n"), ".")
		assert.ErrorIs(t, err, asset.ErrAssetLoad)

		_, err = asset.OBJLoader{}.Parse(strings.NewReader("# nothing\n"), ".")
		assert.ErrorIs(t, err, asset.ErrAssetLoad)
	})
}

func TestBox(t *testing.T) {
	box := asset.Box()
	assert.Len(t, box.Vertices, 36)
	assert.Equal(t, 12, box.Triangles())

	for i := 0; i < len(box.Indices); i += 3 {
		a := box.Vertices[box.Indices[i]]
		b := box.Vertices[box.Indices[i+1]]
		c := box.Vertices[box.Indices[i+2]]
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position)).Normalize()
		assert.InDelta(t, 1, n.Dot(a.Normal), 1e-5, "triangle %d winds inward", i/3)
		assert.InDelta(t, 0.5, a.Position.Dot(a.Normal), 1e-5)
	}

	sky := asset.SkyboxCube()
	assert.Len(t, sky.Indices, 36)
	assert.Equal(t, box.Indices[1], sky.Indices[2])
}

func writeImage(t *testing.T, path string, encode func(f *os.File, img image.Image) error, size int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f, img))
}

func encodePNG(f *os.File, img image.Image) error { return png.Encode(f, img) }
func encodeBMP(f *os.File, img image.Image) error { return bmp.Encode(f, img) }

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	for name, encode := range map[string]func(*os.File, image.Image) error{
		"face.png": encodePNG,
		"face.bmp": encodeBMP,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			writeImage(t, path, encode, 4)

			img, err := asset.LoadImage(path)
			require.NoError(t, err)
			assert.Equal(t, image.Pt(4, 4), img.Rect.Size())
			assert.Equal(t, uint8(255), img.RGBAAt(0, 0).R)
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := asset.LoadImage(filepath.Join(dir, "nope.png"))
		assert.ErrorIs(t, err, asset.ErrAssetLoad)
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(dir, "text.png")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))
		_, err := asset.LoadImage(path)
		assert.ErrorIs(t, err, asset.ErrAssetLoad)
	})
}

func TestLoadCubemapFaces(t *testing.T) {
	dir := t.TempDir()
	for _, face := range asset.SkyboxFaces {
		writeImage(t, filepath.Join(dir, strings.TrimSuffix(face, ".jpg")+".png"), encodePNG, 2)
	}

	faces := make([]string, len(asset.SkyboxFaces))
	for i, face := range asset.SkyboxFaces {
		faces[i] = strings.TrimSuffix(face, ".jpg") + ".png"
	}

	images, err := asset.LoadCubemapFaces(dir, faces)
	require.NoError(t, err)
	assert.Len(t, images, 6)

	_, err = asset.LoadCubemapFaces(dir, faces[:5])
	assert.ErrorIs(t, err, asset.ErrAssetLoad)

	writeImage(t, filepath.Join(dir, "big.png"), encodePNG, 4)
	faces[5] = "big.png"
	_, err = asset.LoadCubemapFaces(dir, faces)
	assert.ErrorIs(t, err, asset.ErrAssetLoad)
}
