package asset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// OBJLoader reads Wavefront OBJ models. Faces are triangulated as fans, each
// object or group becomes its own mesh, and the textures named by the material
// in use (map_Kd, map_Ks, map_Bump/norm, disp) are attached to the mesh.
type OBJLoader struct {
	// FlipUVs mirrors texture coordinates vertically.
	FlipUVs bool
}

// LoadModel implements Loader.
func (l OBJLoader) LoadModel(path string) ([]MeshData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w: %w", path, ErrAssetLoad, err)
	}
	defer file.Close()

	meshes, err := l.Parse(file, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	return meshes, nil
}

type objIndex struct {
	v, vt, vn int
}

type objBuilder struct {
	flipUVs bool
	dir     string

	positions []mgl32.Vec3
	texCoords []mgl32.Vec2
	normals   []mgl32.Vec3

	materials map[string][]Texture

	meshes  []MeshData
	current *MeshData
	seen    map[objIndex]uint32
	texture []Texture
}

// Parse reads OBJ text from r. Material libraries and texture paths are
// resolved relative to dir.
func (l OBJLoader) Parse(r io.Reader, dir string) ([]MeshData, error) {
	b := &objBuilder{
		flipUVs:   l.FlipUVs,
		dir:       dir,
		materials: map[string][]Texture{},
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if err := b.directive(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", line, ErrAssetLoad, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}

	b.finish()
	if len(b.meshes) == 0 {
		return nil, fmt.Errorf("no faces: %w", ErrAssetLoad)
	}
	return b.meshes, nil
}

func (b *objBuilder) directive(fields []string) error {
	switch fields[0] {
	case "v":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		b.positions = append(b.positions, mgl32.Vec3{v[0], v[1], v[2]})
	case "vt":
		v, err := parseFloats(fields[1:], 2)
		if err != nil {
			return err
		}
		if b.flipUVs {
			v[1] = 1 - v[1]
		}
		b.texCoords = append(b.texCoords, mgl32.Vec2{v[0], v[1]})
	case "vn":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		b.normals = append(b.normals, mgl32.Vec3{v[0], v[1], v[2]})
	case "f":
		return b.face(fields[1:])
	case "o", "g":
		name := ""
		if len(fields) > 1 {
			name = strings.Join(fields[1:], " ")
		}
		b.begin(name)
	case "mtllib":
		for _, lib := range fields[1:] {
			if err := b.loadMaterials(filepath.Join(b.dir, lib)); err != nil {
				return err
			}
		}
	case "usemtl":
		if len(fields) < 2 {
			return fmt.Errorf("usemtl without a name")
		}
		if b.current != nil && len(b.current.Indices) > 0 {
			b.begin(b.current.Name)
		}
		b.texture = b.materials[fields[1]]
	}
	return nil
}

func (b *objBuilder) begin(name string) {
	b.finish()
	b.current = &MeshData{Name: name}
	b.seen = map[objIndex]uint32{}
}

func (b *objBuilder) finish() {
	if b.current == nil || len(b.current.Indices) == 0 {
		return
	}
	b.current.Textures = append([]Texture(nil), b.texture...)
	ComputeTangents(b.current)
	b.meshes = append(b.meshes, *b.current)
	b.current = nil
}

func (b *objBuilder) face(refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("face with %d vertices", len(refs))
	}
	if b.current == nil {
		b.begin("")
	}

	corners := make([]uint32, len(refs))
	missingNormal := false
	for i, ref := range refs {
		idx, err := b.resolve(ref)
		if err != nil {
			return err
		}
		missingNormal = missingNormal || idx.vn < 0
		corners[i] = b.vertex(idx)
	}

	for i := 1; i+1 < len(corners); i++ {
		tri := [3]uint32{corners[0], corners[i], corners[i+1]}
		b.current.Indices = append(b.current.Indices, tri[:]...)
		if missingNormal {
			b.flatNormal(tri)
		}
	}
	return nil
}

func (b *objBuilder) flatNormal(tri [3]uint32) {
	v := b.current.Vertices
	n := v[tri[1]].Position.Sub(v[tri[0]].Position).Cross(v[tri[2]].Position.Sub(v[tri[0]].Position))
	if n.Len() == 0 {
		return
	}
	n = n.Normalize()
	for _, i := range tri {
		if v[i].Normal.Len() == 0 {
			v[i].Normal = n
		}
	}
}

func (b *objBuilder) vertex(idx objIndex) uint32 {
	if i, ok := b.seen[idx]; ok {
		return i
	}

	v := Vertex{Position: b.positions[idx.v]}
	if idx.vt >= 0 {
		v.TexCoord = b.texCoords[idx.vt]
	}
	if idx.vn >= 0 {
		v.Normal = b.normals[idx.vn]
	}

	i := uint32(len(b.current.Vertices))
	b.current.Vertices = append(b.current.Vertices, v)
	b.seen[idx] = i
	return i
}

// resolve turns a "v", "v/vt", "v//vn" or "v/vt/vn" reference into zero-based
// indices; -1 marks an absent element. Negative OBJ indices count from the end.
func (b *objBuilder) resolve(ref string) (objIndex, error) {
	parts := strings.Split(ref, "/")
	idx := objIndex{v: -1, vt: -1, vn: -1}

	var err error
	if idx.v, err = objRef(parts[0], len(b.positions)); err != nil || idx.v < 0 {
		return idx, fmt.Errorf("bad position reference %q", ref)
	}
	if len(parts) > 1 && parts[1] != "" {
		if idx.vt, err = objRef(parts[1], len(b.texCoords)); err != nil || idx.vt < 0 {
			return idx, fmt.Errorf("bad texture coordinate reference %q", ref)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if idx.vn, err = objRef(parts[2], len(b.normals)); err != nil || idx.vn < 0 {
			return idx, fmt.Errorf("bad normal reference %q", ref)
		}
	}
	return idx, nil
}

func objRef(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return -1, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return -1, nil
	}
}

func (b *objBuilder) loadMaterials(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var name string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		var kind TextureType
		switch strings.ToLower(fields[0]) {
		case "newmtl":
			name = fields[1]
			b.materials[name] = nil
			continue
		case "map_kd":
			kind = TextureDiffuse
		case "map_ks":
			kind = TextureSpecular
		case "map_bump", "bump", "norm":
			kind = TextureNormal
		case "disp", "map_disp":
			kind = TextureHeight
		default:
			continue
		}

		// Options such as "-bm 1.0" precede the file name.
		file := fields[len(fields)-1]
		b.materials[name] = append(b.materials[name], Texture{
			Type: kind,
			Path: filepath.Join(b.dir, file),
		})
	}
	return scanner.Err()
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := range n {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}
