package behavior

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/scene"
	"gopkg.in/yaml.v3"
)

// ErrLightKind is returned when a record does not match the light it is
// applied to, or names no known light kind.
var ErrLightKind = errors.New("light kind mismatch")

// LightRecord is the persisted form of a light. Attenuation fields are set for
// point and spot lights, cone fields only for spot lights.
type LightRecord struct {
	Kind      string     `yaml:"kind"`
	Object    string     `yaml:"object,omitempty"`
	Direction [3]float32 `yaml:"direction"`
	Color     [3]float32 `yaml:"color"`
	Strength  float32    `yaml:"strength"`

	Constant  float32 `yaml:"constant,omitempty"`
	Linear    float32 `yaml:"linear,omitempty"`
	Quadratic float32 `yaml:"quadratic,omitempty"`

	CosInner float32 `yaml:"cos_inner,omitempty"`
	CosOuter float32 `yaml:"cos_outer,omitempty"`
}

type lightFile struct {
	Lights []LightRecord `yaml:"lights"`
}

func lightBaseOf(l scene.Light) (*LightBase, bool) {
	switch v := l.(type) {
	case *DirectionalLight:
		return &v.LightBase, true
	case *PointLight:
		return &v.LightBase, true
	case *SpotLight:
		return &v.LightBase, true
	default:
		return nil, false
	}
}

// ToRecord captures the persisted fields of l.
func ToRecord(l scene.Light) (LightRecord, error) {
	base, ok := lightBaseOf(l)
	if !ok {
		return LightRecord{}, fmt.Errorf("record %T: %w", l, ErrLightKind)
	}

	rec := LightRecord{
		Kind:      l.LightType().String(),
		Direction: base.direction,
		Color:     base.Color,
		Strength:  base.Strength,
	}
	if g := l.GameObject(); g != nil {
		rec.Object = g.Name
	}

	switch v := l.(type) {
	case *PointLight:
		rec.Constant, rec.Linear, rec.Quadratic = v.Constant, v.Linear, v.Quadratic
	case *SpotLight:
		rec.Constant, rec.Linear, rec.Quadratic = v.Constant, v.Linear, v.Quadratic
		rec.CosInner, rec.CosOuter = v.CosInner, v.CosOuter
	}
	return rec, nil
}

// FromRecord applies rec to l. The direction holds until l's next Update
// recomputes it from the owner's rotation.
func FromRecord(l scene.Light, rec LightRecord) error {
	base, ok := lightBaseOf(l)
	if !ok || rec.Kind != l.LightType().String() {
		return fmt.Errorf("apply %q record to %T: %w", rec.Kind, l, ErrLightKind)
	}

	base.direction = mgl32.Vec3(rec.Direction)
	base.Color = mgl32.Vec3(rec.Color)
	base.Strength = rec.Strength

	switch v := l.(type) {
	case *PointLight:
		v.Attenuation = Attenuation{Constant: rec.Constant, Linear: rec.Linear, Quadratic: rec.Quadratic}
	case *SpotLight:
		v.Attenuation = Attenuation{Constant: rec.Constant, Linear: rec.Linear, Quadratic: rec.Quadratic}
		v.CosInner, v.CosOuter = rec.CosInner, rec.CosOuter
	}
	return nil
}

// SaveLights writes a record for every persistable light in lights as YAML.
// Lights of unknown types are skipped.
func SaveLights(w io.Writer, lights []scene.Light) error {
	var f lightFile
	for _, l := range lights {
		if scene.StateOf(l) == scene.StateDestroyed {
			continue
		}
		rec, err := ToRecord(l)
		if err != nil {
			continue
		}
		f.Lights = append(f.Lights, rec)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode lights: %w", err)
	}
	return enc.Close()
}

// LoadLights reads records written by SaveLights.
func LoadLights(r io.Reader) ([]LightRecord, error) {
	var f lightFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode lights: %w", err)
	}
	return f.Lights, nil
}

// ApplyRecords applies records to lights pairwise in order, skipping pairs
// whose kinds differ. It returns how many records were applied.
func ApplyRecords(lights []scene.Light, records []LightRecord) int {
	applied := 0
	for i := range min(len(lights), len(records)) {
		if FromRecord(lights[i], records[i]) == nil {
			applied++
		}
	}
	return applied
}

// SaveLightsFile writes the lights to path, creating its directory.
func SaveLightsFile(path string, lights []scene.Light) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := SaveLights(f, lights); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadLightsFile reads records from path. A missing file yields no records.
func LoadLightsFile(path string) ([]LightRecord, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return LoadLights(f)
}
