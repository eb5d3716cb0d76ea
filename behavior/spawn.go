package behavior

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/asset"
	"github.com/plus3/mono/render"
	"github.com/plus3/mono/scene"
)

// Kind selects what Spawn attaches to a new GameObject.
type Kind int

const (
	KindEmpty Kind = iota
	KindCamera
	KindDirectionalLight
	KindPointLight
	KindSpotLight
	KindBox
	KindModel
	KindSkybox
)

var kindNames = [...]string{
	KindEmpty:            "empty",
	KindCamera:           "camera",
	KindDirectionalLight: "directional",
	KindPointLight:       "point",
	KindSpotLight:        "spot",
	KindBox:              "box",
	KindModel:            "model",
	KindSkybox:           "skybox",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind maps a kind name, case-insensitively, back to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return KindEmpty, fmt.Errorf("unknown object kind %q", name)
}

// SpawnOptions carries the collaborators the renderer kinds need.
type SpawnOptions struct {
	Device    render.Device
	Loader    asset.Loader
	ModelPath string
	SkyboxDir string
}

// Spawn creates a GameObject named name in w and attaches the behaviors for
// kind. A camera that becomes the world's main camera also gets a
// CameraController.
func Spawn(w *scene.World, name string, kind Kind, opts SpawnOptions) *scene.GameObject {
	g := w.NewGameObject(name)

	switch kind {
	case KindCamera:
		cam := scene.Attach(g, NewCamera())
		if cam.IsMain() {
			scene.Attach(g, NewCameraController())
		}
	case KindDirectionalLight:
		scene.AttachNew[DirectionalLight](g)
	case KindPointLight:
		scene.AttachNew[PointLight](g)
	case KindSpotLight:
		scene.AttachNew[SpotLight](g)
	case KindBox:
		scene.Attach(g, &ModelRenderer{Device: opts.Device})
	case KindModel:
		scene.Attach(g, &ModelRenderer{Device: opts.Device, Loader: opts.Loader, Path: opts.ModelPath})
	case KindSkybox:
		scene.Attach(g, &SkyboxRenderer{Device: opts.Device, Dir: opts.SkyboxDir})
	}
	return g
}

// SpawnScene builds the default viewer scene: a LightStore when lightsPath is
// set, a main camera, one light of each kind, a box, and a model and a skybox
// when opts names them. Objects are returned in creation order.
func SpawnScene(w *scene.World, opts SpawnOptions, lightsPath string) []*scene.GameObject {
	var objects []*scene.GameObject

	if lightsPath != "" {
		g := w.NewGameObject("settings")
		scene.Attach(g, &LightStore{Path: lightsPath})
		objects = append(objects, g)
	}

	objects = append(objects,
		Spawn(w, "camera", KindCamera, opts),
		Spawn(w, "sun", KindDirectionalLight, opts),
		Spawn(w, "bulb", KindPointLight, opts),
		Spawn(w, "torch", KindSpotLight, opts),
	)

	box := Spawn(w, "box", KindBox, opts)
	box.Transform().Position = mgl32.Vec3{0, 0, 3}
	scene.Attach(box, &Rotator{Rate: 1})
	objects = append(objects, box)

	if opts.ModelPath != "" {
		model := Spawn(w, "model", KindModel, opts)
		model.Transform().Position = mgl32.Vec3{3, 0, 3}
		objects = append(objects, model)
	}
	if opts.SkyboxDir != "" {
		objects = append(objects, Spawn(w, "skybox", KindSkybox, opts))
	}
	return objects
}
