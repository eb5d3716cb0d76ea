package behavior_test

import (
	"path/filepath"
	"testing"

	"github.com/plus3/mono/behavior"
	"github.com/plus3/mono/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	for _, k := range behavior.Kinds() {
		parsed, err := behavior.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	k, err := behavior.ParseKind("Spot")
	require.NoError(t, err)
	assert.Equal(t, behavior.KindSpotLight, k)

	_, err = behavior.ParseKind("teapot")
	assert.Error(t, err)
	assert.Equal(t, "Kind(42)", behavior.Kind(42).String())
}

func TestSpawn(t *testing.T) {
	w := scene.NewWorld()
	opts := behavior.SpawnOptions{Device: newFakeDevice()}

	tests := []struct {
		kind  behavior.Kind
		count int
		check func(t *testing.T, g *scene.GameObject)
	}{
		{behavior.KindEmpty, 1, nil},
		{behavior.KindCamera, 3, func(t *testing.T, g *scene.GameObject) {
			_, ok := scene.GetComponent[*behavior.CameraController](g)
			assert.True(t, ok)
		}},
		{behavior.KindDirectionalLight, 2, func(t *testing.T, g *scene.GameObject) {
			_, ok := scene.GetComponent[*behavior.DirectionalLight](g)
			assert.True(t, ok)
		}},
		{behavior.KindPointLight, 2, func(t *testing.T, g *scene.GameObject) {
			_, ok := scene.GetComponent[*behavior.PointLight](g)
			assert.True(t, ok)
		}},
		{behavior.KindSpotLight, 2, func(t *testing.T, g *scene.GameObject) {
			_, ok := scene.GetComponent[*behavior.SpotLight](g)
			assert.True(t, ok)
		}},
		{behavior.KindBox, 2, func(t *testing.T, g *scene.GameObject) {
			r, ok := scene.GetComponent[*behavior.ModelRenderer](g)
			require.True(t, ok)
			assert.NoError(t, r.Err())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g := behavior.Spawn(w, tt.kind.String(), tt.kind, opts)

			found, ok := w.FindByID(g.ID)
			require.True(t, ok)
			assert.Same(t, g, found)
			assert.Len(t, g.Behaviors(), tt.count)
			assert.IsType(t, &scene.Transform{}, g.Behaviors()[0])
			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}

	assert.Len(t, w.Lights(), 3)
}

func TestSpawnScene(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		w := scene.NewWorld()
		objects := behavior.SpawnScene(w, behavior.SpawnOptions{Device: newFakeDevice()}, "")

		names := make([]string, len(objects))
		for i, g := range objects {
			names[i] = g.Name
		}
		assert.Equal(t, []string{"camera", "sun", "bulb", "torch", "box"}, names)
		assert.Len(t, w.Lights(), 3)
		require.NotNil(t, w.MainCamera())
		assert.Equal(t, objects[0].ID, w.MainCamera().GameObject().ID)
	})

	t.Run("model skybox and store", func(t *testing.T) {
		dir := t.TempDir()
		writeSkybox(t, dir)

		w := scene.NewWorld()
		opts := behavior.SpawnOptions{
			Device:    newFakeDevice(),
			Loader:    &fakeLoader{},
			ModelPath: "teapot.obj",
			SkyboxDir: dir,
		}
		objects := behavior.SpawnScene(w, opts, filepath.Join(dir, "lights.yaml"))
		require.Len(t, objects, 8)
		assert.Equal(t, "settings", objects[0].Name)

		_, ok := scene.GetComponent[*behavior.LightStore](objects[0])
		assert.True(t, ok)
		_, ok = scene.GetComponent[*behavior.SkyboxRenderer](objects[7])
		assert.True(t, ok)
	})
}
