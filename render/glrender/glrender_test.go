package glrender_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/asset"
	"github.com/plus3/mono/render"
	"github.com/plus3/mono/render/glrender"
	"github.com/plus3/mono/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleave(t *testing.T) {
	v := asset.Vertex{
		Position:  mgl32.Vec3{1, 2, 3},
		Normal:    mgl32.Vec3{4, 5, 6},
		TexCoord:  mgl32.Vec2{7, 8},
		Tangent:   mgl32.Vec3{9, 10, 11},
		Bitangent: mgl32.Vec3{12, 13, 14},
	}

	out := glrender.Interleave([]asset.Vertex{v, v})
	require.Len(t, out, 2*glrender.FloatsPerVertex)
	for i := range glrender.FloatsPerVertex {
		assert.Equal(t, float32(i+1), out[i])
		assert.Equal(t, float32(i+1), out[glrender.FloatsPerVertex+i])
	}

	box := asset.Box()
	assert.Len(t, glrender.Interleave(box.Vertices), len(box.Vertices)*glrender.FloatsPerVertex)
}

func TestAttributeOffsets(t *testing.T) {
	assert.Equal(t, []uintptr{0, 12, 24, 32, 44}, glrender.AttributeOffsets())
}

func TestShaderSource(t *testing.T) {
	t.Run("standard declares every uniform the material writes", func(t *testing.T) {
		vs, fs, err := glrender.ShaderSource("standard")
		require.NoError(t, err)

		for _, name := range []string{"viewMat", "projMat", "modelMat"} {
			assert.Contains(t, vs, "uniform mat4 "+name)
		}
		for _, name := range []string{"cameraPos", "specular", "material"} {
			assert.Contains(t, fs, name)
		}
		for _, lt := range []scene.LightType{scene.LightDirectional, scene.LightPoint, scene.LightSpot} {
			assert.Contains(t, fs, render.UniformArray(lt)+"[")
		}
		for _, field := range []string{"flag", "color", "pos", "dirToLight", "constant", "linear", "quadratic", "cosPhyInner", "cosPhyOuter"} {
			assert.Contains(t, fs, " "+field+";")
		}
		for _, tex := range []asset.TextureType{asset.TextureDiffuse, asset.TextureSpecular} {
			assert.Contains(t, fs, string(tex)+"0")
		}
	})

	t.Run("sky samples a cubemap", func(t *testing.T) {
		_, fs, err := glrender.ShaderSource("sky")
		require.NoError(t, err)
		assert.Contains(t, fs, "uniform samplerCube skybox")
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := glrender.ShaderSource("toon")
		assert.ErrorContains(t, err, `"toon"`)
	})
}
