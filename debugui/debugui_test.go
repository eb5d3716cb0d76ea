package debugui_test

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/debugui"
	"github.com/plus3/mono/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spinner struct {
	scene.BaseBehavior
	Rate  float32
	Axis  mgl32.Vec3
	Label string
	Tags  []string
	count int
}

type lamp struct {
	scene.BaseBehavior
	kind scene.LightType
}

func (l *lamp) LightType() scene.LightType { return l.kind }
func (l *lamp) Start()                     { l.World().RegisterLight(l) }

type eye struct {
	scene.BaseBehavior
}

func (e *eye) Start()                 { e.World().SetMainCamera(e) }
func (e *eye) View() mgl32.Mat4       { return mgl32.Ident4() }
func (e *eye) Projection() mgl32.Mat4 { return mgl32.Ident4() }

func TestTypeName(t *testing.T) {
	assert.Equal(t, "debugui_test.spinner", debugui.TypeName(&spinner{}))
	assert.Equal(t, "scene.Transform", debugui.TypeName(&scene.Transform{}))
}

func TestMoveCameraTo(t *testing.T) {
	w := scene.NewWorld()
	target := w.NewGameObject("target")
	target.Transform().Position = mgl32.Vec3{4, 5, 6}

	assert.False(t, debugui.MoveCameraTo(w, target), "no main camera")

	cam := w.NewGameObject("camera")
	scene.AttachNew[eye](cam)

	require.True(t, debugui.MoveCameraTo(w, target))
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, cam.Transform().Position)
}

func TestBrowserRows(t *testing.T) {
	w := scene.NewWorld()
	a := w.NewGameObject("zeta")
	scene.AttachNew[spinner](a)
	b := w.NewGameObject("alpha")
	c := w.NewGameObject("mid")
	scene.AttachNew[spinner](c)
	scene.AttachNew[spinner](c)

	infos := debugui.CollectObjects(w)
	require.Len(t, infos, 3)
	assert.Equal(t, []string{"scene.Transform", "debugui_test.spinner"}, infos[0].Behaviors)

	t.Run("sort", func(t *testing.T) {
		rows := append([]debugui.ObjectInfo(nil), infos...)

		debugui.SortObjects(rows, debugui.ColumnName, true)
		assert.Equal(t, []scene.ObjectID{b.ID, c.ID, a.ID}, ids(rows))

		debugui.SortObjects(rows, debugui.ColumnBehaviorCount, false)
		assert.Equal(t, c.ID, rows[0].ID)

		debugui.SortObjects(rows, debugui.ColumnID, true)
		assert.Equal(t, []scene.ObjectID{a.ID, b.ID, c.ID}, ids(rows))
	})

	t.Run("filter", func(t *testing.T) {
		assert.Len(t, debugui.FilterObjects(infos, ""), 3)
		assert.Equal(t, []scene.ObjectID{b.ID}, ids(debugui.FilterObjects(infos, "ALP")))
		assert.Equal(t, []scene.ObjectID{a.ID, c.ID}, ids(debugui.FilterObjects(infos, "spinner")))
		assert.Empty(t, debugui.FilterObjects(infos, "nothing"))
	})

	t.Run("browser cache follows object count", func(t *testing.T) {
		br := debugui.NewBrowser(10)
		assert.Len(t, br.Refresh(w), 3)
		w.NewGameObject("late")
		assert.Len(t, br.Refresh(w), 4)

		br.Select(b.ID)
		assert.Equal(t, b.ID, br.Selected())
	})
}

func ids(rows []debugui.ObjectInfo) []scene.ObjectID {
	out := make([]scene.ObjectID, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestCollectLights(t *testing.T) {
	w := scene.NewWorld()
	p1 := scene.Attach(w.NewGameObject("p1"), &lamp{kind: scene.LightPoint})
	scene.Attach(w.NewGameObject("sun"), &lamp{kind: scene.LightDirectional})
	scene.Attach(w.NewGameObject("p2"), &lamp{kind: scene.LightPoint})

	infos := debugui.CollectLights(w)
	require.Len(t, infos, 3)
	for _, info := range infos {
		l := w.Lights()[info.Index]
		assert.Equal(t, w.LightSlot(l), info.Slot)
	}

	debugui.SortLights(infos, true)
	assert.Equal(t, scene.LightDirectional, infos[0].Type)
	assert.Equal(t, []int{0, 1}, []int{infos[1].Slot, infos[2].Slot})

	w.Destroy(p1.GameObject())
	infos = debugui.CollectLights(w)
	assert.Equal(t, scene.StateDestroyed, infos[0].State)
}

func TestQueryMatching(t *testing.T) {
	w := scene.NewWorld()
	a := w.NewGameObject("a")
	scene.AttachNew[spinner](a)
	b := w.NewGameObject("b")
	scene.Attach(b, &lamp{kind: scene.LightSpot})
	scene.AttachNew[spinner](b)

	assert.Equal(t, []string{"debugui_test.lamp", "debugui_test.spinner", "scene.Transform"}, debugui.BehaviorTypes(w))

	assert.Len(t, debugui.MatchObjects(w, nil), 2)
	assert.Equal(t, []*scene.GameObject{a, b}, debugui.MatchObjects(w, []string{"debugui_test.spinner"}))
	assert.Equal(t, []*scene.GameObject{b}, debugui.MatchObjects(w, []string{"debugui_test.spinner", "debugui_test.lamp"}))
}

func TestFieldCache(t *testing.T) {
	fc := debugui.NewFieldCache()

	fields := fc.Fields(reflect.TypeOf(&spinner{}))
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"BaseBehavior", "Rate", "Axis", "Label", "Tags"}, names)
	assert.True(t, fields[0].Embedded)
	assert.Equal(t, reflect.Struct, fields[0].Kind)
	assert.Equal(t, reflect.Slice, fields[4].Kind)
	assert.False(t, fields[1].Pointer)

	again := fc.Fields(reflect.TypeOf(spinner{}))
	assert.Same(t, &fields[0], &again[0], "cached slice is reused")

	assert.Empty(t, fc.Fields(reflect.TypeOf(0)))
}

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(4)
	assert.Zero(t, h.Average())

	h.Record(0.010)
	h.Record(0.020)
	assert.InDelta(t, 15, h.Average(), 1e-4)

	for range 4 {
		h.Record(0.005)
	}
	assert.InDelta(t, 5, h.Average(), 1e-4)
	assert.Len(t, h.Samples(), 4)
}
