package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/mono/scene"
)

type LightInfo struct {
	Index  int
	Type   scene.LightType
	Slot   int
	Object string
	State  scene.State
}

// CollectLights lists the registered lights of w in registration order with
// the shader slot each one binds to.
func CollectLights(w *scene.World) []LightInfo {
	lights := w.Lights()
	infos := make([]LightInfo, 0, len(lights))
	slots := map[scene.LightType]int{}

	for i, l := range lights {
		info := LightInfo{
			Index: i,
			Type:  l.LightType(),
			Slot:  slots[l.LightType()],
			State: scene.StateOf(l),
		}
		slots[l.LightType()]++

		if g := l.GameObject(); g != nil {
			info.Object = g.String()
		}
		infos = append(infos, info)
	}
	return infos
}

// SortLights orders infos by type then slot, or by registration order.
func SortLights(infos []LightInfo, byType bool) {
	sort.SliceStable(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		if byType && a.Type != b.Type {
			return a.Type < b.Type
		}
		if byType {
			return a.Slot < b.Slot
		}
		return a.Index < b.Index
	})
}

// LightViewer tables the world's light list.
type LightViewer struct {
	byType bool
}

func NewLightViewer() *LightViewer {
	return &LightViewer{}
}

func (lv *LightViewer) Render(w *scene.World) {
	if !imgui.BeginV("Lights", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Group by type", &lv.byType)
	imgui.SameLine()
	if imgui.Button("Prune destroyed") {
		w.PruneLights()
	}

	infos := CollectLights(w)
	SortLights(infos, lv.byType)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("LightTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Object")
		imgui.TableSetupColumn("State")
		imgui.TableHeadersRow()

		for _, info := range infos {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Index))
			imgui.TableNextColumn()
			imgui.Text(info.Type.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Slot))
			imgui.TableNextColumn()
			imgui.Text(info.Object)
			imgui.TableNextColumn()
			imgui.Text(info.State.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
