package debugui

import (
	"fmt"
	"slices"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/mono/scene"
)

// BehaviorTypes returns the sorted, distinct behavior type names in w.
func BehaviorTypes(w *scene.World) []string {
	seen := map[string]bool{}
	for _, g := range w.Objects() {
		for _, b := range g.Behaviors() {
			seen[TypeName(b)] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MatchObjects returns the objects carrying a behavior of every named type.
func MatchObjects(w *scene.World, required []string) []*scene.GameObject {
	var matched []*scene.GameObject
	for _, g := range w.Objects() {
		names := make([]string, 0, len(g.Behaviors()))
		for _, b := range g.Behaviors() {
			names = append(names, TypeName(b))
		}

		all := true
		for _, r := range required {
			if !slices.Contains(names, r) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, g)
		}
	}
	return matched
}

// QueryDebugger lists the objects that carry a chosen set of behavior types.
type QueryDebugger struct {
	selected  map[string]bool
	types     []string
	lastCount int
}

func NewQueryDebugger() *QueryDebugger {
	return &QueryDebugger{selected: map[string]bool{}, lastCount: -1}
}

func (qd *QueryDebugger) Render(w *scene.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if n := len(w.Objects()); n != qd.lastCount {
		qd.types = BehaviorTypes(w)
		qd.lastCount = n
	}

	imgui.Text("Select Behavior Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		clear(qd.selected)
	}

	for _, name := range qd.types {
		selected := qd.selected[name]
		if imgui.Checkbox(name, &selected) {
			if selected {
				qd.selected[name] = true
			} else {
				delete(qd.selected, name)
			}
		}
	}

	imgui.Separator()

	if len(qd.selected) == 0 {
		imgui.Text("No behavior types selected")
		imgui.End()
		return
	}

	required := make([]string, 0, len(qd.selected))
	for name := range qd.selected {
		required = append(required, name)
	}

	matched := MatchObjects(w, required)
	imgui.Text(fmt.Sprintf("Matching Objects: %d", len(matched)))
	for _, g := range matched {
		imgui.BulletText(g.String())
	}

	imgui.End()
}
