package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
)

// Float draws a labelled float input and reports whether it changed.
func Float(label string, v *float32) bool {
	imgui.Text(label + ":")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	return imgui.InputFloat("##"+label, v)
}

// Vec3 draws one float input per component on a single line.
func Vec3(label string, v *mgl32.Vec3) bool {
	imgui.Text(label + ":")
	changed := false
	for i, axis := range [3]string{"x", "y", "z"} {
		imgui.SameLine()
		imgui.SetNextItemWidth(80)
		if imgui.InputFloat(fmt.Sprintf("##%s.%s", label, axis), &v[i]) {
			changed = true
		}
	}
	return changed
}

// Bool draws a checkbox.
func Bool(label string, v *bool) bool {
	return imgui.Checkbox(label, v)
}

// Textf draws formatted text.
func Textf(format string, args ...any) {
	imgui.Text(fmt.Sprintf(format, args...))
}
