// Package debugui provides Dear ImGui tooling for scenes: a debug host the
// scheduler draws every object's behaviors through, plus browser, inspector,
// light and performance windows.
package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/scene"
)

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts check it before handing input to the scene.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Panel is an extra window rendered at the end of the debug pass.
type Panel func()

// Host lays out the scheduler's debug pass as one "Scene" window with a tree
// node per object and a nested node per behavior.
type Host struct {
	Title  string
	Input  InputState
	Panels []Panel

	world *scene.World
}

// NewHost returns a host drawing the objects of w.
func NewHost(w *scene.World) *Host {
	return &Host{Title: "Scene", world: w}
}

// AddPanel registers p to render after the scene window.
func (h *Host) AddPanel(p Panel) {
	h.Panels = append(h.Panels, p)
}

func (h *Host) Begin() bool {
	io := imgui.CurrentIO()
	h.Input.WantCaptureMouse = io.WantCaptureMouse()
	h.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if !imgui.BeginV(h.Title, nil, imgui.WindowFlagsNone) {
		return false
	}
	imgui.Text(fmt.Sprintf("Objects: %d  Lights: %d", len(h.world.Objects()), len(h.world.Lights())))
	imgui.Separator()
	return true
}

func (h *Host) BeginObject(g *scene.GameObject) bool {
	if !imgui.TreeNodeStr(g.String()) {
		return false
	}

	imgui.Checkbox("enabled", &g.Enabled)
	imgui.SameLine()
	if imgui.Button("Go to here") {
		MoveCameraTo(h.world, g)
	}
	return true
}

func (h *Host) DrawBehavior(_ *scene.GameObject, b scene.Behavior) {
	if !imgui.TreeNodeStr(TypeName(b)) {
		return
	}

	enabled := b.Enabled()
	if imgui.Checkbox("active", &enabled) {
		b.SetEnabled(enabled)
	}

	if t, ok := b.(*scene.Transform); ok {
		drawTransform(t)
	} else {
		b.DebugDraw()
	}
	imgui.TreePop()
}

func (h *Host) EndObject(*scene.GameObject) {
	imgui.TreePop()
}

func (h *Host) End() {
	imgui.End()
	for _, p := range h.Panels {
		p()
	}
}

func drawTransform(t *scene.Transform) {
	Vec3("position", &t.Position)
	Vec3("rotation", &t.Rotation)
	Vec3("scale", &t.Scale)

	yaw, pitch := mgl32.RadToDeg(t.Yaw()), mgl32.RadToDeg(t.Pitch())
	changed := Float("yaw", &yaw)
	changed = Float("pitch", &pitch) || changed
	if changed {
		t.SetYawPitch(mgl32.DegToRad(yaw), mgl32.DegToRad(pitch))
	}

	f := t.Forward()
	Textf("forward: %.2f %.2f %.2f", f.X(), f.Y(), f.Z())
}

// MoveCameraTo puts the main camera's owner at g's position. It reports false
// when there is no main camera or either side has no transform.
func MoveCameraTo(w *scene.World, g *scene.GameObject) bool {
	cam := w.MainCamera()
	if cam == nil {
		return false
	}
	owner := cam.GameObject()
	if owner == nil || owner.Transform() == nil || g.Transform() == nil {
		return false
	}
	owner.Transform().Position = g.Transform().Position
	return true
}

// TypeName names a behavior by its package-qualified type, without the
// pointer star: "behavior.Camera", "scene.Transform".
func TypeName(b any) string {
	return strings.TrimPrefix(reflect.TypeOf(b).String(), "*")
}
