package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/mono/scene"
)

var vec3Type = reflect.TypeOf(mgl32.Vec3{})

// Inspector edits the exported fields of every behavior on one object.
type Inspector struct{}

func NewInspector() *Inspector {
	return &Inspector{}
}

func (in *Inspector) Render(w *scene.World, id scene.ObjectID) {
	if !imgui.BeginV("Behavior Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if id == 0 {
		imgui.Text("No object selected")
		return
	}

	g, ok := w.FindByID(id)
	if !ok {
		imgui.Text(fmt.Sprintf("Object %d not found", id))
		return
	}

	imgui.Text(fmt.Sprintf("Object: %s", g))
	imgui.Checkbox("Enabled", &g.Enabled)
	imgui.Separator()

	for _, b := range g.Behaviors() {
		if imgui.TreeNodeStr(fmt.Sprintf("%s (%s)", TypeName(b), scene.StateOf(b))) {
			in.renderValue(reflect.ValueOf(b))
			imgui.TreePop()
		}
	}
}

func (in *Inspector) renderValue(val reflect.Value) {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return
		}
		val = val.Elem()
	}

	for _, field := range inspectorFields.Fields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.Pointer && !fieldVal.IsNil() {
			fieldVal = fieldVal.Elem()
		}

		if field.Embedded && field.Kind == reflect.Struct {
			in.renderValue(fieldVal)
			continue
		}
		in.renderField(field.Name, fieldVal, field)
	}
}

func (in *Inspector) renderField(name string, val reflect.Value, field Field) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	if field.Pointer && val.Kind() == reflect.Pointer && val.IsNil() {
		imgui.Text(fmt.Sprintf("%s: nil", name))
		return
	}

	if val.Type() == vec3Type && val.CanAddr() {
		Vec3(name, val.Addr().Interface().(*mgl32.Vec3))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		if Float(name, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			in.renderValue(val)
			imgui.TreePop()
		}

	case reflect.Slice, reflect.Array:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Interface:
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
		} else {
			imgui.Text(fmt.Sprintf("%s: %T", name, val.Interface()))
		}

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		}
	}
}
