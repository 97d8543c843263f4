package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/kiln/ecs"
)

// ComponentInspector shows the components of the browser's selected
// entity and edits scalar fields in place. Component values come back
// from the world as pointers, so edits hit live data.
type ComponentInspector struct {
	world   *ecs.World
	browser *EntityBrowser
}

// NewComponentInspector follows the browser's selection.
func NewComponentInspector(world *ecs.World, browser *EntityBrowser) *ComponentInspector {
	return &ComponentInspector{world: world, browser: browser}
}

func (ci *ComponentInspector) Render() {
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	selected := ci.browser.Selected()
	if selected == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %d", selected))
	imgui.Text(fmt.Sprintf("Archetype: 0x%X", selected.ArchetypeId()))
	imgui.Separator()

	found := false
	for _, arch := range ci.world.Archetypes() {
		if arch.ID() != selected.ArchetypeId() {
			continue
		}
		found = true
		for _, compType := range arch.Types() {
			component := ci.world.GetComponent(selected, compType)
			if component == nil {
				continue
			}
			if imgui.TreeNodeStr(compType.String()) {
				ci.renderComponent(component)
				imgui.TreePop()
			}
		}
	}
	if !found {
		imgui.Text("Entity no longer exists")
	}

	imgui.End()
}

func (ci *ComponentInspector) renderComponent(component any) {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		ci.renderValue(val.Type().String(), val)
		return
	}

	for _, field := range componentFields.get(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		ci.renderValue(field.Name, fieldVal)
	}
}

func (ci *ComponentInspector) renderValue(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	label := fmt.Sprintf("##%s", name)

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) && val.CanSet() {
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
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, field := range componentFields.get(val.Type()) {
				fieldVal := val.Field(field.Index)
				if field.IsPointer {
					if fieldVal.IsNil() {
						imgui.Text(fmt.Sprintf("%s: nil", field.Name))
						continue
					}
					fieldVal = fieldVal.Elem()
				}
				ci.renderValue(field.Name, fieldVal)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Array:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val))
	}
}
