package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/mono/scene"
)

// Browser columns, in table order.
const (
	ColumnID = iota
	ColumnName
	ColumnBehaviors
	ColumnBehaviorCount
)

type ObjectInfo struct {
	ID        scene.ObjectID
	Name      string
	Behaviors []string
	Enabled   bool
}

// CollectObjects summarizes the live objects of w in creation order.
func CollectObjects(w *scene.World) []ObjectInfo {
	objects := w.Objects()
	infos := make([]ObjectInfo, 0, len(objects))
	for _, g := range objects {
		names := make([]string, len(g.Behaviors()))
		for i, b := range g.Behaviors() {
			names[i] = TypeName(b)
		}
		infos = append(infos, ObjectInfo{
			ID:        g.ID,
			Name:      g.Name,
			Behaviors: names,
			Enabled:   g.Enabled,
		})
	}
	return infos
}

// SortObjects orders infos in place by one of the browser columns.
func SortObjects(infos []ObjectInfo, column int, ascending bool) {
	sort.SliceStable(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		var less bool

		switch column {
		case ColumnName:
			less = a.Name < b.Name
		case ColumnBehaviors:
			less = strings.Join(a.Behaviors, ",") < strings.Join(b.Behaviors, ",")
		case ColumnBehaviorCount:
			less = len(a.Behaviors) < len(b.Behaviors)
		default:
			less = a.ID < b.ID
		}

		if !ascending {
			return !less
		}
		return less
	})
}

// FilterObjects keeps the objects whose id, name or behavior types contain
// text, ignoring case.
func FilterObjects(infos []ObjectInfo, text string) []ObjectInfo {
	if text == "" {
		return infos
	}

	needle := strings.ToLower(text)
	filtered := make([]ObjectInfo, 0, len(infos))
	for _, info := range infos {
		if strings.Contains(fmt.Sprintf("%d", info.ID), needle) ||
			strings.Contains(strings.ToLower(info.Name), needle) ||
			strings.Contains(strings.ToLower(strings.Join(info.Behaviors, " ")), needle) {
			filtered = append(filtered, info)
		}
	}
	return filtered
}

// Browser is a paged, sortable, filterable table of a world's objects.
type Browser struct {
	objects     []ObjectInfo
	lastCount   int
	sortColumn  int
	ascending   bool
	filterText  string
	selected    scene.ObjectID
	perPage     int
	currentPage int
}

func NewBrowser(perPage int) *Browser {
	return &Browser{ascending: true, perPage: perPage, lastCount: -1}
}

// Selected returns the id of the selected object, or 0.
func (br *Browser) Selected() scene.ObjectID {
	return br.selected
}

func (br *Browser) Select(id scene.ObjectID) {
	br.selected = id
}

// Refresh rebuilds the cached rows when the object count changed.
func (br *Browser) Refresh(w *scene.World) []ObjectInfo {
	if n := len(w.Objects()); n != br.lastCount || br.objects == nil {
		br.objects = CollectObjects(w)
		br.lastCount = n
		SortObjects(br.objects, br.sortColumn, br.ascending)
	}
	return FilterObjects(br.objects, br.filterText)
}

func (br *Browser) Render(w *scene.World) {
	if !imgui.BeginV("Object Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &br.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		br.filterText = ""
	}

	rows := br.Refresh(w)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Behaviors")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			br.sortColumn = int(spec.ColumnIndex())
			br.ascending = spec.SortDirection() == imgui.SortDirectionAscending
			SortObjects(br.objects, br.sortColumn, br.ascending)
			rows = FilterObjects(br.objects, br.filterText)
			sortSpecs.SetSpecsDirty(false)
		}

		start := min(br.currentPage*br.perPage, len(rows))
		end := min(start+br.perPage, len(rows))

		for _, info := range rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.ID), br.selected == info.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				br.selected = info.ID
			}

			imgui.TableNextColumn()
			imgui.Text(info.Name)

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.Behaviors, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(info.Behaviors)))
		}

		imgui.EndTable()
	}

	if len(rows) > br.perPage {
		totalPages := (len(rows) + br.perPage - 1) / br.perPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d objects)", br.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && br.currentPage > 0 {
			br.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && br.currentPage < totalPages-1 {
			br.currentPage++
		}
	} else {
		br.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d objects", len(rows)))
	}

	imgui.End()
}
