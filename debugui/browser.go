package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/kiln/ecs"
	"github.com/plus3/kiln/scene"
)

type entityRow struct {
	ID             ecs.EntityId
	Name           string
	ArchetypeID    uint32
	ComponentTypes []string
}

// EntityBrowser lists live entities with filtering and paging. The
// selected entity feeds the component inspector.
type EntityBrowser struct {
	world *ecs.World

	rows               []entityRow
	lastArchetypeCount int
	filter             string
	pageSize           int
	page               int
	selected           ecs.EntityId
}

// NewEntityBrowser pages the listing at pageSize entities.
func NewEntityBrowser(world *ecs.World, pageSize int) *EntityBrowser {
	return &EntityBrowser{world: world, pageSize: pageSize}
}

// Selected returns the entity picked in the listing, or 0.
func (b *EntityBrowser) Selected() ecs.EntityId {
	return b.selected
}

func (b *EntityBrowser) Render() {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b.rebuildIfNeeded()

	imgui.InputTextWithHint("##filter", "Filter...", &b.filter, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		b.filter = ""
		b.page = 0
	}

	filtered := b.filteredRows()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		start := b.page * b.pageSize
		end := min(start+b.pageSize, len(filtered))

		for i := start; i < end; i++ {
			row := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := b.selected == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				b.selected = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(row.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", row.ArchetypeID))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}

	if len(filtered) > b.pageSize {
		totalPages := (len(filtered) + b.pageSize - 1) / b.pageSize
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", b.page+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && b.page > 0 {
			b.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && b.page < totalPages-1 {
			b.page++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// rebuildIfNeeded re-snapshots the entity list when the archetype count
// changes. Entity churn within existing archetypes refreshes on the next
// structural change.
func (b *EntityBrowser) rebuildIfNeeded() {
	archetypes := b.world.Archetypes()
	if b.rows != nil && len(archetypes) == b.lastArchetypeCount {
		return
	}
	b.lastArchetypeCount = len(archetypes)

	b.rows = b.rows[:0]
	for _, archetype := range archetypes {
		componentTypes := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			componentTypes[i] = t.String()
		}

		for id := range archetype.Iter() {
			row := entityRow{
				ID:             id,
				ArchetypeID:    archetype.ID(),
				ComponentTypes: componentTypes,
			}
			if name := ecs.Read[scene.Name](b.world, id); name != nil {
				row.Name = name.String()
			}
			b.rows = append(b.rows, row)
		}
	}

	sort.Slice(b.rows, func(i, j int) bool {
		return b.rows[i].ID < b.rows[j].ID
	})
}

func (b *EntityBrowser) filteredRows() []entityRow {
	if b.filter == "" {
		return b.rows
	}

	needle := strings.ToLower(b.filter)
	filtered := make([]entityRow, 0, len(b.rows))
	for _, row := range b.rows {
		haystack := strings.ToLower(fmt.Sprintf("%d %s 0x%x %s",
			row.ID, row.Name, row.ArchetypeID, strings.Join(row.ComponentTypes, " ")))
		if strings.Contains(haystack, needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
