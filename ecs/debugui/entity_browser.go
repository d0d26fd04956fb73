package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pixecs/ecs"
)

// EntityInfo is one browser row.
type EntityInfo struct {
	ID       ecs.Entity
	Position string
	Velocity string
	Sprite   string
	Tags     string
}

// CollectEntities builds a row for every issued entity in creation order.
func CollectEntities(m *ecs.Manager) []EntityInfo {
	store := m.Components()
	rows := make([]EntityInfo, 0, m.Len())

	for e := range m.Entities() {
		row := EntityInfo{ID: e, Position: "-", Velocity: "-", Sprite: "-"}
		if pos, ok := store.Positions.Get(e); ok {
			row.Position = fmt.Sprintf("%d,%d", pos.X, pos.Y)
		}
		if vel, ok := store.Velocities.Get(e); ok {
			row.Velocity = fmt.Sprintf("%d,%d", vel.DX, vel.DY)
		}
		if sprite, ok := store.Sprites.Get(e); ok {
			row.Sprite = fmt.Sprintf("%dx%d #%06X", sprite.Width, sprite.Height, sprite.Color)
		}
		if tags, ok := store.Tags.Get(e); ok {
			row.Tags = tags.String()
		}
		rows = append(rows, row)
	}

	return rows
}

// FilterEntities keeps rows whose id or tags contain text, case-insensitively.
func FilterEntities(rows []EntityInfo, text string) []EntityInfo {
	if text == "" {
		return rows
	}

	filterLower := strings.ToLower(text)
	filtered := make([]EntityInfo, 0, len(rows))
	for _, row := range rows {
		idStr := fmt.Sprintf("%d", row.ID)
		if strings.Contains(idStr, filterLower) || strings.Contains(row.Tags, filterLower) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

type EntityBrowser struct {
	selectedEntity     ecs.Entity
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		maxEntitiesPerPage: max(maxEntitiesPerPage, 1),
	}
}

func (eb *EntityBrowser) Render(m *ecs.Manager) {
	imgui.SetNextWindowSizeV(imgui.NewVec2(600, 400), imgui.CondOnce)
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Filter by id or tag...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.currentPage = 0
	}

	filtered := FilterEntities(CollectEntities(m), eb.filterText)
	totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
	if eb.currentPage >= totalPages {
		eb.currentPage = max(totalPages-1, 0)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Velocity")
		imgui.TableSetupColumn("Sprite")
		imgui.TableSetupColumn("Tags")
		imgui.TableHeadersRow()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filtered))

		for _, entity := range filtered[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntity == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntity = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(entity.Position)
			imgui.TableNextColumn()
			imgui.Text(entity.Velocity)
			imgui.TableNextColumn()
			imgui.Text(entity.Sprite)
			imgui.TableNextColumn()
			imgui.Text(entity.Tags)
		}

		imgui.EndTable()
	}

	if totalPages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowser) SelectedEntity() ecs.Entity {
	return eb.selectedEntity
}
