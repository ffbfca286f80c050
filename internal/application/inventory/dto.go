package inventory

import (
	"github.com/storemap/backend/internal/domain/inventory"
	"github.com/storemap/backend/internal/domain/layout"
)

// View modes supported by the map page.
const (
	ViewModeMap  = "map"
	ViewModeList = "list"
)

// ViewParams carries the (already defaulted) query parameters of the map
// view. Malformed numeric inputs never reach this struct; parsing falls
// back to defaults at the handler layer.
type ViewParams struct {
	Query    string
	Category string
	ViewMode string
	CellSize int
	// Column is nil when no column filter is selected.
	Column *int
}

// ItemView is an item enriched with its resolved display aisle.
type ItemView struct {
	inventory.Item
	AisleDisplay string `json:"aisle_display"`
}

// MapViewModel is everything the map/list page needs to render: the
// filtered items, the pixel-space zones and markers, and the echo of the
// active filters.
type MapViewModel struct {
	Query      string              `json:"query"`
	Category   string              `json:"category"`
	ViewMode   string              `json:"view_mode"`
	CellSize   int                 `json:"cell_size"`
	Column     *int                `json:"column,omitempty"`
	Map        inventory.MapConfig `json:"map"`
	Categories []string            `json:"categories"`
	Aisles     []string            `json:"aisles"`
	Items      []ItemView          `json:"items"`
	Zones      []layout.ZoneBox    `json:"zones"`
	Markers    []layout.ItemMarker `json:"markers"`
	// Cells indexes all in-bounds items by [row][col] for the list view.
	Cells        [][][]inventory.Item `json:"-"`
	CanvasWidth  int                  `json:"canvas_width"`
	CanvasHeight int                  `json:"canvas_height"`
}
