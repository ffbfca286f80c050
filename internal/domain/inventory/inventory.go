// Package inventory holds the store-map document model: the grid bounds,
// the items placed on the grid, the labeled zones grouping cells into
// aisles, and the informational aisle list.
package inventory

import "encoding/json"

// MapConfig defines the logical grid bounds of the store map.
type MapConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Item is a single inventory entry placed on the grid. Identity is
// positional; the document does not enforce unique SKUs. Documents that
// omit x/y leave the item off-grid at (-1, -1): it never matches a
// column filter and never lands in a grid cell.
type Item struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"qty"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Aisle       string `json:"aisle,omitempty"`
}

// UnmarshalJSON defaults missing coordinates to -1 so that items without
// a position stay off the grid instead of occupying cell (0, 0).
func (it *Item) UnmarshalJSON(data []byte) error {
	type alias Item
	aux := alias{X: -1, Y: -1}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*it = Item(aux)
	return nil
}

// Zone is a labeled rectangular region of the grid, in grid units.
// Zones may overlap; list order decides aisle resolution.
type Zone struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
	Label  string `json:"label"`
	Emoji  string `json:"emoji,omitempty"`
	Fill   string `json:"fill,omitempty"`
}

// Contains reports whether the grid point (x, y) falls inside the zone.
// The rectangle is half-open: zx <= x < zx+zw, zy <= y < zy+zh.
func (z Zone) Contains(x, y int) bool {
	return z.X <= x && x < z.X+z.Width && z.Y <= y && y < z.Y+z.Height
}

// Inventory is the full persisted document.
type Inventory struct {
	Map    MapConfig `json:"map"`
	Items  []Item    `json:"items"`
	Zones  []Zone    `json:"zones"`
	Aisles []string  `json:"aisles"`
}

// Default grid bounds used when the data file is missing or omits them.
const (
	DefaultMapWidth  = 10
	DefaultMapHeight = 6
)

// NewDefault returns an empty inventory with default grid bounds.
func NewDefault() *Inventory {
	return &Inventory{
		Map:    MapConfig{Width: DefaultMapWidth, Height: DefaultMapHeight},
		Items:  []Item{},
		Zones:  []Zone{},
		Aisles: []string{},
	}
}

// Normalize fills in zero-valued grid bounds and nil slices so that
// consumers never see a partially formed document.
func (inv *Inventory) Normalize() {
	if inv.Map.Width <= 0 {
		inv.Map.Width = DefaultMapWidth
	}
	if inv.Map.Height <= 0 {
		inv.Map.Height = DefaultMapHeight
	}
	if inv.Items == nil {
		inv.Items = []Item{}
	}
	if inv.Zones == nil {
		inv.Zones = []Zone{}
	}
	if inv.Aisles == nil {
		inv.Aisles = []string{}
	}
}

// Validate checks document-level invariants before an admin save.
func (inv *Inventory) Validate() error {
	if inv.Map.Width <= 0 || inv.Map.Height <= 0 {
		return errInvalidMapBounds
	}
	for i := range inv.Items {
		if inv.Items[i].Quantity < 0 {
			return errNegativeQuantity
		}
	}
	for i := range inv.Zones {
		if inv.Zones[i].Width <= 0 || inv.Zones[i].Height <= 0 {
			return errInvalidZoneSpan
		}
	}
	return nil
}
