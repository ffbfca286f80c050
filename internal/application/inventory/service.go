package inventory

import (
	"context"
	"encoding/json"

	"github.com/storemap/backend/internal/domain/inventory"
	"github.com/storemap/backend/internal/domain/layout"
	"github.com/storemap/backend/internal/domain/shared"
)

// Service assembles map views from fresh inventory snapshots and handles
// the admin save path. Every operation re-reads the document from the
// store; the service itself keeps no state between requests.
type Service struct {
	store        inventory.Store
	defaultAisle string
}

// NewService creates a new inventory Service. defaultAisle is used when an
// item belongs to no zone; empty means the built-in label.
func NewService(store inventory.Store, defaultAisle string) *Service {
	return &Service{
		store:        store,
		defaultAisle: defaultAisle,
	}
}

// MapView loads a snapshot and computes the full view model for the map
// and list pages: filtered items with resolved aisles, pixel-space zones
// and markers, and the category list.
func (s *Service) MapView(ctx context.Context, params ViewParams) (*MapViewModel, error) {
	inv, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if params.ViewMode != ViewModeList {
		params.ViewMode = ViewModeMap
	}
	grid := layout.NewGrid(params.CellSize)

	filtered := inventory.Filter(inv.Items, params.Query, params.Category)
	if params.Column != nil {
		filtered = inventory.FilterColumn(filtered, *params.Column)
	}

	items := make([]ItemView, 0, len(filtered))
	markers := make([]layout.ItemMarker, 0, len(filtered))
	for _, it := range filtered {
		items = append(items, ItemView{
			Item:         it,
			AisleDisplay: inventory.ResolveAisle(it, inv.Zones, s.defaultAisle),
		})
		markers = append(markers, grid.ItemMarker(it))
	}

	zones := make([]layout.ZoneBox, 0, len(inv.Zones))
	for _, z := range inv.Zones {
		zones = append(zones, grid.ZoneBox(z))
	}

	canvasW, canvasH := grid.CanvasSize(inv.Map)

	return &MapViewModel{
		Query:        params.Query,
		Category:     params.Category,
		ViewMode:     params.ViewMode,
		CellSize:     grid.CellSize,
		Column:       params.Column,
		Map:          inv.Map,
		Categories:   inventory.Categories(inv.Items),
		Aisles:       inv.Aisles,
		Items:        items,
		Zones:        zones,
		Markers:      markers,
		Cells:        buildCellIndex(inv),
		CanvasWidth:  canvasW,
		CanvasHeight: canvasH,
	}, nil
}

// buildCellIndex places all in-bounds items into a [row][col] matrix. Out
// of bounds items are simply not shown on the grid.
func buildCellIndex(inv *inventory.Inventory) [][][]inventory.Item {
	cells := make([][][]inventory.Item, inv.Map.Height)
	for y := range cells {
		cells[y] = make([][]inventory.Item, inv.Map.Width)
	}
	for _, it := range inv.Items {
		if it.X >= 0 && it.X < inv.Map.Width && it.Y >= 0 && it.Y < inv.Map.Height {
			cells[it.Y][it.X] = append(cells[it.Y][it.X], it)
		}
	}
	return cells
}

// Search returns the items matching a free-text query. Category and
// column filters are intentionally not applied here.
func (s *Service) Search(ctx context.Context, query string) ([]inventory.Item, error) {
	inv, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.Filter(inv.Items, query, ""), nil
}

// MapConfig returns the grid bounds of the current document.
func (s *Service) MapConfig(ctx context.Context) (inventory.MapConfig, error) {
	inv, err := s.store.Load(ctx)
	if err != nil {
		return inventory.MapConfig{}, err
	}
	return inv.Map, nil
}

// Items returns the full unfiltered item list.
func (s *Service) Items(ctx context.Context) ([]inventory.Item, error) {
	inv, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return inv.Items, nil
}

// Document returns the full current document for the admin edit page.
func (s *Service) Document(ctx context.Context) (*inventory.Inventory, error) {
	return s.store.Load(ctx)
}

// SaveDocument parses, validates and persists a full replacement document.
// The previous file contents are overwritten as a whole. Validation runs
// on the document as submitted; normalization of nil slices happens only
// after it passed, so invalid grid bounds are rejected rather than
// silently rewritten.
func (s *Service) SaveDocument(ctx context.Context, raw []byte) (*inventory.Inventory, error) {
	var inv inventory.Inventory
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, shared.ErrInvalidJSON
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	inv.Normalize()
	if err := s.store.Save(ctx, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}
