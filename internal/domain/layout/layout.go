// Package layout converts logical grid coordinates into pixel geometry for
// rendering the store map: cell origins, zone rectangles with fitted
// labels, and item markers color-coded by stock level.
package layout

import (
	"github.com/storemap/backend/internal/domain/inventory"
)

// Fixed canvas constants, in pixels.
const (
	Margin  = 16
	Spacing = 8
)

// Cell size bounds and default, in pixels.
const (
	MinCellSize     = 32
	MaxCellSize     = 128
	DefaultCellSize = 80
)

// Quantity thresholds for marker color coding.
const (
	lowStockMax  = 10
	warnStockMax = 30
)

// Marker fill colors by stock level.
const (
	ColorLow  = "#ef4444"
	ColorWarn = "#f59e0b"
	ColorOK   = "#22c55e"
)

// DefaultZoneFill is used when a zone specifies no fill color.
const DefaultZoneFill = "#cbd5e1"

// Grid computes pixel geometry for a given cell size.
type Grid struct {
	CellSize int
}

// NewGrid returns a grid with the cell size clamped to [MinCellSize, MaxCellSize].
func NewGrid(cellSize int) Grid {
	return Grid{CellSize: ClampCellSize(cellSize)}
}

// ClampCellSize bounds a requested cell size to the supported range.
func ClampCellSize(cellSize int) int {
	if cellSize < MinCellSize {
		return MinCellSize
	}
	if cellSize > MaxCellSize {
		return MaxCellSize
	}
	return cellSize
}

// CellOrigin returns the pixel origin of grid coordinate c along one axis.
func (g Grid) CellOrigin(c int) int {
	return Margin + c*(g.CellSize+Spacing)
}

// SpanSize returns the pixel extent of n consecutive cells including the
// spacing between them.
func (g Grid) SpanSize(n int) int {
	if n <= 0 {
		return 0
	}
	return n*g.CellSize + (n-1)*Spacing
}

// CanvasSize returns the pixel dimensions of the full map canvas.
func (g Grid) CanvasSize(cfg inventory.MapConfig) (width, height int) {
	return 2*Margin + g.SpanSize(cfg.Width), 2*Margin + g.SpanSize(cfg.Height)
}

// FontSize picks the zone label font size from the cell size, bounded to
// [10, 18].
func (g Grid) FontSize() int {
	fs := g.CellSize/3 + 6
	if fs < 10 {
		return 10
	}
	if fs > 18 {
		return 18
	}
	return fs
}

// ZoneBox is a zone projected to pixel space, ready for rendering.
type ZoneBox struct {
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Width        int    `json:"w"`
	Height       int    `json:"h"`
	Label        string `json:"label"`
	LabelDisplay string `json:"label_display"`
	FontSize     int    `json:"fs"`
	Emoji        string `json:"emoji,omitempty"`
	Fill         string `json:"fill"`
	Column       int    `json:"col"`
}

// ZoneBox projects a zone to pixel space, truncating its label to fit the
// computed width.
func (g Grid) ZoneBox(z inventory.Zone) ZoneBox {
	pxW := g.SpanSize(z.Width)
	pxH := g.SpanSize(z.Height)
	fs := g.FontSize()
	fill := z.Fill
	if fill == "" {
		fill = DefaultZoneFill
	}
	return ZoneBox{
		X:            g.CellOrigin(z.X),
		Y:            g.CellOrigin(z.Y),
		Width:        pxW,
		Height:       pxH,
		Label:        z.Label,
		LabelDisplay: TruncateLabel(z.Label, MaxLabelChars(pxW, fs)),
		FontSize:     fs,
		Emoji:        z.Emoji,
		Fill:         fill,
		Column:       z.X,
	}
}

// MaxLabelChars estimates how many characters fit in a box of the given
// pixel width using an average character width of 0.6em, with 24px of
// horizontal padding reserved. At least 4 characters are always allowed.
func MaxLabelChars(pxWidth, fontSize int) int {
	max := int(float64(pxWidth-24) / (float64(fontSize) * 0.6))
	if max < 4 {
		return 4
	}
	return max
}

// TruncateLabel shortens label to maxChars runes, appending an ellipsis
// when truncation happens. Labels within bounds are returned unchanged.
func TruncateLabel(label string, maxChars int) string {
	runes := []rune(label)
	if len(runes) <= maxChars {
		return label
	}
	cut := maxChars - 1
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + "…"
}

// ItemMarker is an item projected to pixel space as a circular marker.
type ItemMarker struct {
	CX       int    `json:"cx"`
	CY       int    `json:"cy"`
	Radius   int    `json:"r"`
	Quantity int    `json:"qty"`
	Fill     string `json:"fill"`
	Label    string `json:"label"`
	GridX    int    `json:"gx"`
	GridY    int    `json:"gy"`
}

// ItemMarker projects an item to the center of its grid cell.
func (g Grid) ItemMarker(it inventory.Item) ItemMarker {
	return ItemMarker{
		CX:       g.CellOrigin(it.X) + g.CellSize/2,
		CY:       g.CellOrigin(it.Y) + g.CellSize/2,
		Radius:   g.markerRadius(),
		Quantity: it.Quantity,
		Fill:     QuantityColor(it.Quantity),
		Label:    it.Name,
		GridX:    it.X,
		GridY:    it.Y,
	}
}

// markerRadius bounds the marker radius to [8, 14].
func (g Grid) markerRadius() int {
	r := g.CellSize / 3
	if r < 8 {
		return 8
	}
	if r > 14 {
		return 14
	}
	return r
}

// QuantityColor maps a stock quantity to a marker fill color.
func QuantityColor(qty int) string {
	switch {
	case qty <= lowStockMax:
		return ColorLow
	case qty <= warnStockMax:
		return ColorWarn
	default:
		return ColorOK
	}
}
