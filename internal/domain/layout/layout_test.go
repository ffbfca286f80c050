package layout

import (
	"strings"
	"testing"

	"github.com/storemap/backend/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
)

func TestClampCellSize(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below minimum", 10, MinCellSize},
		{"at minimum", 32, 32},
		{"default", 80, 80},
		{"at maximum", 128, 128},
		{"above maximum", 500, MaxCellSize},
		{"negative", -5, MinCellSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampCellSize(tt.in))
		})
	}
}

func TestGridCellOrigin(t *testing.T) {
	g := NewGrid(80)

	// Origin of cell 0 is exactly the margin.
	assert.Equal(t, Margin, g.CellOrigin(0))

	// Origin of cell c is margin + c*(cell+spacing).
	for c := 1; c < 5; c++ {
		assert.Equal(t, Margin+c*(80+Spacing), g.CellOrigin(c))
	}
}

func TestGridCanvasSize(t *testing.T) {
	g := NewGrid(80)
	cfg := inventory.MapConfig{Width: 10, Height: 6}

	w, h := g.CanvasSize(cfg)

	assert.Equal(t, 2*Margin+10*80+9*Spacing, w)
	assert.Equal(t, 2*Margin+6*80+5*Spacing, h)
}

func TestGridSpanSize(t *testing.T) {
	g := NewGrid(80)

	assert.Equal(t, 0, g.SpanSize(0))
	assert.Equal(t, 80, g.SpanSize(1))
	assert.Equal(t, 2*80+Spacing, g.SpanSize(2))
}

func TestQuantityColor_Thresholds(t *testing.T) {
	tests := []struct {
		qty  int
		want string
	}{
		{0, ColorLow},
		{10, ColorLow},
		{11, ColorWarn},
		{30, ColorWarn},
		{31, ColorOK},
		{100, ColorOK},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuantityColor(tt.qty), "qty=%d", tt.qty)
	}
}

func TestGridFontSize(t *testing.T) {
	assert.Equal(t, 16, NewGrid(32).FontSize())
	assert.Equal(t, 18, NewGrid(80).FontSize())  // 80/3+6 = 32, clamped to 18
	assert.Equal(t, 18, NewGrid(128).FontSize())
}

func TestTruncateLabel(t *testing.T) {
	t.Run("within bounds is unchanged", func(t *testing.T) {
		assert.Equal(t, "Bebidas", TruncateLabel("Bebidas", 10))
		assert.Equal(t, "Bebidas", TruncateLabel("Bebidas", 7))
	})

	t.Run("over-long label ends with ellipsis", func(t *testing.T) {
		got := TruncateLabel("Hortifruti e Verduras Frescas", 10)
		assert.True(t, strings.HasSuffix(got, "…"))
		assert.Equal(t, 10, len([]rune(got)))
	})

	t.Run("multibyte labels count runes", func(t *testing.T) {
		got := TruncateLabel("Padaria e Confeitaria Ltda", 8)
		assert.Equal(t, 8, len([]rune(got)))
	})
}

func TestMaxLabelChars(t *testing.T) {
	// Narrow boxes never drop below 4 characters.
	assert.Equal(t, 4, MaxLabelChars(10, 18))

	// 80px cell, fs 18: (80-24)/(18*0.6) = 5
	assert.Equal(t, 5, MaxLabelChars(80, 18))
}

func TestGridZoneBox(t *testing.T) {
	g := NewGrid(80)
	z := inventory.Zone{X: 2, Y: 1, Width: 3, Height: 2, Label: "Mercearia", Emoji: "🛒", Fill: "#fde68a"}

	box := g.ZoneBox(z)

	assert.Equal(t, g.CellOrigin(2), box.X)
	assert.Equal(t, g.CellOrigin(1), box.Y)
	assert.Equal(t, 3*80+2*Spacing, box.Width)
	assert.Equal(t, 2*80+Spacing, box.Height)
	assert.Equal(t, "Mercearia", box.Label)
	assert.Equal(t, "#fde68a", box.Fill)
	assert.Equal(t, 2, box.Column)
}

func TestGridZoneBox_DefaultFill(t *testing.T) {
	g := NewGrid(80)

	box := g.ZoneBox(inventory.Zone{Width: 1, Height: 1, Label: "Z"})

	assert.Equal(t, DefaultZoneFill, box.Fill)
}

func TestGridItemMarker(t *testing.T) {
	g := NewGrid(80)
	it := inventory.Item{Name: "Arroz", Quantity: 5, X: 1, Y: 2}

	m := g.ItemMarker(it)

	assert.Equal(t, g.CellOrigin(1)+40, m.CX)
	assert.Equal(t, g.CellOrigin(2)+40, m.CY)
	assert.Equal(t, 14, m.Radius) // 80/3 = 26, clamped to 14
	assert.Equal(t, ColorLow, m.Fill)
	assert.Equal(t, "Arroz", m.Label)
	assert.Equal(t, 1, m.GridX)
	assert.Equal(t, 2, m.GridY)
}

func TestGridItemMarker_RadiusBounds(t *testing.T) {
	// 32/3 = 10, inside bounds.
	assert.Equal(t, 10, NewGrid(32).ItemMarker(inventory.Item{}).Radius)
	// 128/3 = 42, clamped to 14.
	assert.Equal(t, 14, NewGrid(128).ItemMarker(inventory.Item{}).Radius)
}
