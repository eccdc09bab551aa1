package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry(t *testing.T) {
	g := Geometry()

	t.Run("page and split line", func(t *testing.T) {
		assert.Equal(t, 210.0, g.PageWidth)
		assert.Equal(t, 297.0, g.PageHeight)
		assert.Equal(t, 192.0, g.SeparatorY)
	})

	t.Run("panels tile the page width", func(t *testing.T) {
		assert.Equal(t, Rect{X: 0, Y: 192, Width: 62, Height: 105}, g.Receipt)
		assert.Equal(t, Rect{X: 62, Y: 192, Width: 148, Height: 105}, g.Payment)
		assert.Equal(t, g.PageWidth, g.Receipt.Width+g.Payment.Width)
		assert.Equal(t, g.PageHeight, g.SeparatorY+g.Receipt.Height)
	})

	t.Run("code box sits inside the payment panel", func(t *testing.T) {
		assert.Equal(t, 46.0, g.CodeBox.Width)
		assert.Equal(t, 46.0, g.CodeBox.Height)
		assert.GreaterOrEqual(t, g.CodeBox.X, g.Payment.X+g.Padding.Left)
		assert.LessOrEqual(t, g.CodeBox.X+g.CodeBox.Width, g.Payment.X+g.Payment.Width)
		assert.GreaterOrEqual(t, g.CodeBox.Y, g.Payment.Y)
		assert.LessOrEqual(t, g.CodeBox.Y+g.CodeBox.Height, g.Payment.Y+g.Payment.Height)
	})

	t.Run("emblem box is centered on the code box", func(t *testing.T) {
		assert.Equal(t, 7.0, g.EmblemBox.Width)
		assert.Equal(t, 7.0, g.EmblemBox.Height)
		cx, cy := g.CodeBox.Center()
		ex, ey := g.EmblemBox.Center()
		assert.InDelta(t, cx, ex, 1e-9)
		assert.InDelta(t, cy, ey, 1e-9)
	})

	t.Run("font table covers every role", func(t *testing.T) {
		for _, role := range []TextRole{RoleSectionTitle, RoleFieldLabel, RoleFieldContent, RoleSmallContent} {
			spec, ok := g.Fonts[role]
			require.True(t, ok, role)
			assert.Positive(t, spec.SizePt)
			assert.True(t, spec.Weight.IsValid())
		}
		assert.Equal(t, FontSpec{SizePt: 11, Weight: FontWeightBold}, g.Fonts[RoleSectionTitle])
	})

	t.Run("repeated calls yield equal independent values", func(t *testing.T) {
		other := Geometry()
		assert.Equal(t, g, other)
		other.Fonts[RoleSectionTitle] = FontSpec{SizePt: 99, Weight: FontWeightRegular}
		assert.NotEqual(t, other.Fonts[RoleSectionTitle], Geometry().Fonts[RoleSectionTitle])
	})
}

func TestCrossGeometry(t *testing.T) {
	// The mandated 20% / 60% arm ratios for the 7 mm emblem.
	cross := CrossGeometry(7)
	assert.InDelta(t, 7.0, cross.SquareSize, 1e-9)
	assert.InDelta(t, 1.4, cross.ArmThickness, 1e-9)
	assert.InDelta(t, 4.2, cross.ArmLength, 1e-9)
}

func TestUnitConvert(t *testing.T) {
	// 72 dpi: 1 mm = 72/25.4 device units.
	scale := 72.0 / 25.4
	assert.InDelta(t, 595.27, UnitConvert(PageWidth, scale), 0.01)
	assert.Equal(t, 0.0, UnitConvert(0, scale))
	assert.Equal(t, 46.0, UnitConvert(46, 1))
}

func TestMargins(t *testing.T) {
	t.Run("uniform margins", func(t *testing.T) {
		m := UniformMargins(5)
		assert.Equal(t, Margins{Top: 5, Right: 5, Bottom: 5, Left: 5}, m)
		assert.False(t, m.IsZero())
		assert.True(t, m.Equals(UniformMargins(5)))
	})

	t.Run("inset shrinks a rectangle on all sides", func(t *testing.T) {
		r := UniformMargins(5).Inset(Rect{X: 62, Y: 192, Width: 148, Height: 105})
		assert.Equal(t, Rect{X: 67, Y: 197, Width: 138, Height: 95}, r)
	})

	t.Run("zero margins", func(t *testing.T) {
		assert.True(t, Margins{}.IsZero())
	})
}
