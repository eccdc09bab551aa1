package printing

// Margins represents inner clearance in millimeters
type Margins struct {
	Top    float64 `json:"top"`    // Top margin in mm
	Right  float64 `json:"right"`  // Right margin in mm
	Bottom float64 `json:"bottom"` // Bottom margin in mm
	Left   float64 `json:"left"`   // Left margin in mm
}

// UniformMargins returns margins with the same clearance on every side
func UniformMargins(mm float64) Margins {
	return Margins{Top: mm, Right: mm, Bottom: mm, Left: mm}
}

// IsZero returns true if all margins are zero
func (m Margins) IsZero() bool {
	return m.Top == 0 && m.Right == 0 && m.Bottom == 0 && m.Left == 0
}

// Equals checks if two Margins are equal
func (m Margins) Equals(other Margins) bool {
	return m.Top == other.Top &&
		m.Right == other.Right &&
		m.Bottom == other.Bottom &&
		m.Left == other.Left
}

// Inset shrinks a rectangle by the margins on all four sides.
func (m Margins) Inset(r Rect) Rect {
	return Rect{
		X:      r.X + m.Left,
		Y:      r.Y + m.Top,
		Width:  r.Width - m.Left - m.Right,
		Height: r.Height - m.Top - m.Bottom,
	}
}
