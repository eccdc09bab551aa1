package printing

// Standards-mandated dimensions of the printed payment slip, in
// millimeters from the top-left of an A4 portrait page.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	// SlipSeparatorY is the horizontal line separating the invoice body
	// from the payment slip.
	SlipSeparatorY = 192.0

	SlipHeight   = 105.0
	ReceiptWidth = 62.0
	PaymentWidth = 148.0

	// CodeBoxSize is the edge length of the square code-symbol box inside
	// the payment panel.
	CodeBoxSize = 46.0
	// EmblemSize is the edge length of the Swiss-cross emblem box centered
	// on the code-symbol box.
	EmblemSize = 7.0

	// QuietZone is the clearance kept between the panel edges and any
	// printed content.
	QuietZone = 5.0

	// codeBoxOffsetY is the vertical offset of the code box from the top
	// of the slip, leaving room for the panel title and heading rows.
	codeBoxOffsetY = 17.0
)

// Rect is an axis-aligned rectangle in millimeters.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the rectangle's center point.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// SlipGeometry describes every region a renderer needs to place on the
// page. It is read-only: Geometry returns a fresh value and nothing in
// this package mutates one.
type SlipGeometry struct {
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`

	// SeparatorY is the y coordinate of the horizontal split line.
	SeparatorY float64 `json:"separator_y"`

	// Receipt is the left panel, Payment the right one.
	Receipt Rect `json:"receipt"`
	Payment Rect `json:"payment"`

	// Padding is the inner clearance applied to both panels.
	Padding Margins `json:"padding"`

	// CodeBox is the square region holding the scannable symbol,
	// EmblemBox the Swiss-cross box centered on it.
	CodeBox   Rect `json:"code_box"`
	EmblemBox Rect `json:"emblem_box"`

	// Fonts maps the semantic text roles of the printed panels to their
	// mandated font sizes and weights.
	Fonts FontTable `json:"fonts"`
}

// Geometry returns the constant slip geometry. Every call yields an
// equal, independent value.
func Geometry() SlipGeometry {
	codeBox := Rect{
		X:      ReceiptWidth + QuietZone,
		Y:      SlipSeparatorY + codeBoxOffsetY,
		Width:  CodeBoxSize,
		Height: CodeBoxSize,
	}
	emblemBox := Rect{
		X:      codeBox.X + (CodeBoxSize-EmblemSize)/2,
		Y:      codeBox.Y + (CodeBoxSize-EmblemSize)/2,
		Width:  EmblemSize,
		Height: EmblemSize,
	}
	return SlipGeometry{
		PageWidth:  PageWidth,
		PageHeight: PageHeight,
		SeparatorY: SlipSeparatorY,
		Receipt:    Rect{X: 0, Y: SlipSeparatorY, Width: ReceiptWidth, Height: SlipHeight},
		Payment:    Rect{X: ReceiptWidth, Y: SlipSeparatorY, Width: PaymentWidth, Height: SlipHeight},
		Padding:    UniformMargins(QuietZone),
		CodeBox:    codeBox,
		EmblemBox:  emblemBox,
		Fonts:      DefaultFontTable(),
	}
}

// CrossSpec describes the plus-shaped emblem inset into the code-symbol
// box: a square of SquareSize with two centered arms of ArmLength by
// ArmThickness.
type CrossSpec struct {
	SquareSize   float64 `json:"square_size"`
	ArmThickness float64 `json:"arm_thickness"`
	ArmLength    float64 `json:"arm_length"`
}

// CrossGeometry derives the emblem cross for a given emblem edge length.
// The 20% and 60% arm ratios are fixed by the payment standard.
func CrossGeometry(emblemSize float64) CrossSpec {
	return CrossSpec{
		SquareSize:   emblemSize,
		ArmThickness: 0.20 * emblemSize,
		ArmLength:    0.60 * emblemSize,
	}
}

// UnitConvert converts a millimeter measure into the device units of a
// rendering backend using the backend's own scale factor (device units
// per millimeter). The geometry itself stays backend-agnostic.
func UnitConvert(mm, scale float64) float64 {
	return mm * scale
}
