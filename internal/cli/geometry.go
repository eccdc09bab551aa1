package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakturo/qrslip/internal/domain/printing"
)

func newGeometryCmd() *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print the payment-slip geometry as JSON",
		Long: "Prints the standards-mandated millimeter geometry of the payment slip\n" +
			"(page split, panels, code and emblem boxes, font table) for a rendering\n" +
			"backend. With --scale the coordinates are converted to device units.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := printing.Geometry()
			out := struct {
				printing.SlipGeometry
				Cross printing.CrossSpec `json:"cross"`
				Scale float64            `json:"scale,omitempty"`
			}{
				SlipGeometry: g,
				Cross:        printing.CrossGeometry(printing.EmblemSize),
			}
			if scale != 1 {
				out.SlipGeometry = scaleGeometry(g, scale)
				out.Cross = printing.CrossSpec{
					SquareSize:   printing.UnitConvert(out.Cross.SquareSize, scale),
					ArmThickness: printing.UnitConvert(out.Cross.ArmThickness, scale),
					ArmLength:    printing.UnitConvert(out.Cross.ArmLength, scale),
				}
				out.Scale = scale
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encoding geometry: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&scale, "scale", 1, "device units per millimeter")

	return cmd
}

// scaleGeometry converts every length of the geometry into device units.
// The font table is in points and stays untouched.
func scaleGeometry(g printing.SlipGeometry, scale float64) printing.SlipGeometry {
	conv := func(mm float64) float64 { return printing.UnitConvert(mm, scale) }
	convRect := func(r printing.Rect) printing.Rect {
		return printing.Rect{X: conv(r.X), Y: conv(r.Y), Width: conv(r.Width), Height: conv(r.Height)}
	}
	g.PageWidth = conv(g.PageWidth)
	g.PageHeight = conv(g.PageHeight)
	g.SeparatorY = conv(g.SeparatorY)
	g.Receipt = convRect(g.Receipt)
	g.Payment = convRect(g.Payment)
	g.CodeBox = convRect(g.CodeBox)
	g.EmblemBox = convRect(g.EmblemBox)
	g.Padding = printing.Margins{
		Top:    conv(g.Padding.Top),
		Right:  conv(g.Padding.Right),
		Bottom: conv(g.Padding.Bottom),
		Left:   conv(g.Padding.Left),
	}
	return g
}
