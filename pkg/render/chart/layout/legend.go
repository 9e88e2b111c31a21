package layout

// LegendItem is one legend entry. Line entries draw a short stroke instead
// of a filled swatch.
type LegendItem struct {
	Label string
	Color string
	Line  bool
	Dash  []float64
}

// LegendPlacement positions a legend. Entries advance by Spacing along the
// x axis, or along the y axis when Vertical is set.
type LegendPlacement struct {
	X, Y     float64
	Spacing  float64
	Vertical bool
}

const legendSwatch = 12

// Legend lays out legend entries starting at the placement origin.
func Legend(items []LegendItem, at LegendPlacement) []Primitive {
	spacing := at.Spacing
	if spacing <= 0 {
		spacing = 20
	}

	prims := make([]Primitive, 0, 2*len(items))
	for i, item := range items {
		x, y := at.X, at.Y
		if at.Vertical {
			y += float64(i) * spacing
		} else {
			x += float64(i) * spacing
		}

		if item.Line {
			prims = append(prims, Line{
				X1: x, Y1: y + legendSwatch/2, X2: x + 2*legendSwatch, Y2: y + legendSwatch/2,
				Style: Style{Stroke: item.Color, StrokeWidth: 3, Dash: item.Dash},
			})
			x += 2 * legendSwatch
		} else {
			prims = append(prims, Rect{
				X: x, Y: y, W: legendSwatch, H: legendSwatch, RX: 2,
				Style: Style{Fill: item.Color},
			})
			x += legendSwatch
		}
		prims = append(prims, Text{
			X: x + 6, Y: y + legendSwatch/2,
			Body:  item.Label,
			Style: Style{Fill: TokenMuted, FontSize: 11, Anchor: AnchorStart, Baseline: BaselineMiddle},
		})
	}
	return prims
}
