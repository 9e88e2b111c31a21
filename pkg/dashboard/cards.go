package dashboard

import (
	"fmt"
	"strconv"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
	"github.com/matzehuels/cansdash/pkg/render/chart/styles"
)

// Card grid geometry.
const (
	cardColumns = 7
	cardGap     = 10
	cardHeight  = 84
	gridTop     = 32
	panelGap    = 10
)

// Selection colors.
const (
	selectedStroke = "#60a5fa"
	selectedFill   = "#1e3a5f"
	panelColor     = "#3b82f6"
	alertText      = "#fca5a5"
)

// Card is the position of one center's card in the overview grid.
type Card struct {
	ID         int
	X, Y, W, H float64
}

// Cards lays out the overview grid: seven columns of equal width, rows
// top to bottom in center order.
func Cards(d Data, width float64) []Card {
	w := (width - cardGap*(cardColumns-1)) / cardColumns
	out := make([]Card, len(d.Centers))
	for i, c := range d.Centers {
		col, row := i%cardColumns, i/cardColumns
		out[i] = Card{
			ID: c.ID,
			X:  float64(col) * (w + cardGap),
			Y:  gridTop + float64(row)*(cardHeight+cardGap),
			W:  w, H: cardHeight,
		}
	}
	return out
}

func buildOverview(d Data, v View, size Size) (layout.Chart, error) {
	cfg := layout.Config{Width: size.Width, Height: size.Height}
	if err := cfg.Validate(); err != nil {
		return layout.Chart{}, err
	}
	if len(d.Centers) == 0 {
		return layout.Chart{}, cerrors.New(cerrors.ErrCodeEmptyDataset, "overview: no centers")
	}

	var selected *Center
	if v.Selected != 0 {
		c, ok := d.Center(v.Selected)
		if !ok {
			return layout.Chart{}, cerrors.New(cerrors.ErrCodeNotFound, "center %d not found", v.Selected)
		}
		selected = &c
	}

	prims := []layout.Primitive{layout.Text{
		X: 0, Y: 16,
		Body:  fmt.Sprintf("All %d CMHCs: select a center to drill down", len(d.Centers)),
		Style: layout.Style{Fill: layout.TokenText, FontSize: 14, FontWeight: "600", Anchor: layout.AnchorStart},
	}}

	cards := Cards(d, size.Width)
	for i, c := range d.Centers {
		prims = append(prims, card(d, c, cards[i], selected != nil && selected.ID == c.ID)...)
	}

	if selected != nil {
		last := cards[len(cards)-1]
		top := last.Y + last.H + panelGap
		panel := detailPanel(*selected, top, size.Width)
		prims = append(prims, panel...)
		if r, ok := panel[0].(layout.Rect); ok {
			cfg.Height = max(cfg.Height, r.Y+r.H)
		}
	}

	return layout.NewChart(string(TabOverview), cfg, prims), nil
}

func card(d Data, c Center, at Card, selected bool) []layout.Primitive {
	box := layout.Rect{
		X: at.X, Y: at.Y, W: at.W, H: at.H, RX: 8,
		Datum: c.Name + ", " + c.City,
		Style: layout.Style{Fill: layout.TokenSurface, Stroke: d.RegionColor(c.Region), StrokeWidth: 2, Class: "card"},
	}
	if selected {
		box.Style.Fill = selectedFill
		box.Style.Stroke = selectedStroke
	}

	x, right := at.X+8, at.X+at.W-8
	prims := []layout.Primitive{
		box,
		layout.Text{
			X: x, Y: at.Y + 18,
			Body:  styles.TruncateLabel(c.Name, at.W-16, 12),
			Style: layout.Style{Fill: layout.TokenText, FontSize: 12, FontWeight: "600"},
		},
		layout.Text{
			X: x, Y: at.Y + 32, Body: c.City,
			Style: layout.Style{Fill: layout.TokenMuted, FontSize: 10},
		},
		layout.Text{
			X: x, Y: at.Y + 56, Body: layout.FormatCount(float64(c.Caseload)),
			Style: layout.Style{Fill: layout.TokenText, FontSize: 14, FontWeight: "700"},
		},
		layout.Text{
			X: x, Y: at.Y + 74, Body: strconv.FormatFloat(c.AvgIntakeComplexity, 'f', 1, 64),
			Style: layout.Style{Fill: ComplexityColor(c.AvgIntakeComplexity), FontSize: 12, FontWeight: "700"},
		},
		layout.Text{
			X: right, Y: at.Y + 74, Body: layout.General()(c.OutcomeImprovement) + "%",
			Style: layout.Style{
				Fill: OutcomeThresholds.Classify(c.OutcomeImprovement).Color(), FontSize: 12, FontWeight: "700",
				Anchor: layout.AnchorEnd,
			},
		},
	}
	if c.Alerts > 0 {
		cx, cy := at.X+at.W-12, at.Y+14
		prims = append(prims,
			layout.Circle{CX: cx, CY: cy, R: 6, Style: layout.Style{Fill: layout.TokenMarker}},
			layout.Text{
				X: cx, Y: cy, Body: strconv.Itoa(c.Alerts),
				Style: layout.Style{
					Fill: layout.TokenInverse, FontSize: 9, FontWeight: "bold",
					Anchor: layout.AnchorMiddle, Baseline: layout.BaselineMiddle,
				},
			},
		)
	}
	return prims
}

// detailPanel draws the selected center's statistics. The first primitive
// is the panel background.
func detailPanel(c Center, top, width float64) []layout.Primitive {
	notes := AlertNotes(c)
	h := 96.0
	if c.Alerts > 0 {
		h += 28
	}

	prims := []layout.Primitive{
		layout.Rect{
			X: 0, Y: top, W: width, H: h, RX: 12,
			Style: layout.Style{Fill: panelColor, Stroke: panelColor, StrokeWidth: 1, Opacity: 0.15, Class: "panel"},
		},
		layout.Text{
			X: 16, Y: top + 26, Body: c.Name + ": Detailed View",
			Style: layout.Style{Fill: layout.TokenText, FontSize: 16, FontWeight: "600"},
		},
	}

	stats := []struct {
		label, value, color string
	}{
		{"Total Youth Served", layout.FormatCount(float64(c.Caseload)), layout.TokenText},
		{"Avg Intake Complexity", strconv.FormatFloat(c.AvgIntakeComplexity, 'f', 2, 64), layout.TokenText},
		{"Outcome Improvement", layout.General()(c.OutcomeImprovement) + "%", ColorStrong},
		{"Counties Covered", strconv.Itoa(c.Counties), layout.TokenText},
	}
	colW := (width - 32) / float64(len(stats))
	for i, s := range stats {
		x := 16 + float64(i)*colW
		prims = append(prims,
			layout.Text{
				X: x, Y: top + 52, Body: s.label,
				Style: layout.Style{Fill: layout.TokenMuted, FontSize: 12},
			},
			layout.Text{
				X: x, Y: top + 80, Body: s.value,
				Style: layout.Style{Fill: s.color, FontSize: 22, FontWeight: "700"},
			},
		)
	}

	if c.Alerts > 0 {
		body := "⚠ " + AlertHeadline(c) + ":"
		for _, n := range notes {
			body += " " + n
		}
		prims = append(prims, layout.Text{
			X: 16, Y: top + h - 14, Body: body,
			Style: layout.Style{Fill: alertText, FontSize: 12, FontWeight: "500"},
		})
	}
	return prims
}
