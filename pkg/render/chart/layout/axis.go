package layout

import (
	"github.com/matzehuels/cansdash/pkg/render/chart/scale"
)

const tickSize = 6

// Axis describes a value axis drawn along one edge of the plot.
type Axis struct {
	Scale  scale.Linear
	Ticks  int
	Format Formatter
	// LabelColor colors tick labels; defaults to [TokenMuted].
	LabelColor string
	Title      string
}

func (a Axis) labelStyle(anchor Anchor) Style {
	color := a.LabelColor
	if color == "" {
		color = TokenMuted
	}
	return Style{Fill: color, FontSize: 10, Anchor: anchor, Baseline: BaselineMiddle}
}

func (a Axis) ticks() []float64 {
	d0, d1 := a.Scale.D0, a.Scale.D1
	return scale.Ticks(min(d0, d1), max(d0, d1), a.Ticks)
}

var axisStroke = Style{Stroke: TokenAxis, StrokeWidth: 1}

// AxisLeft draws a vertical axis at x with ticks extending left.
func AxisLeft(a Axis, x float64) []Primitive {
	return verticalAxis(a, x, -1)
}

// AxisRight draws a vertical axis at x with ticks extending right.
func AxisRight(a Axis, x float64) []Primitive {
	return verticalAxis(a, x, 1)
}

func verticalAxis(a Axis, x, dir float64) []Primitive {
	format := orDefault(a.Format)
	anchor := AnchorEnd
	if dir > 0 {
		anchor = AnchorStart
	}

	prims := []Primitive{Line{X1: x, Y1: a.Scale.R0, X2: x, Y2: a.Scale.R1, Style: axisStroke}}
	for _, v := range a.ticks() {
		y := a.Scale.Map(v)
		prims = append(prims,
			Line{X1: x, Y1: y, X2: x + dir*tickSize, Y2: y, Style: axisStroke},
			Text{X: x + dir*(tickSize+3), Y: y, Body: format(v), Style: a.labelStyle(anchor)},
		)
	}

	if a.Title != "" {
		mid := (a.Scale.R0 + a.Scale.R1) / 2
		rotate := -90.0
		if dir > 0 {
			rotate = 90
		}
		prims = append(prims, Text{
			X: x + dir*40, Y: mid,
			Body:   a.Title,
			Rotate: rotate,
			Style:  Style{Fill: a.labelStyle(anchor).Fill, FontSize: 11, Anchor: AnchorMiddle},
		})
	}
	return prims
}

// AxisBottom draws a horizontal axis at y with ticks extending down.
func AxisBottom(a Axis, y float64) []Primitive {
	format := orDefault(a.Format)
	prims := []Primitive{Line{X1: a.Scale.R0, Y1: y, X2: a.Scale.R1, Y2: y, Style: axisStroke}}
	for _, v := range a.ticks() {
		x := a.Scale.Map(v)
		label := a.labelStyle(AnchorMiddle)
		label.Baseline = ""
		prims = append(prims,
			Line{X1: x, Y1: y, X2: x, Y2: y + tickSize, Style: axisStroke},
			Text{X: x, Y: y + tickSize + 12, Body: format(v), Style: label},
		)
	}
	if a.Title != "" {
		prims = append(prims, Text{
			X: (a.Scale.R0 + a.Scale.R1) / 2, Y: y + 38,
			Body:  a.Title,
			Style: Style{Fill: TokenMuted, FontSize: 11, Anchor: AnchorMiddle},
		})
	}
	return prims
}

// CategoryAxis draws a baseline from x0 to x1 at y and one label per
// category at the x returned by at. Labels are rotated by rotate degrees and
// end-anchored when rotated.
func CategoryAxis(labels []string, at func(int) float64, x0, x1, y, rotate float64) []Primitive {
	anchor := AnchorMiddle
	if rotate != 0 {
		anchor = AnchorEnd
	}
	prims := []Primitive{Line{X1: x0, Y1: y, X2: x1, Y2: y, Style: axisStroke}}
	for i, label := range labels {
		x := at(i)
		prims = append(prims,
			Line{X1: x, Y1: y, X2: x, Y2: y + tickSize, Style: axisStroke},
			Text{
				X: x, Y: y + tickSize + 10,
				Body:   label,
				Rotate: rotate,
				Style:  Style{Fill: TokenMuted, FontSize: 10, Anchor: anchor},
			},
		)
	}
	return prims
}
