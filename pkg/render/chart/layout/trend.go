package layout

import (
	"github.com/matzehuels/cansdash/pkg/render/chart/scale"
)

// TrendOption configures [LayoutTrend].
type TrendOption func(*trendLayout)

type trendLayout struct {
	leftTicks, rightTicks int
	area                  bool
	dots                  bool
	legend                bool
	axisTitles            [2]string
}

// WithTrendTicks sets the approximate tick counts of the two value axes
// (default 5 each).
func WithTrendTicks(left, right int) TrendOption {
	return func(l *trendLayout) { l.leftTicks, l.rightTicks = left, right }
}

// WithAxisTitles labels the left and right value axes.
func WithAxisTitles(left, right string) TrendOption {
	return func(l *trendLayout) { l.axisTitles = [2]string{left, right} }
}

// WithoutArea omits the filled area under the left series.
func WithoutArea() TrendOption {
	return func(l *trendLayout) { l.area = false }
}

// WithoutDots omits the point markers.
func WithoutDots() TrendOption {
	return func(l *trendLayout) { l.dots = false }
}

// WithoutTrendLegend omits the series legend.
func WithoutTrendLegend() TrendOption {
	return func(l *trendLayout) { l.legend = false }
}

// LayoutTrend plots two series against a shared point scale of record
// labels. The left series is drawn as a filled area under a solid curve on
// the left axis; the right series as a dashed curve on the right axis. Each
// series is scaled by its own Domain.
func LayoutTrend(records Dataset, cfg Config, left, right Series, opts ...TrendOption) ([]Primitive, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, emptyDataset("trend")
	}
	if err := left.Domain.validate(left.Field); err != nil {
		return nil, err
	}
	if err := right.Domain.validate(right.Field); err != nil {
		return nil, err
	}

	l := trendLayout{leftTicks: 5, rightTicks: 5, area: true, dots: true, legend: true}
	for _, opt := range opts {
		opt(&l)
	}

	lv, err := numbers(records, left.Field)
	if err != nil {
		return nil, err
	}
	rv, err := numbers(records, right.Field)
	if err != nil {
		return nil, err
	}

	base, top := cfg.Baseline(), cfg.Margins.Top
	x := scale.NewPoint(len(records), cfg.Margins.Left, cfg.RightEdge())
	l0, l1 := left.Domain.Resolve(lv)
	r0, r1 := right.Domain.Resolve(rv)
	y1 := scale.NewLinear(l0, l1, base, top)
	y2 := scale.NewLinear(r0, r1, base, top)

	leftPts := make([]Point, len(records))
	rightPts := make([]Point, len(records))
	for i := range records {
		leftPts[i] = Point{x.Pos(i), y1.Map(lv[i])}
		rightPts[i] = Point{x.Pos(i), y2.Map(rv[i])}
	}

	var prims []Primitive

	if l.area {
		var area Path
		monotoneX(&area, leftPts)
		area.LineTo(leftPts[len(leftPts)-1].X, base)
		area.LineTo(leftPts[0].X, base)
		area.Close()
		area.Style = Style{Fill: left.Color, Opacity: 0.2, Class: "area"}
		prims = append(prims, area)
	}

	var leftLine Path
	monotoneX(&leftLine, leftPts)
	leftLine.Style = Style{Fill: TokenNone, Stroke: left.Color, StrokeWidth: 3, Dash: left.Dash}
	prims = append(prims, leftLine)

	rightDash := right.Dash
	if rightDash == nil {
		rightDash = []float64{8, 4}
	}
	var rightLine Path
	monotoneX(&rightLine, rightPts)
	rightLine.Style = Style{Fill: TokenNone, Stroke: right.Color, StrokeWidth: 2, Dash: rightDash}
	prims = append(prims, rightLine)

	if l.dots {
		for _, p := range leftPts {
			prims = append(prims, Circle{CX: p.X, CY: p.Y, R: 4, Style: Style{Fill: left.Color, Stroke: TokenSurface, StrokeWidth: 2}})
		}
		for _, p := range rightPts {
			prims = append(prims, Circle{CX: p.X, CY: p.Y, R: 4, Style: Style{Fill: right.Color, Stroke: TokenSurface, StrokeWidth: 2}})
		}
	}

	prims = append(prims, AxisLeft(Axis{
		Scale: y1, Ticks: l.leftTicks, Format: left.Format, LabelColor: left.Color, Title: l.axisTitles[0],
	}, cfg.Margins.Left)...)
	prims = append(prims, AxisRight(Axis{
		Scale: y2, Ticks: l.rightTicks, Format: right.Format, LabelColor: right.Color, Title: l.axisTitles[1],
	}, cfg.RightEdge())...)
	prims = append(prims, CategoryAxis(records.Labels(), x.Pos, cfg.Margins.Left, cfg.RightEdge(), base, -45)...)

	if l.legend {
		prims = append(prims, Legend([]LegendItem{
			{Label: left.Label, Color: left.Color, Line: true, Dash: left.Dash},
			{Label: right.Label, Color: right.Color, Line: true, Dash: rightDash},
		}, LegendPlacement{X: cfg.Margins.Left, Y: cfg.Height - 18, Spacing: 180})...)
	}

	return append(prims, titleText(cfg)...), nil
}
