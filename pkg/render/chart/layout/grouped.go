package layout

import (
	"math"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/scale"
)

// Series selects one numeric field of a dataset for plotting.
type Series struct {
	Field  string    `json:"field"`
	Label  string    `json:"label"`
	Color  string    `json:"color"`
	Domain Domain    `json:"domain"`
	Format Formatter `json:"-"`
	// Dash strokes line series with a dash pattern.
	Dash []float64 `json:"dash,omitempty"`
}

// Gridline is a labeled vertical reference at a value.
type Gridline struct {
	Value float64
	Label string
}

// GroupedOption configures [LayoutGroupedBars].
type GroupedOption func(*groupedLayout)

type groupedLayout struct {
	padding   float64
	gridlines []Gridline
	legend    bool
	axisTicks int
}

// WithGroupPadding sets the band padding between groups (default 0.3).
func WithGroupPadding(p float64) GroupedOption {
	return func(l *groupedLayout) { l.padding = p }
}

// WithGridlines draws dashed references behind the bars.
func WithGridlines(lines ...Gridline) GroupedOption {
	return func(l *groupedLayout) { l.gridlines = lines }
}

// WithoutLegend omits the series legend.
func WithoutLegend() GroupedOption {
	return func(l *groupedLayout) { l.legend = false }
}

// WithGroupAxis draws a bottom value axis.
func WithGroupAxis(ticks int) GroupedOption {
	return func(l *groupedLayout) { l.axisTicks = ticks }
}

// LayoutGroupedBars draws one horizontal band per record holding one sub-bar
// per series. All series share the config's value domain.
func LayoutGroupedBars(records Dataset, cfg Config, series []Series, opts ...GroupedOption) ([]Primitive, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, emptyDataset("grouped bars")
	}
	if len(series) == 0 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfig, "grouped bars need at least one series")
	}

	l := groupedLayout{padding: 0.3, legend: true}
	for _, opt := range opts {
		opt(&l)
	}
	if l.padding < 0 || l.padding >= 1 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfig, "band padding %g outside [0, 1)", l.padding)
	}

	values := make([][]float64, len(series))
	var all []float64
	for j, s := range series {
		v, err := numbers(records, s.Field)
		if err != nil {
			return nil, err
		}
		values[j] = v
		all = append(all, v...)
	}

	left := cfg.Margins.Left
	lo, hi := cfg.Domain.Resolve(all)
	x := scale.NewLinear(lo, hi, left, cfg.RightEdge())
	band := scale.NewBand(len(records), cfg.Margins.Top, cfg.Baseline(), l.padding)
	barH := band.Bandwidth() / float64(len(series))

	prims := make([]Primitive, 0, len(l.gridlines)*2+len(records)*(len(series)+1)+2*len(series))

	for _, g := range l.gridlines {
		gx := x.Map(g.Value)
		prims = append(prims,
			Line{
				X1: gx, Y1: cfg.Margins.Top, X2: gx, Y2: cfg.Baseline(),
				Style: Style{Stroke: TokenGrid, StrokeWidth: 1, Dash: []float64{4, 4}},
			},
			Text{
				X: gx, Y: cfg.Margins.Top - 8,
				Body:  g.Label,
				Style: Style{Fill: TokenFaint, FontSize: 9, Anchor: AnchorMiddle},
			},
		)
	}

	for i, r := range records {
		for j, s := range series {
			v := values[j][i]
			xv := x.Map(v)
			prims = append(prims, Rect{
				X: min(left, xv), Y: band.Pos(i) + barH*float64(j),
				W: math.Abs(xv - left), H: max(0, barH-2),
				RX:    3,
				Datum: r.Label + " " + s.Label + ": " + orDefault(s.Format)(v),
				Style: Style{Fill: s.Color, Class: "bar"},
			})
		}
		prims = append(prims, Text{
			X: left - 8, Y: band.Center(i),
			Body:  r.Label,
			Style: Style{Fill: TokenText, FontSize: 12, Anchor: AnchorEnd, Baseline: BaselineMiddle},
		})
	}

	if l.axisTicks > 0 {
		prims = append(prims, AxisBottom(Axis{Scale: x, Ticks: l.axisTicks}, cfg.Baseline())...)
	}

	if l.legend {
		items := make([]LegendItem, len(series))
		for j, s := range series {
			items[j] = LegendItem{Label: s.Label, Color: s.Color}
		}
		prims = append(prims, Legend(items, LegendPlacement{
			X: cfg.RightEdge() + 10, Y: cfg.Margins.Top, Spacing: 22, Vertical: true,
		})...)
	}

	return append(prims, titleText(cfg)...), nil
}
