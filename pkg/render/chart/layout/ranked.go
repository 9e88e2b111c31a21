package layout

import (
	"cmp"
	"math"
	"slices"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/scale"
)

// =============================================================================
// Options
// =============================================================================

// FillFunc picks a bar fill from the bar's value.
type FillFunc func(v float64) string

// Thresholds returns a FillFunc that uses high at or above hi, mid at or
// above lo and low otherwise.
func Thresholds(hi, lo float64, high, mid, low string) FillFunc {
	return func(v float64) string {
		switch {
		case v >= hi:
			return high
		case v >= lo:
			return mid
		default:
			return low
		}
	}
}

// RankedOption configures [LayoutRankedBars].
type RankedOption func(*rankedLayout)

type rankedLayout struct {
	padding     float64
	fill        FillFunc
	colorTag    string
	hasAverage  bool
	average     float64
	avgLabel    string
	avgDash     []float64
	horizontal  bool
	format      Formatter
	markerField string
	axisTicks   int
	axisFormat  Formatter
	labelAbove  bool
}

// WithPadding sets the band padding (default 0.2).
func WithPadding(p float64) RankedOption {
	return func(l *rankedLayout) { l.padding = p }
}

// WithFill colors bars by value.
func WithFill(fn FillFunc) RankedOption {
	return func(l *rankedLayout) { l.fill = fn }
}

// WithColorTag colors bars from a record tag. It takes precedence over
// WithFill for records that carry the tag.
func WithColorTag(tag string) RankedOption {
	return func(l *rankedLayout) { l.colorTag = tag }
}

// WithAverage draws a dashed reference line at v, labeled with label.
func WithAverage(v float64, label string) RankedOption {
	return func(l *rankedLayout) {
		l.hasAverage = true
		l.average = v
		l.avgLabel = label
	}
}

// WithAverageDash overrides the reference line dash pattern (default 6,4).
func WithAverageDash(dash ...float64) RankedOption {
	return func(l *rankedLayout) { l.avgDash = dash }
}

// WithHorizontal lays bars out left to right instead of bottom to top.
func WithHorizontal() RankedOption {
	return func(l *rankedLayout) { l.horizontal = true }
}

// WithValueFormat sets the value label format.
func WithValueFormat(f Formatter) RankedOption {
	return func(l *rankedLayout) { l.format = f }
}

// WithMarkers draws a count badge above every bar whose field is positive.
// Records without the field get no badge.
func WithMarkers(field string) RankedOption {
	return func(l *rankedLayout) { l.markerField = field }
}

// WithValueAxis draws a value axis with roughly ticks ticks.
func WithValueAxis(ticks int, f Formatter) RankedOption {
	return func(l *rankedLayout) {
		l.axisTicks = ticks
		l.axisFormat = f
	}
}

// WithValueLabelAbove places value labels above the bar instead of inside it.
func WithValueLabelAbove() RankedOption {
	return func(l *rankedLayout) { l.labelAbove = true }
}

// =============================================================================
// Ranking
// =============================================================================

// RankRecords returns a copy of records sorted by field, descending. Records
// with equal values keep their input order.
func RankRecords(records Dataset, field string) (Dataset, error) {
	values, err := numbers(records, field)
	if err != nil {
		return nil, err
	}

	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(values[b], values[a])
	})

	out := make(Dataset, len(records))
	for i, j := range idx {
		out[i] = records[j]
	}
	return out, nil
}

// =============================================================================
// Layout
// =============================================================================

// LayoutRankedBars ranks records by sortField and draws one bar per record.
//
// Bars occupy band slots in rank order. In the default vertical orientation
// a bar spans from the baseline (Height - Margins.Bottom) up to its scaled
// value; values below the domain minimum extend downward and the rectangle
// is normalized to a positive height.
func LayoutRankedBars(records Dataset, cfg Config, sortField string, opts ...RankedOption) ([]Primitive, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, emptyDataset("ranked bars")
	}

	l := rankedLayout{padding: 0.2, avgDash: []float64{6, 4}}
	for _, opt := range opts {
		opt(&l)
	}
	if l.padding < 0 || l.padding >= 1 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfig, "band padding %g outside [0, 1)", l.padding)
	}
	if l.hasAverage && !finite(l.average) {
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfig, "average is not finite")
	}

	ranked, err := RankRecords(records, sortField)
	if err != nil {
		return nil, err
	}
	values, _ := numbers(ranked, sortField)

	var markers []float64
	if l.markerField != "" {
		if markers, err = optionalNumbers(ranked, l.markerField); err != nil {
			return nil, err
		}
	}

	lo, hi := cfg.Domain.Resolve(values)
	bars := rankedBars{cfg: cfg, l: l, records: ranked, values: values, markers: markers, lo: lo, hi: hi}

	var prims []Primitive
	if l.horizontal {
		prims = bars.horizontal()
	} else {
		prims = bars.vertical()
	}
	return append(prims, titleText(cfg)...), nil
}

type rankedBars struct {
	cfg     Config
	l       rankedLayout
	records Dataset
	values  []float64
	markers []float64
	lo, hi  float64
}

func (b rankedBars) fill(i int) string {
	if b.l.colorTag != "" {
		if c := b.records[i].Tag(b.l.colorTag); c != "" {
			return c
		}
	}
	if b.l.fill != nil {
		return b.l.fill(b.values[i])
	}
	return TokenMuted
}

// maxMarker caps badge counts; negative counts draw no badge.
const maxMarker = 999

func (b rankedBars) marker(i int) int {
	if b.markers == nil {
		return 0
	}
	return int(math.Max(0, math.Min(b.markers[i], maxMarker)))
}

func (b rankedBars) vertical() []Primitive {
	cfg, l := b.cfg, b.l
	n := len(b.records)
	format := orDefault(l.format)

	base := cfg.Baseline()
	band := scale.NewBand(n, cfg.Margins.Left, cfg.RightEdge(), l.padding)
	y := scale.NewLinear(b.lo, b.hi, base, cfg.Margins.Top)
	w := band.Bandwidth()

	prims := make([]Primitive, 0, 4*n+8)

	if l.hasAverage {
		ay := y.Map(l.average)
		prims = append(prims,
			Line{
				X1: cfg.Margins.Left, Y1: ay, X2: cfg.RightEdge(), Y2: ay,
				Style: Style{Stroke: TokenReference, StrokeWidth: 2, Dash: l.avgDash},
			},
			Text{
				X: cfg.RightEdge() + 5, Y: ay,
				Body:  l.avgLabel,
				Style: Style{Fill: TokenReference, FontSize: 10, Anchor: AnchorStart, Baseline: BaselineMiddle},
			},
		)
	}

	for i, r := range b.records {
		v := b.values[i]
		yv := y.Map(v)
		prims = append(prims, Rect{
			X: band.Pos(i), Y: min(yv, base),
			W: w, H: math.Abs(base - yv),
			RX:    4,
			Datum: r.Label + ": " + format(v),
			Style: Style{Fill: b.fill(i), Opacity: 0.85, Class: "bar"},
		})
	}

	for i := range b.records {
		v := b.values[i]
		yv := y.Map(v)
		label := Text{
			X: band.Center(i), Y: yv + 15,
			Body:  format(v),
			Style: Style{Fill: TokenInverse, FontSize: 10, FontWeight: "bold", Anchor: AnchorMiddle},
		}
		if l.labelAbove {
			label.Y = yv - 6
			label.Style.Fill = TokenText
		}
		prims = append(prims, label)
	}

	for i, r := range b.records {
		prims = append(prims, Text{
			X: band.Center(i), Y: base + 12,
			Body:   r.Label,
			Rotate: -45,
			Style:  Style{Fill: TokenMuted, FontSize: 11, Anchor: AnchorEnd},
		})
	}

	for i := range b.records {
		m := b.marker(i)
		if m <= 0 {
			continue
		}
		cx, cy := band.Center(i), y.Map(b.values[i])-12
		prims = append(prims,
			Circle{CX: cx, CY: cy, R: 6, Style: Style{Fill: TokenMarker}},
			Text{
				X: cx, Y: cy,
				Body:  itoa(m),
				Style: Style{Fill: TokenInverse, FontSize: 8, FontWeight: "bold", Anchor: AnchorMiddle, Baseline: BaselineMiddle},
			},
		)
	}

	if l.axisTicks > 0 {
		prims = append(prims, AxisLeft(Axis{Scale: y, Ticks: l.axisTicks, Format: l.axisFormat}, cfg.Margins.Left)...)
	}
	return prims
}

func (b rankedBars) horizontal() []Primitive {
	cfg, l := b.cfg, b.l
	n := len(b.records)
	format := orDefault(l.format)

	left := cfg.Margins.Left
	band := scale.NewBand(n, cfg.Margins.Top, cfg.Baseline(), l.padding)
	x := scale.NewLinear(b.lo, b.hi, left, cfg.RightEdge())
	h := band.Bandwidth()

	prims := make([]Primitive, 0, 4*n+8)

	for i, r := range b.records {
		v := b.values[i]
		xv := x.Map(v)
		prims = append(prims, Rect{
			X: min(left, xv), Y: band.Pos(i),
			W: math.Abs(xv - left), H: h,
			RX:    4,
			Datum: r.Label + ": " + format(v),
			Style: Style{Fill: b.fill(i), Opacity: 0.85, Class: "bar"},
		})
	}

	for i, r := range b.records {
		cy := band.Center(i)
		prims = append(prims,
			Text{
				X: left - 8, Y: cy,
				Body:  r.Label,
				Style: Style{Fill: TokenText, FontSize: 11, Anchor: AnchorEnd, Baseline: BaselineMiddle},
			},
			Text{
				X: x.Map(b.values[i]) + 6, Y: cy,
				Body:  format(b.values[i]),
				Style: Style{Fill: TokenText, FontSize: 10, FontWeight: "bold", Anchor: AnchorStart, Baseline: BaselineMiddle},
			},
		)
	}

	for i := range b.records {
		m := b.marker(i)
		if m <= 0 {
			continue
		}
		cx, cy := x.Map(b.values[i])-8, band.Pos(i)
		prims = append(prims,
			Circle{CX: cx, CY: cy, R: 6, Style: Style{Fill: TokenMarker}},
			Text{
				X: cx, Y: cy,
				Body:  itoa(m),
				Style: Style{Fill: TokenInverse, FontSize: 8, FontWeight: "bold", Anchor: AnchorMiddle, Baseline: BaselineMiddle},
			},
		)
	}

	if l.hasAverage {
		ax := x.Map(l.average)
		prims = append(prims,
			Line{
				X1: ax, Y1: cfg.Margins.Top, X2: ax, Y2: cfg.Baseline(),
				Style: Style{Stroke: TokenReference, StrokeWidth: 2, Dash: l.avgDash},
			},
			Text{
				X: ax, Y: cfg.Margins.Top - 6,
				Body:  l.avgLabel,
				Style: Style{Fill: TokenReference, FontSize: 10, Anchor: AnchorMiddle},
			},
		)
	}

	if l.axisTicks > 0 {
		prims = append(prims, AxisBottom(Axis{Scale: x, Ticks: l.axisTicks, Format: l.axisFormat}, cfg.Baseline())...)
	}
	return prims
}
