package layout

import (
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

const (
	DefaultGap      = 4.0
	DefaultBarWidth = 30.0
)

// LabelSide selects which side of a stacked column carries labels.
type LabelSide int

const (
	LabelLeft LabelSide = iota
	LabelRight
)

// Segment is the resolved rectangle of one record in a stacked column.
// Index refers back to the record's position in the input.
type Segment struct {
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MidY is the vertical center of the segment.
func (s Segment) MidY() float64 { return s.Y + s.Height/2 }

// Right is the x coordinate of the segment's right edge.
func (s Segment) Right() float64 { return s.X + s.Width }

// StackOption configures stacked columns.
type StackOption func(*stackLayout)

type stackLayout struct {
	gap      float64
	barWidth float64
	side     LabelSide
	label    func(Record) string
}

// WithGap sets the vertical gap between segments (default 4).
func WithGap(gap float64) StackOption {
	return func(l *stackLayout) { l.gap = gap }
}

// WithBarWidth sets the column width (default 30).
func WithBarWidth(w float64) StackOption {
	return func(l *stackLayout) { l.barWidth = w }
}

// WithLabelSide chooses the label side. Right labels default to
// "label (count)".
func WithLabelSide(side LabelSide) StackOption {
	return func(l *stackLayout) { l.side = side }
}

// WithSegmentLabel overrides the label text.
func WithSegmentLabel(fn func(Record) string) StackOption {
	return func(l *stackLayout) { l.label = fn }
}

func newStackLayout(opts []StackOption) stackLayout {
	l := stackLayout{gap: DefaultGap, barWidth: DefaultBarWidth}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

func (l stackLayout) text(r Record) string {
	if l.label != nil {
		return l.label(r)
	}
	if l.side == LabelRight {
		return r.Label + " (" + FormatCount(r.Value) + ")"
	}
	return r.Label
}

// StackSegments divides the plot height among records in proportion to
// their values, top to bottom in input order:
//
//	available = PlotHeight - (n-1)*gap
//	height_i  = value_i / total * available
//	y_0       = Margins.Top
//	y_i+1     = y_i + height_i + gap
//
// Every segment starts at columnX and is the configured bar width wide.
// Negative or non-finite values are INVALID_RECORD; a zero total is
// EMPTY_TOTAL.
func StackSegments(records Dataset, cfg Config, columnX float64, opts ...StackOption) ([]Segment, error) {
	return stackSegments(records, cfg, columnX, newStackLayout(opts))
}

func stackSegments(records Dataset, cfg Config, columnX float64, l stackLayout) ([]Segment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, emptyDataset("stacked column")
	}
	if !finite(l.gap) || l.gap < 0 || !finite(l.barWidth) || l.barWidth <= 0 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfig,
			"gap %g and bar width %g must be non-negative and positive", l.gap, l.barWidth)
	}

	values, err := numbers(records, FieldValue)
	if err != nil {
		return nil, err
	}
	var total float64
	for i, v := range values {
		if v < 0 {
			return nil, cerrors.New(cerrors.ErrCodeInvalidRecord,
				"record %d (%q): negative value %g", i, records[i].Label, v)
		}
		total += v
	}
	if total == 0 {
		return nil, cerrors.New(cerrors.ErrCodeEmptyTotal, "stacked column values sum to zero")
	}

	available := cfg.PlotHeight() - float64(len(records)-1)*l.gap
	if available <= 0 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfig,
			"gaps of %g leave no room for %d segments", l.gap, len(records))
	}

	segs := make([]Segment, len(records))
	y := cfg.Margins.Top
	for i, v := range values {
		h := v / total * available
		segs[i] = Segment{Index: i, X: columnX, Y: y, Width: l.barWidth, Height: h}
		y += h + l.gap
	}
	return segs, nil
}

// LayoutStackedColumn draws the segments of [StackSegments] as rounded
// rectangles colored by each record's color tag, with a label beside each.
func LayoutStackedColumn(records Dataset, cfg Config, columnX float64, opts ...StackOption) ([]Primitive, error) {
	l := newStackLayout(opts)
	segs, err := stackSegments(records, cfg, columnX, l)
	if err != nil {
		return nil, err
	}
	return append(stackPrimitives(records, segs, l), titleText(cfg)...), nil
}

func stackPrimitives(records Dataset, segs []Segment, l stackLayout) []Primitive {
	prims := make([]Primitive, 0, 2*len(segs))
	for _, s := range segs {
		r := records[s.Index]
		color := r.Tag(TagColor)
		if color == "" {
			color = TokenMuted
		}
		prims = append(prims, Rect{
			X: s.X, Y: s.Y, W: s.Width, H: s.Height,
			RX:    4,
			Datum: r.Label + ": " + FormatCount(r.Value),
			Style: Style{Fill: color, Class: "segment"},
		})
	}
	for _, s := range segs {
		label := Text{
			Y:     s.MidY(),
			Body:  l.text(records[s.Index]),
			Style: Style{Fill: TokenText, FontSize: 11, Baseline: BaselineMiddle},
		}
		if l.side == LabelRight {
			label.X = s.Right() + 8
			label.Style.Anchor = AnchorStart
		} else {
			label.X = s.X - 8
			label.Style.Anchor = AnchorEnd
		}
		prims = append(prims, label)
	}
	return prims
}
