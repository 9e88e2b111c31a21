package layout

import (
	"slices"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

// Flow is a weighted link from intake record From to outcome record To.
type Flow struct {
	From   int     `json:"from" yaml:"from" toml:"from"`
	To     int     `json:"to" yaml:"to" toml:"to"`
	Weight float64 `json:"weight" yaml:"weight" toml:"weight"`
}

// FlowOption configures [LayoutFlow].
type FlowOption func(*flowLayout)

type flowLayout struct {
	stack  []StackOption
	ribbon RibbonStyle
}

// WithFlowStack applies stack options to both columns.
func WithFlowStack(opts ...StackOption) FlowOption {
	return func(l *flowLayout) { l.stack = append(l.stack, opts...) }
}

// WithRibbons overrides ribbon sizing. The color is always taken from the
// source record.
func WithRibbons(style RibbonStyle) FlowOption {
	return func(l *flowLayout) { l.ribbon = style }
}

// LayoutFlow draws the intake column at the left margin, the outcome column
// flush with the right margin, and one ribbon per flow colored by its intake
// record. Primitives are ordered intake column, outcome column, ribbons,
// title.
func LayoutFlow(intake, outcome Dataset, flows []Flow, cfg Config, opts ...FlowOption) ([]Primitive, error) {
	var l flowLayout
	for _, opt := range opts {
		opt(&l)
	}

	left := newStackLayout(slices.Concat(l.stack, []StackOption{WithLabelSide(LabelLeft)}))
	right := newStackLayout(slices.Concat(l.stack, []StackOption{WithLabelSide(LabelRight)}))

	src, err := stackSegments(intake, cfg, cfg.Margins.Left, left)
	if err != nil {
		return nil, err
	}
	dst, err := stackSegments(outcome, cfg, cfg.RightEdge()-right.barWidth, right)
	if err != nil {
		return nil, err
	}

	for i, f := range flows {
		if f.From < 0 || f.From >= len(intake) || f.To < 0 || f.To >= len(outcome) {
			return nil, cerrors.New(cerrors.ErrCodeInvalidRecord,
				"flow %d: link %d -> %d out of range", i, f.From, f.To)
		}
		if !finite(f.Weight) || f.Weight < 0 {
			return nil, cerrors.New(cerrors.ErrCodeInvalidRecord,
				"flow %d: weight %g must be finite and non-negative", i, f.Weight)
		}
	}

	prims := stackPrimitives(intake, src, left)
	prims = append(prims, stackPrimitives(outcome, dst, right)...)
	for _, f := range flows {
		style := l.ribbon
		style.Color = intake[f.From].Tag(TagColor)
		prims = append(prims, RouteRibbon(src[f.From], dst[f.To], f.Weight, style))
	}
	return append(prims, titleText(cfg)...), nil
}
