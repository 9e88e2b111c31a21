package dashboard

import "github.com/matzehuels/cansdash/pkg/render/chart/layout"

// Band colors.
const (
	ColorStrong    = "#22c55e"
	ColorModerate  = "#eab308"
	ColorAttention = "#f97316"
	ColorAlert     = "#ef4444"
)

// Band classifies a rate against a pair of thresholds.
type Band int

const (
	BandAttention Band = iota
	BandModerate
	BandStrong
)

// String returns the display name.
func (b Band) String() string {
	switch b {
	case BandStrong:
		return "Strong"
	case BandModerate:
		return "Moderate"
	default:
		return "Needs Attention"
	}
}

// Color returns the band color.
func (b Band) Color() string {
	switch b {
	case BandStrong:
		return ColorStrong
	case BandModerate:
		return ColorModerate
	default:
		return ColorAttention
	}
}

// Thresholds is a strong/moderate cut pair.
type Thresholds struct {
	Strong   float64
	Moderate float64
}

var (
	// OutcomeThresholds band outcome improvement rates.
	OutcomeThresholds = Thresholds{Strong: 12, Moderate: 8}
	// MatchedThresholds band complexity reduction at matched starting
	// complexity.
	MatchedThresholds = Thresholds{Strong: 10, Moderate: 7}
)

// HighComplexity is the intake score at or above which a center's
// complexity is flagged.
const HighComplexity = 2.5

// complexityAlert is the intake score that raises an alert note.
const complexityAlert = 2.7

// Classify returns the band of v.
func (t Thresholds) Classify(v float64) Band {
	switch {
	case v >= t.Strong:
		return BandStrong
	case v >= t.Moderate:
		return BandModerate
	default:
		return BandAttention
	}
}

// Fill adapts the thresholds to a bar fill.
func (t Thresholds) Fill() layout.FillFunc {
	return layout.Thresholds(t.Strong, t.Moderate, ColorStrong, ColorModerate, ColorAttention)
}

// Legend describes the bands, e.g. "≥12% (Strong)".
func (t Thresholds) Legend() []layout.LegendItem {
	return []layout.LegendItem{
		{Label: "≥" + layout.General()(t.Strong) + "% (Strong)", Color: ColorStrong},
		{Label: layout.General()(t.Moderate) + "-" + layout.General()(t.Strong-1) + "% (Moderate)", Color: ColorModerate},
		{Label: "<" + layout.General()(t.Moderate) + "% (Needs Attention)", Color: ColorAttention},
	}
}

// ComplexityColor colors an intake complexity score.
func ComplexityColor(v float64) string {
	if v >= HighComplexity {
		return ColorAttention
	}
	return ColorModerate
}
