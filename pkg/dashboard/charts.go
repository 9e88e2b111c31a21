package dashboard

import (
	"fmt"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
)

// Size is a chart canvas in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether no dimension is set.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

var defaultSizes = map[Tab]Size{
	TabOverview:    {700, 400},
	TabOutcomes:    {600, 300},
	TabCompare:     {700, 440},
	TabComplexity:  {700, 380},
	TabDomains:     {700, 380},
	TabImprovement: {700, 380},
	TabTrends:      {700, 400},
}

// DefaultSize returns the canvas each tab is designed for.
func DefaultSize(t Tab) Size {
	if s, ok := defaultSizes[t]; ok {
		return s
	}
	return Size{700, 400}
}

// Build lays out the chart for the view. A zero size selects the tab's
// default; a partially zero size fills the missing dimension from it.
//
// Build is a pure function of its arguments. It fails with the layout
// engine's error codes for bad data, NOT_FOUND for a selection that names
// no center, and UNSUPPORTED for the architecture tab, which is drawn as a
// graph rather than from chart primitives.
func Build(d Data, v View, size Size) (layout.Chart, error) {
	def := DefaultSize(v.Tab)
	if size.Width == 0 {
		size.Width = def.Width
	}
	if size.Height == 0 {
		size.Height = def.Height
	}

	var (
		c   layout.Chart
		err error
	)
	switch v.Tab {
	case TabOverview:
		c, err = buildOverview(d, v, size)
	case TabOutcomes:
		c, err = buildOutcomes(d, size)
	case TabCompare:
		c, err = buildCompare(d, size)
	case TabComplexity:
		c, err = buildComplexity(d, size)
	case TabDomains:
		c, err = buildDomains(d, size)
	case TabImprovement:
		c, err = buildImprovement(d, size)
	case TabTrends:
		c, err = buildTrends(d, size)
	case TabArchitecture:
		return layout.Chart{}, cerrors.New(cerrors.ErrCodeUnsupported,
			"the architecture view is a diagram; render it with the architecture renderer")
	default:
		_, err = ParseTab(string(v.Tab))
		return layout.Chart{}, err
	}
	if err != nil {
		return layout.Chart{}, fmt.Errorf("%s: %w", v.Tab, err)
	}
	return c, nil
}

func config(size Size, m layout.Margins, domain layout.Domain, title string) layout.Config {
	return layout.Config{Width: size.Width, Height: size.Height, Margins: m, Domain: domain, Title: title}
}

func buildOutcomes(d Data, size Size) (layout.Chart, error) {
	cfg := config(size, layout.Margins{Top: 20, Right: 120, Bottom: 20, Left: 120}, layout.Auto(),
		"Intake Complexity → Treatment → Outcomes")
	prims, err := layout.LayoutFlow(LevelRecords(d.Intake), LevelRecords(d.Outcome), d.Flows, cfg)
	if err != nil {
		return layout.Chart{}, err
	}
	return layout.NewChart(string(TabOutcomes), cfg, prims), nil
}

func buildCompare(d Data, size Size) (layout.Chart, error) {
	cfg := config(size, layout.Margins{Top: 30, Right: 30, Bottom: 140, Left: 50}, layout.Fixed(0, 20),
		"Outcome Improvement Rate by CMHC (% of youth showing clinically significant gains)")
	avg := Summarize(d).AvgOutcome
	prims, err := layout.LayoutRankedBars(d.CenterRecords(), cfg, layout.FieldValue,
		layout.WithFill(OutcomeThresholds.Fill()),
		layout.WithAverage(float64(avg), fmt.Sprintf("Avg: %d%%", avg)),
		layout.WithValueFormat(layout.Percent(0)),
		layout.WithMarkers(FieldAlerts),
		layout.WithValueAxis(5, layout.Percent(0)),
	)
	if err != nil {
		return layout.Chart{}, err
	}
	prims = append(prims, layout.Legend(OutcomeThresholds.Legend(), layout.LegendPlacement{
		X: cfg.Margins.Left, Y: cfg.Height - 20, Spacing: 170,
	})...)
	return layout.NewChart(string(TabCompare), cfg, prims), nil
}

func buildComplexity(d Data, size Size) (layout.Chart, error) {
	cfg := config(size, layout.Margins{Top: 40, Right: 30, Bottom: 120, Left: 50}, layout.Fixed(0, 3.5),
		"Average Complexity Score by Center")
	records := d.ComplexityRecords()
	state := Summarize(d).StateComplexity
	prims, err := layout.LayoutRankedBars(records, cfg, layout.FieldValue,
		layout.WithPadding(0.25),
		layout.WithColorTag(layout.TagColor),
		layout.WithAverage(state, fmt.Sprintf("State Avg: %.2f", state)),
		layout.WithAverageDash(8, 4),
		layout.WithValueFormat(layout.Decimals(1)),
		layout.WithValueLabelAbove(),
		layout.WithValueAxis(7, layout.Decimals(1)),
	)
	if err != nil {
		return layout.Chart{}, err
	}

	// Region legend in rank order of first appearance.
	ranked, _ := layout.RankRecords(records, layout.FieldValue)
	var items []layout.LegendItem
	seen := make(map[string]bool)
	for _, r := range ranked {
		region := r.Tag(layout.TagRegion)
		if seen[region] {
			continue
		}
		seen[region] = true
		items = append(items, layout.LegendItem{Label: region, Color: r.Tag(layout.TagColor)})
	}
	prims = append(prims, layout.Legend(items, layout.LegendPlacement{
		X: cfg.Margins.Left, Y: cfg.Height - 25, Spacing: 90,
	})...)
	return layout.NewChart(string(TabComplexity), cfg, prims), nil
}

func buildDomains(d Data, size Size) (layout.Chart, error) {
	cfg := config(size, layout.Margins{Top: 40, Right: 120, Bottom: 60, Left: 140}, layout.Fixed(0, 3),
		"CANS Domain Scores by Region")
	oneDecimal := layout.Decimals(1)
	series := []layout.Series{
		{Field: FieldEastern, Label: "Eastern KY", Color: "#ef4444", Format: oneDecimal},
		{Field: FieldStatewide, Label: "Statewide Avg", Color: "#64748b", Format: oneDecimal},
		{Field: FieldCentral, Label: "Central KY", Color: "#22c55e", Format: oneDecimal},
	}
	prims, err := layout.LayoutGroupedBars(d.DomainRecords(), cfg, series,
		layout.WithGridlines(
			layout.Gridline{Value: 1, Label: "Watchful"},
			layout.Gridline{Value: 2, Label: "Actionable"},
			layout.Gridline{Value: 3, Label: "Intensive"},
		),
	)
	if err != nil {
		return layout.Chart{}, err
	}
	return layout.NewChart(string(TabDomains), cfg, prims), nil
}

func buildImprovement(d Data, size Size) (layout.Chart, error) {
	cfg := config(size, layout.Margins{Top: 50, Right: 60, Bottom: 80, Left: 140}, layout.Fixed(0, 18),
		"Complexity Score Improvement at Matched Starting Complexity")
	records := d.ImprovementRecords()
	sum, err := records.Sum(layout.FieldValue)
	if err != nil {
		return layout.Chart{}, err
	}
	var avg float64
	if len(records) > 0 {
		avg = sum / float64(len(records))
	}
	prims, err := layout.LayoutRankedBars(records, cfg, layout.FieldValue,
		layout.WithHorizontal(),
		layout.WithPadding(0.35),
		layout.WithFill(MatchedThresholds.Fill()),
		layout.WithAverage(avg, fmt.Sprintf("Avg: %.0f%%", avg)),
		layout.WithAverageDash(8, 4),
		layout.WithValueFormat(layout.Percent(0)),
		layout.WithValueAxis(6, layout.Percent(0)),
	)
	if err != nil {
		return layout.Chart{}, err
	}
	mid := (cfg.Margins.Left + cfg.RightEdge()) / 2
	prims = append(prims,
		layout.Text{
			X: mid, Y: cfg.Height - 45, Body: "Complexity Score Reduction",
			Style: layout.Style{Fill: layout.TokenMuted, FontSize: 11, Anchor: layout.AnchorMiddle},
		},
		layout.Text{
			X: cfg.Width / 2, Y: cfg.Height - 20,
			Body:  "Matched pair assessments: initial to discharge complexity score change",
			Style: layout.Style{Fill: layout.TokenFaint, FontSize: 11, Anchor: layout.AnchorMiddle},
		},
	)
	return layout.NewChart(string(TabImprovement), cfg, prims), nil
}

func buildTrends(d Data, size Size) (layout.Chart, error) {
	cfg := config(size, layout.Margins{Top: 40, Right: 60, Bottom: 80, Left: 60}, layout.Auto(),
		"Statewide Complexity Trend")
	left := layout.Series{
		Field: FieldComplexity, Label: "Avg Complexity", Color: "#8b5cf6",
		Domain: layout.Fixed(1.8, 2.5), Format: layout.Decimals(1),
	}
	right := layout.Series{
		Field: FieldHighPct, Label: "% High Complexity (≥2.5)", Color: ColorAlert,
		Domain: layout.Fixed(20, 45), Format: layout.Percent(0),
	}
	prims, err := layout.LayoutTrend(d.TrendRecords(), cfg, left, right,
		layout.WithAxisTitles("Avg Complexity Score", "% High Complexity Cases"),
	)
	if err != nil {
		return layout.Chart{}, err
	}
	return layout.NewChart(string(TabTrends), cfg, prims), nil
}
