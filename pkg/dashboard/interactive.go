package dashboard

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
)

// RenderInteractive renders a tab as a self-contained interactive HTML page
// (ECharts, with hover tooltips and legend toggles). The overview and
// architecture tabs have no interactive form and return UNSUPPORTED.
func RenderInteractive(d Data, t Tab) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch t {
	case TabOutcomes:
		err = interactiveFlow(d).Render(&buf)
	case TabCompare:
		err = interactiveCompare(d).Render(&buf)
	case TabComplexity:
		err = interactiveComplexity(d).Render(&buf)
	case TabDomains:
		err = interactiveDomains(d).Render(&buf)
	case TabImprovement:
		err = interactiveImprovement(d).Render(&buf)
	case TabTrends:
		err = interactiveTrends(d).Render(&buf)
	default:
		if _, perr := ParseTab(string(t)); perr != nil {
			return nil, perr
		}
		return nil, cerrors.New(cerrors.ErrCodeUnsupported, "view %q has no interactive chart", t)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", t, err)
	}
	return buf.Bytes(), nil
}

func globals(t Tab) []charts.GlobalOpts {
	size := DefaultSize(t)
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: t.Heading(),
			Theme:     types.ThemeChalk,
			Width:     fmt.Sprintf("%.0fpx", size.Width+100),
			Height:    fmt.Sprintf("%.0fpx", size.Height+40),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    t.Heading(),
			Subtitle: t.Subtitle(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	}
}

// rankedBars returns the records in rank order as colored bar data.
func rankedBars(records layout.Dataset, color func(layout.Record) string) ([]string, []opts.BarData) {
	ranked, err := layout.RankRecords(records, layout.FieldValue)
	if err != nil {
		ranked = records
	}
	labels := ranked.Labels()
	data := make([]opts.BarData, len(ranked))
	for i, r := range ranked {
		data[i] = opts.BarData{
			Name:      r.Label,
			Value:     r.Value,
			ItemStyle: &opts.ItemStyle{Color: color(r)},
		}
	}
	return labels, data
}

func interactiveCompare(d Data) *charts.Bar {
	fill := OutcomeThresholds.Fill()
	labels, data := rankedBars(d.CenterRecords(), func(r layout.Record) string { return fill(r.Value) })
	avg := Summarize(d).AvgOutcome

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(globals(TabCompare),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: true, Rotate: 45, Interval: "0"}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Improvement", Min: 0, Max: 20, AxisLabel: &opts.AxisLabel{Show: true, Formatter: "{value}%"}}),
	)...)
	bar.SetXAxis(labels).
		AddSeries("Outcome improvement", data,
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: fmt.Sprintf("Avg: %d%%", avg), YAxis: avg}),
		)
	return bar
}

func interactiveComplexity(d Data) *charts.Bar {
	labels, data := rankedBars(d.ComplexityRecords(), func(r layout.Record) string {
		if c := r.Tag(layout.TagColor); c != "" {
			return c
		}
		return ColorModerate
	})
	state := Summarize(d).StateComplexity

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(globals(TabComplexity),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: true, Rotate: 45, Interval: "0"}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Avg Complexity Score", Min: 0, Max: 3.5}),
	)...)
	bar.SetXAxis(labels).
		AddSeries("Avg complexity", data,
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name: fmt.Sprintf("State Avg: %.2f", state), YAxis: fmt.Sprintf("%.2f", state),
			}),
		)
	return bar
}

func interactiveImprovement(d Data) *charts.Bar {
	labels, data := rankedBars(d.ImprovementRecords(), func(r layout.Record) string {
		return MatchedThresholds.Classify(r.Value).Color()
	})
	// Horizontal bars list from the bottom up; reverse so the best is on top.
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
		data[i], data[j] = data[j], data[i]
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(globals(TabImprovement),
		charts.WithYAxisOpts(opts.YAxis{Name: "Complexity Score Reduction", Min: 0, Max: 18, AxisLabel: &opts.AxisLabel{Show: true, Formatter: "{value}%"}}),
	)...)
	bar.SetXAxis(labels).AddSeries("Reduction", data)
	bar.XYReversal()
	return bar
}

func interactiveDomains(d Data) *charts.Bar {
	records := d.DomainRecords()
	series := []struct {
		field, name, color string
	}{
		{FieldEastern, "Eastern KY", "#ef4444"},
		{FieldStatewide, "Statewide Avg", "#64748b"},
		{FieldCentral, "Central KY", "#22c55e"},
		{FieldWestern, "Western KY", "#3b82f6"},
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(globals(TabDomains),
		charts.WithLegendOpts(opts.Legend{Show: true, Right: "10"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Score", Min: 0, Max: 3}),
	)...)
	bar.SetXAxis(records.Labels())
	for _, s := range series {
		data := make([]opts.BarData, len(records))
		for i, r := range records {
			v, _ := r.Number(s.field)
			data[i] = opts.BarData{Name: r.Label, Value: v}
		}
		bar.AddSeries(s.name, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.color}))
	}
	bar.XYReversal()
	return bar
}

func interactiveTrends(d Data) *charts.Line {
	complexity := make([]opts.LineData, len(d.Trend))
	high := make([]opts.LineData, len(d.Trend))
	months := make([]string, len(d.Trend))
	for i, p := range d.Trend {
		months[i] = p.Month
		complexity[i] = opts.LineData{Value: p.AvgComplexity}
		high[i] = opts.LineData{Value: p.HighComplexityPct}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(append(globals(TabTrends),
		charts.WithLegendOpts(opts.Legend{Show: true, Right: "10"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Avg Complexity Score", Min: 1.8, Max: 2.5}),
	)...)
	line.ExtendYAxis(opts.YAxis{Name: "% High Complexity", Min: 20, Max: 45, AxisLabel: &opts.AxisLabel{Show: true, Formatter: "{value}%"}})
	line.SetXAxis(months).
		AddSeries("Avg Complexity", complexity,
			charts.WithLineChartOpts(opts.LineChart{Smooth: true}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#8b5cf6"}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.2}),
		).
		AddSeries("% High Complexity (≥2.5)", high,
			charts.WithLineChartOpts(opts.LineChart{Smooth: true, YAxisIndex: 1}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ColorAlert}),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}),
		)
	return line
}

func interactiveFlow(d Data) *charts.Sankey {
	nodes := make([]opts.SankeyNode, 0, len(d.Intake)+len(d.Outcome))
	for _, l := range d.Intake {
		nodes = append(nodes, opts.SankeyNode{Name: l.Name})
	}
	for _, l := range d.Outcome {
		nodes = append(nodes, opts.SankeyNode{Name: l.Name})
	}

	links := make([]opts.SankeyLink, 0, len(d.Flows))
	for _, f := range d.Flows {
		if f.From < 0 || f.From >= len(d.Intake) || f.To < 0 || f.To >= len(d.Outcome) {
			continue
		}
		links = append(links, opts.SankeyLink{
			Source: d.Intake[f.From].Name,
			Target: d.Outcome[f.To].Name,
			Value:  float32(d.Intake[f.From].Count * f.Weight),
		})
	}

	sankey := charts.NewSankey()
	sankey.SetGlobalOptions(globals(TabOutcomes)...)
	sankey.AddSeries("Complexity flow", nodes, links,
		charts.WithLabelOpts(opts.Label{Show: true}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "source", Curveness: 0.5, Opacity: 0.3}),
	)
	return sankey
}
