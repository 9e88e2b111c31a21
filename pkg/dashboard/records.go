package dashboard

import "github.com/matzehuels/cansdash/pkg/render/chart/layout"

// Record field names.
const (
	FieldCaseload       = "caseload"
	FieldComplexity     = "complexity"
	FieldCounties       = "counties"
	FieldAlerts         = "alerts"
	FieldHighComplexity = "high_complexity"
	FieldStatewide      = "statewide"
	FieldEastern        = "eastern"
	FieldCentral        = "central"
	FieldWestern        = "western"
	FieldHighPct        = "high_pct"
)

// CenterRecords converts centers to records valued by outcome improvement.
// Records are tagged with the region name, region color and city.
func (d Data) CenterRecords() layout.Dataset {
	out := make(layout.Dataset, len(d.Centers))
	for i, c := range d.Centers {
		r, _ := d.Region(c.Region)
		out[i] = layout.Record{
			Label: c.Name,
			Value: c.OutcomeImprovement,
			Fields: map[string]float64{
				FieldCaseload:   float64(c.Caseload),
				FieldComplexity: c.AvgIntakeComplexity,
				FieldCounties:   float64(c.Counties),
				FieldAlerts:     float64(c.Alerts),
			},
			Tags: map[string]string{
				layout.TagRegion: r.Name,
				layout.TagColor:  d.RegionColor(c.Region),
				layout.TagCity:   c.City,
			},
		}
	}
	return out
}

// LevelRecords converts flow levels to records valued by count.
func LevelRecords(levels []Level) layout.Dataset {
	out := make(layout.Dataset, len(levels))
	for i, l := range levels {
		out[i] = layout.Record{
			Label: l.Name,
			Value: l.Count,
			Tags:  map[string]string{layout.TagColor: l.Color},
		}
	}
	return out
}

// ComplexityRecords converts complexity rows to records valued by average
// complexity, colored by region.
func (d Data) ComplexityRecords() layout.Dataset {
	out := make(layout.Dataset, len(d.Complexity))
	for i, c := range d.Complexity {
		tags := map[string]string{layout.TagRegion: c.Region}
		if color, ok := d.RegionColors[c.Region]; ok {
			tags[layout.TagColor] = color
		}
		out[i] = layout.Record{
			Label: c.Name,
			Value: c.AvgComplexity,
			Fields: map[string]float64{
				FieldCaseload:       float64(c.Caseload),
				FieldHighComplexity: float64(c.HighComplexity),
			},
			Tags: tags,
		}
	}
	return out
}

// DomainRecords converts domain scores to records valued by the statewide
// score with one field per region.
func (d Data) DomainRecords() layout.Dataset {
	out := make(layout.Dataset, len(d.Domains))
	for i, s := range d.Domains {
		out[i] = layout.Record{
			Label: s.Domain,
			Value: s.Statewide,
			Fields: map[string]float64{
				FieldStatewide: s.Statewide,
				FieldEastern:   s.Eastern,
				FieldCentral:   s.Central,
				FieldWestern:   s.Western,
			},
		}
	}
	return out
}

// ImprovementRecords converts matched improvement rows to records valued
// by improvement percentage.
func (d Data) ImprovementRecords() layout.Dataset {
	out := make(layout.Dataset, len(d.Improvement))
	for i, r := range d.Improvement {
		out[i] = layout.Record{Label: r.Center, Value: r.ImprovementPct}
	}
	return out
}

// TrendRecords converts trend points to records labeled by month.
func (d Data) TrendRecords() layout.Dataset {
	out := make(layout.Dataset, len(d.Trend))
	for i, p := range d.Trend {
		out[i] = layout.Record{
			Label: p.Month,
			Value: p.AvgComplexity,
			Fields: map[string]float64{
				FieldComplexity: p.AvgComplexity,
				FieldHighPct:    p.HighComplexityPct,
			},
		}
	}
	return out
}
