package dashboard

import (
	"github.com/matzehuels/cansdash/pkg/render/architecture"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
)

// =============================================================================
// Centers
// =============================================================================

// Region is one of the state's service regions.
type Region struct {
	ID    int    `json:"id" yaml:"id" toml:"id"`
	Name  string `json:"name" yaml:"name" toml:"name"`
	Color string `json:"color" yaml:"color" toml:"color"`
}

// Center is a Community Mental Health Center and its headline metrics.
type Center struct {
	ID       int    `json:"id" yaml:"id" toml:"id"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	City     string `json:"city" yaml:"city" toml:"city"`
	Region   int    `json:"region" yaml:"region" toml:"region"`
	Counties int    `json:"counties" yaml:"counties" toml:"counties"`
	Caseload int    `json:"caseload" yaml:"caseload" toml:"caseload"`
	// AvgIntakeComplexity is the mean CANS complexity score at intake (0-3).
	AvgIntakeComplexity float64 `json:"avg_intake_complexity" yaml:"avg_intake_complexity" toml:"avg_intake_complexity"`
	// OutcomeImprovement is the percentage of youth showing clinically
	// significant gains.
	OutcomeImprovement float64 `json:"outcome_improvement" yaml:"outcome_improvement" toml:"outcome_improvement"`
	Alerts             int     `json:"alerts" yaml:"alerts" toml:"alerts"`
}

// =============================================================================
// Flow
// =============================================================================

// Level is one stratum of the intake or outcome column.
type Level struct {
	Name  string  `json:"name" yaml:"name" toml:"name"`
	Count float64 `json:"count" yaml:"count" toml:"count"`
	Color string  `json:"color" yaml:"color" toml:"color"`
}

// =============================================================================
// Insights
// =============================================================================

// ComplexityRow is a center's assessment complexity summary.
type ComplexityRow struct {
	Name           string  `json:"name" yaml:"name" toml:"name"`
	Region         string  `json:"region" yaml:"region" toml:"region"`
	AvgComplexity  float64 `json:"avg_complexity" yaml:"avg_complexity" toml:"avg_complexity"`
	Caseload       int     `json:"caseload" yaml:"caseload" toml:"caseload"`
	HighComplexity int     `json:"high_complexity" yaml:"high_complexity" toml:"high_complexity"`
}

// DomainScore is a CANS domain's mean score statewide and by region.
type DomainScore struct {
	Domain    string  `json:"domain" yaml:"domain" toml:"domain"`
	Statewide float64 `json:"statewide" yaml:"statewide" toml:"statewide"`
	Eastern   float64 `json:"eastern" yaml:"eastern" toml:"eastern"`
	Central   float64 `json:"central" yaml:"central" toml:"central"`
	Western   float64 `json:"western" yaml:"western" toml:"western"`
}

// ImprovementRow is a center's complexity reduction at matched starting
// complexity.
type ImprovementRow struct {
	Center             string  `json:"center" yaml:"center" toml:"center"`
	StartingComplexity string  `json:"starting_complexity" yaml:"starting_complexity" toml:"starting_complexity"`
	ImprovementPct     float64 `json:"improvement_pct" yaml:"improvement_pct" toml:"improvement_pct"`
}

// TrendPoint is one month of the statewide trend.
type TrendPoint struct {
	Month             string  `json:"month" yaml:"month" toml:"month"`
	AvgComplexity     float64 `json:"avg_complexity" yaml:"avg_complexity" toml:"avg_complexity"`
	HighComplexityPct float64 `json:"high_complexity_pct" yaml:"high_complexity_pct" toml:"high_complexity_pct"`
}

// =============================================================================
// Data
// =============================================================================

// Data is everything the dashboard draws. It is read-only once built;
// every chart is derived from it on demand.
type Data struct {
	Regions []Region `json:"regions" yaml:"regions" toml:"regions"`
	Centers []Center `json:"centers" yaml:"centers" toml:"centers"`

	Intake  []Level       `json:"intake" yaml:"intake" toml:"intake"`
	Outcome []Level       `json:"outcome" yaml:"outcome" toml:"outcome"`
	Flows   []layout.Flow `json:"flows" yaml:"flows" toml:"flows"`

	Complexity []ComplexityRow `json:"complexity" yaml:"complexity" toml:"complexity"`
	// RegionColors colors the complexity chart by ComplexityRow.Region.
	RegionColors map[string]string `json:"region_colors" yaml:"region_colors" toml:"region_colors"`
	Domains      []DomainScore     `json:"domains" yaml:"domains" toml:"domains"`
	Improvement  []ImprovementRow  `json:"improvement" yaml:"improvement" toml:"improvement"`
	Trend        []TrendPoint      `json:"trend" yaml:"trend" toml:"trend"`

	Architecture architecture.Diagram `json:"architecture" yaml:"architecture" toml:"architecture"`
}

// Region looks up a region by ID.
func (d Data) Region(id int) (Region, bool) {
	for _, r := range d.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Center looks up a center by ID.
func (d Data) Center(id int) (Center, bool) {
	for _, c := range d.Centers {
		if c.ID == id {
			return c, true
		}
	}
	return Center{}, false
}

// RegionColor returns the color of a center's region, or the muted token
// when the region is unknown.
func (d Data) RegionColor(id int) string {
	if r, ok := d.Region(id); ok && r.Color != "" {
		return r.Color
	}
	return layout.TokenMuted
}
