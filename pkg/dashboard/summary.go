package dashboard

import (
	"cmp"
	"math"
	"slices"
	"strconv"
)

// Summary holds the headline figures shown above every tab.
type Summary struct {
	Centers       int     `json:"centers"`
	TotalYouth    int     `json:"total_youth"`
	AvgOutcome    int     `json:"avg_outcome"`
	AvgComplexity float64 `json:"avg_complexity"`
	TotalAlerts   int     `json:"total_alerts"`

	// Assessment insights.
	StateComplexity     float64 `json:"state_complexity"`
	EasternComplexity   float64 `json:"eastern_complexity"`
	EasternLift         float64 `json:"eastern_lift"`
	TotalHighComplexity int     `json:"total_high_complexity"`

	Outcomes []Share `json:"outcomes"`
}

// Share is one outcome level's whole-percent share of all discharges.
type Share struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

// easternRegion names the region compared against the state average.
const easternRegion = "Eastern"

// Summarize computes the KPIs. Averages over an empty set are zero.
func Summarize(d Data) Summary {
	s := Summary{Centers: len(d.Centers)}

	var outcome, complexity float64
	for _, c := range d.Centers {
		s.TotalYouth += c.Caseload
		s.TotalAlerts += c.Alerts
		outcome += c.OutcomeImprovement
		complexity += c.AvgIntakeComplexity
	}
	if n := float64(len(d.Centers)); n > 0 {
		s.AvgOutcome = int(math.Round(outcome / n))
		s.AvgComplexity = complexity / n
	}

	var state, eastern float64
	var nEastern int
	for _, c := range d.Complexity {
		state += c.AvgComplexity
		s.TotalHighComplexity += c.HighComplexity
		if c.Region == easternRegion {
			eastern += c.AvgComplexity
			nEastern++
		}
	}
	if len(d.Complexity) > 0 {
		s.StateComplexity = state / float64(len(d.Complexity))
	}
	if nEastern > 0 {
		s.EasternComplexity = eastern / float64(nEastern)
	}
	if s.StateComplexity > 0 && nEastern > 0 {
		s.EasternLift = (s.EasternComplexity - s.StateComplexity) / s.StateComplexity * 100
	}

	s.Outcomes = shares(d.Outcome)
	return s
}

// shares rounds level counts to whole percentages that sum to 100, giving
// leftover points to the largest remainders.
func shares(levels []Level) []Share {
	var total float64
	for _, l := range levels {
		total += l.Count
	}
	out := make([]Share, len(levels))
	if total <= 0 {
		for i, l := range levels {
			out[i] = Share{Label: l.Name, Color: l.Color}
		}
		return out
	}

	rem := make([]float64, len(levels))
	left := 100
	for i, l := range levels {
		exact := l.Count / total * 100
		out[i] = Share{Label: l.Name, Percent: int(math.Floor(exact)), Color: l.Color}
		rem[i] = exact - math.Floor(exact)
		left -= out[i].Percent
	}

	idx := make([]int, len(levels))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(rem[b], rem[a]) })
	for k := 0; k < left && k < len(idx); k++ {
		out[idx[k]].Percent++
	}
	return out
}

// AlertNotes explains a center's alerts. It returns nil for a center
// without alerts.
func AlertNotes(c Center) []string {
	if c.Alerts == 0 {
		return nil
	}
	var notes []string
	if c.AvgIntakeComplexity >= complexityAlert {
		notes = append(notes, "High intake complexity trend detected.")
	}
	if OutcomeThresholds.Classify(c.OutcomeImprovement) == BandAttention {
		notes = append(notes, "Outcome rate below threshold.")
	}
	return notes
}

// AlertHeadline is the alert count line, e.g. "3 active alerts".
func AlertHeadline(c Center) string {
	if c.Alerts == 1 {
		return "1 active alert"
	}
	return strconv.Itoa(c.Alerts) + " active alerts"
}
