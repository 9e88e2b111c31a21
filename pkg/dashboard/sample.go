package dashboard

import (
	"maps"
	"slices"

	"github.com/matzehuels/cansdash/pkg/render/architecture"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
)

// Sample returns the bundled illustrative dataset: fourteen centers, the
// statewide complexity flow, the assessment insights and the EHR
// architecture. Each call returns a fresh copy.
func Sample() Data {
	return Data{
		Regions:      slices.Clone(sampleRegions),
		Centers:      slices.Clone(sampleCenters),
		Intake:       slices.Clone(sampleIntake),
		Outcome:      slices.Clone(sampleOutcome),
		Flows:        slices.Clone(sampleFlows),
		Complexity:   slices.Clone(sampleComplexity),
		RegionColors: maps.Clone(sampleRegionColors),
		Domains:      slices.Clone(sampleDomains),
		Improvement:  slices.Clone(sampleImprovement),
		Trend:        slices.Clone(sampleTrend),
		Architecture: sampleArchitecture(),
	}
}

var sampleRegions = []Region{
	{ID: 1, Name: "Western", Color: "#3b82f6"},
	{ID: 2, Name: "North Central", Color: "#8b5cf6"},
	{ID: 3, Name: "South Central/SE", Color: "#ec4899"},
	{ID: 4, Name: "Eastern", Color: "#f97316"},
	{ID: 5, Name: "Northeastern", Color: "#14b8a6"},
	{ID: 6, Name: "Northern/Louisville", Color: "#6366f1"},
	{ID: 7, Name: "Central", Color: "#22c55e"},
}

var sampleCenters = []Center{
	{ID: 1, Name: "Four Rivers", Region: 1, Counties: 9, Caseload: 2394, AvgIntakeComplexity: 2.4, OutcomeImprovement: 11, Alerts: 1, City: "Paducah"},
	{ID: 2, Name: "RiverValley", Region: 1, Counties: 7, Caseload: 2023, AvgIntakeComplexity: 2.1, OutcomeImprovement: 14, Alerts: 0, City: "Owensboro"},
	{ID: 3, Name: "Pennyroyal", Region: 1, Counties: 9, Caseload: 2205, AvgIntakeComplexity: 2.3, OutcomeImprovement: 9, Alerts: 0, City: "Hopkinsville"},
	{ID: 4, Name: "Communicare", Region: 2, Counties: 8, Caseload: 1946, AvgIntakeComplexity: 2.0, OutcomeImprovement: 16, Alerts: 0, City: "Elizabethtown"},
	{ID: 5, Name: "LifeSkills", Region: 2, Counties: 10, Caseload: 2884, AvgIntakeComplexity: 2.2, OutcomeImprovement: 13, Alerts: 0, City: "Bowling Green"},
	{ID: 6, Name: "Adanta", Region: 3, Counties: 10, Caseload: 1869, AvgIntakeComplexity: 2.5, OutcomeImprovement: 8, Alerts: 2, City: "Somerset"},
	{ID: 7, Name: "Cumberland River", Region: 3, Counties: 13, Caseload: 2723, AvgIntakeComplexity: 2.7, OutcomeImprovement: 6, Alerts: 3, City: "Corbin"},
	{ID: 8, Name: "Kentucky River", Region: 4, Counties: 8, Caseload: 2086, AvgIntakeComplexity: 2.8, OutcomeImprovement: 5, Alerts: 2, City: "Hazard"},
	{ID: 9, Name: "Mountain Comprehensive", Region: 4, Counties: 6, Caseload: 2492, AvgIntakeComplexity: 2.9, OutcomeImprovement: 4, Alerts: 3, City: "Prestonsburg"},
	{ID: 10, Name: "Pathways", Region: 5, Counties: 12, Caseload: 2338, AvgIntakeComplexity: 2.4, OutcomeImprovement: 10, Alerts: 1, City: "Ashland"},
	{ID: 11, Name: "Comprehend", Region: 5, Counties: 8, Caseload: 1386, AvgIntakeComplexity: 2.2, OutcomeImprovement: 12, Alerts: 0, City: "Maysville"},
	{ID: 12, Name: "NorthKey", Region: 6, Counties: 6, Caseload: 3661, AvgIntakeComplexity: 2.3, OutcomeImprovement: 11, Alerts: 1, City: "Covington"},
	{ID: 13, Name: "Seven Counties", Region: 6, Counties: 7, Caseload: 8729, AvgIntakeComplexity: 2.5, OutcomeImprovement: 9, Alerts: 2, City: "Louisville"},
	{ID: 14, Name: "New Vista", Region: 7, Counties: 17, Caseload: 4809, AvgIntakeComplexity: 2.2, OutcomeImprovement: 15, Alerts: 0, City: "Lexington"},
}

var sampleIntake = []Level{
	{Name: "Critical (3)", Count: 6692, Color: "#dc2626"},
	{Name: "Actionable (2)", Count: 17034, Color: "#f97316"},
	{Name: "Watchful (1)", Count: 12028, Color: "#eab308"},
	{Name: "None (0)", Count: 4791, Color: "#22c55e"},
}

var sampleOutcome = []Level{
	{Name: "Resolved", Count: 22841, Color: "#22c55e"},
	{Name: "Improved", Count: 11503, Color: "#84cc16"},
	{Name: "Stable", Count: 4218, Color: "#eab308"},
	{Name: "Declined", Count: 1983, Color: "#dc2626"},
}

// Share of each intake level reaching each outcome.
var sampleFlows = []layout.Flow{
	{From: 0, To: 0, Weight: 0.6}, {From: 0, To: 1, Weight: 0.25}, {From: 0, To: 2, Weight: 0.1}, {From: 0, To: 3, Weight: 0.05},
	{From: 1, To: 0, Weight: 0.55}, {From: 1, To: 1, Weight: 0.3}, {From: 1, To: 2, Weight: 0.1}, {From: 1, To: 3, Weight: 0.05},
	{From: 2, To: 0, Weight: 0.4}, {From: 2, To: 1, Weight: 0.35}, {From: 2, To: 2, Weight: 0.2}, {From: 2, To: 3, Weight: 0.05},
	{From: 3, To: 0, Weight: 0.7}, {From: 3, To: 1, Weight: 0.2}, {From: 3, To: 2, Weight: 0.08}, {From: 3, To: 3, Weight: 0.02},
}

var sampleComplexity = []ComplexityRow{
	{Name: "Four Rivers", Region: "Western", AvgComplexity: 2.1, Caseload: 342, HighComplexity: 89},
	{Name: "RiverValley", Region: "Western", AvgComplexity: 1.9, Caseload: 289, HighComplexity: 62},
	{Name: "Pennyroyal", Region: "Western", AvgComplexity: 2.0, Caseload: 315, HighComplexity: 78},
	{Name: "Communicare", Region: "Central", AvgComplexity: 1.8, Caseload: 278, HighComplexity: 51},
	{Name: "LifeSkills", Region: "Central", AvgComplexity: 1.9, Caseload: 412, HighComplexity: 94},
	{Name: "Seven Counties", Region: "Louisville", AvgComplexity: 2.3, Caseload: 1247, HighComplexity: 412},
	{Name: "NorthKey", Region: "Northern", AvgComplexity: 2.1, Caseload: 523, HighComplexity: 156},
	{Name: "Comprehend", Region: "Northern", AvgComplexity: 1.8, Caseload: 198, HighComplexity: 38},
	{Name: "Pathways", Region: "Eastern", AvgComplexity: 2.4, Caseload: 334, HighComplexity: 127},
	{Name: "New Vista", Region: "Central", AvgComplexity: 2.0, Caseload: 687, HighComplexity: 178},
	{Name: "Adanta", Region: "Southern", AvgComplexity: 2.5, Caseload: 267, HighComplexity: 104},
	{Name: "Cumberland River", Region: "Eastern", AvgComplexity: 2.7, Caseload: 389, HighComplexity: 187},
	{Name: "Kentucky River", Region: "Eastern", AvgComplexity: 2.8, Caseload: 298, HighComplexity: 159},
	{Name: "Mountain", Region: "Eastern", AvgComplexity: 2.9, Caseload: 356, HighComplexity: 198},
}

var sampleRegionColors = map[string]string{
	"Eastern":    "#ef4444",
	"Central":    "#22c55e",
	"Western":    "#3b82f6",
	"Northern":   "#8b5cf6",
	"Louisville": "#f97316",
	"Southern":   "#ec4899",
}

var sampleDomains = []DomainScore{
	{Domain: "Behavioral/Emotional", Statewide: 1.8, Eastern: 2.4, Central: 1.5, Western: 1.7},
	{Domain: "Risk Factors", Statewide: 1.4, Eastern: 1.9, Central: 1.2, Western: 1.3},
	{Domain: "Functioning", Statewide: 1.6, Eastern: 2.1, Central: 1.4, Western: 1.5},
	{Domain: "Care Intensity", Statewide: 1.5, Eastern: 2.2, Central: 1.3, Western: 1.4},
	{Domain: "Trauma", Statewide: 1.9, Eastern: 2.6, Central: 1.6, Western: 1.8},
	{Domain: "Substance Use", Statewide: 1.2, Eastern: 1.8, Central: 1.0, Western: 1.1},
}

var sampleImprovement = []ImprovementRow{
	{Center: "Communicare", StartingComplexity: "2.0-2.5", ImprovementPct: 14},
	{Center: "New Vista", StartingComplexity: "2.0-2.5", ImprovementPct: 12},
	{Center: "LifeSkills", StartingComplexity: "2.0-2.5", ImprovementPct: 11},
	{Center: "Seven Counties", StartingComplexity: "2.0-2.5", ImprovementPct: 9},
	{Center: "Pathways", StartingComplexity: "2.0-2.5", ImprovementPct: 8},
	{Center: "Cumberland River", StartingComplexity: "2.0-2.5", ImprovementPct: 6},
	{Center: "Kentucky River", StartingComplexity: "2.0-2.5", ImprovementPct: 5},
	{Center: "Mountain", StartingComplexity: "2.0-2.5", ImprovementPct: 4},
}

var sampleTrend = []TrendPoint{
	{Month: "Jul 2024", AvgComplexity: 2.02, HighComplexityPct: 28},
	{Month: "Aug 2024", AvgComplexity: 2.05, HighComplexityPct: 29},
	{Month: "Sep 2024", AvgComplexity: 2.08, HighComplexityPct: 30},
	{Month: "Oct 2024", AvgComplexity: 2.12, HighComplexityPct: 31},
	{Month: "Nov 2024", AvgComplexity: 2.18, HighComplexityPct: 33},
	{Month: "Dec 2024", AvgComplexity: 2.15, HighComplexityPct: 32},
	{Month: "Jan 2025", AvgComplexity: 2.21, HighComplexityPct: 34},
	{Month: "Feb 2025", AvgComplexity: 2.19, HighComplexityPct: 33},
	{Month: "Mar 2025", AvgComplexity: 2.24, HighComplexityPct: 35},
	{Month: "Apr 2025", AvgComplexity: 2.28, HighComplexityPct: 36},
	{Month: "May 2025", AvgComplexity: 2.31, HighComplexityPct: 37},
	{Month: "Jun 2025", AvgComplexity: 2.29, HighComplexityPct: 36},
}

func sampleArchitecture() architecture.Diagram {
	const unknown = "Unknown/Other"
	return architecture.Diagram{
		Layers: []architecture.Layer{
			{
				ID: "dbhdid", Name: "DBHDID State Oversight", Subtitle: "Unified Population Visibility", Color: "#1e3a5f",
				Items: []string{"Statewide Dashboard", "Federal Reporting", "Resource Allocation", "Quality Oversight"},
			},
			{
				ID: "cans", Name: "Objective Arts CANS Platform", Subtitle: "EHR-Agnostic Assessment Layer", Color: "#7c3aed",
				Items: []string{"Kentucky CANS 5+ 2.0", "Unified Data Model", "Cross-Center Analytics", "Outcome Tracking"},
			},
			{ID: "barrier", Name: "Integration Barrier", Subtitle: "Without unified layer, data stays siloed", Color: "#dc2626", Barrier: true},
			{ID: "ehr", Name: "Fragmented EHR Systems", Subtitle: "14 CMHCs x Multiple Vendors = Data Silos", Color: "#374151"},
		},
		Centers: []architecture.Center{
			{ID: 1, Name: "Four Rivers", Location: "Paducah", Vendor: unknown, Counties: 9},
			{ID: 2, Name: "RiverValley", Location: "Owensboro", Vendor: unknown, Counties: 7},
			{ID: 3, Name: "Pennyroyal", Location: "Hopkinsville", Vendor: unknown, Counties: 8},
			{ID: 4, Name: "LifeSkills", Location: "Bowling Green", Vendor: unknown, Counties: 10},
			{ID: 5, Name: "Communicare", Location: "Elizabethtown", Vendor: unknown, Counties: 8},
			{ID: 6, Name: "Seven Counties", Location: "Louisville", Vendor: unknown, Counties: 7},
			{ID: 7, Name: "NorthKey", Location: "Covington", Vendor: unknown, Counties: 8},
			{ID: 8, Name: "Comprehend", Location: "Maysville", Vendor: unknown, Counties: 8},
			{ID: 9, Name: "Pathways", Location: "Ashland", Vendor: "Netsmart", Counties: 5, Confirmed: true},
			{ID: 10, Name: "New Vista", Location: "Lexington", Vendor: unknown, Counties: 17},
			{ID: 11, Name: "Adanta", Location: "Somerset", Vendor: unknown, Counties: 10},
			{ID: 12, Name: "Cumberland River", Location: "Corbin", Vendor: unknown, Counties: 8},
			{ID: 13, Name: "KY River Community Care", Location: "Hazard", Vendor: "Qualifacts", Counties: 8, Confirmed: true},
			{ID: 14, Name: "Mountain Comprehensive", Location: "Prestonsburg", Vendor: unknown, Counties: 7},
		},
		Vendors: []architecture.Vendor{
			{Name: "Netsmart", Color: "#3b82f6", Products: "myAvatar, myEvolv"},
			{Name: "Qualifacts", Color: "#10b981", Products: "Credible, CareLogic"},
			{Name: unknown, Color: "#6b7280", Products: "Various systems"},
		},
	}
}
