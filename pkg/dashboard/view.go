package dashboard

import (
	"slices"
	"strings"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

// Tab identifies one dashboard view.
type Tab string

const (
	TabOverview     Tab = "overview"
	TabOutcomes     Tab = "outcomes"
	TabCompare      Tab = "compare"
	TabComplexity   Tab = "complexity"
	TabDomains      Tab = "domains"
	TabImprovement  Tab = "improvement"
	TabTrends       Tab = "trends"
	TabArchitecture Tab = "architecture"
)

// Tabs lists every tab in display order.
var Tabs = []Tab{
	TabOverview, TabOutcomes, TabCompare, TabComplexity,
	TabDomains, TabImprovement, TabTrends, TabArchitecture,
}

type tabInfo struct {
	label, heading, subtitle string
}

var tabInfos = map[Tab]tabInfo{
	TabOverview: {"Regional Overview",
		"All 14 CMHCs",
		"Select a center to drill down."},
	TabOutcomes: {"Complexity → Outcomes",
		"Inbound Complexity to Outbound Outcomes: Statewide Flow",
		"How youth move from intake complexity levels through treatment to discharge outcomes across all 14 CMHCs."},
	TabCompare: {"Center Comparison",
		"Center-to-Center Performance Comparison",
		"Ranked by outcome improvement rate. Red dots indicate active alerts requiring attention."},
	TabComplexity: {"Complexity by Center",
		"Average Complexity Score by Center",
		"Eastern KY centers consistently show elevated acuity, a resource allocation signal."},
	TabDomains: {"Domain Patterns",
		"CANS Domain Scores by Region",
		"The trauma domain is significantly elevated in Eastern KY, a targeted intervention opportunity."},
	TabImprovement: {"Score Improvement",
		"Matched Pair Assessment Results by Center",
		"Average complexity reduction from initial assessment to discharge."},
	TabTrends: {"Statewide Trends",
		"Statewide Complexity Trend",
		"Rising acuity across the state over 12 months, an early warning for resource planning."},
	TabArchitecture: {"EHR Architecture",
		"EHR-Agnostic Architecture",
		"How a unified CANS layer provides visibility above fragmented EHR infrastructure."},
}

// ParseTab parses a tab name case-insensitively.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tabInfos[t]; !ok {
		return "", cerrors.New(cerrors.ErrCodeInvalidView,
			"unknown view %q (valid: %s)", s, strings.Join(TabNames(), ", "))
	}
	return t, nil
}

// TabNames returns the tab names in display order.
func TabNames() []string {
	out := make([]string, len(Tabs))
	for i, t := range Tabs {
		out[i] = string(t)
	}
	return out
}

// Label is the short tab-bar label.
func (t Tab) Label() string { return tabInfos[t].label }

// Heading is the view title.
func (t Tab) Heading() string { return tabInfos[t].heading }

// Subtitle is the one-sentence view description.
func (t Tab) Subtitle() string { return tabInfos[t].subtitle }

// Index returns the tab's display position, or -1.
func (t Tab) Index() int { return slices.Index(Tabs, t) }

// View is the dashboard's only mutable state: the active tab and the
// selected center. Views are values; transitions return a new View.
type View struct {
	Tab Tab `json:"tab"`
	// Selected is the selected center ID, or 0 for none.
	Selected int `json:"selected,omitempty"`
}

// NewView returns the initial view: overview with nothing selected.
func NewView() View {
	return View{Tab: TabOverview}
}

// WithTab switches tabs, keeping the selection.
func (v View) WithTab(t Tab) View {
	v.Tab = t
	return v
}

// Toggle selects the center, or clears the selection when it is already
// selected.
func (v View) Toggle(id int) View {
	if v.Selected == id {
		v.Selected = 0
	} else {
		v.Selected = id
	}
	return v
}

// Next moves to the following tab, wrapping around.
func (v View) Next() View { return v.step(1) }

// Prev moves to the preceding tab, wrapping around.
func (v View) Prev() View { return v.step(-1) }

func (v View) step(d int) View {
	i := v.Tab.Index()
	if i < 0 {
		i = 0
	}
	n := len(Tabs)
	v.Tab = Tabs[((i+d)%n+n)%n]
	return v
}
