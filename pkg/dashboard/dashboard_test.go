package dashboard

import (
	"math"
	"slices"
	"strings"
	"testing"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSummarize(t *testing.T) {
	s := Summarize(Sample())

	if s.Centers != 14 {
		t.Errorf("Centers = %d, want 14", s.Centers)
	}
	if s.TotalYouth != 41545 {
		t.Errorf("TotalYouth = %d, want 41545", s.TotalYouth)
	}
	if s.AvgOutcome != 10 {
		t.Errorf("AvgOutcome = %d, want 10", s.AvgOutcome)
	}
	if !approx(s.AvgComplexity, 33.5/14) {
		t.Errorf("AvgComplexity = %v, want %v", s.AvgComplexity, 33.5/14)
	}
	if s.TotalAlerts != 15 {
		t.Errorf("TotalAlerts = %d, want 15", s.TotalAlerts)
	}
	if s.TotalHighComplexity != 1933 {
		t.Errorf("TotalHighComplexity = %d, want 1933", s.TotalHighComplexity)
	}
	if math.Abs(s.EasternComplexity-2.7) > 1e-9 {
		t.Errorf("EasternComplexity = %v, want 2.7", s.EasternComplexity)
	}
	if got := math.Round(s.EasternLift); got != 21 {
		t.Errorf("EasternLift = %v, want ~21", s.EasternLift)
	}

	var got []int
	for _, sh := range s.Outcomes {
		got = append(got, sh.Percent)
	}
	if want := []int{56, 28, 11, 5}; !slices.Equal(got, want) {
		t.Errorf("Outcomes = %v, want %v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(Data{})
	if s.AvgOutcome != 0 || s.AvgComplexity != 0 || s.EasternLift != 0 {
		t.Errorf("Summarize(empty) = %+v, want zero averages", s)
	}
}

func TestSharesSumTo100(t *testing.T) {
	levels := []Level{{Name: "a", Count: 1}, {Name: "b", Count: 1}, {Name: "c", Count: 1}}
	var sum int
	for _, s := range shares(levels) {
		sum += s.Percent
	}
	if sum != 100 {
		t.Errorf("shares sum = %d, want 100", sum)
	}
}

func TestAlertNotes(t *testing.T) {
	const (
		complexity = "High intake complexity trend detected."
		outcome    = "Outcome rate below threshold."
	)
	tests := []struct {
		name string
		c    Center
		want []string
	}{
		{"no alerts", Center{AvgIntakeComplexity: 2.9, OutcomeImprovement: 4}, nil},
		{"both", Center{AvgIntakeComplexity: 2.9, OutcomeImprovement: 4, Alerts: 3}, []string{complexity, outcome}},
		{"complexity at threshold", Center{AvgIntakeComplexity: 2.7, OutcomeImprovement: 9, Alerts: 1}, []string{complexity}},
		{"outcome only", Center{AvgIntakeComplexity: 2.4, OutcomeImprovement: 7, Alerts: 1}, []string{outcome}},
		{"moderate band", Center{AvgIntakeComplexity: 2.5, OutcomeImprovement: 8, Alerts: 2}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlertNotes(tt.c); !slices.Equal(got, tt.want) {
				t.Errorf("AlertNotes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlertHeadline(t *testing.T) {
	if got := AlertHeadline(Center{Alerts: 1}); got != "1 active alert" {
		t.Errorf("AlertHeadline(1) = %q", got)
	}
	if got := AlertHeadline(Center{Alerts: 3}); got != "3 active alerts" {
		t.Errorf("AlertHeadline(3) = %q", got)
	}
}

func TestThresholds(t *testing.T) {
	tests := []struct {
		th   Thresholds
		v    float64
		want Band
	}{
		{OutcomeThresholds, 12, BandStrong},
		{OutcomeThresholds, 11.9, BandModerate},
		{OutcomeThresholds, 8, BandModerate},
		{OutcomeThresholds, 7.99, BandAttention},
		{MatchedThresholds, 10, BandStrong},
		{MatchedThresholds, 7, BandModerate},
		{MatchedThresholds, 6, BandAttention},
	}
	for _, tt := range tests {
		if got := tt.th.Classify(tt.v); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}

	labels := make([]string, 0, 3)
	for _, item := range OutcomeThresholds.Legend() {
		labels = append(labels, item.Label)
	}
	want := []string{"≥12% (Strong)", "8-11% (Moderate)", "<8% (Needs Attention)"}
	if !slices.Equal(labels, want) {
		t.Errorf("Legend() = %v, want %v", labels, want)
	}
}

func TestComplexityColor(t *testing.T) {
	if got := ComplexityColor(2.5); got != ColorAttention {
		t.Errorf("ComplexityColor(2.5) = %s, want %s", got, ColorAttention)
	}
	if got := ComplexityColor(2.4); got != ColorModerate {
		t.Errorf("ComplexityColor(2.4) = %s, want %s", got, ColorModerate)
	}
}

func TestViewTransitions(t *testing.T) {
	v := NewView()
	if v.Tab != TabOverview || v.Selected != 0 {
		t.Fatalf("NewView() = %+v", v)
	}

	next := v.Next()
	if next.Tab != TabOutcomes {
		t.Errorf("Next() = %s, want %s", next.Tab, TabOutcomes)
	}
	if v.Tab != TabOverview {
		t.Error("Next() mutated the receiver")
	}
	if got := v.Prev().Tab; got != TabArchitecture {
		t.Errorf("Prev() = %s, want %s", got, TabArchitecture)
	}
	if got := NewView().WithTab(TabArchitecture).Next().Tab; got != TabOverview {
		t.Errorf("Next() from last = %s, want %s", got, TabOverview)
	}

	sel := v.Toggle(3)
	if sel.Selected != 3 {
		t.Errorf("Toggle(3).Selected = %d, want 3", sel.Selected)
	}
	if got := sel.Toggle(3).Selected; got != 0 {
		t.Errorf("Toggle twice = %d, want 0", got)
	}
	if got := sel.Toggle(5).Selected; got != 5 {
		t.Errorf("Toggle(5) after 3 = %d, want 5", got)
	}
	if got := sel.WithTab(TabCompare); got.Selected != 3 || got.Tab != TabCompare {
		t.Errorf("WithTab() = %+v, want compare with selection kept", got)
	}
}

func TestParseTab(t *testing.T) {
	if got, err := ParseTab(" Compare "); err != nil || got != TabCompare {
		t.Errorf("ParseTab(Compare) = %v, %v", got, err)
	}
	_, err := ParseTab("bogus")
	if !cerrors.Is(err, cerrors.ErrCodeInvalidView) {
		t.Errorf("ParseTab(bogus) error = %v, want INVALID_VIEW", err)
	}
	for _, tab := range Tabs {
		if tab.Label() == "" || tab.Heading() == "" {
			t.Errorf("tab %s has no label or heading", tab)
		}
	}
}

func TestBuildAllViews(t *testing.T) {
	data := Sample()
	for _, tab := range Tabs {
		t.Run(string(tab), func(t *testing.T) {
			c, err := Build(data, View{Tab: tab}, Size{})
			if tab == TabArchitecture {
				if !cerrors.Is(err, cerrors.ErrCodeUnsupported) {
					t.Errorf("Build(architecture) error = %v, want UNSUPPORTED", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if len(c.Primitives) == 0 {
				t.Error("Build() returned no primitives")
			}
			if def := DefaultSize(tab); c.Width != def.Width || c.Height != def.Height {
				t.Errorf("size = %vx%v, want %vx%v", c.Width, c.Height, def.Width, def.Height)
			}
			if c.Name != string(tab) {
				t.Errorf("Name = %q, want %q", c.Name, tab)
			}
		})
	}
}

func TestBuildCompare(t *testing.T) {
	c, err := Build(Sample(), View{Tab: TabCompare}, Size{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var bars []layout.Rect
	for _, r := range layout.Filter[layout.Rect](c.Primitives) {
		if r.Style.Class == "bar" {
			bars = append(bars, r)
		}
	}
	if len(bars) != 14 {
		t.Fatalf("bars = %d, want 14", len(bars))
	}
	if bars[0].Datum != "Communicare: 16%" || bars[0].Style.Fill != ColorStrong {
		t.Errorf("first bar = %q %s, want Communicare in green", bars[0].Datum, bars[0].Style.Fill)
	}
	if last := bars[13]; last.Datum != "Mountain Comprehensive: 4%" || last.Style.Fill != ColorAttention {
		t.Errorf("last bar = %q %s, want Mountain Comprehensive in orange", last.Datum, last.Style.Fill)
	}

	// One marker per center with alerts.
	if got := len(layout.Filter[layout.Circle](c.Primitives)); got != 8 {
		t.Errorf("markers = %d, want 8", got)
	}

	var avg bool
	for _, txt := range layout.Filter[layout.Text](c.Primitives) {
		if txt.Body == "Avg: 10%" {
			avg = true
		}
	}
	if !avg {
		t.Error("average label missing")
	}
}

func TestBuildOverviewSelection(t *testing.T) {
	data := Sample()
	c, err := Build(data, NewView().Toggle(9), Size{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var cards, selected int
	for _, r := range layout.Filter[layout.Rect](c.Primitives) {
		if r.Style.Class != "card" {
			continue
		}
		cards++
		if r.Style.Stroke == selectedStroke {
			selected++
		}
	}
	if cards != 14 || selected != 1 {
		t.Errorf("cards = %d (selected %d), want 14 (1)", cards, selected)
	}

	var heading, alert bool
	for _, txt := range layout.Filter[layout.Text](c.Primitives) {
		switch {
		case txt.Body == "Mountain Comprehensive: Detailed View":
			heading = true
		case strings.Contains(txt.Body, "3 active alerts: High intake complexity trend detected. Outcome rate below threshold."):
			alert = true
		}
	}
	if !heading || !alert {
		t.Errorf("detail panel heading=%v alert=%v, want both", heading, alert)
	}

	if _, err := Build(data, NewView().Toggle(99), Size{}); !cerrors.Is(err, cerrors.ErrCodeNotFound) {
		t.Errorf("Build(unknown selection) error = %v, want NOT_FOUND", err)
	}
}

func TestBuildErrors(t *testing.T) {
	t.Run("invalid size", func(t *testing.T) {
		_, err := Build(Sample(), View{Tab: TabCompare}, Size{Width: -5, Height: 100})
		if !cerrors.Is(err, cerrors.ErrCodeInvalidConfig) {
			t.Errorf("error = %v, want INVALID_CONFIG", err)
		}
	})

	t.Run("empty total", func(t *testing.T) {
		data := Sample()
		for i := range data.Outcome {
			data.Outcome[i].Count = 0
		}
		c, err := Build(data, View{Tab: TabOutcomes}, Size{})
		if !cerrors.Is(err, cerrors.ErrCodeEmptyTotal) {
			t.Errorf("error = %v, want EMPTY_TOTAL", err)
		}
		if c.Primitives != nil {
			t.Errorf("Primitives = %d, want nil", len(c.Primitives))
		}
	})

	t.Run("no centers", func(t *testing.T) {
		for _, tab := range []Tab{TabOverview, TabCompare} {
			_, err := Build(Data{}, View{Tab: tab}, Size{})
			if !cerrors.Is(err, cerrors.ErrCodeEmptyDataset) {
				t.Errorf("%s error = %v, want EMPTY_DATASET", tab, err)
			}
		}
	})

	t.Run("unknown tab", func(t *testing.T) {
		_, err := Build(Sample(), View{Tab: "nope"}, Size{})
		if !cerrors.Is(err, cerrors.ErrCodeInvalidView) {
			t.Errorf("error = %v, want INVALID_VIEW", err)
		}
	})
}

func TestBuildDeterministic(t *testing.T) {
	data := Sample()
	for _, tab := range []Tab{TabOutcomes, TabTrends, TabDomains} {
		a, _ := Build(data, View{Tab: tab}, Size{})
		b, _ := Build(data, View{Tab: tab}, Size{})
		if len(a.Primitives) != len(b.Primitives) {
			t.Fatalf("%s: primitive counts differ", tab)
		}
		for i := range a.Primitives {
			if pa, pb := a.Primitives[i], b.Primitives[i]; pa.Kind() != pb.Kind() {
				t.Errorf("%s: primitive %d kind %s != %s", tab, i, pa.Kind(), pb.Kind())
			}
		}
	}
}

func TestCards(t *testing.T) {
	cards := Cards(Sample(), 700)
	if len(cards) != 14 {
		t.Fatalf("Cards() = %d, want 14", len(cards))
	}
	w := (700.0 - 60) / 7
	if !approx(cards[0].W, w) {
		t.Errorf("card width = %v, want %v", cards[0].W, w)
	}
	if c := cards[7]; c.X != 0 || c.Y != gridTop+cardHeight+cardGap {
		t.Errorf("cards[7] = (%v, %v), want (0, %v)", c.X, c.Y, gridTop+cardHeight+cardGap)
	}
	if !approx(cards[6].X+cards[6].W, 700) {
		t.Errorf("last column right edge = %v, want 700", cards[6].X+cards[6].W)
	}
}

func TestSampleIsolation(t *testing.T) {
	a := Sample()
	a.Centers[0].Name = "changed"
	a.RegionColors["Eastern"] = "#000000"
	b := Sample()
	if b.Centers[0].Name != "Four Rivers" || b.RegionColors["Eastern"] != "#ef4444" {
		t.Error("Sample() shares state between calls")
	}
}

func TestCenterRecords(t *testing.T) {
	records := Sample().CenterRecords()
	r := records[8]
	if r.Label != "Mountain Comprehensive" || r.Value != 4 {
		t.Errorf("record = %s %v", r.Label, r.Value)
	}
	if alerts, _ := r.Number(FieldAlerts); alerts != 3 {
		t.Errorf("alerts = %v, want 3", alerts)
	}
	if r.Tag(layout.TagRegion) != "Eastern" || r.Tag(layout.TagColor) != "#f97316" || r.Tag(layout.TagCity) != "Prestonsburg" {
		t.Errorf("tags = %v", r.Tags)
	}
}

func TestRenderInteractive(t *testing.T) {
	data := Sample()
	for _, tab := range []Tab{TabOutcomes, TabCompare, TabComplexity, TabDomains, TabImprovement, TabTrends} {
		t.Run(string(tab), func(t *testing.T) {
			out, err := RenderInteractive(data, tab)
			if err != nil {
				t.Fatalf("RenderInteractive() error: %v", err)
			}
			if !strings.Contains(string(out), "echarts") {
				t.Error("output does not load echarts")
			}
		})
	}

	for _, tab := range []Tab{TabOverview, TabArchitecture} {
		if _, err := RenderInteractive(data, tab); !cerrors.Is(err, cerrors.ErrCodeUnsupported) {
			t.Errorf("RenderInteractive(%s) error = %v, want UNSUPPORTED", tab, err)
		}
	}
}
