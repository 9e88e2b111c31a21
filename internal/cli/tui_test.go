package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cansdash/pkg/dashboard"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
)

func press(m DashboardModel, keys ...tea.KeyMsg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(DashboardModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDashboardModelNavigation(t *testing.T) {
	d := dashboard.Sample()

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want dashboard.Tab
	}{
		{"initial", nil, dashboard.TabOverview},
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, dashboard.TabOutcomes},
		{"left wraps", []tea.KeyMsg{{Type: tea.KeyLeft}}, dashboard.TabArchitecture},
		{"tab", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}}, dashboard.TabCompare},
		{"digit", []tea.KeyMsg{runes("3")}, dashboard.TabCompare},
		{"last digit", []tea.KeyMsg{runes("8")}, dashboard.TabArchitecture},
		{"out of range digit", []tea.KeyMsg{runes("9")}, dashboard.TabOverview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(newDashboardModel(d), tt.keys...)
			if m.State.Tab != tt.want {
				t.Errorf("tab = %s, want %s", m.State.Tab, tt.want)
			}
		})
	}
}

func TestDashboardModelSelection(t *testing.T) {
	d := dashboard.Sample()
	m := newDashboardModel(d)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up at top, want 0", m.Cursor)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if want := d.Centers[1].ID; m.State.Selected != want {
		t.Errorf("Selected = %d, want %d", m.State.Selected, want)
	}
	if !strings.Contains(m.View(), d.Centers[1].Name+": Detailed View") {
		t.Error("View() missing the detail panel of the selected center")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State.Selected != 0 {
		t.Errorf("Selected = %d after second enter, want 0", m.State.Selected)
	}

	for range len(d.Centers) + 3 {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.Cursor != len(d.Centers)-1 {
		t.Errorf("Cursor = %d, want %d", m.Cursor, len(d.Centers)-1)
	}
}

func TestDashboardModelQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		t.Run(k.String(), func(t *testing.T) {
			_, cmd := press(newDashboardModel(dashboard.Sample()), k)
			if cmd == nil {
				t.Fatal("Update() returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command = %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestDashboardModelView(t *testing.T) {
	d := dashboard.Sample()

	tests := []struct {
		key  string
		want []string
	}{
		{"1", []string{"Kentucky CMHC CANS Dashboard", "Four Rivers", "Paducah", "1 active alert"}},
		{"3", []string{dashboard.TabCompare.Heading(), "Communicare"}},
		{"7", []string{dashboard.TabTrends.Heading(), "high"}},
		{"8", []string{dashboard.TabArchitecture.Heading(), "centers ("}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := press(newDashboardModel(d), runes(tt.key))
			if m.err != nil {
				t.Fatalf("rebuild error: %v", m.err)
			}
			view := m.View()
			for _, s := range tt.want {
				if !strings.Contains(view, s) {
					t.Errorf("View() missing %q", s)
				}
			}
		})
	}
}

func TestDashboardModelEmptyData(t *testing.T) {
	m := newDashboardModel(dashboard.Data{})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 0 || m.State.Selected != 0 {
		t.Errorf("Cursor, Selected = %d, %d, want 0, 0", m.Cursor, m.State.Selected)
	}
	_ = m.View()
}

func TestChartBars(t *testing.T) {
	tests := []struct {
		name  string
		prims []layout.Primitive
		want  []float64
	}{
		{
			name: "horizontal",
			prims: []layout.Primitive{
				layout.Rect{W: 100, H: 10, Datum: "a"},
				layout.Rect{W: 50, H: 10, Datum: "b"},
			},
			want: []float64{1, 0.5},
		},
		{
			name: "columns",
			prims: []layout.Primitive{
				layout.Rect{W: 20, H: 40, Datum: "a"},
				layout.Rect{W: 20, H: 80, Datum: "b"},
			},
			want: []float64{0.5, 1},
		},
		{
			name: "skips cards and unlabeled",
			prims: []layout.Primitive{
				layout.Rect{W: 300, H: 80},
				layout.Rect{W: 300, H: 80, Datum: "kpi", Style: layout.Style{Class: "card"}},
				layout.Text{Body: "a"},
				layout.Rect{W: 60, H: 10, Datum: "a"},
			},
			want: []float64{1},
		},
		{name: "empty", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars := chartBars(layout.Chart{Primitives: tt.prims})
			if len(bars) != len(tt.want) {
				t.Fatalf("chartBars() = %d bars, want %d", len(bars), len(tt.want))
			}
			for i, b := range bars {
				if b.Frac != tt.want[i] {
					t.Errorf("bar %d Frac = %v, want %v", i, b.Frac, tt.want[i])
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Communicare", 20); got != "Communicare" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("Mountain Comprehensive", 9); got != "Mountain…" {
		t.Errorf("truncate() = %q, want %q", got, "Mountain…")
	}
}
