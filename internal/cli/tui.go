package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cansdash/pkg/dashboard"
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
)

// TUI styles
var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)

	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

const (
	barWidth   = 40
	labelWidth = 38
)

func (c *CLI) tuiCommand() *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the dashboard in the terminal",
		Long: `Browse the dashboard in the terminal.

Keys:
  ←/→, tab    previous/next view
  1-8         jump to a view
  ↑/↓         move the center cursor
  enter       select or deselect the center under the cursor
  q           quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.loadData(dataPath)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newDashboardModel(data), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "dataset file (default: bundled sample)")

	return cmd
}

// =============================================================================
// DashboardModel - Interactive dashboard
// =============================================================================

// DashboardModel is the bubbletea model of the terminal dashboard. Every
// key that changes the view rebuilds the chart before the next render.
type DashboardModel struct {
	Data    dashboard.Data
	Summary dashboard.Summary
	State   dashboard.View
	Cursor  int

	chart layout.Chart
	err   error
}

func newDashboardModel(d dashboard.Data) DashboardModel {
	m := DashboardModel{
		Data:    d,
		Summary: dashboard.Summarize(d),
		State:   dashboard.NewView(),
	}
	m.rebuild()
	return m
}

func (m *DashboardModel) rebuild() {
	if m.State.Tab == dashboard.TabArchitecture {
		m.chart, m.err = layout.Chart{}, nil
		return
	}
	m.chart, m.err = dashboard.Build(m.Data, m.State, dashboard.Size{})
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); s {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "tab", "l":
		m.State = m.State.Next()
	case "left", "shift+tab", "h":
		m.State = m.State.Prev()
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.Data.Centers)-1 {
			m.Cursor++
		}
		return m, nil
	case "enter", " ":
		if len(m.Data.Centers) == 0 {
			return m, nil
		}
		m.State = m.State.Toggle(m.Data.Centers[m.Cursor].ID)
	default:
		if len(s) != 1 || s[0] < '1' || int(s[0]-'1') >= len(dashboard.Tabs) {
			return m, nil
		}
		m.State = m.State.WithTab(dashboard.Tabs[s[0]-'1'])
	}
	m.rebuild()
	return m, nil
}

func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Kentucky CMHC CANS Dashboard"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d CMHCs · %d youth · %d%% avg outcome · %.2f avg complexity · %d alerts",
		m.Summary.Centers, m.Summary.TotalYouth, m.Summary.AvgOutcome, m.Summary.AvgComplexity, m.Summary.TotalAlerts)))
	b.WriteString("\n\n")

	tabs := make([]string, len(dashboard.Tabs))
	for i, t := range dashboard.Tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label())
		if t == m.State.Tab {
			tabs[i] = tabActiveStyle.Render(label)
		} else {
			tabs[i] = tabInactiveStyle.Render(label)
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	b.WriteString(StyleValue.Bold(true).Render(m.State.Tab.Heading()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(m.State.Tab.Subtitle()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(panelStyle.Render(styleIconError.Render(iconError) + " " + cerrors.UserMessage(m.err)))
	case m.State.Tab == dashboard.TabOverview:
		b.WriteString(m.centerList())
	case m.State.Tab == dashboard.TabArchitecture:
		b.WriteString(architectureText(m.Data))
	case m.State.Tab == dashboard.TabTrends:
		b.WriteString(trendText(m.Data.Trend))
	default:
		b.WriteString(barText(chartBars(m.chart)))
	}

	if panel := m.detailPanel(); panel != "" {
		b.WriteString("\n")
		b.WriteString(panel)
	}

	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render("←/→ view  1-8 jump  ↑/↓ move  ⏎ select  q quit"))
	return b.String()
}

func (m DashboardModel) centerList() string {
	var b strings.Builder
	for i, c := range m.Data.Centers {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		mark := " "
		if c.ID == m.State.Selected {
			mark = "●"
		}
		band := dashboard.OutcomeThresholds.Classify(c.OutcomeImprovement)
		outcome := lipgloss.NewStyle().Foreground(bandColors[band]).Render(fmt.Sprintf("%3g%%", c.OutcomeImprovement))
		alerts := ""
		if c.Alerts > 0 {
			alerts = styleIconWarning.Render(" " + dashboard.AlertHeadline(c))
		}
		fmt.Fprintf(&b, "%s%s %s %s %s%s\n", cursor, mark,
			style.Width(labelWidth-12).Render(c.Name), listDimStyle.Width(16).Render(c.City), outcome, alerts)
	}
	return b.String()
}

// detailPanel describes the selected center, or returns "" when nothing is
// selected.
func (m DashboardModel) detailPanel() string {
	c, ok := m.Data.Center(m.State.Selected)
	if !ok {
		return ""
	}
	lines := []string{
		StyleTitle.Render(c.Name + ": Detailed View"),
		fmt.Sprintf("%s · %d counties · %d youth", c.City, c.Counties, c.Caseload),
		fmt.Sprintf("Intake complexity %.2f · outcome improvement %g%% (%s)",
			c.AvgIntakeComplexity, c.OutcomeImprovement, dashboard.OutcomeThresholds.Classify(c.OutcomeImprovement)),
	}
	if c.Alerts > 0 {
		lines = append(lines, StyleWarning.Render(dashboard.AlertHeadline(c)))
		for _, note := range dashboard.AlertNotes(c) {
			lines = append(lines, "  "+note)
		}
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// =============================================================================
// Text charts
// =============================================================================

// textBar is one bar of a chart drawn with block characters.
type textBar struct {
	Label string
	Frac  float64
	Fill  string
}

// chartBars recovers the bars of a laid-out chart from its labeled rects.
// The varying dimension is the bar's magnitude: height for columns and
// stacked segments, width for horizontal bars.
func chartBars(c layout.Chart) []textBar {
	var rects []layout.Rect
	for _, r := range layout.Filter[layout.Rect](c.Primitives) {
		if r.Datum != "" && r.Style.Class != "card" {
			rects = append(rects, r)
		}
	}
	if len(rects) == 0 {
		return nil
	}

	minW, maxW := rects[0].W, rects[0].W
	minH, maxH := rects[0].H, rects[0].H
	for _, r := range rects[1:] {
		minW, maxW = min(minW, r.W), max(maxW, r.W)
		minH, maxH = min(minH, r.H), max(maxH, r.H)
	}
	byHeight := maxH-minH > maxW-minW
	top := maxW
	if byHeight {
		top = maxH
	}

	bars := make([]textBar, len(rects))
	for i, r := range rects {
		v := r.W
		if byHeight {
			v = r.H
		}
		frac := 0.0
		if top > 0 {
			frac = v / top
		}
		bars[i] = textBar{Label: r.Datum, Frac: frac, Fill: r.Style.Fill}
	}
	return bars
}

func barText(bars []textBar) string {
	var b strings.Builder
	for _, bar := range bars {
		style := StyleNumber
		if strings.HasPrefix(bar.Fill, "#") {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Fill))
		}
		n := int(bar.Frac*barWidth + 0.5)
		fmt.Fprintf(&b, "%s %s\n", listNormalStyle.Width(labelWidth).Render(truncate(bar.Label, labelWidth)), style.Render(strings.Repeat("█", n)))
	}
	return b.String()
}

func trendText(points []dashboard.TrendPoint) string {
	var top float64
	for _, p := range points {
		top = max(top, p.AvgComplexity)
	}
	bars := make([]textBar, len(points))
	for i, p := range points {
		frac := 0.0
		if top > 0 {
			frac = p.AvgComplexity / top
		}
		bars[i] = textBar{
			Label: fmt.Sprintf("%-4s %.2f  %2.0f%% high", p.Month, p.AvgComplexity, p.HighComplexityPct),
			Frac:  frac,
		}
	}
	return barText(bars)
}

func architectureText(d dashboard.Data) string {
	var b strings.Builder
	for _, l := range d.Architecture.Layers {
		name := StyleValue.Bold(true).Render(l.Name)
		if l.Barrier {
			name = StyleWarning.Render(l.Name)
		}
		fmt.Fprintf(&b, "%s\n", name)
		if len(l.Items) > 0 {
			fmt.Fprintf(&b, "  %s\n", listDimStyle.Render(strings.Join(l.Items, " · ")))
		}
	}
	counts := make(map[string]int, len(d.Architecture.Vendors))
	for _, c := range d.Architecture.Centers {
		counts[c.Vendor]++
	}
	confirmed := d.Architecture.Confirmed()
	for _, v := range d.Architecture.Vendors {
		fmt.Fprintf(&b, "%s %s: %d centers (%d confirmed)\n",
			lipgloss.NewStyle().Foreground(lipgloss.Color(v.Color)).Render("■"), v.Name, counts[v.Name], confirmed[v.Name])
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
