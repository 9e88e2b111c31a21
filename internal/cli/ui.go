package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/cansdash/pkg/dashboard"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// bandColors maps a performance band to its terminal color.
var bandColors = map[dashboard.Band]lipgloss.Color{
	dashboard.BandStrong:    colorGreen,
	dashboard.BandModerate:  colorYellow,
	dashboard.BandAttention: colorRed,
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output file.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints a render result on one line, e.g.
// "  412 primitives · 2 files · cached".
func printStats(w io.Writer, primitives, files int, cached bool) {
	var parts []string
	if primitives > 0 {
		parts = append(parts, fmt.Sprintf("%d primitives", primitives))
	}
	parts = append(parts, fmt.Sprintf("%d files", files))

	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Fprintln(w, line+StyleDim.Render(" · ")+statusStyle.Render(status))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Tables
// =============================================================================

// headerRow is the row index lipgloss tables pass for the header.
const headerRow = -1

// newTable returns a rounded table with the shared header style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...)
}

// kpiTable renders the headline figures.
func kpiTable(s dashboard.Summary) string {
	t := newTable("Metric", "Value").
		Row("CMHCs", fmt.Sprint(s.Centers)).
		Row("Youth served", fmt.Sprint(s.TotalYouth)).
		Row("Avg outcome improvement", fmt.Sprintf("%d%%", s.AvgOutcome)).
		Row("Avg intake complexity", fmt.Sprintf("%.2f", s.AvgComplexity)).
		Row("Active alerts", fmt.Sprint(s.TotalAlerts)).
		Row("Eastern KY complexity", fmt.Sprintf("%.2f (%+.0f%% vs state)", s.EasternComplexity, s.EasternLift)).
		Row("High-complexity youth", fmt.Sprint(s.TotalHighComplexity))
	return t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == headerRow:
			return styleHeader.Padding(0, 1)
		case col == 1:
			return StyleNumber.Padding(0, 1)
		}
		return lipgloss.NewStyle().Padding(0, 1)
	}).Render()
}

// centerTable renders one row per center, colored by outcome band.
func centerTable(d dashboard.Data) string {
	rows := make([][]string, len(d.Centers))
	bands := make([]dashboard.Band, len(d.Centers))
	for i, c := range d.Centers {
		region, _ := d.Region(c.Region)
		bands[i] = dashboard.OutcomeThresholds.Classify(c.OutcomeImprovement)
		rows[i] = []string{
			c.Name, region.Name, fmt.Sprint(c.Caseload),
			fmt.Sprintf("%.2f", c.AvgIntakeComplexity),
			fmt.Sprintf("%g%%", c.OutcomeImprovement),
			bands[i].String(), fmt.Sprint(c.Alerts),
		}
	}
	return newTable("Center", "Region", "Caseload", "Complexity", "Outcome", "Band", "Alerts").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == headerRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 5 && row >= 0 && row < len(bands) {
				return base.Foreground(bandColors[bands[row]])
			}
			return base
		}).
		Render()
}
