package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cansdash/pkg/buildinfo"
	"github.com/matzehuels/cansdash/pkg/dashboard"
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/httputil"
	"github.com/matzehuels/cansdash/pkg/pipeline"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
	"github.com/matzehuels/cansdash/pkg/render/chart/styles"
)

type tabLink struct {
	Name   string
	Label  string
	Active bool
}

type kpi struct {
	Label string
	Value string
}

type pageData struct {
	Title       string
	Tabs        []tabLink
	KPIs        []kpi
	Description template.HTML
	Chart       template.HTML
	Error       string
	Theme       styles.Theme
	Text        string
	Surface     string
	Version     string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; padding: 24px; background: {{.Theme.Background}}; color: {{.Text}}; font-family: {{.Theme.Font}}; }
nav a { display: inline-block; padding: 6px 12px; margin-right: 4px; border-radius: 6px; color: #94a3b8; text-decoration: none; }
nav a.active { background: {{.Surface}}; color: {{.Text}}; }
.kpis { display: flex; gap: 12px; margin: 16px 0; }
.kpi { background: {{.Surface}}; border-radius: 8px; padding: 12px 16px; }
.kpi b { display: block; font-size: 22px; }
.kpi span { font-size: 12px; color: #94a3b8; }
.placeholder { padding: 48px; border: 1px dashed #ef4444; border-radius: 8px; color: #fca5a5; }
table { border-collapse: collapse; } td, th { padding: 4px 10px; border-bottom: 1px solid #334155; }
footer { margin-top: 24px; font-size: 11px; color: #64748b; }
</style>
</head>
<body>
<h1>Kentucky CMHC CANS Dashboard</h1>
<nav>{{range .Tabs}}<a href="/?view={{.Name}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>{{end}}</nav>
<section class="kpis">{{range .KPIs}}<div class="kpi"><b>{{.Value}}</b><span>{{.Label}}</span></div>{{end}}</section>
<section class="description">{{.Description}}</section>
<section class="chart">{{if .Error}}<div class="placeholder">{{.Error}}</div>{{else}}{{.Chart}}{{end}}</section>
<footer>cansdash {{.Version}}</footer>
</body>
</html>
`))

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := q.Get("view")
	if view == "" {
		view = string(dashboard.TabOverview)
	}
	opts, err := s.options(q, view, pipeline.FormatSVG)
	if err == nil {
		err = opts.ValidateAndSetDefaults()
	}
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	theme, _ := styles.ByName(opts.Theme)

	page := pageData{
		Title:   "CANS Dashboard: " + opts.Tab().Label(),
		KPIs:    kpis(dashboard.Summarize(s.data)),
		Theme:   theme,
		Text:    theme.Colors[layout.TokenText],
		Surface: theme.Colors[layout.TokenSurface],
		Version: buildinfo.Get().Version,
	}
	for _, t := range dashboard.Tabs {
		page.Tabs = append(page.Tabs, tabLink{Name: string(t), Label: t.Label(), Active: t == opts.Tab()})
	}

	var desc bytes.Buffer
	if err := s.md.Convert([]byte(describe(s.data, opts.DashboardView())), &desc); err != nil {
		httputil.WriteError(w, fmt.Errorf("render description: %w", err))
		return
	}
	page.Description = template.HTML(desc.String())

	status := http.StatusOK
	res, err := s.runner.Execute(r.Context(), opts)
	switch {
	case err == nil:
		page.Chart = template.HTML(res.Artifacts[pipeline.FormatSVG])
	case cerrors.IsLayoutError(err):
		log.FromContext(r.Context()).Warn("chart unavailable", "view", opts.View, "err", err)
		status = http.StatusUnprocessableEntity
		page.Error = cerrors.UserMessage(err)
	default:
		httputil.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		httputil.WriteError(w, fmt.Errorf("render page: %w", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func kpis(sum dashboard.Summary) []kpi {
	return []kpi{
		{"CMHCs", fmt.Sprint(sum.Centers)},
		{"Youth Served", groupThousands(sum.TotalYouth)},
		{"Avg Outcome Improvement", fmt.Sprintf("%d%%", sum.AvgOutcome)},
		{"Avg Intake Complexity", fmt.Sprintf("%.2f", sum.AvgComplexity)},
		{"Active Alerts", fmt.Sprint(sum.TotalAlerts)},
	}
}

// describe is the markdown shown above the chart.
func describe(d dashboard.Data, v dashboard.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n", v.Tab.Heading(), v.Tab.Subtitle())

	switch v.Tab {
	case dashboard.TabOverview:
		if c, ok := d.Center(v.Selected); ok {
			fmt.Fprintf(&b, "\n### %s\n\n", c.Name)
			fmt.Fprintf(&b, "- **City:** %s\n- **Counties:** %d\n- **Caseload:** %s\n", c.City, c.Counties, groupThousands(c.Caseload))
			fmt.Fprintf(&b, "- **Outcome improvement:** %g%% (%s)\n", c.OutcomeImprovement, dashboard.OutcomeThresholds.Classify(c.OutcomeImprovement))
		}
		var rows []string
		for _, c := range d.Centers {
			if c.Alerts > 0 {
				rows = append(rows, fmt.Sprintf("| %s | %s | %s |", c.Name, dashboard.AlertHeadline(c), strings.Join(dashboard.AlertNotes(c), " ")))
			}
		}
		if len(rows) > 0 {
			b.WriteString("\n### Active alerts\n\n| Center | Alerts | Notes |\n|---|---|---|\n")
			b.WriteString(strings.Join(rows, "\n"))
			b.WriteString("\n")
		}
	case dashboard.TabComplexity:
		sum := dashboard.Summarize(d)
		if sum.EasternComplexity > 0 {
			fmt.Fprintf(&b, "\nEastern KY averages **%.2f** against a state average of %.2f (%+.0f%%). %d youth are at high complexity.\n",
				sum.EasternComplexity, sum.StateComplexity, sum.EasternLift, sum.TotalHighComplexity)
		}
	case dashboard.TabOutcomes:
		var parts []string
		for _, sh := range dashboard.Summarize(d).Outcomes {
			parts = append(parts, fmt.Sprintf("**%s** %d%%", sh.Label, sh.Percent))
		}
		if len(parts) > 0 {
			fmt.Fprintf(&b, "\nDischarge outcomes: %s.\n", strings.Join(parts, ", "))
		}
	}
	return b.String()
}

// groupThousands formats n with comma separators.
func groupThousands(n int) string {
	s := fmt.Sprint(n)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
