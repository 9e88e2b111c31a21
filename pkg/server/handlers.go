package server

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cansdash/pkg/buildinfo"
	"github.com/matzehuels/cansdash/pkg/dashboard"
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/httputil"
	"github.com/matzehuels/cansdash/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatHTML: "text/html; charset=utf-8",
}

// viewInfo describes one tab in /api/views.
type viewInfo struct {
	Name      string            `json:"name"`
	Label     string            `json:"label"`
	Heading   string            `json:"heading"`
	Subtitle  string            `json:"subtitle"`
	Artifacts map[string]string `json:"artifacts"`
}

// viewFormats lists the artifact formats a tab can be rendered in.
func viewFormats(t dashboard.Tab) []string {
	if t == dashboard.TabOverview || t == dashboard.TabArchitecture {
		return slices.DeleteFunc(slices.Clone(pipeline.Formats), func(f string) bool {
			return f == pipeline.FormatHTML
		})
	}
	return pipeline.Formats
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, dashboard.Summarize(s.data))
}

func (s *Server) handleViews(w http.ResponseWriter, r *http.Request) {
	views := make([]viewInfo, 0, len(dashboard.Tabs))
	for _, t := range dashboard.Tabs {
		info := viewInfo{
			Name:      string(t),
			Label:     t.Label(),
			Heading:   t.Heading(),
			Subtitle:  t.Subtitle(),
			Artifacts: make(map[string]string),
		}
		for _, f := range viewFormats(t) {
			info.Artifacts[f] = "/views/" + string(t) + "/" + f
		}
		views = append(views, info)
	}
	httputil.WriteJSON(w, http.StatusOK, views)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	view, format := chi.URLParam(r, "view"), chi.URLParam(r, "format")
	opts, err := s.options(r.URL.Query(), view, format)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		log.FromContext(r.Context()).Debug("render failed", "view", view, "format", format, "err", err)
		httputil.WriteError(w, err)
		return
	}
	data, ok := res.Artifacts[format]
	if !ok {
		httputil.WriteError(w, cerrors.New(cerrors.ErrCodeUnsupported, "view %s has no %s rendering", view, format))
		return
	}

	cache := "MISS"
	if res.CacheInfo.RenderHit {
		cache = "HIT"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cache)
	w.Header().Set("X-Result-Id", res.ID)
	w.Write(data)
}

// options builds pipeline options from query parameters: theme, width,
// height, scale, selected and refresh.
func (s *Server) options(q url.Values, view string, formats ...string) (pipeline.Options, error) {
	opts := pipeline.Options{
		View:    view,
		Formats: formats,
		Theme:   s.theme,
	}
	if t := q.Get("theme"); t != "" {
		opts.Theme = t
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"scale", &opts.Scale},
	}
	for _, f := range floats {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, cerrors.New(cerrors.ErrCodeInvalidInput, "%s must be a number, got %q", f.name, v)
		}
		*f.dst = n
	}

	if v := q.Get("selected"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return opts, cerrors.New(cerrors.ErrCodeInvalidInput, "selected must be a center ID, got %q", v)
		}
		opts.Selected = id
	}
	if v := q.Get("refresh"); v != "" {
		refresh, err := strconv.ParseBool(v)
		if err != nil {
			return opts, cerrors.New(cerrors.ErrCodeInvalidInput, "refresh must be a boolean, got %q", v)
		}
		opts.Refresh = refresh
	}

	d := s.data
	opts.Data = &d
	return opts, nil
}
