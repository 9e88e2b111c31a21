// Package pipeline turns a dataset and a dashboard view into rendered
// artifacts. CLI, TUI and HTTP server all go through it so that caching and
// defaults behave the same everywhere.
//
// # Stages
//
//  1. Load: the dataset from a file, or the bundled sample ([LoadData])
//  2. Layout: [dashboard.Build] computes the chart primitives
//  3. Render: one artifact per format (SVG, PNG, PDF, JSON, HTML)
//
// Rendered artifacts are cached by dataset hash and render options, so an
// unchanged dataset re-renders only when Refresh is set.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    View:    "compare",
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
//
// [Runner.RenderAll] renders several views concurrently.
package pipeline

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/cansdash/pkg/cache"
	"github.com/matzehuels/cansdash/pkg/dashboard"
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
	"github.com/matzehuels/cansdash/pkg/render/chart/styles"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0

	// DefaultTheme is the default color theme.
	DefaultTheme = styles.ThemeDark

	// MaxSize bounds the canvas width and height in points.
	MaxSize = 8192.0

	// MaxScale bounds the PNG pixel density.
	MaxScale = 4.0
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatHTML = "html"
)

// Formats lists every output format.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatHTML}

// ValidateFormat checks that format is one of [Formats].
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return cerrors.New(cerrors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options configures one pipeline run. The JSON form is what the HTTP
// shell accepts.
type Options struct {
	View     string `json:"view"`
	Selected int    `json:"selected,omitempty"`

	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Theme   string   `json:"theme,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Refresh ignores cached artifacts and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Data is the dataset to draw; nil selects the bundled sample.
	Data *dashboard.Data `json:"-"`

	tab       dashboard.Tab
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.View == "" {
		o.View = string(dashboard.TabOverview)
	}
	tab, err := dashboard.ParseTab(o.View)
	if err != nil {
		return err
	}
	o.tab = tab
	o.View = string(tab)

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if _, err := styles.ByName(o.Theme); err != nil {
		return err
	}
	o.Theme = strings.ToLower(o.Theme)

	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 || o.Width < 0 || o.Height < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig,
			"size and scale must not be negative (%gx%g @%g)", o.Width, o.Height, o.Scale)
	}
	if !finite(o.Width, o.Height, o.Scale) {
		return cerrors.New(cerrors.ErrCodeInvalidConfig,
			"size and scale must be finite (%gx%g @%g)", o.Width, o.Height, o.Scale)
	}
	if o.Width > MaxSize || o.Height > MaxSize {
		return cerrors.New(cerrors.ErrCodeInvalidConfig,
			"size %gx%g exceeds %g per side", o.Width, o.Height, MaxSize)
	}
	if o.Scale > MaxScale {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "scale %g exceeds %g", o.Scale, MaxScale)
	}

	if o.Data == nil {
		sample := dashboard.Sample()
		o.Data = &sample
	}
	o.validated = true
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Tab is the parsed view. It is only meaningful after
// [Options.ValidateAndSetDefaults].
func (o *Options) Tab() dashboard.Tab { return o.tab }

// DashboardView is the dashboard state the options describe.
func (o *Options) DashboardView() dashboard.View {
	return dashboard.View{Tab: o.tab, Selected: o.Selected}
}

// Size is the requested canvas; zero dimensions take the view default.
func (o *Options) Size() dashboard.Size {
	return dashboard.Size{Width: o.Width, Height: o.Height}
}

// ArtifactKeyOpts returns the cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		View:     o.View,
		Format:   format,
		Width:    o.Width,
		Height:   o.Height,
		Theme:    o.Theme,
		Scale:    o.Scale,
		Selected: o.Selected,
	}
}

// =============================================================================
// Result
// =============================================================================

// Result is the output of one run.
type Result struct {
	// ID identifies the run in logs and API responses.
	ID   string `json:"id"`
	View string `json:"view"`

	// DataHash is the content hash of the dataset.
	DataHash string `json:"data_hash"`

	// Chart is the computed layout. It is empty for the architecture view,
	// which is drawn by Graphviz.
	Chart layout.Chart `json:"-"`

	// Artifacts maps format to rendered bytes.
	Artifacts map[string][]byte `json:"-"`

	// Skipped lists requested formats the view cannot produce.
	Skipped []string `json:"skipped,omitempty"`

	Stats     Stats     `json:"stats"`
	CacheInfo CacheInfo `json:"cache"`
}

// Stats holds timings and sizes.
type Stats struct {
	Primitives int           `json:"primitives"`
	LayoutTime time.Duration `json:"layout_ns"`
	RenderTime time.Duration `json:"render_ns"`
}

// CacheInfo counts artifact cache lookups.
type CacheInfo struct {
	Hits   int `json:"hits"`
	Misses int `json:"misses"`
	// RenderHit is set when every artifact came from the cache.
	RenderHit bool `json:"render_hit"`
}

func (r *Result) String() string {
	return fmt.Sprintf("%s: %d artifacts, %d primitives (%d cached)",
		r.View, len(r.Artifacts), r.Stats.Primitives, r.CacheInfo.Hits)
}
