package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cansdash/pkg/cache"
	"github.com/matzehuels/cansdash/pkg/dashboard"
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

func quietRunner(c cache.Cache) *Runner {
	return NewRunner(c, nil, log.New(io.Discard))
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"html", false},
		{"SVG", true},
		{"gif", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !cerrors.Is(err, cerrors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, cerrors.GetCode(err))
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if o.View != "overview" || o.Tab() != dashboard.TabOverview {
		t.Errorf("View = %q, want overview", o.View)
	}
	if !slices.Equal(o.Formats, []string{"svg"}) || o.Theme != "dark" || o.Scale != DefaultScale {
		t.Errorf("defaults = %+v", o)
	}
	if o.Data == nil || len(o.Data.Centers) != 14 {
		t.Error("Data did not default to the sample")
	}

	o2 := Options{View: "Compare", Theme: "LIGHT"}
	if err := o2.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o2.View != "compare" || o2.Theme != "light" {
		t.Errorf("normalized = %q %q, want compare light", o2.View, o2.Theme)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code cerrors.Code
	}{
		{"view", Options{View: "nope"}, cerrors.ErrCodeInvalidView},
		{"format", Options{Formats: []string{"gif"}}, cerrors.ErrCodeInvalidFormat},
		{"theme", Options{Theme: "neon"}, cerrors.ErrCodeInvalidTheme},
		{"size", Options{Width: -1}, cerrors.ErrCodeInvalidConfig},
		{"huge width", Options{Width: 1e9}, cerrors.ErrCodeInvalidConfig},
		{"huge height", Options{Height: MaxSize + 1}, cerrors.ErrCodeInvalidConfig},
		{"infinite width", Options{Width: math.Inf(1)}, cerrors.ErrCodeInvalidConfig},
		{"nan height", Options{Height: math.NaN()}, cerrors.ErrCodeInvalidConfig},
		{"huge scale", Options{Scale: 10}, cerrors.ErrCodeInvalidConfig},
		{"nan scale", Options{Scale: math.NaN()}, cerrors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !cerrors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestValidateAndSetDefaultsBounds(t *testing.T) {
	o := Options{Width: MaxSize, Height: MaxSize, Scale: MaxScale}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Errorf("ValidateAndSetDefaults() at the limits error: %v", err)
	}
}

func TestExecutePNGTooLarge(t *testing.T) {
	opts := Options{View: "compare", Formats: []string{"png"}, Width: MaxSize, Height: MaxSize, Scale: 2}
	if _, err := quietRunner(nil).Execute(context.Background(), opts); !cerrors.Is(err, cerrors.ErrCodeInvalidConfig) {
		t.Errorf("Execute() error = %v, want INVALID_CONFIG", err)
	}
}

func TestExecute(t *testing.T) {
	r := quietRunner(nil)
	res, err := r.Execute(context.Background(), Options{View: "compare", Formats: []string{"svg", "json"}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.ID == "" || res.DataHash == "" {
		t.Errorf("Result = %+v, want ID and hash", res)
	}
	if res.Stats.Primitives == 0 {
		t.Error("no primitives")
	}

	svg := string(res.Artifacts["svg"])
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, "Communicare: 16%") {
		t.Errorf("svg artifact = %.80q", svg)
	}

	var out struct {
		Name       string            `json:"name"`
		Theme      string            `json:"theme"`
		Primitives []json.RawMessage `json:"primitives"`
	}
	if err := json.Unmarshal(res.Artifacts["json"], &out); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if out.Name != "compare" || out.Theme != "dark" || len(out.Primitives) != res.Stats.Primitives {
		t.Errorf("json artifact = %s/%s with %d primitives", out.Name, out.Theme, len(out.Primitives))
	}
}

func TestExecuteCaching(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := quietRunner(c)
	opts := Options{View: "trends", Formats: []string{"svg", "json"}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.Misses != 2 || first.CacheInfo.RenderHit {
		t.Errorf("first run cache = %+v, want 2 misses", first.CacheInfo)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheInfo.Hits != 2 || !second.CacheInfo.RenderHit {
		t.Errorf("second run cache = %+v, want 2 hits", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts["svg"], second.Artifacts["svg"]) {
		t.Error("cached svg differs from rendered svg")
	}

	opts.Refresh = true
	third, _ := r.Execute(ctx, opts)
	if third.CacheInfo.Hits != 0 {
		t.Errorf("refresh run hits = %d, want 0", third.CacheInfo.Hits)
	}

	data := dashboard.Sample()
	data.Centers[0].OutcomeImprovement = 3
	changed, _ := r.Execute(ctx, Options{View: "trends", Formats: []string{"svg"}, Data: &data})
	if changed.CacheInfo.Hits != 0 || changed.DataHash == first.DataHash {
		t.Error("changed dataset reused the cached artifact")
	}
}

func TestExecuteSkipsUnsupportedFormats(t *testing.T) {
	r := quietRunner(nil)
	res, err := r.Execute(context.Background(), Options{View: "overview", Formats: []string{"svg", "html"}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !slices.Equal(res.Skipped, []string{"html"}) {
		t.Errorf("Skipped = %v, want [html]", res.Skipped)
	}
	if _, ok := res.Artifacts["svg"]; !ok {
		t.Error("svg missing")
	}
}

func TestExecuteHTML(t *testing.T) {
	res, err := quietRunner(nil).Execute(context.Background(), Options{View: "domains", Formats: []string{"html"}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !bytes.Contains(res.Artifacts["html"], []byte("echarts")) {
		t.Error("html artifact does not load echarts")
	}
}

func TestExecuteArchitectureJSON(t *testing.T) {
	res, err := quietRunner(nil).Execute(context.Background(), Options{View: "architecture", Formats: []string{"json"}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Stats.Primitives != 0 {
		t.Errorf("Primitives = %d, want 0", res.Stats.Primitives)
	}
	if !bytes.Contains(res.Artifacts["json"], []byte(`"vendors"`)) {
		t.Error("architecture json has no vendors")
	}
}

func TestExecuteLayoutError(t *testing.T) {
	data := dashboard.Sample()
	for i := range data.Outcome {
		data.Outcome[i].Count = 0
	}
	_, err := quietRunner(nil).Execute(context.Background(), Options{View: "outcomes", Data: &data})
	if !cerrors.Is(err, cerrors.ErrCodeEmptyTotal) {
		t.Errorf("Execute() error = %v, want EMPTY_TOTAL", err)
	}
}

func TestRenderAll(t *testing.T) {
	views := []string{"overview", "compare", "complexity", "domains", "improvement", "trends"}
	results, err := quietRunner(nil).RenderAll(context.Background(), views, Options{Formats: []string{"svg"}})
	if err != nil {
		t.Fatalf("RenderAll() error: %v", err)
	}
	for i, res := range results {
		if res.View != views[i] {
			t.Errorf("results[%d].View = %s, want %s", i, res.View, views[i])
		}
		if len(res.Artifacts["svg"]) == 0 {
			t.Errorf("%s: empty svg", res.View)
		}
	}

	_, err = quietRunner(nil).RenderAll(context.Background(), []string{"compare", "bogus"}, Options{})
	if !cerrors.Is(err, cerrors.ErrCodeInvalidView) {
		t.Errorf("RenderAll(bogus) error = %v, want INVALID_VIEW", err)
	}
}

func TestLoadData(t *testing.T) {
	d, err := LoadData("")
	if err != nil || len(d.Centers) != 14 {
		t.Errorf("LoadData(\"\") = %d centers, %v", len(d.Centers), err)
	}
	if _, err := LoadData("missing.yaml"); !cerrors.Is(err, cerrors.ErrCodeFileNotFound) {
		t.Errorf("LoadData(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
