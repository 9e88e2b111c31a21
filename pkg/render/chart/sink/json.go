package sink

import (
	"encoding/json"

	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	theme  string
	indent bool
}

// WithJSONTheme records the theme name so the output can be re-drawn the
// same way.
func WithJSONTheme(name string) JSONOption { return func(r *jsonRenderer) { r.theme = name } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Name       string             `json:"name"`
	Title      string             `json:"title,omitempty"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Theme      string             `json:"theme,omitempty"`
	Primitives []layout.Primitive `json:"primitives"`
}

// RenderJSON encodes the chart's primitives. Each element carries a "kind"
// field ("rect", "text", "line", "path", "circle") next to its geometry.
func RenderJSON(c layout.Chart, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	prims := c.Primitives
	if prims == nil {
		prims = []layout.Primitive{}
	}
	out := jsonOutput{
		Name:       c.Name,
		Title:      c.Title,
		Width:      c.Width,
		Height:     c.Height,
		Theme:      r.theme,
		Primitives: prims,
	}
	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
