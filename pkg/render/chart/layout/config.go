package layout

import (
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

// Margins is the space reserved around the plot area for axes and labels.
type Margins struct {
	Top    float64 `json:"top" yaml:"top" toml:"top"`
	Right  float64 `json:"right" yaml:"right" toml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom" toml:"bottom"`
	Left   float64 `json:"left" yaml:"left" toml:"left"`
}

// Domain is the value extent mapped onto the plot. The zero value is "auto".
type Domain struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Fixed bool    `json:"fixed"`
}

// Fixed returns the domain [min, max].
func Fixed(min, max float64) Domain {
	return Domain{Min: min, Max: max, Fixed: true}
}

// Auto returns the automatic domain [0, max(values)].
func Auto() Domain {
	return Domain{}
}

// Resolve returns the concrete extent for the given values. An automatic
// domain whose values are all non-positive resolves to [0, 1].
func (d Domain) Resolve(values []float64) (float64, float64) {
	if d.Fixed {
		return d.Min, d.Max
	}
	hi := 0.0
	for _, v := range values {
		hi = max(hi, v)
	}
	if hi <= 0 {
		hi = 1
	}
	return 0, hi
}

func (d Domain) validate(what string) error {
	if !d.Fixed {
		return nil
	}
	if !finite(d.Min) || !finite(d.Max) || d.Max <= d.Min {
		return cerrors.New(cerrors.ErrCodeInvalidConfig,
			"%s domain [%g, %g] must be finite with max > min", what, d.Min, d.Max)
	}
	return nil
}

// Config describes one chart surface. It is immutable for the duration of a
// layout call.
type Config struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Margins Margins `json:"margins"`
	Domain  Domain  `json:"domain"`
	Title   string  `json:"title,omitempty"`
}

// Validate checks that the plot area is non-empty.
func (c Config) Validate() error {
	if !finite(c.Width) || !finite(c.Height) || c.Width <= 0 || c.Height <= 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig,
			"dimensions must be positive, got %gx%g", c.Width, c.Height)
	}

	m := c.Margins
	for _, v := range []float64{m.Top, m.Right, m.Bottom, m.Left} {
		if !finite(v) || v < 0 {
			return cerrors.New(cerrors.ErrCodeInvalidConfig,
				"margins must be non-negative, got %+v", m)
		}
	}
	if m.Left+m.Right >= c.Width {
		return cerrors.New(cerrors.ErrCodeInvalidConfig,
			"horizontal margins %g+%g leave no room in width %g", m.Left, m.Right, c.Width)
	}
	if m.Top+m.Bottom >= c.Height {
		return cerrors.New(cerrors.ErrCodeInvalidConfig,
			"vertical margins %g+%g leave no room in height %g", m.Top, m.Bottom, c.Height)
	}

	return c.Domain.validate("value")
}

// PlotWidth is the width between the left and right margins.
func (c Config) PlotWidth() float64 { return c.Width - c.Margins.Left - c.Margins.Right }

// PlotHeight is the height between the top and bottom margins.
func (c Config) PlotHeight() float64 { return c.Height - c.Margins.Top - c.Margins.Bottom }

// Baseline is the y coordinate of the bottom edge of the plot.
func (c Config) Baseline() float64 { return c.Height - c.Margins.Bottom }

// RightEdge is the x coordinate of the right edge of the plot.
func (c Config) RightEdge() float64 { return c.Width - c.Margins.Right }

// Chart is one complete drawable surface: the primitives of a layout plus the
// canvas they were computed for.
type Chart struct {
	Name       string      `json:"name"`
	Title      string      `json:"title,omitempty"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Primitives []Primitive `json:"primitives"`
}

// NewChart wraps primitives computed for cfg.
func NewChart(name string, cfg Config, prims []Primitive) Chart {
	return Chart{
		Name:       name,
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Primitives: prims,
	}
}

// titleText returns the chart heading, if the config has one.
func titleText(c Config) []Primitive {
	if c.Title == "" {
		return nil
	}
	return []Primitive{Text{
		X: c.Width / 2, Y: 16,
		Body: c.Title,
		Style: Style{
			Fill:       TokenText,
			FontSize:   13,
			FontWeight: "600",
			Anchor:     AnchorMiddle,
		},
	}}
}
