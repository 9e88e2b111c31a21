package sink

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
	"github.com/matzehuels/cansdash/pkg/render/chart/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	theme styles.Theme
	scale float64
}

// WithPNGTheme sets the color theme (default dark).
func WithPNGTheme(t styles.Theme) PNGOption {
	return func(r *pngRenderer) { r.theme = t }
}

// WithPNGScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// curveSteps is the number of line segments used to flatten a cubic.
const curveSteps = 16

// MaxPixels bounds the raster area (256 MiB of RGBA).
const MaxPixels = 1 << 26

// RenderPNG rasterizes the chart in-process with go-chart's PNG renderer.
// The background is always filled.
func RenderPNG(c layout.Chart, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{theme: styles.Dark(), scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}

	pw, ph := math.Ceil(c.Width*r.scale), math.Ceil(c.Height*r.scale)
	if math.IsNaN(pw*ph) || pw*ph > MaxPixels {
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfig,
			"png %gx%g exceeds %d pixels", pw, ph, MaxPixels)
	}
	w, h := int(pw), int(ph)
	rr, err := chart.PNG(w, h)
	if err != nil {
		return nil, fmt.Errorf("init png renderer: %w", err)
	}
	// Font sizes are given in pixels; 72 DPI makes points equal pixels before scaling.
	rr.SetDPI(72 * r.scale)

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	rr.SetFont(font)

	d := rasterizer{r: rr, theme: r.theme, scale: r.scale}
	d.fillRect(0, 0, c.Width, c.Height, d.color(r.theme.Background, 1))
	for _, p := range c.Primitives {
		d.draw(p)
	}

	var buf bytes.Buffer
	if err := rr.Save(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

type rasterizer struct {
	r     chart.Renderer
	theme styles.Theme
	scale float64
}

func (d rasterizer) px(v float64) int { return int(math.Round(v * d.scale)) }

// color resolves a token; "none" yields a fully transparent color.
func (d rasterizer) color(token string, alpha float64) drawing.Color {
	c := parseColor(d.theme.Resolve(token))
	if c.A == 0 {
		return c
	}
	return c.WithAlpha(uint8(math.Round(255 * alpha)))
}

func parseColor(s string) drawing.Color {
	switch {
	case strings.HasPrefix(s, "#"):
		return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
	case s == "white":
		return drawing.ColorWhite
	case s == "black":
		return drawing.ColorBlack
	case s == layout.TokenNone || s == "":
		return drawing.ColorTransparent
	default:
		return drawing.Color{R: 128, G: 128, B: 128, A: 255}
	}
}

func (d rasterizer) stroke(s layout.Style) bool {
	if s.Stroke == "" || s.StrokeWidth <= 0 {
		return false
	}
	c := d.color(s.Stroke, s.Alpha())
	if c.A == 0 {
		return false
	}
	d.r.SetStrokeColor(c)
	d.r.SetStrokeWidth(s.StrokeWidth * d.scale)
	dash := make([]float64, len(s.Dash))
	for i, v := range s.Dash {
		dash[i] = v * d.scale
	}
	d.r.SetStrokeDashArray(dash)
	return true
}

func (d rasterizer) fill(s layout.Style) bool {
	c := d.color(s.Fill, s.Alpha())
	if c.A == 0 {
		return false
	}
	d.r.SetFillColor(c)
	return true
}

func (d rasterizer) finish(fill, stroke bool) {
	switch {
	case fill && stroke:
		d.r.FillStroke()
	case fill:
		d.r.Fill()
	case stroke:
		d.r.Stroke()
	}
	d.r.ResetStyle()
}

func (d rasterizer) draw(p layout.Primitive) {
	switch p := p.(type) {
	case layout.Rect:
		d.rect(p)
	case layout.Line:
		if d.stroke(p.Style) {
			d.r.MoveTo(d.px(p.X1), d.px(p.Y1))
			d.r.LineTo(d.px(p.X2), d.px(p.Y2))
			d.finish(false, true)
		}
	case layout.Circle:
		fill, stroke := d.fill(p.Style), d.stroke(p.Style)
		d.r.Circle(p.R*d.scale, d.px(p.CX), d.px(p.CY))
		d.finish(fill, stroke)
	case layout.Path:
		d.path(p)
	case layout.Text:
		d.text(p)
	}
}

func (d rasterizer) fillRect(x, y, w, h float64, c drawing.Color) {
	d.r.SetFillColor(c)
	d.r.MoveTo(d.px(x), d.px(y))
	d.r.LineTo(d.px(x+w), d.px(y))
	d.r.LineTo(d.px(x+w), d.px(y+h))
	d.r.LineTo(d.px(x), d.px(y+h))
	d.r.Close()
	d.finish(true, false)
}

func (d rasterizer) rect(p layout.Rect) {
	fill, stroke := d.fill(p.Style), d.stroke(p.Style)
	if !fill && !stroke {
		return
	}
	rx := min(p.RX, p.W/2, p.H/2)
	x0, y0, x1, y1 := p.X, p.Y, p.X+p.W, p.Y+p.H

	d.r.MoveTo(d.px(x0+rx), d.px(y0))
	d.r.LineTo(d.px(x1-rx), d.px(y0))
	d.r.QuadCurveTo(d.px(x1), d.px(y0), d.px(x1), d.px(y0+rx))
	d.r.LineTo(d.px(x1), d.px(y1-rx))
	d.r.QuadCurveTo(d.px(x1), d.px(y1), d.px(x1-rx), d.px(y1))
	d.r.LineTo(d.px(x0+rx), d.px(y1))
	d.r.QuadCurveTo(d.px(x0), d.px(y1), d.px(x0), d.px(y1-rx))
	d.r.LineTo(d.px(x0), d.px(y0+rx))
	d.r.QuadCurveTo(d.px(x0), d.px(y0), d.px(x0+rx), d.px(y0))
	d.r.Close()
	d.finish(fill, stroke)
}

func (d rasterizer) path(p layout.Path) {
	fill, stroke := d.fill(p.Style), d.stroke(p.Style)
	if !fill && !stroke {
		return
	}
	var cur layout.Point
	for _, s := range p.Segments {
		switch s.Op {
		case layout.OpMove:
			d.r.MoveTo(d.px(s.To.X), d.px(s.To.Y))
		case layout.OpLine:
			d.r.LineTo(d.px(s.To.X), d.px(s.To.Y))
		case layout.OpCubic:
			for i := 1; i <= curveSteps; i++ {
				pt := cubicAt(cur, s.C1, s.C2, s.To, float64(i)/curveSteps)
				d.r.LineTo(d.px(pt.X), d.px(pt.Y))
			}
		case layout.OpClose:
			d.r.Close()
			continue
		}
		cur = s.To
	}
	d.finish(fill, stroke)
}

func cubicAt(p0, p1, p2, p3 layout.Point, t float64) layout.Point {
	u := 1 - t
	a, b, c, e := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return layout.Point{
		X: a*p0.X + b*p1.X + c*p2.X + e*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + e*p3.Y,
	}
}

func (d rasterizer) text(p layout.Text) {
	if p.Body == "" {
		return
	}
	size := p.Style.FontSize
	if size <= 0 {
		size = 10
	}
	fill := p.Style.Fill
	if fill == "" {
		fill = layout.TokenText
	}
	d.r.SetFontColor(d.color(fill, p.Style.Alpha()))
	d.r.SetFontSize(size)

	box := d.r.MeasureText(p.Body)
	var dx, dy int
	switch p.Style.Anchor {
	case layout.AnchorMiddle:
		dx = -box.Width() / 2
	case layout.AnchorEnd:
		dx = -box.Width()
	}
	if p.Style.Baseline == layout.BaselineMiddle {
		dy = box.Height() / 2
	}

	x, y := d.px(p.X), d.px(p.Y)
	if p.Rotate != 0 {
		rad := p.Rotate * math.Pi / 180
		d.r.SetTextRotation(rad)
		// Rotate the anchor offset with the text.
		cos, sin := math.Cos(rad), math.Sin(rad)
		x += int(math.Round(float64(dx)*cos - float64(dy)*sin))
		y += int(math.Round(float64(dx)*sin + float64(dy)*cos))
		d.r.Text(p.Body, x, y)
		d.r.ClearTextRotation()
	} else {
		d.r.Text(p.Body, x+dx, y+dy)
	}
	d.r.ResetStyle()
}
