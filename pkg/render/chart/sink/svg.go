package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
	"github.com/matzehuels/cansdash/pkg/render/chart/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme      styles.Theme
	tooltips   bool
	background bool
}

func WithTheme(t styles.Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }
func WithTooltips() SVGOption            { return func(r *svgRenderer) { r.tooltips = true } }
func WithBackground() SVGOption          { return func(r *svgRenderer) { r.background = true } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{theme: styles.Dark()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws the chart as a standalone SVG document.
func RenderSVG(c layout.Chart, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.Width, c.Height, c.Width, c.Height)
	r.theme.RenderDefs(&buf)

	if r.background {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			c.Width, c.Height, r.theme.Background)
	}

	for _, p := range c.Primitives {
		r.renderPrimitive(&buf, p)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderPrimitive(buf *bytes.Buffer, p layout.Primitive) {
	switch p := p.(type) {
	case layout.Rect:
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"`, p.X, p.Y, p.W, p.H)
		if p.RX > 0 {
			fmt.Fprintf(buf, ` rx="%.1f"`, p.RX)
		}
		r.writeStyle(buf, p.Style)
		if r.tooltips && p.Datum != "" {
			fmt.Fprintf(buf, "><title>%s</title></rect>\n", styles.EscapeXML(p.Datum))
		} else {
			buf.WriteString("/>\n")
		}

	case layout.Text:
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f"`, p.X, p.Y)
		if p.Rotate != 0 {
			fmt.Fprintf(buf, ` transform="rotate(%g %.2f %.2f)"`, p.Rotate, p.X, p.Y)
		}
		r.writeStyle(buf, p.Style)
		fmt.Fprintf(buf, ">%s</text>\n", styles.EscapeXML(p.Body))

	case layout.Line:
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"`, p.X1, p.Y1, p.X2, p.Y2)
		r.writeStyle(buf, p.Style)
		buf.WriteString("/>\n")

	case layout.Path:
		fmt.Fprintf(buf, `  <path d="%s"`, p.D())
		r.writeStyle(buf, p.Style)
		buf.WriteString("/>\n")

	case layout.Circle:
		fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f"`, p.CX, p.CY, p.R)
		r.writeStyle(buf, p.Style)
		buf.WriteString("/>\n")
	}
}

func (r *svgRenderer) writeStyle(buf *bytes.Buffer, s layout.Style) {
	var attrs []string
	if s.Fill != "" {
		attrs = append(attrs, fmt.Sprintf(`fill="%s"`, r.theme.Resolve(s.Fill)))
	}
	if s.Stroke != "" {
		attrs = append(attrs, fmt.Sprintf(`stroke="%s"`, r.theme.Resolve(s.Stroke)))
	}
	if s.StrokeWidth > 0 {
		attrs = append(attrs, fmt.Sprintf(`stroke-width="%g"`, s.StrokeWidth))
	}
	if len(s.Dash) > 0 {
		attrs = append(attrs, fmt.Sprintf(`stroke-dasharray="%s"`, s.DashArray()))
	}
	if a := s.Alpha(); a < 1 {
		attrs = append(attrs, fmt.Sprintf(`opacity="%g"`, a))
	}
	if s.FontSize > 0 {
		attrs = append(attrs, fmt.Sprintf(`font-size="%g"`, s.FontSize))
	}
	if s.FontWeight != "" {
		attrs = append(attrs, fmt.Sprintf(`font-weight="%s"`, s.FontWeight))
	}
	if s.Anchor != "" {
		attrs = append(attrs, fmt.Sprintf(`text-anchor="%s"`, s.Anchor))
	}
	if s.Baseline != "" {
		attrs = append(attrs, fmt.Sprintf(`dominant-baseline="%s"`, s.Baseline))
	}
	if s.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, s.Class))
	}
	if len(attrs) > 0 {
		buf.WriteByte(' ')
		buf.WriteString(strings.Join(attrs, " "))
	}
}
