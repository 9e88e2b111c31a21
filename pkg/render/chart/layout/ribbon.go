package layout

// DefaultCurvature is the horizontal control-point offset as a fraction of
// the distance between the two columns.
const DefaultCurvature = 4.0 / 15.0

// RibbonStyle controls how a ribbon is stroked. Zero fields take the
// defaults of [DefaultRibbonStyle].
type RibbonStyle struct {
	Color       string
	MinWidth    float64
	ScaleFactor float64
	Opacity     float64
	Curvature   float64
}

// DefaultRibbonStyle returns the standard ribbon style in color.
func DefaultRibbonStyle(color string) RibbonStyle {
	return RibbonStyle{
		Color:       color,
		MinWidth:    1,
		ScaleFactor: 8,
		Opacity:     0.3,
		Curvature:   DefaultCurvature,
	}
}

func (s RibbonStyle) withDefaults() RibbonStyle {
	d := DefaultRibbonStyle(s.Color)
	if s.MinWidth > 0 {
		d.MinWidth = s.MinWidth
	}
	if s.ScaleFactor > 0 {
		d.ScaleFactor = s.ScaleFactor
	}
	if s.Opacity > 0 {
		d.Opacity = s.Opacity
	}
	if s.Curvature > 0 {
		d.Curvature = s.Curvature
	}
	if d.Color == "" {
		d.Color = TokenMuted
	}
	return d
}

// RibbonWidth is max(MinWidth, weight*ScaleFactor). Weights that are negative
// or not finite count as zero.
func RibbonWidth(weight float64, style RibbonStyle) float64 {
	style = style.withDefaults()
	if !finite(weight) || weight < 0 {
		weight = 0
	}
	return max(style.MinWidth, weight*style.ScaleFactor)
}

// RouteRibbon connects the right edge of src to the left edge of dst with a
// cubic bezier between the two segment midpoints. The control points sit
// Curvature*(endX-startX) inside each end at the endpoint heights, so the
// ribbon leaves and enters both columns horizontally.
func RouteRibbon(src, dst Segment, weight float64, style RibbonStyle) Path {
	style = style.withDefaults()

	x0, y0 := src.Right(), src.MidY()
	x1, y1 := dst.X, dst.MidY()
	off := style.Curvature * (x1 - x0)

	var p Path
	p.MoveTo(x0, y0)
	p.CubicTo(x0+off, y0, x1-off, y1, x1, y1)
	p.Style = Style{
		Fill:        TokenNone,
		Stroke:      style.Color,
		StrokeWidth: RibbonWidth(weight, style),
		Opacity:     style.Opacity,
		Class:       "ribbon",
	}
	return p
}
