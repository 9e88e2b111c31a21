package layout

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies a primitive type.
type Kind string

const (
	KindRect   Kind = "rect"
	KindText   Kind = "text"
	KindLine   Kind = "line"
	KindPath   Kind = "path"
	KindCircle Kind = "circle"
)

// Theme tokens. Any style color that does not start with '#' is one of these
// and is resolved against the active theme at render time.
const (
	TokenNone      = "none"
	TokenText      = "text"
	TokenMuted     = "muted"
	TokenFaint     = "faint"
	TokenAxis      = "axis"
	TokenGrid      = "grid"
	TokenReference = "reference"
	TokenMarker    = "marker"
	TokenInverse   = "inverse"
	TokenSurface   = "surface"
)

// Anchor is the horizontal text alignment.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Baseline is the vertical text alignment. The zero value is the alphabetic
// baseline.
type Baseline string

const BaselineMiddle Baseline = "middle"

// Style carries presentation attributes. Zero fields are omitted by sinks;
// a zero Opacity means fully opaque.
type Style struct {
	Fill        string    `json:"fill,omitempty"`
	Stroke      string    `json:"stroke,omitempty"`
	StrokeWidth float64   `json:"stroke_width,omitempty"`
	Opacity     float64   `json:"opacity,omitempty"`
	Dash        []float64 `json:"dash,omitempty"`
	FontSize    float64   `json:"font_size,omitempty"`
	FontWeight  string    `json:"font_weight,omitempty"`
	Anchor      Anchor    `json:"anchor,omitempty"`
	Baseline    Baseline  `json:"baseline,omitempty"`
	Class       string    `json:"class,omitempty"`
}

// Alpha returns the effective opacity in (0, 1].
func (s Style) Alpha() float64 {
	if s.Opacity <= 0 || s.Opacity > 1 {
		return 1
	}
	return s.Opacity
}

// DashArray formats Dash as an SVG stroke-dasharray value.
func (s Style) DashArray() string {
	parts := make([]string, len(s.Dash))
	for i, d := range s.Dash {
		parts[i] = fmt.Sprintf("%g", d)
	}
	return strings.Join(parts, ",")
}

// Primitive is a positioned drawing instruction. The set of implementations
// is closed: [Rect], [Text], [Line], [Path] and [Circle].
type Primitive interface {
	Kind() Kind
	primitive()
}

// Rect is a filled rectangle with optional rounded corners. Datum is a short
// description of the record it represents, shown as a tooltip by sinks that
// support one.
type Rect struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	RX    float64 `json:"rx,omitempty"`
	Datum string  `json:"datum,omitempty"`
	Style Style   `json:"style"`
}

// Text is a label anchored at (X, Y), rotated by Rotate degrees about that point.
type Text struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Body   string  `json:"body"`
	Rotate float64 `json:"rotate,omitempty"`
	Style  Style   `json:"style"`
}

// Line is a straight stroke.
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Style Style   `json:"style"`
}

// Circle is a filled disc.
type Circle struct {
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
	R     float64 `json:"r"`
	Style Style   `json:"style"`
}

// Point is a pixel coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PathOp is a path command.
type PathOp string

const (
	OpMove  PathOp = "M"
	OpLine  PathOp = "L"
	OpCubic PathOp = "C"
	OpClose PathOp = "Z"
)

// PathSegment is one path command. C1 and C2 are only meaningful for OpCubic.
type PathSegment struct {
	Op PathOp `json:"op"`
	To Point  `json:"to"`
	C1 Point  `json:"c1,omitzero"`
	C2 Point  `json:"c2,omitzero"`
}

// Path is an open or closed outline of line and cubic segments.
type Path struct {
	Segments []PathSegment `json:"segments"`
	Style    Style         `json:"style"`
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Op: OpMove, To: Point{x, y}})
}

// LineTo appends a straight segment.
func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Op: OpLine, To: Point{x, y}})
}

// CubicTo appends a cubic bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Segments = append(p.Segments, PathSegment{
		Op: OpCubic,
		C1: Point{c1x, c1y},
		C2: Point{c2x, c2y},
		To: Point{x, y},
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Segments = append(p.Segments, PathSegment{Op: OpClose})
}

// D formats the path as SVG path data.
func (p Path) D() string {
	var b strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case OpMove, OpLine:
			fmt.Fprintf(&b, "%s%.2f,%.2f", s.Op, s.To.X, s.To.Y)
		case OpCubic:
			fmt.Fprintf(&b, "C%.2f,%.2f %.2f,%.2f %.2f,%.2f",
				s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
		case OpClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func (Rect) Kind() Kind   { return KindRect }
func (Text) Kind() Kind   { return KindText }
func (Line) Kind() Kind   { return KindLine }
func (Path) Kind() Kind   { return KindPath }
func (Circle) Kind() Kind { return KindCircle }

func (Rect) primitive()   {}
func (Text) primitive()   {}
func (Line) primitive()   {}
func (Path) primitive()   {}
func (Circle) primitive() {}

// JSON encodings carry a "kind" discriminator next to the fields.

func (r Rect) MarshalJSON() ([]byte, error) {
	type alias Rect
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{KindRect, alias(r)})
}

func (t Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{KindText, alias(t)})
}

func (l Line) MarshalJSON() ([]byte, error) {
	type alias Line
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{KindLine, alias(l)})
}

func (p Path) MarshalJSON() ([]byte, error) {
	type alias Path
	return json.Marshal(struct {
		Kind Kind   `json:"kind"`
		D    string `json:"d"`
		alias
	}{KindPath, p.D(), alias(p)})
}

func (c Circle) MarshalJSON() ([]byte, error) {
	type alias Circle
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{KindCircle, alias(c)})
}

// Filter returns the primitives of type T in order.
func Filter[T Primitive](prims []Primitive) []T {
	var out []T
	for _, p := range prims {
		if v, ok := p.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
