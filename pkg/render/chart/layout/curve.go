package layout

import "math"

// monotoneX appends a curve through pts that is monotone in y wherever the
// data is (Steffen's method, as d3.curveMonotoneX). Points must be ordered
// by increasing x.
func monotoneX(p *Path, pts []Point) {
	n := len(pts)
	if n == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	if n == 1 {
		return
	}
	if n == 2 {
		p.LineTo(pts[1].X, pts[1].Y)
		return
	}

	t := make([]float64, n)
	for i := 1; i < n-1; i++ {
		t[i] = slope3(pts[i-1], pts[i], pts[i+1])
	}
	t[0] = slope2(pts[0], pts[1], t[1])
	t[n-1] = slope2(pts[n-2], pts[n-1], t[n-2])

	for i := 1; i < n; i++ {
		a, b := pts[i-1], pts[i]
		dx := (b.X - a.X) / 3
		p.CubicTo(a.X+dx, a.Y+dx*t[i-1], b.X-dx, b.Y-dx*t[i], b.X, b.Y)
	}
}

// slope3 is the tangent at b given its neighbours.
func slope3(a, b, c Point) float64 {
	h0, h1 := b.X-a.X, c.X-b.X
	if h0 == 0 || h1 == 0 {
		return 0
	}
	s0, s1 := (b.Y-a.Y)/h0, (c.Y-b.Y)/h1
	q := (s0*h1 + s1*h0) / (h0 + h1)
	return (sign(s0) + sign(s1)) * min(math.Abs(s0), math.Abs(s1), 0.5*math.Abs(q))
}

// slope2 is the one-sided tangent at an end of segment a-b, given the
// tangent t at the other end.
func slope2(a, b Point, t float64) float64 {
	h := b.X - a.X
	if h == 0 {
		return t
	}
	return (3*(b.Y-a.Y)/h - t) / 2
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
