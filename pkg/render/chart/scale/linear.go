package scale

// Linear is an affine mapping from the domain [D0, D1] onto the range [R0, R1].
// A vertical chart axis is expressed by passing R0 > R1 (larger values map to
// smaller y).
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns the linear scale mapping d0→r0 and d1→r1.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map returns the range position of v. It is not clamped.
// A degenerate domain (D0 == D1) maps every value to the range midpoint.
func (s Linear) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Invert maps a range position back to the domain.
func (s Linear) Invert(px float64) float64 {
	if s.R1 == s.R0 {
		return (s.D0 + s.D1) / 2
	}
	return s.D0 + (px-s.R0)/(s.R1-s.R0)*(s.D1-s.D0)
}

// Slope is m in Map(v) = m*v + b.
func (s Linear) Slope() float64 {
	if s.D1 == s.D0 {
		return 0
	}
	return (s.R1 - s.R0) / (s.D1 - s.D0)
}

// Intercept is b in Map(v) = m*v + b.
func (s Linear) Intercept() float64 {
	return s.Map(0)
}

// Ticks returns nice tick values across the domain.
func (s Linear) Ticks(count int) []float64 {
	return Ticks(min(s.D0, s.D1), max(s.D0, s.D1), count)
}
