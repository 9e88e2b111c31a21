package scale

import (
	"math"
	"slices"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestLinearEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		d0, d1, r0, r1 float64
	}{
		{"vertical inverted", 0, 20, 300, 30},
		{"horizontal", 0, 18, 140, 640},
		{"offset domain", 1.8, 2.5, 320, 40},
		{"negative domain", -5, 5, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewLinear(tt.d0, tt.d1, tt.r0, tt.r1)
			if got := s.Map(tt.d0); !approx(got, tt.r0) {
				t.Errorf("Map(%v) = %v, want %v", tt.d0, got, tt.r0)
			}
			if got := s.Map(tt.d1); !approx(got, tt.r1) {
				t.Errorf("Map(%v) = %v, want %v", tt.d1, got, tt.r1)
			}
		})
	}
}

func TestLinearIsAffine(t *testing.T) {
	s := NewLinear(0, 20, 300, 30)
	m, b := s.Slope(), s.Intercept()

	if !approx(m, -13.5) {
		t.Errorf("Slope() = %v, want -13.5", m)
	}
	if !approx(b, 300) {
		t.Errorf("Intercept() = %v, want 300", b)
	}

	for _, x := range []float64{-10, -1, 0, 3.3, 10, 19.99, 20, 40} {
		if got, want := s.Map(x), m*x+b; !approx(got, want) {
			t.Errorf("Map(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestLinearUnclamped(t *testing.T) {
	s := NewLinear(0, 20, 300, 30)
	if got := s.Map(40); !approx(got, -240) {
		t.Errorf("Map(40) = %v, want -240", got)
	}
	if got := s.Map(-10); !approx(got, 435) {
		t.Errorf("Map(-10) = %v, want 435", got)
	}
}

func TestLinearInvert(t *testing.T) {
	s := NewLinear(1.8, 2.5, 320, 40)
	for _, v := range []float64{1.8, 2.0, 2.29, 2.5} {
		if got := s.Invert(s.Map(v)); !approx(got, v) {
			t.Errorf("Invert(Map(%v)) = %v", v, got)
		}
	}
}

func TestLinearDegenerateDomain(t *testing.T) {
	s := NewLinear(5, 5, 0, 100)
	if got := s.Map(5); got != 50 {
		t.Errorf("Map() = %v, want 50", got)
	}
	if got := s.Slope(); got != 0 {
		t.Errorf("Slope() = %v, want 0", got)
	}
}

func TestBand(t *testing.T) {
	b := NewBand(3, 0, 100, 0.2)

	if got := b.Step(); !approx(got, 31.25) {
		t.Errorf("Step() = %v, want 31.25", got)
	}
	if got := b.Bandwidth(); !approx(got, 25) {
		t.Errorf("Bandwidth() = %v, want 25", got)
	}

	wantPos := []float64{6.25, 37.5, 68.75}
	for i, want := range wantPos {
		if got := b.Pos(i); !approx(got, want) {
			t.Errorf("Pos(%d) = %v, want %v", i, got, want)
		}
	}
	if got := b.Center(0); !approx(got, 18.75) {
		t.Errorf("Center(0) = %v, want 18.75", got)
	}
}

func TestBandSymmetricOuterPadding(t *testing.T) {
	b := NewBand(14, 50, 670, 0.2)
	left := b.Pos(0) - 50
	right := 670 - (b.Pos(13) + b.Bandwidth())
	if !approx(left, right) {
		t.Errorf("outer padding left = %v, right = %v", left, right)
	}
	if !approx(left, b.Step()*0.2) {
		t.Errorf("outer padding = %v, want %v", left, b.Step()*0.2)
	}
}

func TestBandNoPadding(t *testing.T) {
	b := NewBand(4, 0, 100, 0)
	for i := 0; i < 4; i++ {
		if got := b.Pos(i); !approx(got, float64(i)*25) {
			t.Errorf("Pos(%d) = %v, want %v", i, got, float64(i)*25)
		}
	}
	if got := b.Bandwidth(); !approx(got, 25) {
		t.Errorf("Bandwidth() = %v, want 25", got)
	}
}

func TestBandReversed(t *testing.T) {
	fwd := NewBand(3, 0, 100, 0.2)
	rev := NewBand(3, 100, 0, 0.2)
	for i := 0; i < 3; i++ {
		if got, want := rev.Pos(i), fwd.Pos(2-i); !approx(got, want) {
			t.Errorf("reversed Pos(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestPoint(t *testing.T) {
	p := NewPoint(3, 0, 100)
	want := []float64{0, 50, 100}
	for i, w := range want {
		if got := p.Pos(i); !approx(got, w) {
			t.Errorf("Pos(%d) = %v, want %v", i, got, w)
		}
	}
	if p.Bandwidth() != 0 {
		t.Errorf("Bandwidth() = %v, want 0", p.Bandwidth())
	}

	single := NewPoint(1, 0, 100)
	if got := single.Pos(0); !approx(got, 50) {
		t.Errorf("single Pos(0) = %v, want 50", got)
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		count  int
		want   []float64
	}{
		{"percent axis", 0, 100, 5, []float64{0, 20, 40, 60, 80, 100}},
		{"compare axis", 0, 20, 5, []float64{0, 5, 10, 15, 20}},
		{"complexity axis", 0, 3.5, 7, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5}},
		{"fractional", 0, 1, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{"offset", 20, 45, 5, []float64{20, 25, 30, 35, 40, 45}},
		{"reversed", 10, 0, 2, []float64{10, 5, 0}},
		{"single", 3, 3, 5, []float64{3}},
		{"zero count", 0, 10, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ticks(tt.lo, tt.hi, tt.count)
			if !slices.EqualFunc(got, tt.want, approx) {
				t.Errorf("Ticks(%v, %v, %d) = %v, want %v", tt.lo, tt.hi, tt.count, got, tt.want)
			}
		})
	}
}
