package scale

import "math"

// Band partitions a pixel range into n equal slots separated by padding.
//
// With padding p (used for both inner and outer padding):
//
//	step      = span / max(1, n - p + 2p)
//	bandwidth = step * (1 - p)
//
// and the slots are centered in the range. Slot positions depend only on n,
// the range and p, never on the records themselves.
type Band struct {
	n         int
	start     float64
	step      float64
	bandwidth float64
}

// NewBand creates a band scale of n slots over [r0, r1] with padding p in [0, 1].
func NewBand(n int, r0, r1, p float64) Band {
	return newBand(n, r0, r1, p, p)
}

// NewPoint creates a point scale of n positions over [r0, r1]: the outer
// positions sit on the range edges and the bandwidth is zero. A single point
// is centered.
func NewPoint(n int, r0, r1 float64) Band {
	return newBand(n, r0, r1, 1, 0)
}

func newBand(n int, r0, r1, inner, outer float64) Band {
	inner = math.Max(0, math.Min(1, inner))
	outer = math.Max(0, outer)

	reverse := r1 < r0
	start, stop := r0, r1
	if reverse {
		start, stop = r1, r0
	}

	fn := float64(max(n, 0))
	step := (stop - start) / math.Max(1, fn-inner+outer*2)
	start += (stop - start - step*(fn-inner)) * 0.5
	b := Band{n: n, start: start, step: step, bandwidth: step * (1 - inner)}

	if reverse {
		// Slot 0 sits at the high end of a reversed range.
		b.start = start + step*(fn-1)
		b.step = -step
	}
	return b
}

// Len is the number of slots.
func (b Band) Len() int { return b.n }

// Pos returns the leading edge of slot i.
func (b Band) Pos(i int) float64 { return b.start + b.step*float64(i) }

// Center returns the midpoint of slot i.
func (b Band) Center(i int) float64 { return b.Pos(i) + b.bandwidth/2 }

// Bandwidth is the width of one slot.
func (b Band) Bandwidth() float64 { return b.bandwidth }

// Step is the distance between the leading edges of adjacent slots.
func (b Band) Step() float64 { return math.Abs(b.step) }
