package scale

import "math"

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns roughly count evenly spaced "nice" values within [lo, hi].
// Steps are 1, 2 or 5 times a power of ten, as with d3.ticks. Negative
// powers are computed by division so that 0.1 steps print as 0.1, 0.2, ...
func Ticks(lo, hi float64, count int) []float64 {
	if count <= 0 || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	reverse := hi < lo
	if reverse {
		lo, hi = hi, lo
	}

	power, factor := tickIncrement(lo, hi, count)

	var ticks []float64
	if power >= 0 {
		step := factor * math.Pow(10, float64(power))
		i0, i1 := math.Ceil(lo/step), math.Floor(hi/step)
		for i := i0; i <= i1; i++ {
			ticks = append(ticks, i*step)
		}
	} else {
		inv := math.Pow(10, float64(-power)) / factor
		i0, i1 := math.Ceil(lo*inv), math.Floor(hi*inv)
		for i := i0; i <= i1; i++ {
			ticks = append(ticks, i/inv)
		}
	}

	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// tickIncrement returns the power of ten and the 1/2/5/10 factor of the tick step.
func tickIncrement(lo, hi float64, count int) (int, float64) {
	raw := (hi - lo) / float64(count)
	power := int(math.Floor(math.Log10(raw)))
	errv := raw / math.Pow(10, float64(power))

	factor := 1.0
	switch {
	case errv >= e10:
		factor = 10
	case errv >= e5:
		factor = 5
	case errv >= e2:
		factor = 2
	}
	return power, factor
}
