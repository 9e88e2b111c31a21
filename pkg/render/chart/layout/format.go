package layout

import (
	"math"
	"strconv"
	"strings"
)

// Formatter renders a value for a label.
type Formatter func(float64) string

// General prints the shortest exact representation ("11", "2.29").
func General() Formatter {
	return func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
}

// Decimals prints a fixed number of decimal places.
func Decimals(n int) Formatter {
	return func(v float64) string { return strconv.FormatFloat(v, 'f', n, 64) }
}

// Percent prints the value followed by "%".
func Percent(decimals int) Formatter {
	return func(v float64) string { return strconv.FormatFloat(v, 'f', decimals, 64) + "%" }
}

// Count prints a rounded integer with thousands separators.
func Count() Formatter {
	return FormatCount
}

// FormatCount rounds v and groups thousands: 22841 -> "22,841".
func FormatCount(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func orDefault(f Formatter) Formatter {
	if f == nil {
		return General()
	}
	return f
}

func itoa(n int) string { return strconv.Itoa(n) }
