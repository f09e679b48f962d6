package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Money abbreviates a USD amount: $1.2B, $3.4M, $56K or $7.89. Thresholds
// compare the magnitude, so losses abbreviate the same way as gains.
func Money(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "∞"
	}
	switch a := math.Abs(v); {
	case a >= 1e9:
		return "$" + Fixed(v/1e9, 1) + "B"
	case a >= 1e6:
		return "$" + Fixed(v/1e6, 1) + "M"
	case a >= 1e3:
		return "$" + Fixed(v/1e3, 0) + "K"
	default:
		return "$" + Fixed(v, 2)
	}
}

// Num rounds v to a whole number with thousands separators.
func Num(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "∞"
	}
	return humanize.Comma(int64(math.Round(v)))
}

// Int formats n with thousands separators.
func Int(n int64) string {
	return humanize.Comma(n)
}

// Pct formats v as a whole percentage.
func Pct(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// Fixed formats v with the given number of decimals. It rounds the stored
// binary value, so 2.675 renders as 2.67.
func Fixed(v float64, places int) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "∞"
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}

// Bold wraps s in markdown strong emphasis.
func Bold(s string) string {
	return "**" + s + "**"
}
