package calc

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Whole numbers past 2^24 are no longer exact in float32 and switch to
	// exponent form.
	exactLimit float32 = 1 << 24
	smallLimit float32 = 1e-4
)

// Format renders a total the way the result line shows it: shortest
// round-trip digits, a trailing ".0" on whole numbers, exponent form for
// very large or very small magnitudes, and nan/inf/-inf for non-finite values.
func Format(f float32) string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := f
	if abs < 0 {
		abs = -abs
	}
	if abs > exactLimit || (abs != 0 && abs < smallLimit) {
		return strconv.FormatFloat(v, 'e', -1, 32)
	}

	s := strconv.FormatFloat(v, 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
