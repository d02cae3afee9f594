package form

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt coerces a raw field value to an integer. Decimal text is
// truncated; anything else unparsable yields 0.
func ParseInt(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f := ParseFloat(s)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

// ParseFloat coerces a raw field value to a float, yielding 0 for
// unparsable or non-finite input.
func ParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
