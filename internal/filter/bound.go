package filter

import (
	"math"
	"strconv"
	"strings"
)

// ParseBound parses a minPrice/maxPrice query value. Absent, malformed,
// negative or non-finite input yields nil ("no bound"), never zero.
func ParseBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}
