package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice converts an externally-sourced price string to a numeric
// value. Missing or non-numeric values fall back to 0 rather than
// failing the computation.
func ParsePrice(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
