package calc

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseAmount converts raw form text to a finite non-negative number.
// Blank input and unparsable or negative values are reported against the
// named field.
func ParseAmount(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, missing(field)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, invalid(field)
	}
	return value, nil
}

// ParseCount converts raw form text to a non-negative integer.
func ParseCount(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, missing(field)
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, invalid(field)
	}
	return value, nil
}

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, missing(field)
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, invalid(field)
	}
	return parsed, nil
}
