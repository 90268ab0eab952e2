package utils

import (
	"strconv"
)

// ParseFloat converts a form value to a float64, defaulting to 0 for empty
// or malformed input.
func ParseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseInt converts a form value to an int, defaulting to 0 for empty or
// malformed input.
func ParseInt(s string) int {
	if s == "" {
		return 0
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}
