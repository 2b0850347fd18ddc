package utils

import "strconv"

// ParseLimit reads an optional result-count limit from a query parameter.
// Absent, malformed or non-positive values mean "no limit" (0).
func ParseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0
	}
	return limit
}
