package common

import (
	"strconv"
	"strings"
)

// ParsePositiveInt parses a positive integer query value, falling back when
// the value is absent or malformed. The second return reports whether the
// caller-provided value was used.
func ParsePositiveInt(value string, fallback int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback, false
	}
	return parsed, true
}
