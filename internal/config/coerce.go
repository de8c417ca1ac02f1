package config

import (
	"strconv"
	"strings"
)

// truthy is the complete set of values read as true, after lower-casing.
var truthy = map[string]bool{
	"1":    true,
	"true": true,
	"yes":  true,
	"on":   true,
}

// parseBool never fails: anything outside the truthy set is false,
// including "", "false", "0" and garbage.
func parseBool(raw string) bool {
	return truthy[strings.ToLower(raw)]
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// parseInt parses a base-10 integer, tolerating surrounding whitespace and a
// sign. Absent, empty, non-numeric and out-of-range values yield def.
func parseInt(raw string, ok bool, def int) int {
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}
