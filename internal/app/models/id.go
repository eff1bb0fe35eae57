package models

import (
	"strconv"
	"strings"
)

// ParseRowID reads a path segment the way the database reads an integer key:
// surrounding whitespace, a sign and leading zeros are allowed, so "01" and "+1" both name row 1.
func ParseRowID(segment string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(segment), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
