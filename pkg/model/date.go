package model

import (
	"strings"
	"time"
)

// LayoutISO is the calendar date layout used for deadlines.
const LayoutISO = "2006-01-02"

// ParseDate parses an ISO calendar date. The second result is false for empty
// or malformed input.
func ParseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(LayoutISO, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(LayoutISO)
}
