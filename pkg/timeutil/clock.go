// Package timeutil parses and formats the time-of-day clocks used by weekly
// study sessions.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseClock validates a 24-hour "H:MM" or "HH:MM" clock and returns it zero
// padded, so clocks compare correctly as strings.
func ParseClock(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	matches := clockPattern.FindStringSubmatch(trimmed)
	if len(matches) != 3 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", input)
	}
	hours, err := strconv.Atoi(matches[1])
	if err != nil {
		return "", fmt.Errorf("invalid hour %q: %w", matches[1], err)
	}
	minutes, err := strconv.Atoi(matches[2])
	if err != nil {
		return "", fmt.Errorf("invalid minute %q: %w", matches[2], err)
	}
	if hours > 23 || minutes > 59 {
		return "", fmt.Errorf("time %q out of range", input)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

// ClockOffset returns the duration since midnight of a zero padded clock.
// Malformed clocks yield zero.
func ClockOffset(clock string) time.Duration {
	normalized, err := ParseClock(clock)
	if err != nil {
		return 0
	}
	h, _ := strconv.Atoi(normalized[:2])
	m, _ := strconv.Atoi(normalized[3:])
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}

// Span returns end minus start, or zero when the interval is empty or
// malformed.
func Span(start, end string) time.Duration {
	d := ClockOffset(end) - ClockOffset(start)
	if d < 0 {
		return 0
	}
	return d
}

// FormatDuration renders a duration using hour and minute tokens, for
// example "1h30m".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"h", time.Hour},
		{"m", time.Minute},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, "")
}
