package model

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is the three letter day name a session recurs on.
type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
	Sun Weekday = "Sun"
)

// Weekdays lists the days in schedule order.
func Weekdays() []Weekday {
	return []Weekday{Mon, Tue, Wed, Thu, Fri, Sat, Sun}
}

// WeekdayOf returns the day name for t in its own location.
func WeekdayOf(t time.Time) Weekday {
	return [...]Weekday{Sun, Mon, Tue, Wed, Thu, Fri, Sat}[t.Weekday()]
}

// ParseWeekday accepts a day abbreviation or full name in any case.
func ParseWeekday(in string) (Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(in))
	if len(v) >= 3 {
		for _, d := range Weekdays() {
			full := strings.ToLower(time.Weekday(dayIndex(d)).String())
			if strings.HasPrefix(full, v) {
				return d, nil
			}
		}
	}
	return "", fmt.Errorf("unknown weekday %q, expected one of Mon..Sun", in)
}

// Valid reports whether d is one of the seven day names.
func (d Weekday) Valid() bool {
	return dayIndex(d) >= 0
}

func dayIndex(d Weekday) int {
	switch d {
	case Sun:
		return 0
	case Mon:
		return 1
	case Tue:
		return 2
	case Wed:
		return 3
	case Thu:
		return 4
	case Fri:
		return 5
	case Sat:
		return 6
	}
	return -1
}
