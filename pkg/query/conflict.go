// Package query derives the planner's views from its collections. Every
// function is pure: inputs are never modified unless the name says so.
package query

import "tableflip.dev/planner/pkg/model"

// Overlaps reports whether two sessions share a day and their half-open
// [start, end) intervals intersect. Clocks compare as zero padded strings.
func Overlaps(a, b model.Session) bool {
	if a.Day != b.Day {
		return false
	}
	return a.Start < b.End && a.End > b.Start
}

// HasConflict reports whether candidate overlaps any existing session.
func HasConflict(existing []model.Session, candidate model.Session) bool {
	for _, s := range existing {
		if Overlaps(candidate, s) {
			return true
		}
	}
	return false
}

// Conflicts returns every existing session that overlaps candidate, in
// collection order.
func Conflicts(existing []model.Session, candidate model.Session) []model.Session {
	var out []model.Session
	for _, s := range existing {
		if Overlaps(candidate, s) {
			out = append(out, s)
		}
	}
	return out
}
