package model

import "strings"

// Priority ranks a subject. Any text is accepted; these are the suggested
// values.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Subject is a study topic.
type Subject struct {
	ID       ID       `json:"id"`
	Name     string   `json:"name"`
	Priority Priority `json:"priority"`
}

// Task is a to-do item, optionally tied to a subject and a deadline.
type Task struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	SubjectID ID     `json:"subjectId"`
	Deadline  string `json:"deadline"`
	Done      bool   `json:"done"`
}

// HasDeadline reports whether the task carries a deadline value.
func (t Task) HasDeadline() bool {
	return t.Deadline != ""
}

// Session is a weekly recurring study block. Start and End are zero padded
// "HH:MM" clocks so they compare lexicographically.
type Session struct {
	ID        ID      `json:"id"`
	SubjectID ID      `json:"subjectId"`
	Day       Weekday `json:"day"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	// Date pins a session to one calendar day. Nothing creates it yet; it is
	// kept when present in imported documents.
	Date string `json:"date,omitempty"`
}

// Settings holds user preferences.
type Settings struct {
	Dark bool `json:"dark"`
}

// FindSubject returns the subject with the given id.
func FindSubject(subjects []Subject, id ID) (Subject, bool) {
	for _, s := range subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// LookupSubject finds a subject by id, or else by case-insensitive name.
func LookupSubject(subjects []Subject, ref string) (Subject, bool) {
	ref = strings.TrimSpace(ref)
	if s, ok := FindSubject(subjects, ID(ref)); ok {
		return s, true
	}
	for _, s := range subjects {
		if strings.EqualFold(s.Name, ref) {
			return s, true
		}
	}
	return Subject{}, false
}

// SubjectName resolves id to a subject name, or fallback when the subject is
// missing.
func SubjectName(subjects []Subject, id ID, fallback string) string {
	if s, ok := FindSubject(subjects, id); ok {
		return s.Name
	}
	return fallback
}

const (
	// NoSubject labels a task whose subject cannot be resolved.
	NoSubject = "No subject"
	// UnknownSubject labels a session whose subject cannot be resolved.
	UnknownSubject = "Unknown"
)
