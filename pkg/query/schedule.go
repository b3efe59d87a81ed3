package query

import (
	"sort"
	"time"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/timeutil"
)

// ScheduledSession is a session with its subject resolved for display.
type ScheduledSession struct {
	model.Session
	SubjectName string `json:"subjectName"`
}

// DaySchedule lists one weekday's sessions in start order.
type DaySchedule struct {
	Day      model.Weekday      `json:"day"`
	Sessions []ScheduledSession `json:"sessions"`
}

// Total returns the summed length of the day's sessions.
func (d DaySchedule) Total() time.Duration {
	var total time.Duration
	for _, s := range d.Sessions {
		total += timeutil.Span(s.Start, s.End)
	}
	return total
}

// Schedule groups sessions by weekday, Mon through Sun. Days without sessions
// are still present.
func Schedule(subjects []model.Subject, sessions []model.Session) []DaySchedule {
	week := make([]DaySchedule, 0, 7)
	for _, day := range model.Weekdays() {
		ds := DaySchedule{Day: day}
		for _, s := range sessions {
			if s.Day != day {
				continue
			}
			ds.Sessions = append(ds.Sessions, ScheduledSession{
				Session:     s,
				SubjectName: model.SubjectName(subjects, s.SubjectID, model.UnknownSubject),
			})
		}
		sort.SliceStable(ds.Sessions, func(i, j int) bool {
			return ds.Sessions[i].Start < ds.Sessions[j].Start
		})
		week = append(week, ds)
	}
	return week
}
