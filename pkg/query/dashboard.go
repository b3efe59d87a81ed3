package query

import (
	"sort"
	"time"

	"tableflip.dev/planner/pkg/model"
)

// UpcomingLimit caps the dashboard's deadline list.
const UpcomingLimit = 5

// Summary is the dashboard's aggregate view.
type Summary struct {
	TotalSubjects int           `json:"totalSubjects"`
	TotalTasks    int           `json:"totalTasks"`
	DoneTasks     int           `json:"doneTasks"`
	PendingTasks  int           `json:"pendingTasks"`
	TodaySessions int           `json:"todaySessions"`
	Today         model.Weekday `json:"today"`
	// Upcoming holds tasks with a deadline, soonest first.
	Upcoming []model.Task `json:"upcoming"`
}

// Dashboard computes the dashboard counts for the given moment.
func Dashboard(subjects []model.Subject, tasks []model.Task, sessions []model.Session, now time.Time) Summary {
	s := Summary{
		TotalSubjects: len(subjects),
		TotalTasks:    len(tasks),
		Today:         model.WeekdayOf(now),
	}
	for _, t := range tasks {
		if t.Done {
			s.DoneTasks++
		} else {
			s.PendingTasks++
		}
	}
	s.TodaySessions = len(TodaySessions(sessions, now))
	s.Upcoming = Upcoming(tasks, UpcomingLimit)
	return s
}

// TodaySessions returns the sessions that recur on now's weekday, plus any
// pinned to now's calendar date.
func TodaySessions(sessions []model.Session, now time.Time) []model.Session {
	day := model.WeekdayOf(now)
	date := model.FormatDate(now)
	var out []model.Session
	for _, s := range sessions {
		if s.Day == day || (s.Date != "" && s.Date == date) {
			out = append(out, s)
		}
	}
	return out
}

// Upcoming returns up to limit tasks that carry a deadline, ordered by
// deadline. Ties keep collection order and deadlines that fail to parse sort
// first. A negative limit returns all of them.
func Upcoming(tasks []model.Task, limit int) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.HasDeadline() {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return deadlineBefore(out[i].Deadline, out[j].Deadline)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// deadlineBefore orders deadlines with missing or malformed dates first.
func deadlineBefore(a, b string) bool {
	ta, okA := model.ParseDate(a)
	tb, okB := model.ParseDate(b)
	switch {
	case !okA && !okB:
		return false
	case !okA:
		return true
	case !okB:
		return false
	default:
		return ta.Before(tb)
	}
}
