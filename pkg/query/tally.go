package query

import "tableflip.dev/planner/pkg/model"

// Tally counts done and pending tasks.
type Tally struct {
	Done    int `json:"done"`
	Pending int `json:"pending"`
}

// Max returns the larger bucket, never less than one, for scaling bars.
func (t Tally) Max() int {
	return max(t.Done, t.Pending, 1)
}

// DoneTally counts tasks by completion.
func DoneTally(tasks []model.Task) Tally {
	var t Tally
	for _, task := range tasks {
		if task.Done {
			t.Done++
		} else {
			t.Pending++
		}
	}
	return t
}

// SubjectCount is the number of tasks filed under one subject.
type SubjectCount struct {
	Subject model.Subject `json:"subject"`
	Count   int           `json:"count"`
}

// SubjectTally returns one bucket per subject in collection order, including
// subjects without tasks. Tasks with dangling subjects are not counted.
func SubjectTally(subjects []model.Subject, tasks []model.Task) []SubjectCount {
	out := make([]SubjectCount, 0, len(subjects))
	for _, s := range subjects {
		c := SubjectCount{Subject: s}
		for _, t := range tasks {
			if t.SubjectID == s.ID {
				c.Count++
			}
		}
		out = append(out, c)
	}
	return out
}

// MaxCount returns the largest bucket, never less than one.
func MaxCount(counts []SubjectCount) int {
	m := 1
	for _, c := range counts {
		if c.Count > m {
			m = c.Count
		}
	}
	return m
}
