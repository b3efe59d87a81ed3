package query

import (
	"sort"

	"tableflip.dev/planner/pkg/model"
)

// SortTasks orders tasks in place: pending before done, then by deadline with
// missing deadlines first. Equal keys keep their relative order.
func SortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Done != b.Done {
			return !a.Done
		}
		return deadlineBefore(a.Deadline, b.Deadline)
	})
}

// LabeledTask is a task with its subject resolved for display.
type LabeledTask struct {
	model.Task
	SubjectName string `json:"subjectName"`
}

// LabelTasks resolves each task's subject, falling back to model.NoSubject.
func LabelTasks(subjects []model.Subject, tasks []model.Task) []LabeledTask {
	out := make([]LabeledTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, LabeledTask{
			Task:        t,
			SubjectName: model.SubjectName(subjects, t.SubjectID, model.NoSubject),
		})
	}
	return out
}
