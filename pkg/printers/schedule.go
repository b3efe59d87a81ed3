package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/timeutil"
)

// Schedule prints the week grid, one block per weekday. today is highlighted.
func (pp *PrettyPrint) Schedule(week []query.DaySchedule, today model.Weekday) {
	pp.Title("Weekly schedule")

	day := color.New(color.Bold)
	current := color.New(color.Bold, color.FgHiCyan)
	faint := color.New(color.Faint)
	clock := color.New(color.FgCyan)

	for _, ds := range week {
		h := day
		if ds.Day == today {
			h = current
		}
		_, _ = h.Fprint(pp.out(), ds.Day)
		if total := ds.Total(); total > 0 {
			_, _ = faint.Fprintf(pp.out(), "  %s", timeutil.FormatDuration(total))
		}
		_, _ = fmt.Fprintln(pp.out(), "")

		if len(ds.Sessions) == 0 {
			_, _ = faint.Fprintln(pp.out(), "  none")
			continue
		}
		for _, s := range ds.Sessions {
			if pp.ShowID {
				_, _ = fmt.Fprint(pp.out(), "  "+pp.id(s.ID))
			} else {
				_, _ = fmt.Fprint(pp.out(), "  ")
			}
			_, _ = fmt.Fprintf(pp.out(), "%s  %s\n", clock.Sprintf("%s - %s", s.Start, s.End), s.SubjectName)
		}
	}
	pp.NewLine()
}
