package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/model"
)

const (
	layoutLoose = "2006-1-2"
	layoutShort = "1/2"
)

// DeadlineOptions
type DeadlineOptions struct {
	Deadline string
}

func AddDeadlineArgs(cmd *cobra.Command, o *DeadlineOptions) {
	cmd.Flags().StringVarP(&o.Deadline, "deadline", "d", "",
		`Due date, example: --deadline="2024-2-28", --deadline="2/28" or --deadline=tomorrow.`)
}

// Resolve returns the deadline as YYYY-MM-DD, or "" when none was given.
func (o *DeadlineOptions) Resolve(now time.Time) (string, error) {
	in := strings.TrimSpace(strings.ToLower(o.Deadline))
	switch in {
	case "":
		return "", nil
	case "today":
		return model.FormatDate(now), nil
	case "tomorrow":
		return model.FormatDate(now.AddDate(0, 0, 1)), nil
	}
	if t, err := time.Parse(layoutLoose, in); err == nil {
		return model.FormatDate(t), nil
	}
	t, err := time.Parse(layoutShort, in)
	if err != nil {
		return "", fmt.Errorf("unknown deadline %q, want YYYY-MM-DD, M/D, today or tomorrow", o.Deadline)
	}
	t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
	// A month/day already behind us means next year.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if t.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return model.FormatDate(t), nil
}
