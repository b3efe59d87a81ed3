package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/model"
)

// SubjectOptions
type SubjectOptions struct {
	Name     string
	Priority string
}

func AddPriorityArgs(cmd *cobra.Command, o *SubjectOptions, def string) {
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", def,
		"Subject priority: low, medium or high.")
}

func AddNameArgs(cmd *cobra.Command, o *SubjectOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"New subject name.")
}

// GetPriority returns the flag value as a model.Priority.
func (o *SubjectOptions) GetPriority() model.Priority {
	return model.Priority(o.Priority)
}

// RefOptions names a subject by id or by name.
type RefOptions struct {
	Subject string
}

func AddSubjectRefArgs(cmd *cobra.Command, o *RefOptions) {
	cmd.Flags().StringVarP(&o.Subject, "subject", "s", "",
		"Subject id or name.")
}

// SessionOptions
type SessionOptions struct {
	Day   string
	Start string
	End   string
}

func AddSessionArgs(cmd *cobra.Command, o *SessionOptions) {
	cmd.Flags().StringVar(&o.Day, "day", "",
		"Weekday, example: --day=Mon or --day=wednesday.")
	cmd.Flags().StringVar(&o.Start, "start", "",
		"Start time as HH:MM.")
	cmd.Flags().StringVar(&o.End, "end", "",
		"End time as HH:MM.")
}
