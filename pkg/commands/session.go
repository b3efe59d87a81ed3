package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/runner/session"
)

func addSession(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"sessions"},
		Short:   "Book or cancel weekly study sessions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSessionAdd(cmd)
	addSessionRemove(cmd)
	topLevel.AddCommand(cmd)
}

func addSessionAdd(parent *cobra.Command) {
	ro := &options.RefOptions{}
	so := &options.SessionOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring weekly session",
		Long: `Add a recurring weekly session. Sessions on the same day may touch but
not overlap: 09:00-10:00 and 10:00-11:00 are fine, 09:00-10:00 and 09:30-11:00
are rejected.`,
		Example: `
planner session add --subject "Linear Algebra" --day Mon --start 09:00 --end 10:30
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			subjectID, err := resolveSubject(p, ro.Subject)
			if err != nil {
				return oo.HandleError(err)
			}
			day := model.Weekday("")
			if so.Day != "" {
				if day, err = model.ParseWeekday(so.Day); err != nil {
					return oo.HandleError(err)
				}
			}
			s := session.Add{
				Planner:   p,
				Out:       cmd.OutOrStdout(),
				SubjectID: subjectID,
				Day:       day,
				Start:     so.Start,
				End:       so.End,
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddSubjectRefArgs(cmd, ro)
	options.AddSessionArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	_ = cmd.RegisterFlagCompletionFunc("subject", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return subjectNameCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("day", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		days := make([]string, 0, 7)
		for _, d := range model.Weekdays() {
			days = append(days, string(d))
		}
		return days, cobra.ShellCompDirectiveNoFileComp
	})
	parent.AddCommand(cmd)
}

func addSessionRemove(parent *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a session",
		Example: `
planner session rm <session id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return io.TakeID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := session.Remove{
				Planner: p,
				Out:     cmd.OutOrStdout(),
				ID:      io.ID,
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addSchedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"week"},
		Short:   "Show the weekly schedule, Mon through Sun.",
		Example: `
planner schedule --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := session.Schedule{
				Planner: p,
				Out:     cmd.OutOrStdout(),
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
