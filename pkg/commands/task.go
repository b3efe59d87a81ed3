package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/task"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage tasks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskComplete(cmd, "done", true)
	addTaskComplete(cmd, "undo", false)
	addTaskRemove(cmd)
	addTaskList(cmd)
	topLevel.AddCommand(cmd)
}

func addTaskAdd(parent *cobra.Command) {
	ro := &options.RefOptions{}
	do := &options.DeadlineOptions{}
	oo := &options.OutputOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Example: `
planner task add Problem set 4 --subject "Linear Algebra" --deadline 2024-03-01
planner task add Read chapter 2 --deadline tomorrow
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			subjectID, err := resolveSubject(p, ro.Subject)
			if err != nil {
				return oo.HandleError(err)
			}
			deadline, err := do.Resolve(p.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			s := task.Add{
				Planner:   p,
				Out:       cmd.OutOrStdout(),
				Title:     title,
				SubjectID: subjectID,
				Deadline:  deadline,
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddSubjectRefArgs(cmd, ro)
	options.AddDeadlineArgs(cmd, do)
	options.AddOutputArg(cmd, oo)

	_ = cmd.RegisterFlagCompletionFunc("subject", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return subjectNameCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	parent.AddCommand(cmd)
}

func addTaskComplete(parent *cobra.Command, use string, done bool) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	short := "Mark a task done"
	var aliases []string
	if done {
		aliases = []string{"complete", "completed"}
	} else {
		short = "Mark a task pending again"
		aliases = []string{"reopen"}
	}

	cmd := &cobra.Command{
		Use:     use + " <id>",
		Aliases: aliases,
		Short:   short,
		Example: `
planner task ` + use + ` <task id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return io.TakeID(args)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return taskIDCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := task.Complete{
				Planner: p,
				Out:     cmd.OutOrStdout(),
				ID:      io.ID,
				Done:    done,
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTaskRemove(parent *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a task",
		Example: `
planner task rm <task id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return io.TakeID(args)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return taskIDCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := task.Remove{
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

func addTaskList(parent *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, pending first and by deadline",
		Example: `
planner task list --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := task.List{
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
	parent.AddCommand(cmd)
}
