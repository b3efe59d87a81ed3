package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/runner/subject"
)

func addSubject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "subject",
		Aliases: []string{"subjects"},
		Short:   "Manage subjects.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSubjectAdd(cmd)
	addSubjectEdit(cmd)
	addSubjectRemove(cmd)
	addSubjectList(cmd)
	topLevel.AddCommand(cmd)
}

func addSubjectAdd(parent *cobra.Command) {
	so := &options.SubjectOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject",
		Example: `
planner subject add Linear Algebra --priority high
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a subject name")
			}
			so.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := subject.Add{
				Planner:  p,
				Out:      cmd.OutOrStdout(),
				Name:     so.Name,
				Priority: so.GetPriority(),
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddPriorityArgs(cmd, so, string(model.PriorityMedium))
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addSubjectEdit(parent *cobra.Command) {
	io := &options.IDOptions{}
	so := &options.SubjectOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename a subject or change its priority",
		Example: `
planner subject edit <subject id> --name "Linear Algebra II"
planner subject edit <subject id> --priority low
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return io.TakeID(args)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return subjectIDCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			current, ok := model.FindSubject(p.Subjects(), io.ID)
			if !ok {
				return oo.HandleError(fmt.Errorf("%w: subject %s", planner.ErrNotFound, io.ID))
			}
			name := so.Name
			if name == "" {
				name = current.Name
			}
			s := subject.Edit{
				Planner:  p,
				Out:      cmd.OutOrStdout(),
				ID:       io.ID,
				Name:     name,
				Priority: so.GetPriority(),
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddNameArgs(cmd, so)
	options.AddPriorityArgs(cmd, so, "")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addSubjectRemove(parent *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a subject. Its tasks and sessions are kept.",
		Example: `
planner subject rm <subject id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return io.TakeID(args)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return subjectIDCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := subject.Remove{
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

func addSubjectList(parent *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List subjects",
		Example: `
planner subject list --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := subject.List{
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
