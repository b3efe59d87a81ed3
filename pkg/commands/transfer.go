package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/runner/transfer"
)

func addExport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	path := ""

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all data as one JSON document.",
		Long: `Export all data as one JSON document. Without a file the document is
written to ` + planner.ExportFileName + `; use "-" for stdout.`,
		Example: `
planner export
planner export backup.json
planner export - | jq .tasks
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 1 {
				return errors.New("too many arguments, expected one file")
			}
			if len(args) == 1 {
				path = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := transfer.Export{
				Planner: p,
				Path:    path,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	path := ""

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with an exported document.",
		Long: `Replace all data with an exported document. The file must contain
subjects, tasks and sessions; settings are optional. A rejected file leaves
the current data untouched. Use "-" to read stdin.`,
		Example: `
planner import ` + planner.ExportFileName + `
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires exactly one file")
			}
			path = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := transfer.Import{
				Planner: p,
				Path:    path,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addReset(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	yes := false

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all subjects, tasks, sessions and settings.",
		Example: `
planner reset --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if !yes {
				return oo.HandleError(errors.New("reset deletes everything, pass --yes to confirm"))
			}
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := transfer.Reset{
				Planner: p,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
