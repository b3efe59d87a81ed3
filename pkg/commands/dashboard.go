package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/dashboard"
)

func addDashboard(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "today"},
		Short:   "Show counts, today's sessions and upcoming deadlines.",
		Example: `
planner dashboard
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.HandleError(jsonOut(cmd, p.Summary()))
			}
			s := dashboard.Dashboard{
				Planner: p,
				Out:     cmd.OutOrStdout(),
				ShowID:  io.ShowID,
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
