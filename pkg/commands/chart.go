package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/runner/chart"
)

func addChart(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "chart",
		Aliases: []string{"analytics", "stats"},
		Short:   "Chart done versus pending tasks and tasks per subject.",
		Example: `
planner chart
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, _, err := openPlanner(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.HandleError(jsonOut(cmd, struct {
					Tasks    query.Tally          `json:"tasks"`
					Subjects []query.SubjectCount `json:"subjects"`
				}{p.DoneTally(), p.SubjectTally()}))
			}
			s := chart.Chart{
				Planner: p,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(commandContext(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
