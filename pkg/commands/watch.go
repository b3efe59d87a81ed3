package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the dashboard on screen, redrawing it when data changes.",
		Example: `
planner watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, store, err := openPlanner(cmd)
			if err != nil {
				return err
			}
			s := watch.Watch{
				Planner:     p,
				Persistence: store,
				Out:         cmd.OutOrStdout(),
			}
			return s.Do(commandContext(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
