package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/runner/info"
	"tableflip.dev/planner/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where data is stored.",
		Example: `
planner info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			return s.Do(commandContext(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
