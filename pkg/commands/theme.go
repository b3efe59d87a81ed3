package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme <dark|light>",
		Short:     "Switch between the dark and light palette.",
		ValidArgs: []string{"dark", "light"},
		Args:      cobra.ExactValidArgs(1),
		Example: `
planner theme dark
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var dark bool
			switch args[0] {
			case "dark":
				dark = true
			case "light":
			default:
				return fmt.Errorf("unknown theme %q, want dark or light", args[0])
			}
			p, _, err := openPlanner(cmd)
			if err != nil {
				return err
			}
			s := theme.Theme{
				Planner: p,
				Out:     cmd.OutOrStdout(),
				Dark:    dark,
			}
			return s.Do(commandContext(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
