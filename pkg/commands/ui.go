package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	teaui "tableflip.dev/planner/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
planner ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return errors.New("ui needs a terminal, try planner dashboard")
			}
			p, store, err := openPlanner(cmd)
			if err != nil {
				return err
			}
			i := teaui.UI{Planner: p, Persistence: store}
			return i.Do(commandContext(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
