package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "planner",
		Short: base.Wrap80("Plan subjects, tasks and weekly study sessions from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addDashboard(topLevel)
	addSubject(topLevel)
	addTask(topLevel)
	addSession(topLevel)
	addSchedule(topLevel)
	addChart(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addReset(topLevel)
	addTheme(topLevel)
	addInfo(topLevel)
	addWatch(topLevel)
	addUI(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
