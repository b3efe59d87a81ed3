package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(planner completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(planner completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func completionPlanner() *planner.Planner {
	p, err := store.Open(nil)
	if err != nil {
		return nil
	}
	return planner.Open(context.Background(), p)
}

func subjectNameCompletions(toComplete string) []string {
	p := completionPlanner()
	if p == nil {
		return nil
	}
	var out []string
	for _, s := range p.Subjects() {
		if strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(toComplete)) {
			out = append(out, s.Name)
		}
	}
	return out
}

func subjectIDCompletions(toComplete string) []string {
	p := completionPlanner()
	if p == nil {
		return nil
	}
	var out []string
	for _, s := range p.Subjects() {
		if strings.HasPrefix(s.ID.String(), toComplete) {
			out = append(out, s.ID.String()+"\t"+s.Name)
		}
	}
	return out
}

func taskIDCompletions(toComplete string) []string {
	p := completionPlanner()
	if p == nil {
		return nil
	}
	return idCompletions(p.Tasks(), toComplete)
}

func idCompletions(tasks []model.Task, toComplete string) []string {
	var out []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID.String(), toComplete) {
			out = append(out, t.ID.String()+"\t"+t.Title)
		}
	}
	return out
}
