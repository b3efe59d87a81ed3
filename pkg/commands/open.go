package commands

import (
	"context"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

// openPlanner opens the configured store and loads the planner from it.
func openPlanner(cmd *cobra.Command) (*planner.Planner, store.Persistence, error) {
	ctx := commandContext(cmd)
	p, err := store.Open(nil)
	if err != nil {
		return nil, nil, err
	}
	return planner.Open(ctx, p, planner.WithLogger(pslog.Ctx(ctx))), p, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func jsonOut(cmd *cobra.Command, v any) error {
	return printers.New(cmd.OutOrStdout(), false).JSON(v)
}
