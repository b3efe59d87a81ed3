// Package watch keeps the dashboard on screen and redraws it whenever the
// store changes underneath.
package watch

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"pkt.systems/pslog"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

type Watch struct {
	Planner     *planner.Planner
	Persistence store.Persistence
	Out         io.Writer
}

// Do blocks until ctx is cancelled or the watcher stops.
func (n *Watch) Do(ctx context.Context) error {
	if n.Planner == nil || n.Persistence == nil {
		return errors.New("can not watch, no store")
	}
	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	n.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			pslog.Ctx(ctx).Debug("store changed", "key", ev.Key)
			n.Planner.Reload(ctx)
			n.render()
		}
	}
}

func (n *Watch) render() {
	pp := printers.New(n.Out, n.Planner.Settings().Dark)
	if !pp.Plain {
		termenv.NewOutput(n.Out).ClearScreen()
	}
	pp.Dashboard(n.Planner.Summary(), n.Planner.Subjects())
}
