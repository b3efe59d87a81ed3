// Package dashboard provides the runner for the summary view.
package dashboard

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
)

// Dashboard prints counts, today's sessions and upcoming deadlines.
type Dashboard struct {
	Planner *planner.Planner
	Out     io.Writer
	ShowID  bool
}

// Do renders the dashboard once.
func (n *Dashboard) Do(_ context.Context) error {
	if n.Planner == nil {
		return errors.New("can not show dashboard, no planner")
	}
	pp := printers.New(n.Out, n.Planner.Settings().Dark)
	pp.ShowID = n.ShowID
	pp.Dashboard(n.Planner.Summary(), n.Planner.Subjects())
	return nil
}
