// Package chart provides the runner for the analytics bars.
package chart

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
)

type Chart struct {
	Planner *planner.Planner
	Out     io.Writer
}

func (n *Chart) Do(_ context.Context) error {
	if n.Planner == nil {
		return errors.New("can not chart, no planner")
	}
	pp := printers.New(n.Out, n.Planner.Settings().Dark)
	pp.DoneChart(n.Planner.DoneTally())
	pp.SubjectChart(n.Planner.SubjectTally())
	return nil
}
