// Package session provides the runners for the weekly schedule.
package session

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
)

var errNoPlanner = errors.New("can not manage sessions, no planner")

// Add books a study session and prints the week.
type Add struct {
	Planner   *planner.Planner
	Out       io.Writer
	SubjectID model.ID
	Day       model.Weekday
	Start     string
	End       string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if _, err := n.Planner.AddSession(ctx, n.SubjectID, n.Day, n.Start, n.End); err != nil {
		return err
	}
	return show(ctx, n.Planner, n.Out)
}

type Remove struct {
	Planner *planner.Planner
	Out     io.Writer
	ID      model.ID
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if err := n.Planner.RemoveSession(ctx, n.ID); err != nil {
		return err
	}
	return show(ctx, n.Planner, n.Out)
}

// Schedule prints sessions grouped Mon..Sun.
type Schedule struct {
	Planner *planner.Planner
	Out     io.Writer
	ShowID  bool
	JSON    bool
}

func (n *Schedule) Do(_ context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	week := n.Planner.Schedule()
	pp := printers.New(n.Out, n.Planner.Settings().Dark)
	if n.JSON {
		return pp.JSON(week)
	}
	pp.ShowID = n.ShowID
	pp.Schedule(week, model.WeekdayOf(n.Planner.Now()))
	return nil
}

func show(ctx context.Context, p *planner.Planner, out io.Writer) error {
	s := Schedule{Planner: p, Out: out, ShowID: true}
	return s.Do(ctx)
}
