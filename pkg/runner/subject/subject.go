// Package subject provides the runners for managing subjects.
package subject

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
)

var errNoPlanner = errors.New("can not manage subjects, no planner")

// Add creates a subject and prints the updated list.
type Add struct {
	Planner  *planner.Planner
	Out      io.Writer
	Name     string
	Priority model.Priority
}

func (n *Add) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if _, err := n.Planner.AddSubject(ctx, n.Name, n.Priority); err != nil {
		return err
	}
	return show(ctx, n.Planner, n.Out)
}

// Edit renames a subject or changes its priority.
type Edit struct {
	Planner  *planner.Planner
	Out      io.Writer
	ID       model.ID
	Name     string
	Priority model.Priority
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if _, err := n.Planner.EditSubject(ctx, n.ID, n.Name, n.Priority); err != nil {
		return err
	}
	return show(ctx, n.Planner, n.Out)
}

// Remove deletes a subject. Tasks and sessions keep their reference.
type Remove struct {
	Planner *planner.Planner
	Out     io.Writer
	ID      model.ID
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if err := n.Planner.RemoveSubject(ctx, n.ID); err != nil {
		return err
	}
	return show(ctx, n.Planner, n.Out)
}

type List struct {
	Planner *planner.Planner
	Out     io.Writer
	ShowID  bool
	JSON    bool
}

func (n *List) Do(_ context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	pp := printers.New(n.Out, n.Planner.Settings().Dark)
	if n.JSON {
		return pp.JSON(n.Planner.Subjects())
	}
	pp.ShowID = n.ShowID
	pp.Subjects(n.Planner.Subjects())
	return nil
}

func show(ctx context.Context, p *planner.Planner, out io.Writer) error {
	l := List{Planner: p, Out: out, ShowID: true}
	return l.Do(ctx)
}
