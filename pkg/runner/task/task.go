// Package task provides the runners for managing tasks.
package task

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/planner/pkg/model"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/printers"
)

var errNoPlanner = errors.New("can not manage tasks, no planner")

// Add creates a task and prints the sorted task list.
type Add struct {
	Planner   *planner.Planner
	Out       io.Writer
	Title     string
	SubjectID model.ID
	Deadline  string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if _, err := n.Planner.AddTask(ctx, n.Title, n.SubjectID, n.Deadline); err != nil {
		return err
	}
	return show(ctx, n.Planner, n.Out)
}

// Complete sets or clears the done flag of a task.
type Complete struct {
	Planner *planner.Planner
	Out     io.Writer
	ID      model.ID
	Done    bool
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if _, err := n.Planner.SetTaskDone(ctx, n.ID, n.Done); err != nil {
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
	if err := n.Planner.RemoveTask(ctx, n.ID); err != nil {
		return err
	}
	return show(ctx, n.Planner, n.Out)
}

// List prints tasks pending first, then by deadline. Listing stores that
// order.
type List struct {
	Planner *planner.Planner
	Out     io.Writer
	ShowID  bool
	JSON    bool
}

func (n *List) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	tasks := n.Planner.SortedTasks(ctx)
	pp := printers.New(n.Out, n.Planner.Settings().Dark)
	if n.JSON {
		return pp.JSON(tasks)
	}
	pp.ShowID = n.ShowID
	pp.Tasks(tasks)
	return nil
}

func show(ctx context.Context, p *planner.Planner, out io.Writer) error {
	l := List{Planner: p, Out: out, ShowID: true}
	return l.Do(ctx)
}
