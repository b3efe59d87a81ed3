// Package theme provides the runner that switches the color palette.
package theme

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/planner"
)

type Theme struct {
	Planner *planner.Planner
	Out     io.Writer
	Dark    bool
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not set theme, no planner")
	}
	n.Planner.SetDark(ctx, n.Dark)
	w := n.Out
	if w == nil {
		w = color.Output
	}
	name := "light"
	if n.Dark {
		name = "dark"
	}
	_, _ = fmt.Fprintf(w, "Theme set to %s.\n", name)
	return nil
}
