package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/store"
)

// UI runs the full-screen dashboard until the user quits.
type UI struct {
	Planner     *planner.Planner
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	var events <-chan store.Event
	if n.Persistence != nil {
		ch, err := n.Persistence.Watch(ctx)
		if err != nil {
			return err
		}
		events = ch
	}
	p := tea.NewProgram(New(ctx, n.Planner, events), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
