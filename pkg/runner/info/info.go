// Package info reports where the planner keeps its data.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv("PLANNER_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "PLANNER_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "PLANNER_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := n.Config.ConfigFile(); f != "" {
		_, _ = fmt.Fprintln(w, "Config.file:", f)
	}
	_, _ = fmt.Fprintln(w, "Config.path:", n.Config.BasePath())

	if n.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	_, _ = fmt.Fprintln(w, "Keys:")
	found := 0
	for _, k := range n.Persistence.Keys(ctx) {
		_, _ = fmt.Fprintf(w, "  %s\n", k)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", "no stored data")
	}
	return nil
}
