// Package transfer provides the export, import and reset runners.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/planner"
)

// Stdio is the path that selects standard input or output.
const Stdio = "-"

var errNoPlanner = errors.New("can not transfer, no planner")

// Export writes every collection and the settings as one JSON document.
type Export struct {
	Planner *planner.Planner
	// Path is the destination file. Empty means planner.ExportFileName,
	// Stdio means Out.
	Path string
	Out  io.Writer
}

func (n *Export) Do(_ context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if n.Path == Stdio {
		return n.Planner.Export(out(n.Out))
	}
	path := n.Path
	if path == "" {
		path = planner.ExportFileName
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := n.Planner.Export(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out(n.Out), "Exported to %s\n", path)
	return nil
}

// Import replaces all data with the contents of an exported document.
type Import struct {
	Planner *planner.Planner
	Path    string
	In      io.Reader
	Out     io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if n.Path == Stdio {
		in := n.In
		if in == nil {
			in = os.Stdin
		}
		return n.Planner.Import(ctx, in)
	}
	if n.Path == "" {
		return errors.New("import requires a file")
	}
	f, err := os.Open(n.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := n.Planner.Import(ctx, f); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out(n.Out), "Imported %s\n", n.Path)
	return nil
}

// Reset clears all subjects, tasks, sessions and settings.
type Reset struct {
	Planner *planner.Planner
	Out     io.Writer
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	n.Planner.Reset(ctx)
	_, _ = fmt.Fprintln(out(n.Out), "All data cleared.")
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
