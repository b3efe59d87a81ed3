package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	// Out receives JSON errors. nil means the output of the command the
	// flag was added to, or color.Output.
	Out io.Writer

	cmd *cobra.Command
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	po.cmd = cmd
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) out() io.Writer {
	switch {
	case o.Out != nil:
		return o.Out
	case o.cmd != nil:
		return o.cmd.OutOrStdout()
	default:
		return color.Output
	}
}

// HandleError prints err as {"error": "..."} in JSON mode and swallows it.
// Otherwise err is returned unchanged.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(o.out(), string(b))
		return nil
	}
	return err
}
