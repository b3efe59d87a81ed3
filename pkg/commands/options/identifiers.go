package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/model"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     model.ID
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each record.")
}

// TakeID reads the record id from the first argument.
func (o *IDOptions) TakeID(args []string) error {
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		return errors.New("requires an id")
	}
	if len(args) > 1 {
		return errors.New("too many arguments, expected one id")
	}
	o.ID = model.ID(strings.TrimSpace(args[0]))
	return nil
}
