package options

import (
	"strconv"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     int64
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each task.")
}

// ParseID reads a positional task id argument.
func (o *IDOptions) ParseID(raw string) error {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}
