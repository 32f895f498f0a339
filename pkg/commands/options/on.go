package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gorev/pkg/task"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a due date, example: --on="2026-02-28".`)
}

func (o *OnOptions) GetOn() (*task.Date, error) {
	if o.OnString == "" {
		return nil, nil
	}
	return task.ParseDate(o.OnString)
}
