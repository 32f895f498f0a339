package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gorev",
		Short: base.Wrap80("Task tracking from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addRegister(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addTitle(topLevel)
	addComplete(topLevel)
	addDate(topLevel)
	addDelete(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
