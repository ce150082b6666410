package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

// New returns the root todo command.
func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "todo",
		Short: base.Wrap80("A to-do list on the command line. Add, edit, complete and delete tasks, or open the full screen list with `todo ui`."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

// AddCommands registers every subcommand on topLevel.
func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addDone(topLevel)
	addList(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}
