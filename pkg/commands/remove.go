package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete", "remove"},
		Short:   "Delete a task",
		Example: `
todo rm walkdog
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			ido.ID = args[0]
			return nil
		},
		ValidArgsFunction: completeTaskIDs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := remove.Remove{
				ID:      ido.ID,
				Service: s.Service,
				Printer: &printers.PrettyPrint{JSON: oo.JSON, Out: cmd.OutOrStdout()},
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
