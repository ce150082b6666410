package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TextOptions{}
	io := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Example: `
todo add walk the dog
todo add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 && !io.Interactive {
				return errors.New("requires the task text")
			}
			to.SetFromArgs(args)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := add.Add{
				Text:        to.Text,
				Interactive: io.Interactive,
				Service:     s.Service,
				Printer:     &printers.PrettyPrint{JSON: oo.JSON, Out: cmd.OutOrStdout()},
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
