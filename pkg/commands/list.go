package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the task list",
		Example: `
todo list
todo ls -k
todo list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := list.List{
				Service: s.Service,
				Printer: &printers.PrettyPrint{ShowID: ido.ShowID, JSON: oo.JSON, Out: cmd.OutOrStdout()},
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
