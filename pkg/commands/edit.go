package commands

import (
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	to := &options.TextOptions{}
	io := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> [text...]",
		Short: "Change the text of a task",
		Long: base.Wrap80(`Change the text of a task. The task keeps its id. Without new text, or
with -i, the current text is offered for editing.`),
		Example: `
todo edit walkdog walk the dog twice
todo edit walkdog -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			ido.ID = args[0]
			to.SetFromArgs(args[1:])
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

			r := edit.Edit{
				ID:          ido.ID,
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
