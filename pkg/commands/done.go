package commands

import (
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/toggle"
)

func addDone(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	ro := &options.RemovalOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete", "toggle"},
		Short:   "Complete or reopen a task",
		Long: base.Wrap80(`Complete a task, or reopen it when it is already completed. A completed
task is removed once the removal delay has passed.`),
		Example: `
todo done walkdog
todo done walkdog --no-wait
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

			r := toggle.Toggle{
				ID:      ido.ID,
				Delay:   s.Config.RemovalDelay(),
				NoWait:  ro.NoWait,
				Service: s.Service,
				Printer: &printers.PrettyPrint{JSON: oo.JSON, Out: cmd.OutOrStdout()},
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddRemovalArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
