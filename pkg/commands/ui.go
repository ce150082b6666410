package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
todo ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer s.Close()

			i := ui.UI{
				Service:       s.Service,
				RemovalDelay:  s.Config.RemovalDelay(),
				ToastDuration: s.Config.ToastDuration(),
				Log:           s.Log,
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
