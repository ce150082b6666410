package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions asks for input with a prompt instead of arguments.
type InteractiveOptions struct {
	Interactive bool
}

// InteractiveArgs registers --interactive/-i on cmd.
func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Interactive input of subcommands or options.`)
}
