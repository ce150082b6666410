package options

import (
	"github.com/spf13/cobra"
)

// IDOptions addresses a task and controls whether ids are printed.
type IDOptions struct {
	ShowID bool
	ID     string
}

// AddShowIDArgs registers --show-id/-k on cmd.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each task.")
}
