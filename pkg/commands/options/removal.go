package options

import (
	"github.com/spf13/cobra"
)

// RemovalOptions controls what happens after a task is completed.
type RemovalOptions struct {
	NoWait bool
}

// AddRemovalArgs registers --no-wait on cmd.
func AddRemovalArgs(cmd *cobra.Command, o *RemovalOptions) {
	cmd.Flags().BoolVar(&o.NoWait, "no-wait", false,
		"Keep the completed task instead of waiting to remove it.")
}
