package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects JSON output for a command.
type OutputOptions struct {
	JSON bool

	// Out receives JSON errors, color.Output when nil.
	Out io.Writer
}

// AddOutputArg registers --json on cmd.
func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError reports err as a JSON object when JSON output is on. The
// error is always returned so the command still exits non-zero.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		b, merr := json.Marshal(map[string]string{
			"error": err.Error(),
		})
		if merr != nil {
			return err
		}
		w := o.Out
		if w == nil {
			w = color.Output
		}
		_, _ = fmt.Fprintln(w, string(b))
	}
	return err
}
