package options

import (
	"strings"
)

// TextOptions holds task text given as trailing arguments.
type TextOptions struct {
	Text string
}

// SetFromArgs joins args into the task text.
func (o *TextOptions) SetFromArgs(args []string) {
	o.Text = strings.Join(args, " ")
}
