// Package add provides the runner logic for adding a task.
package add

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/prompt"
)

// Add appends a task to the list.
type Add struct {
	Text        string
	Interactive bool

	Service *app.Service
	Printer *printers.PrettyPrint
}

// Do adds the configured text, prompting for it when interactive.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	text := n.Text
	if n.Interactive {
		var err error
		if text, err = prompt.Text("Task", text); err != nil {
			return err
		}
	}

	notice, err := n.Service.Add(ctx, text)
	if err != nil {
		return err
	}
	if err := pp.Notice(notice); err != nil {
		return err
	}
	if pp.JSON {
		return nil
	}
	return pp.Tasks(n.Service.Tasks())
}
