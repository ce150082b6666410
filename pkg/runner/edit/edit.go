// Package edit provides the runner logic for relabeling a task.
package edit

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/prompt"
)

// Edit replaces the label of a task.
type Edit struct {
	ID          string
	Text        string
	Interactive bool

	Service *app.Service
	Printer *printers.PrettyPrint
}

// Do enters edit mode for the task and saves the new text. Interactive mode
// offers the current label for editing.
func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	if notice := n.Service.BeginEdit(n.ID); !notice.IsZero() {
		return pp.Notice(notice)
	}
	defer n.Service.CancelEdit()

	text := n.Text
	if n.Interactive || text == "" {
		seed := n.Service.State().Buffer
		var err error
		if text, err = prompt.Text("Edit", seed); err != nil {
			return err
		}
	}

	notice, err := n.Service.SaveEdit(ctx, n.ID, text)
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
