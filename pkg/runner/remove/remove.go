// Package remove provides the runner logic for deleting a task.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
)

// Remove deletes a task by id.
type Remove struct {
	ID string

	Service *app.Service
	Printer *printers.PrettyPrint
}

// Do deletes the configured task.
func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	notice, err := n.Service.Remove(ctx, n.ID)
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
