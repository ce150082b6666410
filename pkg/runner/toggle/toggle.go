// Package toggle provides the runner logic for completing or reopening a
// task.
package toggle

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
)

// Toggle flips completion of a task. A task that becomes completed is
// removed once Delay has passed, unless NoWait is set.
type Toggle struct {
	ID     string
	Delay  time.Duration
	NoWait bool

	Service *app.Service
	Printer *printers.PrettyPrint
}

// Do toggles the configured task.
func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle, no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	notice, removal, err := n.Service.Toggle(ctx, n.ID)
	if err != nil {
		return err
	}
	if err := pp.Notice(notice); err != nil {
		return err
	}

	if removal != nil && !n.NoWait {
		notice, _, err := n.Service.ExpireAfter(ctx, *removal, n.Delay)
		if err != nil {
			return err
		}
		if err := pp.Notice(notice); err != nil {
			return err
		}
	}

	if pp.JSON {
		return nil
	}
	return pp.Tasks(n.Service.Tasks())
}
