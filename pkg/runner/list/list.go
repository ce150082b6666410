// Package list provides the runner logic for printing the task list.
package list

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
)

// List prints every task in display order.
type List struct {
	Service *app.Service
	Printer *printers.PrettyPrint
}

// Do prints the list.
func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	return pp.Tasks(n.Service.Tasks())
}
