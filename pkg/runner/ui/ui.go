// Package ui provides the runner that opens the interactive to-do screen.
package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/todo/pkg/app"
	teaui "tableflip.dev/todo/pkg/tui/app"
)

// UI launches the Bubble Tea program.
type UI struct {
	Service       *app.Service
	RemovalDelay  time.Duration
	ToastDuration time.Duration
	Log           *log.Logger

	// run is swapped out in tests.
	run func(*app.Service, teaui.Options) error
}

// Do runs the UI until the user quits.
func (u *UI) Do(_ context.Context) error {
	if u.Service == nil {
		return errors.New("can not open ui, no service")
	}
	run := u.run
	if run == nil {
		run = teaui.Run
	}
	if u.Log != nil {
		u.Log.Info("ui: starting", "tasks", len(u.Service.Tasks()))
	}
	return run(u.Service, teaui.Options{
		RemovalDelay:  u.RemovalDelay,
		ToastDuration: u.ToastDuration,
		Log:           u.Log,
	})
}
