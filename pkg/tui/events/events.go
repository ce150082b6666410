// Package events defines the messages exchanged between TUI components.
package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/todo/pkg/app"
)

// ToastExpiredMsg is delivered when a toast has been shown long enough.
type ToastExpiredMsg struct {
	ID int
}

// Describe renders the message for logs.
func (m ToastExpiredMsg) Describe() string {
	return fmt.Sprintf("toast:%d expired", m.ID)
}

// RemovalDueMsg is delivered once the removal delay of a completed task has
// elapsed.
type RemovalDueMsg struct {
	Removal app.Removal
}

// Describe renders the message for logs.
func (m RemovalDueMsg) Describe() string {
	return fmt.Sprintf("removal due id:%q", m.Removal.ID)
}

// ExpireToast schedules a ToastExpiredMsg for id after d.
func ExpireToast(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// RemoveAfter schedules a RemovalDueMsg for r after d.
func RemoveAfter(r app.Removal, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return RemovalDueMsg{Removal: r}
	})
}
