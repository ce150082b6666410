// Package toast renders a stack of transient notices in the footer.
package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/tui/theme"
)

// DefaultLimit caps how many toasts are visible at once.
const DefaultLimit = 5

// Toast is one visible notice.
type Toast struct {
	ID     int
	Notice app.Notice
}

// Model tracks the visible toasts, oldest first.
type Model struct {
	items []Toast
	next  int
	limit int
	width int
	theme theme.ToastTheme
}

// New returns an empty stack.
func New(th theme.ToastTheme) Model {
	return Model{limit: DefaultLimit, theme: th}
}

// Push appends n and returns its id. Zero notices are ignored and return -1.
// When the stack is full the oldest toast is dropped.
func (m *Model) Push(n app.Notice) int {
	if n.IsZero() {
		return -1
	}
	m.next++
	m.items = append(m.items, Toast{ID: m.next, Notice: n})
	if m.limit > 0 && len(m.items) > m.limit {
		m.items = m.items[len(m.items)-m.limit:]
	}
	return m.next
}

// Dismiss removes the toast with id, reporting whether it was visible.
func (m *Model) Dismiss(id int) bool {
	for i, t := range m.items {
		if t.ID == id {
			m.items = append(m.items[:i:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns the visible toasts, newest last.
func (m Model) Items() []Toast {
	return append([]Toast(nil), m.items...)
}

// Len reports the number of visible toasts.
func (m Model) Len() int { return len(m.items) }

// SetWidth bounds the rendered width. Zero means unbounded.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// View renders one line per toast.
func (m Model) View() string {
	if len(m.items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.items))
	for _, t := range m.items {
		style := m.style(t.Notice.Level)
		msg := t.Notice.Message
		if m.width > 0 {
			room := m.width - style.GetHorizontalFrameSize()
			if room < 1 {
				room = 1
			}
			msg = truncate.StringWithTail(msg, uint(room), "…")
		}
		lines = append(lines, style.Render(msg))
	}
	return strings.Join(lines, "\n")
}

func (m Model) style(l app.Level) lipgloss.Style {
	switch l {
	case app.LevelSuccess:
		return m.theme.Success
	case app.LevelWarning:
		return m.theme.Warning
	case app.LevelError:
		return m.theme.Error
	default:
		return m.theme.Info
	}
}
