// Package tasklist renders the scrollable list of tasks with a cursor.
package tasklist

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tui/theme"
)

const (
	boxOpen = "[ ] "
	boxDone = "[x] "
)

// Model holds the tasks being shown and the cursor position.
type Model struct {
	tasks   task.List
	cursor  int
	offset  int
	editing string
	width   int
	height  int
	theme   theme.ListTheme
}

// New returns an empty list.
func New(th theme.ListTheme) Model {
	return Model{theme: th}
}

// SetTasks replaces the rows. The cursor follows the previously selected
// task when it is still present, otherwise it is clamped.
func (m *Model) SetTasks(tasks task.List) {
	selected, hadSelection := m.Selected()
	m.tasks = tasks.Clone()
	if hadSelection {
		if _, idx := m.tasks.Find(selected.ID); idx >= 0 {
			m.cursor = idx
		}
	}
	m.clamp()
}

// Tasks returns the rows currently shown.
func (m Model) Tasks() task.List { return m.tasks.Clone() }

// SetEditing marks the row with id as being edited. Empty clears it.
func (m *Model) SetEditing(id string) { m.editing = id }

// SetSize bounds the rendered area. A zero height shows every row.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clamp()
}

// Cursor returns the selected row index.
func (m Model) Cursor() int { return m.cursor }

// Selected returns the task under the cursor.
func (m Model) Selected() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return task.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// Select moves the cursor onto id, reporting whether it was found.
func (m *Model) Select(id string) bool {
	_, idx := m.tasks.Find(id)
	if idx < 0 {
		return false
	}
	m.cursor = idx
	m.clamp()
	return true
}

// MoveUp moves the cursor up by one row.
func (m *Model) MoveUp() {
	m.cursor--
	m.clamp()
}

// MoveDown moves the cursor down by one row.
func (m *Model) MoveDown() {
	m.cursor++
	m.clamp()
}

// Top moves to the first row.
func (m *Model) Top() {
	m.cursor = 0
	m.clamp()
}

// Bottom moves to the last row.
func (m *Model) Bottom() {
	m.cursor = len(m.tasks) - 1
	m.clamp()
}

func (m *Model) clamp() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.height <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	if maxOffset := len(m.tasks) - m.height; m.offset > maxOffset {
		m.offset = max(maxOffset, 0)
	}
}

// View renders the visible rows.
func (m Model) View() string {
	if len(m.tasks) == 0 {
		return m.theme.Empty.Render("Nothing to do. Press a to add a task.")
	}
	end := len(m.tasks)
	if m.height > 0 && m.offset+m.height < end {
		end = m.offset + m.height
	}
	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		rows = append(rows, m.row(i))
	}
	return strings.Join(rows, "\n")
}

func (m Model) row(i int) string {
	t := m.tasks[i]
	box := boxOpen
	if t.Completed {
		box = boxDone
	}
	label := t.Label
	if m.width > 0 {
		room := m.width - len(box)
		if room < 1 {
			room = 1
		}
		label = truncate.StringWithTail(label, uint(room), "…")
	}

	if i == m.cursor {
		return m.theme.Selected.Render(box + label)
	}
	style := m.theme.Row
	switch {
	case t.ID == m.editing:
		style = m.theme.Editing
	case t.Completed:
		style = m.theme.Completed
	}
	return m.theme.Checkbox.Render(box) + style.Render(label)
}
