package teaui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/tui/events"
)

func newTestModel(t *testing.T, labels ...string) *Model {
	t.Helper()
	p, err := store.Load(store.StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := app.New(p, nil)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, l := range labels {
		if _, err := svc.Add(context.Background(), l); err != nil {
			t.Fatalf("seed %q: %v", l, err)
		}
	}
	m := New(svc, Options{RemovalDelay: time.Millisecond, ToastDuration: time.Second})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Text: k, Code: r}
}

func lastToast(t *testing.T, m *Model) app.Notice {
	t.Helper()
	items := m.toasts.Items()
	if len(items) == 0 {
		t.Fatalf("expected a toast")
	}
	return items[len(items)-1].Notice
}

func TestAddTask(t *testing.T) {
	m := newTestModel(t)

	press(m, "a")
	if m.mode != modeAdd {
		t.Fatalf("mode = %v, want add", m.mode)
	}
	typeText(m, "walk dog")
	press(m, "enter")

	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want normal", m.mode)
	}
	tasks := m.svc.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "walkdog" || tasks[0].Label != "walk dog" {
		t.Fatalf("unexpected tasks %#v", tasks)
	}
	if n := lastToast(t, m); n.Level != app.LevelSuccess || n.Message != "Task added" {
		t.Fatalf("unexpected toast %#v", n)
	}
	if !strings.Contains(m.View(), "walk dog") {
		t.Fatalf("view missing task:\n%s", m.View())
	}
}

func TestAddDuplicateStaysInInput(t *testing.T) {
	m := newTestModel(t, "walk dog")

	press(m, "a")
	typeText(m, "walkdog")
	press(m, "enter")

	if m.mode != modeAdd {
		t.Fatalf("mode = %v, want add after rejection", m.mode)
	}
	if got := len(m.svc.Tasks()); got != 1 {
		t.Fatalf("tasks = %d, want 1", got)
	}
	if n := lastToast(t, m); n.Level != app.LevelWarning || n.Message != "Task already exists" {
		t.Fatalf("unexpected toast %#v", n)
	}

	press(m, "esc")
	if m.mode != modeNormal {
		t.Fatalf("esc should leave add mode")
	}
}

func TestEditTask(t *testing.T) {
	m := newTestModel(t, "walk dog", "feed cat")

	press(m, "down", "e")
	if m.mode != modeEdit || m.svc.State().Editing != "feedcat" {
		t.Fatalf("expected edit of feedcat, mode %v editing %q", m.mode, m.svc.State().Editing)
	}
	if m.input.Value() != "feed cat" {
		t.Fatalf("input seeded with %q", m.input.Value())
	}
	typeText(m, "s")
	if m.svc.State().Buffer != "feed cats" {
		t.Fatalf("buffer = %q", m.svc.State().Buffer)
	}
	press(m, "enter")

	if m.mode != modeNormal || m.svc.State().Editing != "" {
		t.Fatalf("expected edit mode exited")
	}
	tasks := m.svc.Tasks()
	if tasks[1].ID != "feedcat" || tasks[1].Label != "feed cats" || tasks[0].Label != "walk dog" {
		t.Fatalf("unexpected tasks %#v", tasks)
	}
	if n := lastToast(t, m); n.Message != "Task updated" {
		t.Fatalf("unexpected toast %#v", n)
	}
}

func TestEditToExistingLabelIsRejected(t *testing.T) {
	m := newTestModel(t, "walk dog", "feed cat")

	press(m, "down", "e")
	for range "feed cat" {
		press(m, "backspace")
	}
	typeText(m, "walk dog")
	press(m, "enter")

	if m.mode != modeEdit {
		t.Fatalf("rejected edit should stay in edit mode")
	}
	if n := lastToast(t, m); n.Message != "Task already exists" {
		t.Fatalf("unexpected toast %#v", n)
	}
	press(m, "esc")
	if m.svc.State().Editing != "" || m.svc.Tasks()[1].Label != "feed cat" {
		t.Fatalf("cancel should leave the task unchanged")
	}
}

func TestToggleAndRemovalDue(t *testing.T) {
	m := newTestModel(t, "walk dog")

	_, cmd := m.Update(keyMsg("x"))
	if cmd == nil {
		t.Fatalf("expected toast and removal commands")
	}
	if !m.svc.Tasks()[0].Completed {
		t.Fatalf("task should be completed")
	}
	if n := lastToast(t, m); n.Message != "Task completed" {
		t.Fatalf("unexpected toast %#v", n)
	}

	// Reopen, then complete again to get a removal we can deliver by hand.
	press(m, "x")
	_, r, err := m.svc.Toggle(context.Background(), "walkdog")
	if err != nil || r == nil {
		t.Fatalf("toggle: %v %v", r, err)
	}
	m.Update(events.RemovalDueMsg{Removal: *r})

	if got := len(m.svc.Tasks()); got != 0 {
		t.Fatalf("tasks = %d, want 0", got)
	}
	if n := lastToast(t, m); n.Message != "Completed task removed" {
		t.Fatalf("unexpected toast %#v", n)
	}
}

func TestStaleRemovalIsIgnored(t *testing.T) {
	m := newTestModel(t, "walk dog")
	_, r, _ := m.svc.Toggle(context.Background(), "walkdog")
	press(m, "space")

	m.Update(events.RemovalDueMsg{Removal: *r})
	tasks := m.svc.Tasks()
	if len(tasks) != 1 || tasks[0].Completed {
		t.Fatalf("reopened task should survive, got %#v", tasks)
	}
}

func TestDoubleDDeletes(t *testing.T) {
	m := newTestModel(t, "a", "b")

	press(m, "d", "j", "d")
	if got := len(m.svc.Tasks()); got != 2 {
		t.Fatalf("interrupted dd deleted a task")
	}

	press(m, "k", "d", "d")
	tasks := m.svc.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "b" {
		t.Fatalf("unexpected tasks %#v", tasks)
	}
	if n := lastToast(t, m); n.Message != "Task deleted" {
		t.Fatalf("unexpected toast %#v", n)
	}
}

func TestSlowDDoesNotDelete(t *testing.T) {
	m := newTestModel(t, "a")
	now := time.Now()
	m.now = func() time.Time { return now }
	press(m, "d")
	now = now.Add(time.Second)
	press(m, "d")
	if got := len(m.svc.Tasks()); got != 1 {
		t.Fatalf("slow dd should not delete")
	}
}

func TestToastExpires(t *testing.T) {
	m := newTestModel(t)
	press(m, "a")
	typeText(m, "x")
	press(m, "enter")

	items := m.toasts.Items()
	if len(items) != 1 {
		t.Fatalf("toasts = %d, want 1", len(items))
	}
	m.Update(events.ToastExpiredMsg{ID: items[0].ID})
	if m.toasts.Len() != 0 {
		t.Fatalf("toast should be dismissed")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	press(m, "?")
	if m.mode != modeHelp || m.help == nil {
		t.Fatalf("help should be open")
	}
	press(m, "esc")
	if m.mode != modeNormal {
		t.Fatalf("help should close")
	}
}

func TestQuitCancelsContext(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if m.ctx.Err() == nil {
		t.Fatalf("context should be cancelled")
	}
}

func TestWatchEventReloads(t *testing.T) {
	m := newTestModel(t, "a")
	other := app.New(m.svc.Persistence, nil)
	if _, err := other.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := other.Add(context.Background(), "b"); err != nil {
		t.Fatalf("add: %v", err)
	}

	m.Update(watchEventMsg{event: store.Event{Key: "todos"}})
	if got := len(m.list.Tasks()); got != 2 {
		t.Fatalf("list rows = %d, want 2", got)
	}
}

func TestRemovalOfEditedTaskLeavesEditMode(t *testing.T) {
	m := newTestModel(t, "buy milk")
	_, r, err := m.svc.Toggle(context.Background(), "buymilk")
	if err != nil || r == nil {
		t.Fatalf("toggle: %v %v", r, err)
	}

	press(m, "e")
	typeText(m, " now")
	if m.mode != modeEdit {
		t.Fatalf("mode = %v, want edit", m.mode)
	}

	m.Update(events.RemovalDueMsg{Removal: *r})

	if got := len(m.svc.Tasks()); got != 0 {
		t.Fatalf("tasks = %d, want 0", got)
	}
	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want normal once the edited task is gone", m.mode)
	}
	if m.input.Focused() || m.input.Value() != "" {
		t.Fatalf("input should be cleared and blurred, focused=%v value=%q", m.input.Focused(), m.input.Value())
	}
	if n := lastToast(t, m); n.Message != "Completed task removed" {
		t.Fatalf("unexpected toast %#v", n)
	}

	// Further typing is treated as normal-mode keys, not edit text.
	press(m, "enter")
	if n := lastToast(t, m); n.Message == "Task not found" {
		t.Fatalf("stale edit was submitted")
	}
}
