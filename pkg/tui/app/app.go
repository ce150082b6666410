// Package teaui hosts the Bubble Tea program for the todo TUI.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/log"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/logging"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/tui/components/help"
	"tableflip.dev/todo/pkg/tui/components/tasklist"
	"tableflip.dev/todo/pkg/tui/components/toast"
	"tableflip.dev/todo/pkg/tui/events"
	"tableflip.dev/todo/pkg/tui/theme"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeEdit
	modeHelp
)

const (
	defaultRemovalDelay  = 500 * time.Millisecond
	defaultToastDuration = 3 * time.Second
	// second "d" must follow the first within this window to delete.
	ddWindow = 600 * time.Millisecond
)

// Options tune timing and logging of the UI.
type Options struct {
	RemovalDelay  time.Duration
	ToastDuration time.Duration
	Log           *log.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	svc    *app.Service
	log    *log.Logger
	ctx    context.Context
	cancel context.CancelFunc
	mode   mode

	list   tasklist.Model
	input  textinput.Model
	toasts toast.Model
	help   *help.Model

	removalDelay  time.Duration
	toastDuration time.Duration

	awaitingDD bool
	lastDTime  time.Time
	now        func() time.Time

	termWidth  int
	termHeight int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	theme theme.Theme
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	if opts.RemovalDelay <= 0 {
		opts.RemovalDelay = defaultRemovalDelay
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = defaultToastDuration
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}

	th := theme.Default()
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:           svc,
		log:           opts.Log,
		ctx:           ctx,
		cancel:        cancel,
		mode:          modeNormal,
		list:          tasklist.New(th.List),
		input:         ti,
		toasts:        toast.New(th.Toast),
		removalDelay:  opts.RemovalDelay,
		toastDuration: opts.ToastDuration,
		now:           time.Now,
		theme:         th,
	}
	m.refresh()
	return m
}

// Init starts watching the store for changes made by other processes.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent reloads the snapshot another process wrote.
func (m *Model) handleWatchEvent(ev store.Event) {
	m.log.Debug("tui: store changed", "key", ev.Key)
	if _, err := m.svc.Load(m.ctx); err != nil {
		m.log.Error("tui: reload failed", "err", err)
		return
	}
	m.leaveStaleEdit()
	m.refresh()
}

// leaveStaleEdit drops the edit input once the service is no longer editing,
// which happens when the edited task is removed underneath it.
func (m *Model) leaveStaleEdit() {
	if m.mode == modeEdit && m.svc.State().Editing == "" {
		m.input.SetValue("")
		m.input.Blur()
		m.setMode(modeNormal)
	}
}

// refresh copies service state into the list view.
func (m *Model) refresh() {
	if m.svc == nil {
		return
	}
	st := m.svc.State()
	m.list.SetTasks(st.Tasks)
	m.list.SetEditing(st.Editing)
}

func (m *Model) notify(n app.Notice, cmds *[]tea.Cmd) {
	id := m.toasts.Push(n)
	if id < 0 {
		return
	}
	*cmds = append(*cmds, events.ExpireToast(id, m.toastDuration))
}

// report shows n, logging err when the store could not be written.
func (m *Model) report(n app.Notice, err error, cmds *[]tea.Cmd) {
	if err != nil {
		m.log.Error("tui: operation failed", "err", err)
	}
	m.notify(n, cmds)
	m.refresh()
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quit(cmds)
		return
	}
	switch m.mode {
	case modeHelp:
		m.handleHelpKey(msg, cmds)
	case modeAdd, modeEdit:
		m.handleInputKey(msg, cmds)
	default:
		m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "?":
		m.setMode(modeNormal)
	default:
		if m.help == nil {
			return
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.submitInput(cmds)
	case "esc":
		m.cancelInput()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		if m.mode == modeEdit {
			m.svc.SetBuffer(m.input.Value())
		}
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	key := msg.String()
	if key != "d" {
		m.awaitingDD = false
	}
	switch key {
	case "q":
		m.quit(cmds)
	case "j", "down":
		m.list.MoveDown()
	case "k", "up":
		m.list.MoveUp()
	case "g", "home":
		m.list.Top()
	case "G", "end":
		m.list.Bottom()
	case "a", "o":
		m.beginAdd(cmds)
	case "e", "i", "enter":
		m.beginEdit(cmds)
	case "x", "space", " ":
		m.toggleSelected(cmds)
	case "d":
		sel, ok := m.list.Selected()
		if !ok {
			return
		}
		now := m.now()
		if m.awaitingDD && now.Sub(m.lastDTime) < ddWindow {
			m.awaitingDD = false
			n, err := m.svc.Remove(m.ctx, sel.ID)
			m.report(n, err, cmds)
			return
		}
		m.awaitingDD = true
		m.lastDTime = now
	case "?":
		m.openHelp()
	}
}

func (m *Model) beginAdd(cmds *[]tea.Cmd) {
	m.input.SetValue("")
	m.input.Placeholder = "What needs to be done?"
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	m.setMode(modeAdd)
}

func (m *Model) beginEdit(cmds *[]tea.Cmd) {
	sel, ok := m.list.Selected()
	if !ok {
		return
	}
	if n := m.svc.BeginEdit(sel.ID); !n.IsZero() {
		m.notify(n, cmds)
		return
	}
	m.input.SetValue(m.svc.State().Buffer)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	m.setMode(modeEdit)
	m.refresh()
}

func (m *Model) submitInput(cmds *[]tea.Cmd) {
	text := m.input.Value()
	switch m.mode {
	case modeAdd:
		n, err := m.svc.Add(m.ctx, text)
		if err == nil && n.Level == app.LevelSuccess {
			m.input.Blur()
			m.setMode(modeNormal)
			m.report(n, nil, cmds)
			m.list.Bottom()
			return
		}
		m.report(n, err, cmds)
	case modeEdit:
		id := m.svc.State().Editing
		n, err := m.svc.SaveEdit(m.ctx, id, text)
		if m.svc.State().Editing == "" {
			m.input.Blur()
			m.setMode(modeNormal)
		}
		m.report(n, err, cmds)
	}
}

func (m *Model) cancelInput() {
	if m.mode == modeEdit {
		m.svc.CancelEdit()
	}
	m.input.SetValue("")
	m.input.Blur()
	m.setMode(modeNormal)
	m.refresh()
}

func (m *Model) toggleSelected(cmds *[]tea.Cmd) {
	sel, ok := m.list.Selected()
	if !ok {
		return
	}
	n, removal, err := m.svc.Toggle(m.ctx, sel.ID)
	m.report(n, err, cmds)
	if removal != nil {
		*cmds = append(*cmds, events.RemoveAfter(*removal, m.removalDelay))
	}
}

func (m *Model) openHelp() {
	w, h := m.overlaySize()
	if m.help == nil {
		m.help = help.New(m.theme.Help, w, h)
	} else {
		m.help.SetSize(w, h)
	}
	m.setMode(modeHelp)
}

func (m *Model) overlaySize() (int, int) {
	w, h := m.termWidth, m.termHeight-m.toasts.Len()-2
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

func (m *Model) quit(cmds *[]tea.Cmd) {
	m.stopWatch()
	m.cancel()
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) setMode(newMode mode) {
	m.mode = newMode
	m.awaitingDD = false
}

// Update routes messages to the current mode.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case events.ToastExpiredMsg:
		m.toasts.Dismiss(msg.ID)
		m.applySizes()
	case events.RemovalDueMsg:
		m.log.Debug("tui: " + msg.Describe())
		n, removed, err := m.svc.Expire(m.ctx, msg.Removal)
		if removed || err != nil {
			m.leaveStaleEdit()
			m.report(n, err, &cmds)
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.log.Warn("tui: watch unavailable", "err", msg.err)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		m.log.Info("tui: watching for changes")
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	default:
		if m.mode == modeAdd || m.mode == modeEdit {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the header, task list, input line, toasts and help.
func (m *Model) View() string {
	var sections []string

	if m.mode == modeHelp && m.help != nil {
		sections = append(sections, m.help.View())
	} else {
		sections = append(sections, m.header(), m.list.View())
	}

	switch m.mode {
	case modeAdd:
		sections = append(sections, m.theme.Footer.Prompt.Render("Add: ")+m.input.View())
	case modeEdit:
		sections = append(sections, m.theme.Footer.Prompt.Render("Edit: ")+m.input.View())
	case modeNormal:
		sections = append(sections, m.theme.Footer.Help.Render(helpLine))
	}
	if toasts := m.toasts.View(); toasts != "" {
		sections = append(sections, toasts)
	}

	return strings.Join(sections, "\n\n")
}

const helpLine = "a add · e edit · x complete · dd delete · ? help · q quit"

func (m *Model) header() string {
	tasks := m.list.Tasks()
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	count := fmt.Sprintf("%d tasks", len(tasks))
	if done > 0 {
		count = fmt.Sprintf("%d tasks, %d completed", len(tasks), done)
	}
	return m.theme.Header.Title.Render("Todo") + " " + m.theme.Header.Count.Render(count)
}

// applySizes recalculates component sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.toasts.SetWidth(m.termWidth)
	m.input.SetWidth(max(m.termWidth-8, 10))
	// header, input or help line, toasts and the blank lines between them.
	reserve := 6 + m.toasts.Len()
	m.list.SetSize(m.termWidth, max(m.termHeight-reserve, 1))
	if m.help != nil {
		m.help.SetSize(m.overlaySize())
	}
}

// Run launches the interactive TUI program.
func Run(svc *app.Service, opts Options) error {
	p := tea.NewProgram(New(svc, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
