// Package help renders the key reference overlay.
//
// The markdown source is embedded and rendered with Glamour at the overlay's
// width, then shown in a scrollable viewport.
package help

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/todo/pkg/tui/theme"
)

//go:embed help.md
var helpMarkdown string

// Model renders the Glamour-based help overlay inside a bordered viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	frame lipgloss.Style
	err   error
}

// New constructs a help overlay model sized to the provided bounds.
func New(th theme.HelpTheme, width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	model := &Model{
		viewport: vp,
		frame:    th.Frame,
	}
	model.SetSize(width, height)
	return model
}

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the help content inside the frame.
func (m *Model) View() string {
	body := m.viewport.View()
	if body == "" && m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	return m.frame.Width(m.width).Height(m.height).Render(body)
}

// Err reports the last rendering failure, if any.
func (m *Model) Err() error { return m.err }

// SetSize configures the overlay dimensions and re-renders the markdown to fit.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 32, 8
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if m.width == width && m.height == height {
		return
	}

	m.width = width
	m.height = height

	frameX := m.frame.GetHorizontalFrameSize()
	frameY := m.frame.GetVerticalFrameSize()

	innerWidth := max(width-frameX, 1)
	innerHeight := max(height-frameY, 1)

	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)

	m.renderContent(innerWidth)
}

func (m *Model) renderContent(wrap int) {
	renderWidth := max(wrap, 10)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		m.err = err
		m.viewport.SetContent("help unavailable: " + err.Error())
		return
	}

	content, err := renderer.Render(strings.TrimSpace(helpMarkdown))
	if err != nil {
		m.err = err
		m.viewport.SetContent("help unavailable: " + err.Error())
		return
	}

	content = stripANSI(content)

	m.err = nil
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(0)
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
