package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	List   ListTheme
	Footer FooterTheme
	Toast  ToastTheme
	Help   HelpTheme
}

// HeaderTheme styles the title line above the task list.
type HeaderTheme struct {
	Title lipgloss.Style
	Count lipgloss.Style
}

// ListTheme styles task rows.
type ListTheme struct {
	Row       lipgloss.Style
	Selected  lipgloss.Style
	Completed lipgloss.Style
	Editing   lipgloss.Style
	Checkbox  lipgloss.Style
	Empty     lipgloss.Style
}

// FooterTheme groups styles used by the bottom input and help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Prompt lipgloss.Style
}

// ToastTheme styles transient notices, one style per level.
type ToastTheme struct {
	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// HelpTheme styles the help overlay.
type HelpTheme struct {
	Frame lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	toast := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Count: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		List: ListTheme{
			Row:       lipgloss.NewStyle(),
			Selected:  lipgloss.NewStyle().Reverse(true),
			Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241")),
			Editing:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Checkbox:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Empty:     lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Toast: ToastTheme{
			Success: toast.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
			Info:    toast.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")),
			Warning: toast.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
			Error:   toast.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")),
		},
		Help: HelpTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Margin(0).
				Padding(0),
		},
	}
}
