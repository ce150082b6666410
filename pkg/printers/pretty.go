package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/task"
)

// PrettyPrint renders tasks and notices for the terminal.
type PrettyPrint struct {
	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Tasks prints the list in display order.
func (pp *PrettyPrint) Tasks(tasks task.List) error {
	if pp.JSON {
		if tasks == nil {
			tasks = task.List{}
		}
		return pp.encode(tasks)
	}

	pp.TitleWithCount("Todo", len(tasks))
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return nil
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		bullet, label := "•", t.Label
		if t.Completed {
			bullet, label = "✓", done.Sprint(t.Label)
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(t.ID), bullet, label)
		} else {
			tbl.AddRow(bullet, label)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
	return nil
}

// Notice prints an operation outcome, colored by level.
func (pp *PrettyPrint) Notice(n app.Notice) error {
	if n.IsZero() {
		return nil
	}
	if pp.JSON {
		return pp.encode(map[string]string{
			"level":   n.Level.String(),
			"message": n.Message,
		})
	}
	_, _ = noticeColor(n.Level).Fprintln(pp.out(), n.Message)
	return nil
}

func noticeColor(l app.Level) *color.Color {
	switch l {
	case app.LevelSuccess:
		return color.New(color.FgGreen)
	case app.LevelWarning:
		return color.New(color.FgYellow)
	case app.LevelError:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func (pp *PrettyPrint) encode(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
