// Package prompt reads task text interactively.
package prompt

import (
	"errors"

	"github.com/manifoldco/promptui"

	"tableflip.dev/todo/pkg/task"
)

var errEmpty = errors.New("task cannot be empty")

// Validate rejects text that is blank once whitespace is removed.
func Validate(text string) error {
	if task.Key(text) == "" {
		return errEmpty
	}
	return nil
}

// Text asks for task text. A non-empty seed is offered for editing.
func Text(label, seed string) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   seed,
		AllowEdit: seed != "",
		Validate:  Validate,
	}
	return p.Run()
}
