package app

import (
	"errors"

	"tableflip.dev/todo/pkg/task"
)

// Level grades a Notice.
type Level int

const (
	// LevelSuccess reports a change that was applied.
	LevelSuccess Level = iota
	// LevelInfo reports a neutral change such as completing a task.
	LevelInfo
	// LevelWarning reports input that was rejected.
	LevelWarning
	// LevelError reports a failure to persist.
	LevelError
)

// String returns the lower-case level name used in JSON output.
func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notice is a transient, user facing outcome of an operation.
type Notice struct {
	Level   Level  `json:"-"`
	Message string `json:"message"`
}

// IsZero reports whether there is nothing to show.
func (n Notice) IsZero() bool { return n.Message == "" }

const (
	msgAdded     = "Task added"
	msgDuplicate = "Task already exists"
	msgEmpty     = "Task cannot be empty"
	msgDeleted   = "Task deleted"
	msgUpdated   = "Task updated"
	msgCompleted = "Task completed"
	msgReopened  = "Task reopened"
	msgNotFound  = "Task not found"
	msgRemoved   = "Completed task removed"
)

func success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }
func info(msg string) Notice    { return Notice{Level: LevelInfo, Message: msg} }
func warning(msg string) Notice { return Notice{Level: LevelWarning, Message: msg} }

// rejection maps a validation error onto its warning.
func rejection(err error) Notice {
	switch {
	case errors.Is(err, task.ErrDuplicate):
		return warning(msgDuplicate)
	case errors.Is(err, task.ErrEmpty):
		return warning(msgEmpty)
	case errors.Is(err, task.ErrNotFound):
		return warning(msgNotFound)
	default:
		return Notice{Level: LevelError, Message: err.Error()}
	}
}

// State is everything the to-do screen owns. Transitions return a new State
// and leave the receiver untouched.
type State struct {
	Tasks task.List
	// Editing is the id of the task being edited, empty otherwise.
	Editing string
	// Buffer holds the in-progress edit text.
	Buffer string
}

// IsEditing reports whether id is in edit mode.
func (s State) IsEditing(id string) bool {
	return s.Editing != "" && s.Editing == id
}

// Add appends a task for text unless its key is already taken.
func (s State) Add(text string) (State, Notice) {
	tasks, _, err := s.Tasks.Add(text)
	if err != nil {
		return s, rejection(err)
	}
	s.Tasks = tasks
	return s, success(msgAdded)
}

// Remove deletes the task with id. The notice is reported whether or not the
// task existed.
func (s State) Remove(id string) (State, Notice) {
	s.Tasks, _ = s.Tasks.Remove(id)
	if s.Editing == id {
		s = s.CancelEdit()
	}
	return s, success(msgDeleted)
}

// BeginEdit enters edit mode for id, seeding the buffer with its label.
func (s State) BeginEdit(id string) (State, Notice) {
	t, idx := s.Tasks.Find(id)
	if idx < 0 {
		return s, warning(msgNotFound)
	}
	s.Editing = id
	s.Buffer = t.Label
	return s, Notice{}
}

// SetBuffer records in-progress edit text.
func (s State) SetBuffer(text string) State {
	s.Buffer = text
	return s
}

// CancelEdit leaves edit mode without changes.
func (s State) CancelEdit() State {
	s.Editing = ""
	s.Buffer = ""
	return s
}

// SaveEdit relabels id. On rejection edit mode is kept so the user can fix
// the text.
func (s State) SaveEdit(id, text string) (State, Notice) {
	tasks, err := s.Tasks.Rename(id, text)
	if err != nil {
		if s.IsEditing(id) {
			s.Buffer = text
		}
		return s, rejection(err)
	}
	s.Tasks = tasks
	if s.IsEditing(id) {
		s = s.CancelEdit()
	}
	return s, success(msgUpdated)
}

// Toggle flips completion of id and returns the updated task.
func (s State) Toggle(id string) (State, task.Task, Notice) {
	tasks, t, err := s.Tasks.Toggle(id)
	if err != nil {
		return s, task.Task{}, rejection(err)
	}
	s.Tasks = tasks
	if t.Completed {
		return s, t, info(msgCompleted)
	}
	return s, t, info(msgReopened)
}
