// Package task holds the to-do record and the pure transitions applied to an
// ordered list of them.
package task

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrDuplicate is returned when text would collide with an existing task.
	ErrDuplicate = errors.New("task: already exists")
	// ErrEmpty is returned for text that is blank once whitespace is removed.
	ErrEmpty = errors.New("task: text is empty")
	// ErrNotFound is returned when no task carries the requested id.
	ErrNotFound = errors.New("task: not found")
)

// Task is a single to-do entry.
type Task struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// New builds an open task for text, keyed by its whitespace-free form.
func New(text string) Task {
	return Task{
		ID:    Key(text),
		Label: text,
	}
}

// Key strips every whitespace rune from text. It is the identity used for
// duplicate detection.
func Key(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

func (t Task) String() string {
	if t.Completed {
		return "✓ " + t.Label
	}
	return "• " + t.Label
}

// List is an ordered task collection; insertion order is display order.
// Transitions never modify the receiver.
type List []Task

// Find returns the task with id and its index, or -1 when absent.
func (l List) Find(id string) (Task, int) {
	for i, t := range l {
		if t.ID == id {
			return t, i
		}
	}
	return Task{}, -1
}

// Clone returns an independent copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// taken reports whether key is used by any task other than skip.
func (l List) taken(key, skip string) bool {
	for _, t := range l {
		if t.ID == skip {
			continue
		}
		if t.ID == key || Key(t.Label) == key {
			return true
		}
	}
	return false
}

// Add appends a new open task for text.
func (l List) Add(text string) (List, Task, error) {
	key := Key(text)
	if key == "" {
		return l, Task{}, ErrEmpty
	}
	if l.taken(key, "") {
		return l, Task{}, ErrDuplicate
	}
	t := New(text)
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, t), t, nil
}

// Rename replaces the label of the task with id. The id itself is stable.
func (l List) Rename(id, text string) (List, error) {
	_, idx := l.Find(id)
	if idx < 0 {
		return l, ErrNotFound
	}
	key := Key(text)
	if key == "" {
		return l, ErrEmpty
	}
	if l.taken(key, id) {
		return l, ErrDuplicate
	}
	out := l.Clone()
	out[idx].Label = text
	return out, nil
}

// Toggle flips the completed flag of the task with id and returns the
// updated task.
func (l List) Toggle(id string) (List, Task, error) {
	_, idx := l.Find(id)
	if idx < 0 {
		return l, Task{}, ErrNotFound
	}
	out := l.Clone()
	out[idx].Completed = !out[idx].Completed
	return out, out[idx], nil
}

// Remove drops the task with id, reporting whether one was present.
func (l List) Remove(id string) (List, bool) {
	_, idx := l.Find(id)
	if idx < 0 {
		return l, false
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:idx]...)
	return append(out, l[idx+1:]...), true
}

// Normalize repairs tasks restored from storage: blank ids are derived from
// the label, and later duplicates of an id are dropped.
func (l List) Normalize() List {
	out := make(List, 0, len(l))
	seen := make(map[string]struct{}, len(l))
	for _, t := range l {
		if t.ID == "" {
			t.ID = Key(t.Label)
		}
		if t.ID == "" {
			continue
		}
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
