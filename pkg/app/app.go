package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"tableflip.dev/todo/pkg/logging"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

// Service owns the to-do State. It applies transitions, mirrors the task list
// to persistence after every change and tracks deferred removals so UIs and
// CLIs can share logic. It is safe for concurrent use.
type Service struct {
	Persistence store.Persistence
	Log         *log.Logger

	mu      sync.Mutex
	state   State
	pending map[string]string // task id -> removal token
}

// Removal is a deferred delete scheduled when a task is completed. It only
// takes effect if it is still the task's latest pending removal.
type Removal struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

var errNoPersistence = errors.New("app: no persistence configured")

// New returns a Service over p. A nil logger discards output.
func New(p store.Persistence, l *log.Logger) *Service {
	if l == nil {
		l = logging.Discard()
	}
	return &Service{Persistence: p, Log: l}
}

func (s *Service) logger() *log.Logger {
	if s.Log == nil {
		s.Log = logging.Discard()
	}
	return s.Log
}

// Load restores the task list from persistence, replacing in-memory tasks.
// Edit mode survives when the edited task still exists.
func (s *Service) Load(ctx context.Context) (State, error) {
	if s.Persistence == nil {
		return State{}, errNoPersistence
	}
	tasks := s.Persistence.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.Tasks = tasks
	if next.Editing != "" {
		if _, idx := tasks.Find(next.Editing); idx < 0 {
			next = next.CancelEdit()
		}
	}
	for id := range s.pending {
		if t, idx := tasks.Find(id); idx < 0 || !t.Completed {
			delete(s.pending, id)
		}
	}
	s.state = next
	s.logger().Debug("app: loaded", "tasks", len(tasks))
	return s.snapshot(), nil
}

// State returns a copy of the current state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Tasks returns a copy of the current task list.
func (s *Service) Tasks() task.List {
	return s.State().Tasks
}

func (s *Service) snapshot() State {
	out := s.state
	out.Tasks = s.state.Tasks.Clone()
	if out.Tasks == nil {
		out.Tasks = task.List{}
	}
	return out
}

// commit installs next, persisting it first when the task list changed. On a
// write failure the previous state is kept. Callers hold s.mu.
func (s *Service) commit(next State) error {
	if !slices.Equal(next.Tasks, s.state.Tasks) {
		if s.Persistence == nil {
			return errNoPersistence
		}
		if err := s.Persistence.Save(next.Tasks); err != nil {
			s.logger().Error("app: persist failed", "err", err)
			return err
		}
	}
	s.state = next
	return nil
}

func saveFailed(err error) Notice {
	return Notice{Level: LevelError, Message: fmt.Sprintf("Could not save: %v", err)}
}

func (s *Service) reject(op string, n Notice) {
	if n.Level == LevelWarning {
		s.logger().Debug("app: rejected", "op", op, "reason", n.Message)
	}
}

// Add appends a task for text.
func (s *Service) Add(_ context.Context, text string) (Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, n := s.state.Add(text)
	if n.Level != LevelSuccess {
		s.reject("add", n)
		return n, nil
	}
	if err := s.commit(next); err != nil {
		return saveFailed(err), err
	}
	return n, nil
}

// Remove deletes the task with id and cancels any pending removal for it.
func (s *Service) Remove(_ context.Context, id string) (Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, n := s.state.Remove(id)
	if err := s.commit(next); err != nil {
		return saveFailed(err), err
	}
	delete(s.pending, id)
	return n, nil
}

// BeginEdit enters edit mode for id.
func (s *Service) BeginEdit(id string) Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, n := s.state.BeginEdit(id)
	if !n.IsZero() {
		s.reject("edit", n)
		return n
	}
	s.state = next
	return n
}

// SetBuffer records in-progress edit text.
func (s *Service) SetBuffer(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.SetBuffer(text)
}

// CancelEdit leaves edit mode.
func (s *Service) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.CancelEdit()
}

// SaveEdit relabels the task with id.
func (s *Service) SaveEdit(_ context.Context, id, text string) (Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, n := s.state.SaveEdit(id, text)
	if n.Level != LevelSuccess {
		s.reject("save", n)
		s.state = next
		return n, nil
	}
	if err := s.commit(next); err != nil {
		return saveFailed(err), err
	}
	return n, nil
}

// Toggle flips completion of id. When the task became completed a Removal is
// returned; pass it to Expire once the removal delay has elapsed. Reopening a
// task cancels its pending removal.
func (s *Service) Toggle(_ context.Context, id string) (Notice, *Removal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, t, n := s.state.Toggle(id)
	if n.Level == LevelWarning {
		s.reject("toggle", n)
		return n, nil, nil
	}
	if err := s.commit(next); err != nil {
		return saveFailed(err), nil, err
	}
	if !t.Completed {
		delete(s.pending, id)
		return n, nil, nil
	}
	if s.pending == nil {
		s.pending = make(map[string]string)
	}
	r := Removal{ID: id, Token: uuid.NewString()}
	s.pending[id] = r.Token
	return n, &r, nil
}

// Pending reports whether r is still scheduled.
func (s *Service) Pending(r Removal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[r.ID] == r.Token && r.Token != ""
}

// Expire carries out r if it is still pending and the task is still
// completed. It reports whether a task was removed.
func (s *Service) Expire(_ context.Context, r Removal) (Notice, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.Token == "" || s.pending[r.ID] != r.Token {
		return Notice{}, false, nil
	}
	delete(s.pending, r.ID)
	if t, idx := s.state.Tasks.Find(r.ID); idx < 0 || !t.Completed {
		return Notice{}, false, nil
	}
	next, _ := s.state.Remove(r.ID)
	if err := s.commit(next); err != nil {
		return saveFailed(err), false, err
	}
	return success(msgRemoved), true, nil
}

// ExpireAfter waits delay and then expires r. It returns early with the
// context error when ctx is done first.
func (s *Service) ExpireAfter(ctx context.Context, r Removal, delay time.Duration) (Notice, bool, error) {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Notice{}, false, ctx.Err()
	case <-timer.C:
	}
	return s.Expire(ctx, r)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
