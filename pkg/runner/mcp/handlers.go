// Package mcp exposes the to-do list over the Model Context Protocol.
package mcp

import (
	"context"
	"time"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/task"
)

const defaultRemovalDelay = 500 * time.Millisecond

// handlers adapts Service operations to transport-friendly results.
type handlers struct {
	svc   *app.Service
	delay time.Duration
}

// Result is the payload returned by every mutating tool.
type Result struct {
	Level   string       `json:"level"`
	Message string       `json:"message"`
	Tasks   task.List    `json:"tasks"`
	Removal *app.Removal `json:"removal,omitempty"`
}

func (h *handlers) result(n app.Notice) Result {
	return Result{
		Level:   n.Level.String(),
		Message: n.Message,
		Tasks:   h.svc.Tasks(),
	}
}

func (h *handlers) list() task.List {
	return h.svc.Tasks()
}

func (h *handlers) add(ctx context.Context, text string) (Result, error) {
	n, err := h.svc.Add(ctx, text)
	if err != nil {
		return Result{}, err
	}
	return h.result(n), nil
}

func (h *handlers) edit(ctx context.Context, id, text string) (Result, error) {
	if n := h.svc.BeginEdit(id); !n.IsZero() {
		return h.result(n), nil
	}
	n, err := h.svc.SaveEdit(ctx, id, text)
	// Requests are one-shot; never leave edit mode open.
	h.svc.CancelEdit()
	if err != nil {
		return Result{}, err
	}
	return h.result(n), nil
}

func (h *handlers) remove(ctx context.Context, id string) (Result, error) {
	n, err := h.svc.Remove(ctx, id)
	if err != nil {
		return Result{}, err
	}
	return h.result(n), nil
}

func (h *handlers) toggle(ctx context.Context, id string) (Result, error) {
	n, removal, err := h.svc.Toggle(ctx, id)
	if err != nil {
		return Result{}, err
	}
	res := h.result(n)
	if removal != nil {
		res.Removal = removal
		h.scheduleRemoval(*removal)
	}
	return res, nil
}

// scheduleRemoval expires r in the background. The request context is not
// used since it ends with the call.
func (h *handlers) scheduleRemoval(r app.Removal) {
	time.AfterFunc(h.delay, func() {
		if _, _, err := h.svc.Expire(context.Background(), r); err != nil {
			h.svc.Log.Error("mcp: deferred removal failed", "id", r.ID, "err", err)
		}
	})
}
