package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

func useTempStore(t *testing.T) {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	prev := loadConfig
	loadConfig = func() (store.Config, error) { return store.StaticConfig(dir), nil }
	t.Cleanup(func() { loadConfig = prev })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func listJSON(t *testing.T) task.List {
	t.Helper()
	out, err := run(t, "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got task.List
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return got
}

func TestAddListEditRemove(t *testing.T) {
	useTempStore(t)

	out, err := run(t, "add", "walk", "dog")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Task added") {
		t.Fatalf("unexpected add output:\n%s", out)
	}

	out, err = run(t, "add", "walkdog")
	if err != nil {
		t.Fatalf("duplicate add should not fail: %v", err)
	}
	if !strings.Contains(out, "Task already exists") {
		t.Fatalf("unexpected duplicate output:\n%s", out)
	}

	if _, err := run(t, "edit", "walkdog", "walk", "the", "dog"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got := listJSON(t)
	if len(got) != 1 || got[0].ID != "walkdog" || got[0].Label != "walk the dog" {
		t.Fatalf("unexpected tasks %#v", got)
	}

	out, err = run(t, "rm", "walkdog", "--json")
	if err != nil {
		t.Fatalf("rm: %v", err)
	}
	if !strings.Contains(out, `"message":"Task deleted"`) {
		t.Fatalf("unexpected rm output:\n%s", out)
	}
	if got := listJSON(t); len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}

func TestDoneNoWaitKeepsCompletedTask(t *testing.T) {
	useTempStore(t)
	if _, err := run(t, "add", "feed", "cat"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := run(t, "done", "feedcat", "--no-wait")
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if !strings.Contains(out, "Task completed") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	got := listJSON(t)
	if len(got) != 1 || !got[0].Completed {
		t.Fatalf("expected completed task, got %#v", got)
	}

	if _, err := run(t, "toggle", "feedcat", "--no-wait"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := listJSON(t); got[0].Completed {
		t.Fatalf("expected reopened task")
	}
}

func TestDoneWaitsThenRemoves(t *testing.T) {
	useTempStore(t)
	if _, err := run(t, "add", "feed", "cat"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := run(t, "complete", "feedcat")
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if !strings.Contains(out, "Completed task removed") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if got := listJSON(t); len(got) != 0 {
		t.Fatalf("expected removal, got %#v", got)
	}
}

func TestArgumentErrors(t *testing.T) {
	useTempStore(t)
	for _, args := range [][]string{
		{"add"},
		{"edit"},
		{"rm"},
		{"done"},
		{"list", "extra"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}
