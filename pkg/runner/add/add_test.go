package add

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

func TestAddPersistsAndReportsDuplicates(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	p, err := store.Load(store.StaticConfig(dir))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := app.New(p, nil)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	var buf bytes.Buffer
	r := Add{Text: "buy milk", Service: svc, Printer: &printers.PrettyPrint{Out: &buf}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do duplicate: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Task added") || !strings.Contains(out, "Task already exists") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	// A new process sees the persisted task.
	p2, _ := store.Load(store.StaticConfig(dir))
	if got := p2.Load(context.Background()); len(got) != 1 || got[0].ID != "buymilk" {
		t.Fatalf("unexpected persisted tasks %#v", got)
	}
}
