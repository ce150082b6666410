package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

func newService(t *testing.T, labels ...string) *app.Service {
	t.Helper()
	p, err := store.Load(store.StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := app.New(p, nil)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, l := range labels {
		if _, err := svc.Add(context.Background(), l); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return svc
}

func TestListPrintsTasks(t *testing.T) {
	color.NoColor = true
	svc := newService(t, "walk dog", "feed cat")

	var buf bytes.Buffer
	r := List{Service: svc, Printer: &printers.PrettyPrint{Out: &buf, ShowID: true}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"walk dog", "feed cat", "walkdog"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListJSON(t *testing.T) {
	svc := newService(t, "walk dog")

	var buf bytes.Buffer
	r := List{Service: svc, Printer: &printers.PrettyPrint{Out: &buf, JSON: true}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got task.List
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(got) != 1 || got[0].ID != "walkdog" {
		t.Fatalf("unexpected tasks %#v", got)
	}
}

func TestListRequiresService(t *testing.T) {
	if err := (&List{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
