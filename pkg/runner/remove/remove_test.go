package remove

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

func TestRemoveDeletesOnlyTarget(t *testing.T) {
	color.NoColor = true
	p, err := store.Load(store.StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := app.New(p, nil)
	ctx := context.Background()
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, l := range []string{"a", "b", "c"} {
		if _, err := svc.Add(ctx, l); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	r := Remove{ID: "b", Service: svc, Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}}}
	if err := r.Do(ctx); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := p.Load(ctx)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected persisted tasks %#v", got)
	}
}
