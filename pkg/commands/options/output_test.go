package options

import (
	"bytes"
	"errors"
	"testing"
)

func TestHandleErrorJSONKeepsError(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &buf}
	want := errors.New("store: write snapshot: disk full")

	if got := o.HandleError(want); !errors.Is(got, want) {
		t.Fatalf("HandleError = %v, want %v", got, want)
	}
	if got, exp := buf.String(), `{"error":"store: write snapshot: disk full"}`+"\n"; got != exp {
		t.Fatalf("output = %q, want %q", got, exp)
	}
}

func TestHandleErrorPlain(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{Out: &buf}
	want := errors.New("boom")

	if got := o.HandleError(want); got != want {
		t.Fatalf("HandleError = %v, want %v", got, want)
	}
	if buf.Len() != 0 {
		t.Fatalf("plain mode should not print, got %q", buf.String())
	}
	if err := o.HandleError(nil); err != nil {
		t.Fatalf("nil error = %v", err)
	}
}
