package history

import (
	"errors"
	"testing"

	"github.com/dshills/gopatterns/internal/editor/buffer"
)

func TestRunPushesToStack(t *testing.T) {
	buf := buffer.New()
	h := New()

	if err := h.Run(NewTypeCommand(buf, "Hello")); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !h.CanUndo() {
		t.Error("expected CanUndo after Run")
	}
	if got := h.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	buf := buffer.NewFromString("untouched")
	h := New()

	err := h.Undo()
	if !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("Undo() = %v, want ErrNothingToUndo", err)
	}
	if got := buf.String(); got != "untouched" {
		t.Errorf("buffer changed: %q", got)
	}
}

// The reference sequence: type "Hello", type " World", delete 6, then undo
// each step in reverse order.
func TestEditorSequence(t *testing.T) {
	buf := buffer.New()
	h := New()

	steps := []Command{
		NewTypeCommand(buf, "Hello"),
		NewTypeCommand(buf, " World"),
		NewDeleteCommand(buf, 6),
	}
	for _, cmd := range steps {
		if err := h.Run(cmd); err != nil {
			t.Fatalf("Run(%s) error: %v", cmd.Description(), err)
		}
	}

	if got := buf.String(); got != "Hello" {
		t.Fatalf("after sequence: %q, want %q", got, "Hello")
	}

	wantAfterUndo := []string{"Hello World", "Hello", ""}
	for i, want := range wantAfterUndo {
		if err := h.Undo(); err != nil {
			t.Fatalf("Undo #%d error: %v", i+1, err)
		}
		if got := buf.String(); got != want {
			t.Errorf("after undo #%d: %q, want %q", i+1, got, want)
		}
	}

	if err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("final Undo() = %v, want ErrNothingToUndo", err)
	}
}

// Round-trip property: any sequence of commands on a fresh buffer, undone in
// reverse order, restores the empty string.
func TestUndoRoundTrip(t *testing.T) {
	sequences := [][]func(b *buffer.Buffer) Command{
		{
			func(b *buffer.Buffer) Command { return NewTypeCommand(b, "abc") },
			func(b *buffer.Buffer) Command { return NewDeleteCommand(b, 2) },
			func(b *buffer.Buffer) Command { return NewTypeCommand(b, "xyz") },
		},
		{
			func(b *buffer.Buffer) Command { return NewDeleteCommand(b, 5) },
			func(b *buffer.Buffer) Command { return NewTypeCommand(b, "héllo wörld") },
			func(b *buffer.Buffer) Command { return NewDeleteCommand(b, 100) },
			func(b *buffer.Buffer) Command { return NewTypeCommand(b, "") },
		},
	}

	for i, seq := range sequences {
		buf := buffer.New()
		h := New()

		for _, mk := range seq {
			if err := h.Run(mk(buf)); err != nil {
				t.Fatalf("sequence %d: Run error: %v", i, err)
			}
		}
		for h.CanUndo() {
			if err := h.Undo(); err != nil {
				t.Fatalf("sequence %d: Undo error: %v", i, err)
			}
		}
		if got := buf.String(); got != "" {
			t.Errorf("sequence %d: round trip left %q, want empty", i, got)
		}
	}
}

func TestMaxEntriesEvictsOldest(t *testing.T) {
	buf := buffer.New()
	h := New(WithMaxEntries(2))

	for _, s := range []string{"a", "b", "c"} {
		if err := h.Run(NewTypeCommand(buf, s)); err != nil {
			t.Fatalf("Run error: %v", err)
		}
	}

	if got := h.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	// Only "c" and "b" remain undoable; "a" was evicted.
	_ = h.Undo()
	_ = h.Undo()
	if err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() = %v, want ErrNothingToUndo", err)
	}
	if got := buf.String(); got != "a" {
		t.Errorf("buffer = %q, want %q (evicted command not undoable)", got, "a")
	}
}

func TestPeekUndo(t *testing.T) {
	buf := buffer.New()
	h := New()

	if _, ok := h.PeekUndo(); ok {
		t.Error("PeekUndo on empty history should report false")
	}

	_ = h.Run(NewTypeCommand(buf, "hi"))
	desc, ok := h.PeekUndo()
	if !ok {
		t.Fatal("PeekUndo should report true")
	}
	if desc != `Type "hi"` {
		t.Errorf("PeekUndo() = %q", desc)
	}
	if got := h.Len(); got != 1 {
		t.Errorf("PeekUndo consumed the entry: Len() = %d", got)
	}
}

func TestEntriesOldestFirst(t *testing.T) {
	buf := buffer.New()
	h := New()

	_ = h.Run(NewTypeCommand(buf, "a"))
	_ = h.Run(NewDeleteCommand(buf, 1))

	got := h.Entries()
	want := []string{`Type "a"`, "Delete"}
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClear(t *testing.T) {
	buf := buffer.New()
	h := New()

	_ = h.Run(NewTypeCommand(buf, "a"))
	h.Clear()

	if h.CanUndo() {
		t.Error("CanUndo after Clear")
	}
	if got := buf.String(); got != "a" {
		t.Errorf("Clear must not touch the buffer: %q", got)
	}
}
