package buffer

import "testing"

func TestAppend(t *testing.T) {
	b := New()
	b.Append("Hello")
	b.Append(" World")
	if got := b.String(); got != "Hello World" {
		t.Errorf("String() = %q, want %q", got, "Hello World")
	}
}

func TestAppendEmptyIsNoOp(t *testing.T) {
	b := NewFromString("abc")
	b.Append("")
	if got := b.String(); got != "abc" {
		t.Errorf("String() = %q, want %q", got, "abc")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		n       int
		want    string
	}{
		{"partial", "Hello World", 6, "Hello"},
		{"exact", "Hello", 5, ""},
		{"clamp past empty", "Hi", 10, ""},
		{"zero", "Hello", 0, "Hello"},
		{"negative", "Hello", -3, "Hello"},
		{"empty buffer", "", 4, ""},
		{"multibyte", "héllo", 2, "hél"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.initial)
			b.Truncate(tt.n)
			if got := b.String(); got != tt.want {
				t.Errorf("Truncate(%d) left %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestTail(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		n       int
		want    string
	}{
		{"partial", "Hello World", 6, " World"},
		{"whole", "Hi", 10, "Hi"},
		{"zero", "Hello", 0, ""},
		{"negative", "Hello", -1, ""},
		{"multibyte", "héllo", 4, "éllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.initial)
			if got := b.Tail(tt.n); got != tt.want {
				t.Errorf("Tail(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestTailDoesNotMutate(t *testing.T) {
	b := NewFromString("Hello")
	_ = b.Tail(3)
	if got := b.String(); got != "Hello" {
		t.Errorf("Tail mutated buffer: %q", got)
	}
}

func TestLen(t *testing.T) {
	b := NewFromString("héllo")
	if got := b.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5 (characters, not bytes)", got)
	}
}
