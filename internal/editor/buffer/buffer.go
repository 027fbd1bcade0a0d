package buffer

// Buffer is a mutable text receiver. All counts are in characters (runes),
// not bytes, so multi-byte content truncates cleanly.
type Buffer struct {
	content string
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFromString creates a buffer with initial content.
func NewFromString(s string) *Buffer {
	return &Buffer{content: s}
}

// Append concatenates text to the end of the content.
// Appending the empty string is a no-op.
func (b *Buffer) Append(text string) {
	b.content += text
}

// Truncate removes the last n characters. If n exceeds the current length
// the buffer is clamped to empty; negative n is treated as zero. Truncate
// never fails: any count is a valid request to delete up to n characters.
func (b *Buffer) Truncate(n int) {
	if n <= 0 {
		return
	}
	runes := []rune(b.content)
	if n >= len(runes) {
		b.content = ""
		return
	}
	b.content = string(runes[:len(runes)-n])
}

// Tail returns the last min(n, length) characters without modifying the
// buffer. Commands use it to capture exactly what a truncation will remove.
func (b *Buffer) Tail(n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(b.content)
	if n >= len(runes) {
		return b.content
	}
	return string(runes[len(runes)-n:])
}

// String returns a snapshot of the current content.
func (b *Buffer) String() string {
	return b.content
}

// Len returns the content length in characters.
func (b *Buffer) Len() int {
	return len([]rune(b.content))
}
