package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/gopatterns/internal/editor/buffer"
)

// Command is an edit action that can be executed and undone.
// Commands are bound to their receiver at construction.
type Command interface {
	// Execute performs the command.
	Execute() error

	// Undo reverses the command. Calling Undo immediately after Execute
	// restores the buffer to its prior content, provided no other command
	// mutated the buffer in between.
	Undo() error

	// Description returns a human-readable description of the command.
	Description() string
}

// TypeCommand appends fixed text to its buffer.
type TypeCommand struct {
	buf  *buffer.Buffer
	text string
}

// NewTypeCommand creates a command that types text into buf.
// The text is fixed at construction and never mutates.
func NewTypeCommand(buf *buffer.Buffer, text string) *TypeCommand {
	return &TypeCommand{buf: buf, text: text}
}

// Execute appends the text to the buffer.
func (c *TypeCommand) Execute() error {
	c.buf.Append(c.text)
	return nil
}

// Undo removes exactly the characters Execute appended.
func (c *TypeCommand) Undo() error {
	c.buf.Truncate(utf8.RuneCountInString(c.text))
	return nil
}

// Description returns a human-readable description.
func (c *TypeCommand) Description() string {
	n := utf8.RuneCountInString(c.text)
	if n <= 20 {
		return fmt.Sprintf("Type %q", c.text)
	}
	return fmt.Sprintf("Type %d characters", n)
}

// DeleteCommand removes up to Count characters from the end of its buffer.
type DeleteCommand struct {
	buf     *buffer.Buffer
	count   int
	removed string
}

// NewDeleteCommand creates a command that deletes count characters from the
// end of buf. A count below 1 is raised to 1.
func NewDeleteCommand(buf *buffer.Buffer, count int) *DeleteCommand {
	if count < 1 {
		count = 1
	}
	return &DeleteCommand{buf: buf, count: count}
}

// Execute captures the text about to be removed, then truncates. When the
// buffer holds fewer than count characters, removed is whatever was there
// and the truncation clamps to empty.
func (c *DeleteCommand) Execute() error {
	c.removed = c.buf.Tail(c.count)
	c.buf.Truncate(c.count)
	return nil
}

// Undo restores exactly what Execute removed, not the requested count.
func (c *DeleteCommand) Undo() error {
	c.buf.Append(c.removed)
	return nil
}

// Description returns a human-readable description.
func (c *DeleteCommand) Description() string {
	if c.count == 1 {
		return "Delete"
	}
	return fmt.Sprintf("Delete %d characters", c.count)
}
