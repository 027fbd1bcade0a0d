package history

import (
	"sync"
	"time"

	"github.com/dshills/gopatterns/internal/logging"
)

// entry wraps an executed command with metadata.
type entry struct {
	command   Command
	timestamp time.Time
}

// History is the invoker: it executes commands and keeps a LIFO stack of
// executed, not-yet-undone commands for undo. The top of the stack is always
// the most recently executed command.
type History struct {
	mu sync.Mutex

	stack      []*entry
	maxEntries int
	logger     *logging.Logger
}

// Option configures a History.
type Option func(*History)

// WithMaxEntries bounds the undo stack. Oldest entries are evicted when the
// bound is exceeded. Values below 1 keep the default.
func WithMaxEntries(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.maxEntries = n
		}
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(l *logging.Logger) Option {
	return func(h *History) {
		if l != nil {
			h.logger = l
		}
	}
}

// New creates a history manager.
func New(opts ...Option) *History {
	h := &History{
		maxEntries: 1000,
		logger:     logging.Nop,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a command and pushes it onto the undo stack. A command that
// fails is not pushed; there is no rollback, since commands are total
// functions over valid buffer states.
func (h *History) Run(cmd Command) error {
	if err := cmd.Execute(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.stack = append(h.stack, &entry{command: cmd, timestamp: time.Now()})
	if len(h.stack) > h.maxEntries {
		excess := len(h.stack) - h.maxEntries
		h.stack = h.stack[excess:]
	}

	h.logger.Debug("ran %s (depth %d)", cmd.Description(), len(h.stack))
	return nil
}

// Undo pops the most recent command and reverses it. An empty history
// returns ErrNothingToUndo with no state change. If the command's Undo
// fails the entry is restored to the stack.
func (h *History) Undo() error {
	h.mu.Lock()
	if len(h.stack) == 0 {
		h.mu.Unlock()
		h.logger.Debug("undo requested with empty history")
		return ErrNothingToUndo
	}

	e := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	h.mu.Unlock()

	if err := e.command.Undo(); err != nil {
		h.mu.Lock()
		h.stack = append(h.stack, e)
		h.mu.Unlock()
		return err
	}

	h.logger.Debug("undid %s", e.command.Description())
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.stack) > 0
}

// Len returns the number of undoable commands.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.stack)
}

// PeekUndo returns the description of the next command to be undone.
func (h *History) PeekUndo() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.stack) == 0 {
		return "", false
	}
	return h.stack[len(h.stack)-1].command.Description(), true
}

// Entries returns the descriptions of all undoable commands, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.stack))
	for i, e := range h.stack {
		out[i] = e.command.Description()
	}
	return out
}

// Clear discards all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stack = nil
}
