// Package history provides self-inverting edit commands and the invoker that
// sequences them.
//
// A Command is bound to its buffer at construction and captures, during
// Execute, whatever it needs to reverse its own effect: TypeCommand remembers
// the text it appended, DeleteCommand remembers the exact text it removed
// (which may be shorter than the requested count when the buffer runs out).
//
// History runs commands and keeps a last-in-first-out stack of executed,
// not-yet-undone commands. Undo always reverses the most recent entry. There
// is no redo: undone commands are discarded. That is a deliberate
// simplification of this design, not an oversight.
package history
