package history

import "errors"

// ErrNothingToUndo is returned by Undo when the history is empty.
// It is a normal, non-fatal outcome: the buffer is left untouched.
var ErrNothingToUndo = errors.New("nothing to undo")
