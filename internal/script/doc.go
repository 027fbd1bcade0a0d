// Package script drives editing sessions from Lua.
//
// A Session binds a buffer and its history into a sandboxed Lua state and
// exposes a small editing API as globals:
//
//	type(text)   -- run a type command
//	delete(n)    -- run a delete command
//	undo()       -- undo the last command; returns false when history is empty
//	content()    -- current buffer content
//	history()    -- table of undoable command descriptions, oldest first
//
// The type(text) global replaces Lua's built-in type(), so runtime type
// inspection is not available to scripts.
//
// Only the base, table, string and math libraries are opened; file and
// process access is not available to scripts. The file loaders (dofile,
// loadfile, load, loadstring) are removed and require is restricted to the
// opened libraries, so scripts cannot pull in code from disk. A Session's
// Lua state is not goroutine-safe and must be driven from a single
// goroutine.
package script
