// Package buffer provides the mutable text receiver edited through commands.
//
// A Buffer owns a single string of content. Content only changes through
// Append and Truncate, the two operations commands are built from; everything
// else is a read-only snapshot. Truncate clamps when asked to remove more
// characters than exist, since deleting "up to N characters" is always a
// valid request.
//
// Buffer is not synchronized. The design assumes one logical caller drives
// edits sequentially; the history layer above it carries the lock.
package buffer
