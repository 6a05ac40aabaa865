// Package bufmgr manages the set of open buffers: numbering, the
// buffer list, the current buffer, and the three degrees of buffer
// deletion (unlist, unload, wipe).
//
// Handle 0 always resolves to the current buffer, so callers can act
// on "this buffer" without looking its number up first. Buffer numbers
// are assigned once and never reused within a session.
//
// The manager keeps the invariant that a current buffer always exists:
// deleting the last listed buffer creates a fresh empty one, matching
// the editor's behavior when :bwipeout removes the final buffer.
package bufmgr
