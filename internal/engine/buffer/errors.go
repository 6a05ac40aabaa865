package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrNotModifiable is returned when a mutation is attempted on a
	// buffer whose 'modifiable' flag is off.
	ErrNotModifiable = errors.New("buffer is not modifiable")

	// ErrReadOnly is returned by collaborators (file layer, registers)
	// when a write would violate the 'readonly' flag. The buffer itself
	// never gates mutations on it; see the modifiable flag.
	ErrReadOnly = errors.New("buffer is read-only")

	// ErrIndexOutOfBounds is returned in strict mode when a resolved
	// line index falls outside the buffer.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidRange is returned when a range has start > end after
	// index resolution, or a text range is malformed.
	ErrInvalidRange = errors.New("invalid range")

	// ErrBufferWiped is returned when a structural operation is
	// attempted on a wiped buffer.
	ErrBufferWiped = errors.New("buffer has been wiped")

	// ErrBufferModified is returned when an unforced delete or wipe
	// would discard unsaved changes.
	ErrBufferModified = errors.New("buffer has unsaved changes")
)
