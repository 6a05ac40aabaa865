package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithHandle sets the buffer's number. Assigned by the buffer manager
// at creation time.
func WithHandle(h Handle) Option {
	return func(b *Buffer) {
		b.handle = h
	}
}

// WithName sets the buffer name (file path or display name).
func WithName(name string) Option {
	return func(b *Buffer) {
		b.name = name
	}
}

// WithType sets the buffer type. Scratch buffers are additionally
// unlisted, matching the 'buftype=nofile' + 'nobuflisted' convention.
func WithType(t Type) Option {
	return func(b *Buffer) {
		b.buftype = t
		if t == TypeScratch {
			b.listed = false
		}
	}
}

// WithHiddenPolicy sets the 'bufhidden' behavior.
func WithHiddenPolicy(h Hidden) Option {
	return func(b *Buffer) {
		b.bufhidden = h
	}
}

// WithListed sets the initial listedness flag.
func WithListed(listed bool) Option {
	return func(b *Buffer) {
		b.listed = listed
	}
}

// WithReadOnly marks the buffer read-only from the start.
func WithReadOnly() Option {
	return func(b *Buffer) {
		b.readonly = true
	}
}

// WithUnmodifiable marks the buffer not modifiable from the start.
func WithUnmodifiable() Option {
	return func(b *Buffer) {
		b.modifiable = false
	}
}
