package radix

import "errors"

// ErrOutOfMemory is returned when the bump allocator cannot satisfy a
// request, or when KeyCopy is given a buffer too small for the full
// key. Apart from ErrTooSmall, it is the only error value any function
// in this package returns - nothing in this package panics on
// caller-supplied input.
var ErrOutOfMemory = errors.New("radix: out of memory")

// ErrTooSmall is returned by Clear when the buffer cannot even hold a
// meta record.
var ErrTooSmall = errors.New("radix: buffer too small for meta record")
