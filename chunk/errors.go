package chunk

import "errors"

var (
	// ErrInvalidCapacity signals a request for a chunk with less than one slot.
	ErrInvalidCapacity = errors.New("chunk: capacity must be at least 1")
	// ErrIndexOutOfBounds signals an offset outside the live prefix.
	ErrIndexOutOfBounds = errors.New("chunk: index out of bounds")
)
