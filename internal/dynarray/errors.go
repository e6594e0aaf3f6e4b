package dynarray

import (
	"errors"
	"fmt"
)

// Errors returned by list operations.
var (
	// ErrInvalidArgument indicates a rejected argument such as a capacity
	// below one or a nil callback.
	ErrInvalidArgument = errors.New("dynarray: invalid argument")

	// ErrIndexOutOfRange indicates an index outside the live range [0, Count).
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")
)

// IndexError wraps ErrIndexOutOfRange with the offending operation and index.
type IndexError struct {
	Op    string
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dynarray: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
