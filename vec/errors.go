package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by checked access past the live range.
	ErrIndexOutOfRange = errors.New("vec: index out of range")
	// ErrEmptyContainer is returned by PopBack, Front and Back on an empty Vector.
	ErrEmptyContainer = errors.New("vec: empty container")
	// ErrNegativeSize is the panic value for sized construction with n < 0.
	ErrNegativeSize = errors.New("vec: negative size")
)

// IndexError describes a failed checked access.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vec: index %d out of range [0:%d)", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func emptyError(op string) error {
	return fmt.Errorf("%w: %s", ErrEmptyContainer, op)
}
