package main

import (
	"errors"

	"github.com/bmphide/bmphide"
	"github.com/bmphide/bmphide/internal/bitmap"
	"github.com/bmphide/bmphide/internal/envelope"
)

// argError marks a usage mistake (missing or malformed arguments) as
// distinct from a failure inside the core codec.
type argError struct{ err error }

func (a argError) Error() string { return a.err.Error() }
func (a argError) Unwrap() error { return a.err }

func newArgError(err error) error { return argError{err} }

func isArgError(err error) bool {
	var a argError
	return errors.As(err, &a)
}

func isFormatError(err error) bool {
	return errors.Is(err, bitmap.ErrFormat) || errors.Is(err, bitmap.ErrTruncated)
}

func isCapacityError(err error) bool {
	return errors.Is(err, envelope.ErrCapacity) ||
		errors.Is(err, envelope.ErrMessageTooLarge) ||
		errors.Is(err, bmphide.ErrEmptyMessage)
}
