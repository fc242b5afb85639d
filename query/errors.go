package query

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSource reports a From source that is none of the supported
	// kinds (slice, sequence, producer function, channel, list, query).
	ErrInvalidSource = errors.New("query: cannot build a query from this source")

	// ErrInvalidArgument reports a required function argument that is nil.
	// Operations panic with an error wrapping it: a nil callback is a
	// programming mistake, not a runtime condition.
	ErrInvalidArgument = errors.New("query: argument must be a non-nil function")

	// ErrIndexOutOfRange reports strict element access beyond the bounds of
	// the sequence.
	ErrIndexOutOfRange = errors.New("query: index out of range")

	// ErrEmptySequence reports strict First/Last access on a sequence that
	// yields nothing.
	ErrEmptySequence = errors.New("query: sequence contains no elements")

	// ErrNotSeekable reports a strict Length call on a query whose count has
	// no closed form. Use Count, which is allowed to scan.
	ErrNotSeekable = errors.New("query: sequence is not seekable, use Count instead of Length")
)

// badArg builds the panic value for a nil function argument.
func badArg(op string) error {
	return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
}
