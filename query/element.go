package query

import (
	"fmt"

	"lazyq/seqs"
)

// ElementAt returns the element at position index, or an error wrapping
// ErrIndexOutOfRange when the position does not exist. On a seekable query
// this is O(1); otherwise it scans a fresh session up to index and stops.
// Repeated calls return the same value; access never mutates the query.
func (q *Query[T]) ElementAt(index int) (T, error) {
	at, _ := q.resolveSeek()
	v, ok := at(index)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return v, nil
}

// ElementAtOrDefault is ElementAt with absence as a value: it reports false
// instead of failing for a position that does not exist.
func (q *Query[T]) ElementAtOrDefault(index int) (T, bool) {
	at, _ := q.resolveSeek()
	return at(index)
}

// First returns the first element, or an error wrapping ErrEmptySequence.
func (q *Query[T]) First() (T, error) {
	v, ok := q.FirstOrDefault()
	if !ok {
		var zero T
		return zero, fmt.Errorf("First: %w", ErrEmptySequence)
	}
	return v, nil
}

// FirstOrDefault returns the first element, reporting false when there is
// none. It pulls at most one element.
func (q *Query[T]) FirstOrDefault() (T, bool) {
	return seqs.First(q.iterate())
}

// Last returns the final element, or an error wrapping ErrEmptySequence.
// A seekable query answers in O(1); anything else cannot seek backward, so
// it scans the whole sequence exactly once.
func (q *Query[T]) Last() (T, error) {
	v, ok := q.LastOrDefault()
	if !ok {
		var zero T
		return zero, fmt.Errorf("Last: %w", ErrEmptySequence)
	}
	return v, nil
}

// LastOrDefault is Last with absence as a value.
func (q *Query[T]) LastOrDefault() (T, bool) {
	if at, quick := q.resolveSeek(); quick {
		return at(q.resolveCount()() - 1)
	}
	return seqs.Last(q.iterate())
}
