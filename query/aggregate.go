package query

import "lazyq/seqs"

// Aggregates. All of them consume the query (one full scan) and report the
// empty sequence as an explicit absent result, never as zero. Numeric
// aggregates are constrained to numeric element types; float NaN inputs
// follow IEEE comparison semantics rather than being filtered or repaired.

// Sum adds up the elements. The second result is false for an empty query.
func Sum[T seqs.Number](q *Query[T]) (T, bool) {
	total, n := SumAndCount(q)
	return total, n > 0
}

// SumAndCount adds up the elements and counts them in the same pass.
func SumAndCount[T seqs.Number](q *Query[T]) (T, int) {
	var total T
	n := 0
	for v := range q.iterate() {
		total += v
		n++
	}
	return total, n
}

// Min returns the smallest element, reporting false for an empty query.
func Min[T seqs.Number](q *Query[T]) (T, bool) {
	return seqs.Min(q.iterate())
}

// Max returns the largest element, reporting false for an empty query.
func Max[T seqs.Number](q *Query[T]) (T, bool) {
	return seqs.Max(q.iterate())
}

// MinFunc returns the element ordered first by compare, which must return a
// negative number, zero, or a positive number as a sorts before, equal to,
// or after b. Ties keep the earliest element.
func (q *Query[T]) MinFunc(compare func(a, b T) int) (T, bool) {
	if compare == nil {
		panic(badArg("MinFunc"))
	}
	var best T
	found := false
	for v := range q.iterate() {
		if !found || compare(v, best) < 0 {
			best = v
			found = true
		}
	}
	return best, found
}

// MaxFunc is MinFunc with the order reversed. Ties keep the earliest element.
func (q *Query[T]) MaxFunc(compare func(a, b T) int) (T, bool) {
	if compare == nil {
		panic(badArg("MaxFunc"))
	}
	var best T
	found := false
	for v := range q.iterate() {
		if !found || compare(v, best) > 0 {
			best = v
			found = true
		}
	}
	return best, found
}

// Summary is the result of Stats: the element count and the bounds. Ok is
// false for an empty query, in which case Min and Max hold zero values and
// carry no meaning.
type Summary[T any] struct {
	Count int
	Min   T
	Max   T
	Ok    bool
}

// Stats computes count, minimum and maximum in a single pass.
func Stats[T seqs.Number](q *Query[T]) Summary[T] {
	var s Summary[T]
	for v := range q.iterate() {
		if !s.Ok || v < s.Min {
			s.Min = v
		}
		if !s.Ok || v > s.Max {
			s.Max = v
		}
		s.Count++
		s.Ok = true
	}
	return s
}

// StatsFunc is Stats under a caller-supplied ordering.
func (q *Query[T]) StatsFunc(compare func(a, b T) int) Summary[T] {
	if compare == nil {
		panic(badArg("StatsFunc"))
	}
	var s Summary[T]
	for v := range q.iterate() {
		if !s.Ok || compare(v, s.Min) < 0 {
			s.Min = v
		}
		if !s.Ok || compare(v, s.Max) > 0 {
			s.Max = v
		}
		s.Count++
		s.Ok = true
	}
	return s
}

// Any reports whether some element satisfies predicate. It stops at the
// first match.
func (q *Query[T]) Any(predicate func(T) bool) bool {
	if predicate == nil {
		panic(badArg("Any"))
	}
	return seqs.Any(q.iterate(), predicate)
}

// All reports whether every element satisfies predicate. It stops at the
// first counterexample; an empty query satisfies All.
func (q *Query[T]) All(predicate func(T) bool) bool {
	if predicate == nil {
		panic(badArg("All"))
	}
	return seqs.All(q.iterate(), predicate)
}

// Contains reports whether value occurs in the query.
func Contains[T comparable](q *Query[T], value T) bool {
	return q.Any(func(v T) bool { return v == value })
}

// Aggregate folds the query into a single value, starting from seed.
func Aggregate[T, R any](q *Query[T], seed R, fold func(R, T) R) R {
	if fold == nil {
		panic(badArg("Aggregate"))
	}
	return seqs.Reduce(q.iterate(), seed, fold)
}
