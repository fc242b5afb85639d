package query

import (
	"iter"

	"lazyq/seqs"
)

// The operation set. Every operation returns a new query and leaves the
// receiver untouched; the capability hooks it installs encode the
// propagation rules:
//
//	Select          count and seek of the parent, element access mapped
//	Where           nothing survives: count and access degrade to scans
//	Take(n)         count min(n, parent), access guarded at n
//	Skip(n)         count parent-n, access shifted by n
//	Concat          counts add, seekable only if both sides are
//	Splice          whatever its Take/Concat/Skip composition yields
//	Distinct        nothing survives
//
// Hooks consult the parent's resolved capabilities, so a chain resolves
// outside-in on first demand and each link resolves at most once.

// Where yields only the elements satisfying predicate. The result has no
// closed-form count and is never seekable.
func (q *Query[T]) Where(predicate func(T) bool) *Query[T] {
	if predicate == nil {
		panic(badArg("Where"))
	}
	return derived(q.opts, func() iter.Seq[T] {
		return seqs.Filter(q.iterate(), predicate)
	}, nil, nil)
}

// Select transforms every element. It preserves the parent's count and
// seekability; positional access applies transform to the parent's element.
// For a projection to a different element type use the package-level
// [Select] function (methods cannot introduce type parameters).
func (q *Query[T]) Select(transform func(T) T) *Query[T] {
	return Select(q, transform)
}

// Select transforms every element of q with transform, projecting to R.
// Count and seekability carry over from q.
func Select[T, R any](q *Query[T], transform func(T) R) *Query[R] {
	if transform == nil {
		panic(badArg("Select"))
	}
	return derived(q.opts,
		func() iter.Seq[R] {
			return seqs.Map(q.iterate(), transform)
		},
		func() func() int {
			return q.resolveCount()
		},
		func() (func(int) (R, bool), bool) {
			at, quick := q.resolveSeek()
			return func(i int) (R, bool) {
				v, ok := at(i)
				if !ok {
					var zero R
					return zero, false
				}
				return transform(v), true
			}, quick
		})
}

// Take yields at most n leading elements. Negative n behaves as zero.
func (q *Query[T]) Take(n int) *Query[T] {
	if n < 0 {
		n = 0
	}
	return derived(q.opts,
		func() iter.Seq[T] {
			return seqs.Take(q.iterate(), n)
		},
		func() func() int {
			if !q.Seekable() {
				// scanning the bounded producer stops at n; min(n, parent
				// count) would scan the parent to the end
				return nil
			}
			pc := q.resolveCount()
			return func() int { return min(n, pc()) }
		},
		func() (func(int) (T, bool), bool) {
			at, quick := q.resolveSeek()
			return func(i int) (T, bool) {
				if i < 0 || i >= n {
					var zero T
					return zero, false
				}
				return at(i)
			}, quick
		})
}

// Skip discards the first n elements. Negative n behaves as zero.
func (q *Query[T]) Skip(n int) *Query[T] {
	if n < 0 {
		n = 0
	}
	return derived(q.opts,
		func() iter.Seq[T] {
			return seqs.Skip(q.iterate(), n)
		},
		func() func() int {
			if !q.Seekable() {
				return nil
			}
			pc := q.resolveCount()
			return func() int { return max(0, pc()-n) }
		},
		func() (func(int) (T, bool), bool) {
			at, quick := q.resolveSeek()
			return func(i int) (T, bool) {
				if i < 0 {
					var zero T
					return zero, false
				}
				return at(i + n)
			}, quick
		})
}

// TakeWhile yields leading elements while predicate holds, then stops.
// The result is never seekable: where it ends depends on the data.
func (q *Query[T]) TakeWhile(predicate func(T) bool) *Query[T] {
	if predicate == nil {
		panic(badArg("TakeWhile"))
	}
	return derived(q.opts, func() iter.Seq[T] {
		return seqs.TakeWhile(q.iterate(), predicate)
	}, nil, nil)
}

// SkipWhile discards leading elements while predicate holds, then yields the
// rest. Never seekable.
func (q *Query[T]) SkipWhile(predicate func(T) bool) *Query[T] {
	if predicate == nil {
		panic(badArg("SkipWhile"))
	}
	return derived(q.opts, func() iter.Seq[T] {
		return seqs.DropWhile(q.iterate(), predicate)
	}, nil, nil)
}

// Concat yields the receiver's elements followed by other's. Counts add;
// the result stays seekable only when both operands are, with access
// dispatched to the first operand or, beyond its length, to the second.
func (q *Query[T]) Concat(other *Query[T]) *Query[T] {
	if other == nil {
		panic(badArg("Concat"))
	}
	return derived(q.opts,
		func() iter.Seq[T] {
			return seqs.Concat(q.iterate(), other.iterate())
		},
		func() func() int {
			qc, oc := q.resolveCount(), other.resolveCount()
			return func() int { return qc() + oc() }
		},
		func() (func(int) (T, bool), bool) {
			qAt, qQuick := q.resolveSeek()
			oAt, oQuick := other.resolveSeek()
			if !qQuick || !oQuick {
				// composing would need the first operand's count per probe;
				// a plain scan of the concatenation is cheaper
				return nil, false
			}
			qc := q.resolveCount()
			return func(i int) (T, bool) {
				if i < 0 {
					var zero T
					return zero, false
				}
				if n := qc(); i >= n {
					return oAt(i - n)
				}
				return qAt(i)
			}, true
		})
}

// Splice reproduces the splice of dynamic array APIs: at position start it
// removes deleteCount elements and inserts items in their place. A start
// past the end appends items after all elements; negative start or
// deleteCount behave as zero. It is composed as
// Take(start) + items + Skip(start+deleteCount) and inherits that
// composition's capabilities (seekable parents give a seekable splice).
func (q *Query[T]) Splice(start, deleteCount int, items ...T) *Query[T] {
	if start < 0 {
		start = 0
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	inserted := FromSlice(items)
	inserted.opts = q.opts
	return q.Take(start).Concat(inserted).Concat(q.Skip(start + deleteCount))
}

// Distinct yields each value once, in first-seen order, using hash-based
// set membership (O(n) amortized). For element types that are not
// comparable, use [Query.DistinctFunc]. Never seekable.
func Distinct[T comparable](q *Query[T]) *Query[T] {
	return derived(q.opts, func() iter.Seq[T] {
		return seqs.Distinct(q.iterate())
	}, nil, nil)
}

// DistinctFunc is Distinct under a caller-supplied equality. Without a hash
// it compares every candidate against all previously yielded values, O(n^2)
// worst case; the asymmetry with [Distinct] is deliberate and callers should
// choose accordingly. Never seekable.
func (q *Query[T]) DistinctFunc(equal func(a, b T) bool) *Query[T] {
	if equal == nil {
		panic(badArg("DistinctFunc"))
	}
	return derived(q.opts, func() iter.Seq[T] {
		return seqs.DistinctFunc(q.iterate(), equal)
	}, nil, nil)
}

// Peek runs action on each element as it flows past, without changing the
// sequence. The count carries over; positional access does not (it would
// bypass the action).
func (q *Query[T]) Peek(action func(T)) *Query[T] {
	if action == nil {
		panic(badArg("Peek"))
	}
	return derived(q.opts,
		func() iter.Seq[T] {
			return seqs.Peek(q.iterate(), action)
		},
		func() func() int {
			return q.resolveCount()
		},
		nil)
}
