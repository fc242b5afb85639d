package query

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"go.uber.org/zap"

	"lazyq/lists"
	"lazyq/logger"
	"lazyq/seqs"
)

// Options is the configuration a query carries. Every operation copies it
// from the receiver onto the derived query explicitly; nothing is inherited
// behind the caller's back.
type Options struct {
	// Logger receives the diagnostic guard-rails: re-iteration of a
	// single-use source, installation of full-scan fallbacks. Defaults to a
	// noop logger.
	Logger logger.Logger
}

// Query is a lazily evaluated sequence of T. Composing operations never pulls
// an element; only terminal calls (Count, ElementAt, ToArray, aggregates) do.
//
// Alongside the producer a query carries two lazily resolved capabilities:
// a count strategy and a positional-access strategy. Both are resolved at
// most once, and what is memoized is the strategy, never its result. A query
// is "seekable" when positional access is O(1); only then does the strict
// Length accessor work without scanning.
//
// Evaluation is single-threaded and pull-based. A Query is not safe for
// concurrent use.
type Query[T any] struct {
	// produce starts a fresh iteration session. Derived queries wrap their
	// parents' produce, so pulling from a session pulls through the whole
	// chain one element at a time.
	produce func() iter.Seq[T]

	// countHook and seekHook are installed at construction and consulted by
	// the resolver exactly once. A nil hook, or a hook answering nil, means
	// "no closed form": the resolver installs the scanning fallback.
	countHook func() func() int
	seekHook  func() (func(int) (T, bool), bool)

	countOnce sync.Once
	countFn   func() int

	seekOnce sync.Once
	itemAt   func(int) (T, bool)
	seekable bool

	// singleUse marks sources that cannot replay (channels). Iterating such
	// a query twice yields whatever is left, usually nothing; wasIterated
	// exists so the logger can point at the mistake.
	singleUse   bool
	wasIterated bool

	opts Options
}

// iterate starts an iteration session. All consumption funnels through here
// so the single-use guard-rail sees every pull.
func (q *Query[T]) iterate() iter.Seq[T] {
	if q.wasIterated && q.singleUse {
		q.opts.Logger.Warn("single-use source iterated again; it will yield little or nothing")
	}
	q.wasIterated = true
	return q.produce()
}

// WithLogger directs the query's diagnostics to l and returns the query for
// chaining. Derived queries copy the logger at composition time, so set it
// before composing. A nil l is ignored.
func (q *Query[T]) WithLogger(l logger.Logger) *Query[T] {
	if l != nil {
		q.opts.Logger = l
	}
	return q
}

// newQuery is the shared base: a producer with no capability hooks, so the
// resolver will fall back to scanning for both count and element access.
func newQuery[T any](produce func() iter.Seq[T]) *Query[T] {
	return &Query[T]{
		produce: produce,
		opts:    Options{Logger: logger.NewNoopLogger()},
	}
}

// derived builds the child query an operation returns. opts come from the
// parent; the hooks encode the operation's capability-propagation rule and
// are only evaluated if the child's capabilities are ever demanded.
func derived[T any](
	opts Options,
	produce func() iter.Seq[T],
	countHook func() func() int,
	seekHook func() (func(int) (T, bool), bool),
) *Query[T] {
	return &Query[T]{
		produce:   produce,
		countHook: countHook,
		seekHook:  seekHook,
		opts:      opts,
	}
}

// From builds a query from any supported source:
//
//   - *Query[T]: returned unchanged (wrapping is idempotent)
//   - []T: seekable, closed-form count
//   - iter.Seq[T] (or a bare func(func(T) bool)): re-iterable, not seekable
//   - func() iter.Seq[T]: a producer invoked once per iteration session
//   - chan T / <-chan T: single-use, not seekable
//   - lists.List[T]: closed-form count; seekable only when the list carries
//     the lists.RandomAccess marker
//
// Anything else fails with ErrInvalidSource. From never iterates the source.
func From[T any](source any) (*Query[T], error) {
	switch s := source.(type) {
	case *Query[T]:
		return s, nil
	case []T:
		return FromSlice(s), nil
	case iter.Seq[T]:
		return FromSeq(s), nil
	case func(func(T) bool):
		return FromSeq(iter.Seq[T](s)), nil
	case func() iter.Seq[T]:
		return FromFunc(s), nil
	case chan T:
		return FromChannel(s), nil
	case <-chan T:
		return FromChannel(s), nil
	case lists.List[T]:
		return FromList(s), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidSource, source)
	}
}

// FromSlice builds a seekable query over src. The slice is not copied; the
// query observes later writes to the backing array.
func FromSlice[T any](src []T) *Query[T] {
	q := newQuery(func() iter.Seq[T] {
		return slices.Values(src)
	})
	q.countHook = func() func() int {
		return func() int { return len(src) }
	}
	q.seekHook = func() (func(int) (T, bool), bool) {
		return func(i int) (T, bool) {
			if i < 0 || i >= len(src) {
				var zero T
				return zero, false
			}
			return src[i], true
		}, true
	}
	return q
}

// FromSeq builds a query over an iter.Seq. The sequence is assumed to be
// re-iterable (as those from slices.Values or lists are); if it is not,
// treat the query as single-use. A nil seq behaves as empty.
func FromSeq[T any](seq iter.Seq[T]) *Query[T] {
	if seq == nil {
		seq = seqs.Empty[T]()
	}
	return newQuery(func() iter.Seq[T] {
		return seq
	})
}

// FromFunc builds a query whose every iteration session calls produce for a
// fresh sequence. Panics with ErrInvalidArgument if produce is nil.
func FromFunc[T any](produce func() iter.Seq[T]) *Query[T] {
	if produce == nil {
		panic(badArg("FromFunc"))
	}
	return newQuery(produce)
}

// FromChannel builds a single-use query that drains ch. Re-iterating yields
// only what was never received, and nothing once ch is closed and drained;
// the query's logger warns when that happens.
func FromChannel[T any](ch <-chan T) *Query[T] {
	q := newQuery(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for v := range ch {
				if !yield(v) {
					return
				}
			}
		}
	})
	q.singleUse = true
	return q
}

// FromList builds a query over a lists.List. Size gives the closed-form
// count; the query is seekable only when l promises O(1) Get via the
// lists.RandomAccess marker. Without the marker Get still serves positional
// access, but it scans and the query reports not seekable.
func FromList[T any](l lists.List[T]) *Query[T] {
	q := newQuery(l.Values)
	q.countHook = func() func() int {
		return l.Size
	}
	_, quick := l.(lists.RandomAccess)
	q.seekHook = func() (func(int) (T, bool), bool) {
		return func(i int) (T, bool) {
			v, err := l.Get(i)
			if err != nil {
				var zero T
				return zero, false
			}
			return v, true
		}, quick
	}
	return q
}

// FromString builds a seekable query over the bytes of s. Byte indexing is
// the only O(1) view of a Go string; for code points, convert to []rune
// first and use FromSlice.
func FromString(s string) *Query[byte] {
	q := newQuery(func() iter.Seq[byte] {
		return func(yield func(byte) bool) {
			for i := 0; i < len(s); i++ {
				if !yield(s[i]) {
					return
				}
			}
		}
	})
	q.countHook = func() func() int {
		return func() int { return len(s) }
	}
	q.seekHook = func() (func(int) (byte, bool), bool) {
		return func(i int) (byte, bool) {
			if i < 0 || i >= len(s) {
				return 0, false
			}
			return s[i], true
		}, true
	}
	return q
}

// Empty returns a seekable query with no elements.
func Empty[T any]() *Query[T] {
	q := newQuery(seqs.Empty[T])
	q.countHook = func() func() int {
		return func() int { return 0 }
	}
	q.seekHook = func() (func(int) (T, bool), bool) {
		return func(int) (T, bool) {
			var zero T
			return zero, false
		}, true
	}
	return q
}

// Range returns the seekable query start, start+1, ..., start+count-1.
// Element access is computed, not stored: position i is start+i.
// A negative count behaves as zero.
func Range(start, count int) *Query[int] {
	if count < 0 {
		count = 0
	}
	q := newQuery(func() iter.Seq[int] {
		return seqs.Range(start, start+count, 1)
	})
	q.countHook = func() func() int {
		return func() int { return count }
	}
	q.seekHook = func() (func(int) (int, bool), bool) {
		return func(i int) (int, bool) {
			if i < 0 || i >= count {
				return 0, false
			}
			return start + i, true
		}, true
	}
	return q
}

// Repeat returns a seekable query yielding item count times.
// A negative count behaves as zero.
func Repeat[T any](item T, count int) *Query[T] {
	if count < 0 {
		count = 0
	}
	q := newQuery(func() iter.Seq[T] {
		return seqs.Repeat(item, count)
	})
	q.countHook = func() func() int {
		return func() int { return count }
	}
	q.seekHook = func() (func(int) (T, bool), bool) {
		return func(i int) (T, bool) {
			if i < 0 || i >= count {
				var zero T
				return zero, false
			}
			return item, true
		}, true
	}
	return q
}

// logger fields kept in one place so call sites stay short.
func opField(op string) zap.Field {
	return zap.String("op", op)
}
