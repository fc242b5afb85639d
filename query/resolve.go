package query

import "lazyq/seqs"

// Capability resolution. Each capability is derived at most once per query,
// on first demand, and the derivation delegates to the source's hook when
// the construction site installed one. Factories encode what they know about
// the raw source; operations encode how their parents' capabilities carry
// over. Only when neither offers a closed form does the resolver install the
// scanning fallback.

// resolveCount memoizes and returns the count strategy. The strategy is
// cached, its result is not: a scanning strategy re-scans per call.
func (q *Query[T]) resolveCount() func() int {
	q.countOnce.Do(func() {
		if q.countHook != nil {
			if fn := q.countHook(); fn != nil {
				q.countFn = fn
				return
			}
		}
		q.opts.Logger.Debug("no closed-form count; every Count call scans the sequence", opField("Count"))
		q.countFn = func() int {
			return seqs.Count(q.iterate())
		}
	})
	return q.countFn
}

// resolveSeek memoizes and returns the positional-access strategy together
// with the seekable flag. The fallback scans a fresh session up to the
// requested index, stopping there; it never reports seekable.
func (q *Query[T]) resolveSeek() (func(int) (T, bool), bool) {
	q.seekOnce.Do(func() {
		if q.seekHook != nil {
			if at, quick := q.seekHook(); at != nil {
				q.itemAt = at
				q.seekable = quick
				return
			}
		}
		q.opts.Logger.Debug("no random-access strategy; element access scans from the start", opField("ElementAt"))
		q.seekable = false
		q.itemAt = func(i int) (T, bool) {
			return seqs.At(q.iterate(), i)
		}
	})
	return q.itemAt, q.seekable
}

// Seekable reports whether positional access and count are O(1) for this
// query. Resolving the flag inspects capabilities only; it never iterates.
func (q *Query[T]) Seekable() bool {
	_, quick := q.resolveSeek()
	return quick
}

// Count returns the number of elements. It always succeeds: with no closed
// form available it scans the sequence once per call.
func (q *Query[T]) Count() int {
	return q.resolveCount()()
}

// Length is the strict form of Count: it returns the closed-form length, and
// fails with ErrNotSeekable when computing it would require a scan. The
// error is a guard against O(n) work disguised as a property read.
func (q *Query[T]) Length() (int, error) {
	if !q.Seekable() {
		return 0, ErrNotSeekable
	}
	return q.resolveCount()(), nil
}
