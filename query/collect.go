package query

import (
	"slices"

	"lazyq/lists"
)

// ToArray drains the query into a slice. Empty queries yield a nil slice.
func (q *Query[T]) ToArray() []T {
	return slices.Collect(q.iterate())
}

// ToList drains the query into a fresh ArrayList.
func (q *Query[T]) ToList() *lists.ArrayList[T] {
	return lists.CollectList(q.iterate())
}

// Materialize drains the query once and returns a seekable snapshot over the
// result. Use it to pin down a chain that has degraded to iteration-only
// before repeated positional access, or to freeze a single-use source.
func (q *Query[T]) Materialize() *Query[T] {
	snap := FromSlice(q.ToArray())
	snap.opts = q.opts
	return snap
}

// ForEach runs action over every element, in source order.
func (q *Query[T]) ForEach(action func(T)) {
	if action == nil {
		panic(badArg("ForEach"))
	}
	for v := range q.iterate() {
		action(v)
	}
}
