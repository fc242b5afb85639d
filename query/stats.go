package query

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"lazyq/seqs"
)

// Statistical aggregates beyond the single-pass ones in aggregate.go. These
// materialize the sequence into a []float64 and hand it to gonum; the
// sequence is still consumed exactly once.

func collectFloats[T seqs.Number](q *Query[T]) []float64 {
	var xs []float64
	for v := range q.iterate() {
		xs = append(xs, float64(v))
	}
	return xs
}

// Mean returns the arithmetic mean, reporting false for an empty query.
func Mean[T seqs.Number](q *Query[T]) (float64, bool) {
	xs := collectFloats(q)
	if len(xs) == 0 {
		return 0, false
	}
	return stat.Mean(xs, nil), true
}

// StdDev returns the sample standard deviation, reporting false when the
// query holds fewer than two elements.
func StdDev[T seqs.Number](q *Query[T]) (float64, bool) {
	xs := collectFloats(q)
	if len(xs) < 2 {
		return 0, false
	}
	return stat.StdDev(xs, nil), true
}

// Median returns the empirical median, reporting false for an empty query.
// Unlike the other aggregates it must sort its snapshot of the elements.
func Median[T seqs.Number](q *Query[T]) (float64, bool) {
	xs := collectFloats(q)
	if len(xs) == 0 {
		return 0, false
	}
	sort.Float64s(xs)
	return stat.Quantile(0.5, stat.Empirical, xs, nil), true
}
