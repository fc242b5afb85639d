package seqs

import "iter"

// Number is the constraint shared by the numeric aggregates.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum adds up the elements of seq. An empty sequence sums to zero.
func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Min returns the smallest element, reporting false for an empty sequence.
func Min[T Number](seq iter.Seq[T]) (T, bool) {
	var min T
	first := true
	for v := range seq {
		if first {
			min = v
			first = false
			continue
		}
		if v < min {
			min = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return min, true
}

// Max returns the largest element, reporting false for an empty sequence.
func Max[T Number](seq iter.Seq[T]) (T, bool) {
	var max T
	first := true
	for v := range seq {
		if first {
			max = v
			first = false
			continue
		}
		if v > max {
			max = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return max, true
}
