package seqs_test

import (
	"slices"
	"testing"

	"lazyq/seqs"
)

func TestSum(t *testing.T) {
	if got := seqs.Sum(slices.Values([]int{1, 2, 3})); got != 6 {
		t.Errorf("Sum = %d, want 6", got)
	}
	if got := seqs.Sum(seqs.Empty[float64]()); got != 0 {
		t.Errorf("Sum over empty sequence = %v, want 0", got)
	}
}

func TestMinMax(t *testing.T) {
	input := []int{3, 1, 2}

	if v, ok := seqs.Min(slices.Values(input)); !ok || v != 1 {
		t.Errorf("Min = (%d, %v), want (1, true)", v, ok)
	}
	if v, ok := seqs.Max(slices.Values(input)); !ok || v != 3 {
		t.Errorf("Max = (%d, %v), want (3, true)", v, ok)
	}

	if _, ok := seqs.Min(seqs.Empty[int]()); ok {
		t.Error("Min over empty sequence reported a value")
	}
	if _, ok := seqs.Max(seqs.Empty[int]()); ok {
		t.Error("Max over empty sequence reported a value")
	}
}
