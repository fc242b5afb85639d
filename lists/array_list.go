package lists

import (
	"fmt"
	"iter"
	"slices"
)

var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
)

// ArrayList is a slice-backed List with O(1) positional access.
// It carries the RandomAccess marker.
type ArrayList[T any] struct {
	data []T
}

var (
	_ List[int]    = (*ArrayList[int])(nil)
	_ RandomAccess = (*ArrayList[int])(nil)
)

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// NewArrayListOf builds a list that copies the given elements.
func NewArrayListOf[T any](values ...T) *ArrayList[T] {
	l := NewArrayList[T](len(values))
	l.Add(values...)
	return l
}

// CollectList drains seq into a fresh ArrayList.
func CollectList[T any](seq iter.Seq[T]) *ArrayList[T] {
	l := NewArrayList[T](0)
	for v := range seq {
		l.data = append(l.data, v)
	}
	return l
}

// RandomAccess marks Get as O(1).
func (al *ArrayList[T]) RandomAccess() {}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return ErrIndexOutOfBounds
	}

	var zero T
	al.data = append(al.data, zero)
	copy(al.data[index+1:], al.data[index:])
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	// clear the last element, let it be GCed
	clear(al.data[len(al.data)-1:])
	al.data = al.data[:len(al.data)-1]
	return removed, nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) Contains(value T, equal func(a, b T) bool) bool {
	return al.IndexOf(value, equal) >= 0
}

func (al *ArrayList[T]) IndexOf(value T, equal func(a, b T) bool) int {
	return slices.IndexFunc(al.data, func(v T) bool {
		return equal(v, value)
	})
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// Clone returns a shallow copy of the list.
// It allocates a new underlying slice and copies the elements.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (al *ArrayList[T]) Clone() List[T] {
	return &ArrayList[T]{data: slices.Clone(al.data)}
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.data)
}
