package lists

import "iter"

// List defines a generic list interface supporting common list operations.
// T can be any type.
type List[T any] interface {
	// Add appends one or more elements to the end of the list.
	Add(values ...T)

	// Insert inserts an element at the specified index.
	// Returns an error if index < 0 or index > Size().
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index.
	// Returns an error if index is out of bounds.
	Remove(index int) (T, error)

	// Set modifies the element at the specified index.
	// Returns an error if index is out of bounds.
	Set(index int, value T) error

	// Get retrieves the element at the specified index.
	// Returns an error if index is out of bounds.
	// Cost depends on the implementation: constant for ArrayList,
	// a scan from the nearest end for LinkedList.
	Get(index int) (T, error)

	// Size returns the current number of elements in the list.
	Size() int

	// IsEmpty checks if the list is empty.
	IsEmpty() bool

	// Clear clears the list and releases memory.
	Clear()

	// Contains checks if the list contains a specific element.
	// Since T is any, direct comparison using == is not possible,
	// so an equality function equal must be provided.
	Contains(value T, equal func(a, b T) bool) bool

	// IndexOf finds the first occurrence index of an element, returns -1 if not found.
	IndexOf(value T, equal func(a, b T) bool) int

	// ToSlice converts the list to a native slice.
	// This is an "escape hatch" method for users to fall back to standard library operations.
	ToSlice() []T

	// Values returns an iterator over the elements in list order.
	Values() iter.Seq[T]
}

// RandomAccess is a marker interface: implementations promise that Get runs
// in O(1). Consumers that need positional access (the query package's
// capability resolver, binary searches) check for it before treating a List
// as directly indexable; a List without the marker only supports scanning.
type RandomAccess interface {
	// RandomAccess is never called; it exists to make the promise explicit
	// instead of relying on knowledge of the concrete type.
	RandomAccess()
}

// FindIndex locates v in l using ==. It requires T to be comparable;
// for arbitrary T use List.IndexOf with an equality function.
func FindIndex[T comparable](l List[T], v T) int {
	return l.IndexOf(v, func(a, b T) bool {
		return a == b
	})
}
