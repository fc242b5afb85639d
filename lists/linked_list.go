package lists

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// LinkedList is a doubly linked List. Add/Insert/Remove at either end are
// O(1); Get walks from the nearer end, so it deliberately does NOT carry the
// RandomAccess marker.
type LinkedList[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

var _ List[int] = (*LinkedList[int])(nil)

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// NewLinkedListOf builds a list holding the given elements.
func NewLinkedListOf[T any](values ...T) *LinkedList[T] {
	l := NewLinkedList[T]()
	l.Add(values...)
	return l
}

func (ll *LinkedList[T]) Add(values ...T) {
	for _, v := range values {
		n := &node[T]{value: v, prev: ll.tail}
		if ll.tail == nil {
			ll.head = n
		} else {
			ll.tail.next = n
		}
		ll.tail = n
		ll.size++
	}
}

func (ll *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > ll.size {
		return ErrIndexOutOfBounds
	}
	if index == ll.size {
		ll.Add(value)
		return nil
	}

	at := ll.nodeAt(index)
	n := &node[T]{value: value, prev: at.prev, next: at}
	if at.prev == nil {
		ll.head = n
	} else {
		at.prev.next = n
	}
	at.prev = n
	ll.size++
	return nil
}

func (ll *LinkedList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= ll.size {
		var zero T
		return zero, ErrIndexOutOfBounds
	}

	n := ll.nodeAt(index)
	if n.prev == nil {
		ll.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		ll.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	// detach so the node can be GCed even if something still holds it
	n.prev, n.next = nil, nil
	ll.size--
	return n.value, nil
}

func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return ErrIndexOutOfBounds
	}
	ll.nodeAt(index).value = value
	return nil
}

func (ll *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= ll.size {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return ll.nodeAt(index).value, nil
}

// nodeAt walks from whichever end is closer. index must be valid.
func (ll *LinkedList[T]) nodeAt(index int) *node[T] {
	if index < ll.size/2 {
		n := ll.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := ll.tail
	for i := ll.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	// break the links between nodes so stray references do not pin the chain
	for n := ll.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	ll.head, ll.tail, ll.size = nil, nil, 0
}

func (ll *LinkedList[T]) Contains(value T, equal func(a, b T) bool) bool {
	return ll.IndexOf(value, equal) >= 0
}

func (ll *LinkedList[T]) IndexOf(value T, equal func(a, b T) bool) int {
	i := 0
	for n := ll.head; n != nil; n = n.next {
		if equal(n.value, value) {
			return i
		}
		i++
	}
	return -1
}

func (ll *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, ll.size)
	for n := ll.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := ll.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// String implements fmt.Stringer for easier debugging.
func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := ll.head; n != nil; n = n.next {
		if n != ll.head {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
