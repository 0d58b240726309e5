package slist

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
)

// List is a singly linked list of elements of type T.
//
// The zero value is an empty list ready to use. Without an equality
// function, elements are compared with ==, which panics for element types
// that are not comparable; use NewWithEquality for those.
type List[T any] struct {
	equal func(a, b T) bool
	head  *node[T]
	size  int
}

type node[T any] struct {
	data T
	next *node[T]
}

// New creates an empty list for comparable elements.
func New[T comparable]() *List[T] {
	return &List[T]{equal: func(a, b T) bool { return a == b }}
}

// NewWithEquality creates an empty list comparing elements with equal.
func NewWithEquality[T any](equal func(a, b T) bool) (*List[T], error) {
	if equal == nil {
		return nil, fmt.Errorf("%w: list needs an equality function", containers.ErrIllegalArguments)
	}
	return &List[T]{equal: equal}, nil
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l == nil || l.head == nil
}

// InsertFront makes data the new first element.
func (l *List[T]) InsertFront(data T) {
	l.head = &node[T]{data: data, next: l.head}
	l.size++
}

// InsertAtEnd appends data after the last element.
func (l *List[T]) InsertAtEnd(data T) {
	slot := l.slotAt(l.size)
	*slot = &node[T]{data: data}
	l.size++
}

// InsertAtPosition inserts data so that it ends up at position. Position 0
// is the same as InsertFront, position Len() the same as InsertAtEnd.
func (l *List[T]) InsertAtPosition(position int, data T) error {
	if err := l.checkPosition(position, l.Len()+1); err != nil {
		return err
	}
	slot := l.slotAt(position)
	*slot = &node[T]{data: data, next: *slot}
	l.size++
	tracer().Debugf("slist: insert at position %d of %d", position, l.size)
	return nil
}

// DeleteAtBeginning removes and returns the first element.
func (l *List[T]) DeleteAtBeginning() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: cannot delete from empty list", containers.ErrEmptyCollection)
	}
	return l.unlink(&l.head), nil
}

// DeleteAtEnd removes and returns the last element.
func (l *List[T]) DeleteAtEnd() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: cannot delete from empty list", containers.ErrEmptyCollection)
	}
	return l.unlink(l.slotAt(l.size - 1)), nil
}

// DeleteAtPosition removes and returns the element at position. Position 0
// is the same as DeleteAtBeginning.
func (l *List[T]) DeleteAtPosition(position int) (T, error) {
	if position == 0 {
		return l.DeleteAtBeginning()
	}
	if err := l.checkPosition(position, l.Len()); err != nil {
		var zero T
		return zero, err
	}
	tracer().Debugf("slist: delete at position %d of %d", position, l.size)
	return l.unlink(l.slotAt(position)), nil
}

// Delete removes the first element equal to data. It returns false if no
// such element exists.
func (l *List[T]) Delete(data T) bool {
	if l.IsEmpty() {
		return false
	}
	for slot := &l.head; *slot != nil; slot = &(*slot).next {
		if l.eq((*slot).data, data) {
			l.unlink(slot)
			return true
		}
	}
	return false
}

// Search returns the position of the first element equal to data. If no
// such element exists, Search returns (-1, false).
func (l *List[T]) Search(data T) (int, bool) {
	if l == nil {
		return -1, false
	}
	position := 0
	for n := l.head; n != nil; n = n.next {
		if l.eq(n.data, data) {
			return position, true
		}
		position++
	}
	return -1, false
}

// Traverse returns the elements of the list from head to tail. Every call
// returns a fresh slice.
func (l *List[T]) Traverse() []T {
	elements := make([]T, 0, l.Len())
	for data := range l.All() {
		elements = append(elements, data)
	}
	return elements
}

// All returns an iterator over the elements from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

func (l *List[T]) eq(a, b T) bool {
	if l.equal == nil {
		return any(a) == any(b)
	}
	return l.equal(a, b)
}

func (l *List[T]) String() string {
	return fmt.Sprintf("%v", l.Traverse())
}

// slotAt returns the link which holds the node at position, i.e. the head
// link for position 0 and the next-link of the predecessor otherwise.
// For position Len() it returns the empty link after the last node.
func (l *List[T]) slotAt(position int) **node[T] {
	slot := &l.head
	for range position {
		assert(*slot != nil, "slist: walked off the end of the list")
		slot = &(*slot).next
	}
	return slot
}

// unlink removes the node held by slot, transferring its tail to slot.
func (l *List[T]) unlink(slot **node[T]) T {
	n := *slot
	*slot = n.next
	n.next = nil
	l.size--
	return n.data
}

// checkPosition checks that 0 ≤ position < limit.
func (l *List[T]) checkPosition(position, limit int) error {
	if l == nil {
		return fmt.Errorf("%w: nil list", containers.ErrIllegalArguments)
	}
	if position < 0 || position >= limit {
		tracer().Errorf("slist: position %d out of range for list of length %d", position, l.size)
		return fmt.Errorf("%w: position %d, length %d", containers.ErrIndexOutOfRange, position, l.size)
	}
	return nil
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
