package dynarray

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
)

// Array is a resizable random-access sequence of elements of type T.
//
// Elements at indices [0, Len()) are valid. The backing store owned by an
// array is never shared with another array; Values returns a copy.
type Array[T any] struct {
	// data is the backing store; len(data) is the capacity.
	data []T
	// size is the logical element count; valid elements are data[:size].
	size int
}

// New creates an empty array with a validated configuration.
func New[T any](cfg Config) (*Array[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Array[T]{data: make([]T, cfg.InitialCapacity)}, nil
}

// NewWithCapacity creates an empty array with a given initial capacity.
// A capacity of 0 selects DefaultCapacity.
func NewWithCapacity[T any](capacity int) (*Array[T], error) {
	return New[T](Config{InitialCapacity: capacity})
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.size
}

// Cap returns the capacity of the backing store.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	var zero T
	if err := a.checkIndex(index, a.Len()); err != nil {
		return zero, err
	}
	return a.data[index], nil
}

// Set overwrites the element at index.
func (a *Array[T]) Set(index int, item T) error {
	if err := a.checkIndex(index, a.Len()); err != nil {
		return err
	}
	a.data[index] = item
	return nil
}

// Append places item at the end of the array, doubling the capacity if the
// array is full.
func (a *Array[T]) Append(item T) {
	assertThat(a != nil, "Append called on nil array")
	if a.size == len(a.data) {
		a.grow()
	}
	a.data[a.size] = item
	a.size++
}

// InsertAt inserts item at index, shifting the elements at [index, Len())
// one slot to the right. Inserting at Len() is equivalent to Append.
func (a *Array[T]) InsertAt(index int, item T) error {
	if err := a.checkIndex(index, a.Len()+1); err != nil {
		return err
	}
	if a.size == len(a.data) {
		a.grow()
	}
	copy(a.data[index+1:a.size+1], a.data[index:a.size])
	a.data[index] = item
	a.size++
	return nil
}

// RemoveAt removes and returns the element at index, shifting all following
// elements one slot to the left. The capacity is left unchanged.
func (a *Array[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := a.checkIndex(index, a.Len()); err != nil {
		return zero, err
	}
	item := a.data[index]
	copy(a.data[index:a.size-1], a.data[index+1:a.size])
	a.size--
	a.data[a.size] = zero // release references held by the vacated slot
	return item, nil
}

// Index returns the index of the first element for which pred holds.
// If no element matches, Index returns (-1, false).
func (a *Array[T]) Index(pred func(T) bool) (int, bool) {
	if a == nil || pred == nil {
		return -1, false
	}
	for i := range a.size {
		if pred(a.data[i]) {
			return i, true
		}
	}
	return -1, false
}

// IndexOf returns the index of the first element equal to item.
func IndexOf[T comparable](a *Array[T], item T) (int, bool) {
	return a.Index(func(x T) bool { return x == item })
}

// Values returns a copy of the elements of the array, in order.
func (a *Array[T]) Values() []T {
	if a == nil {
		return []T{}
	}
	values := make([]T, a.size)
	copy(values, a.data[:a.size])
	return values
}

// All returns an iterator over index/element pairs, in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.Len() {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

func (a *Array[T]) String() string {
	return fmt.Sprintf("%v", a.Values())
}

// grow doubles the capacity, copying the existing elements in order.
func (a *Array[T]) grow() {
	capacity := 2 * len(a.data)
	assertThat(capacity > 0, "array capacity must be positive")
	tracer().Debugf("dynarray: growing capacity %d → %d", len(a.data), capacity)
	data := make([]T, capacity)
	copy(data, a.data[:a.size])
	a.data = data
}

// checkIndex checks that 0 ≤ index < limit.
func (a *Array[T]) checkIndex(index, limit int) error {
	if a == nil {
		return fmt.Errorf("%w: nil array", containers.ErrIllegalArguments)
	}
	if index < 0 || index >= limit {
		return fmt.Errorf("%w: index %d, size %d", containers.ErrIndexOutOfRange, index, a.size)
	}
	return nil
}
