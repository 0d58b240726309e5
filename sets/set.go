package sets

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Set is a set of values of type T. The zero value is an empty set ready
// to use.
type Set[T comparable] struct {
	members map[T]struct{}
}

// Of creates a set holding vals. Duplicates in vals are collapsed.
func Of[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{members: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		s.members[v] = struct{}{}
	}
	return s
}

// Add inserts v. Adding a member again is a no-op.
func (s *Set[T]) Add(v T) {
	if s.members == nil {
		s.members = map[T]struct{}{}
	}
	s.members[v] = struct{}{}
}

// Remove deletes v. Removing a non-member is a no-op.
func (s *Set[T]) Remove(v T) {
	if s == nil {
		return
	}
	delete(s.members, v)
}

// Contains reports whether v is a member of s.
func (s *Set[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[v]
	return ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// IsEmpty reports whether s has no members.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// All returns an iterator over the members, in no particular order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for v := range s.members {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns the members as a slice, in no particular order.
func (s *Set[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, s.Len()), s.All())
}

// Clone returns a copy of s.
func (s *Set[T]) Clone() *Set[T] {
	if s == nil || s.members == nil {
		return &Set[T]{members: map[T]struct{}{}}
	}
	return &Set[T]{members: maps.Clone(s.members)}
}

// SubsetOf reports whether every member of s is a member of other.
func (s *Set[T]) SubsetOf(other *Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for v := range s.All() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other have the same members.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.Len() == other.Len() && s.SubsetOf(other)
}

// String lists the members in the order of their formatted representation.
func (s *Set[T]) String() string {
	items := make([]string, 0, s.Len())
	for v := range s.All() {
		items = append(items, fmt.Sprint(v))
	}
	slices.Sort(items)
	return "{" + strings.Join(items, " ") + "}"
}

// Union returns the set of all members of s or other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] { return Union(s, other) }

// Intersection returns the set of members of both s and other.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] { return Intersection(s, other) }

// Difference returns the set of members of s which are not members of other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] { return Difference(s, other) }
