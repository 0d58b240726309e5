package sets

// Union returns a new set with all members of a or b.
func Union[T comparable](a, b *Set[T]) *Set[T] {
	result := a.Clone()
	for v := range b.All() {
		result.Add(v)
	}
	tracer().Debugf("sets: |A ∪ B| = %d for |A| = %d, |B| = %d", result.Len(), a.Len(), b.Len())
	return result
}

// Intersection returns a new set with the members present in both a and b.
func Intersection[T comparable](a, b *Set[T]) *Set[T] {
	small, large := a, b
	if small.Len() > large.Len() {
		small, large = large, small
	}
	result := &Set[T]{members: map[T]struct{}{}}
	for v := range small.All() {
		if large.Contains(v) {
			result.Add(v)
		}
	}
	tracer().Debugf("sets: |A ∩ B| = %d for |A| = %d, |B| = %d", result.Len(), a.Len(), b.Len())
	return result
}

// Difference returns a new set with the members of a which are not members
// of b. Difference is not symmetric.
func Difference[T comparable](a, b *Set[T]) *Set[T] {
	result := &Set[T]{members: map[T]struct{}{}}
	for v := range a.All() {
		if !b.Contains(v) {
			result.Add(v)
		}
	}
	tracer().Debugf("sets: |A ∖ B| = %d for |A| = %d, |B| = %d", result.Len(), a.Len(), b.Len())
	return result
}

// IsMember reports whether x is a member of a or of b.
func IsMember[T comparable](x T, a, b *Set[T]) bool {
	return a.Contains(x) || b.Contains(x)
}
