package slist

import (
	"fmt"

	"github.com/npillmayer/containers"
)

// Check validates that the chain of nodes is finite and that its length
// matches the cached size.
func (l *List[T]) Check() error {
	if l == nil {
		return fmt.Errorf("%w: nil list", containers.ErrIllegalArguments)
	}
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
		if count > l.size {
			return fmt.Errorf("%w: more than %d nodes reachable from head",
				containers.ErrIllegalArguments, l.size)
		}
	}
	if count != l.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", containers.ErrIllegalArguments, count, l.size)
	}
	return nil
}
