package dynarray

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/containers"
)

// Check validates the structural invariants of the array.
//
// This checker is strict and intended to be used in tests.
func (a *Array[T]) Check() error {
	if a == nil {
		return fmt.Errorf("%w: nil array", containers.ErrIllegalArguments)
	}
	if len(a.data) == 0 {
		return fmt.Errorf("%w: array has no backing store", containers.ErrIllegalArguments)
	}
	if a.size < 0 || a.size > len(a.data) {
		return fmt.Errorf("%w: size %d exceeds capacity %d",
			containers.ErrIllegalArguments, a.size, len(a.data))
	}
	var zero T
	for i := a.size; i < len(a.data); i++ {
		if !reflect.DeepEqual(a.data[i], zero) {
			return fmt.Errorf("%w: slot %d beyond size %d is not empty",
				containers.ErrIllegalArguments, i, a.size)
		}
	}
	return nil
}
