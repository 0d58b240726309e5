/*
Package dynarray implements a random-access sequence with amortized growth.

An Array keeps its elements in a contiguous backing store of capacity C and
a logical size n ≤ C. Appending to a full array doubles its capacity, which
keeps the amortized cost of Append at O(1). Capacity never shrinks, not even
when elements are removed.

	Operation     |   Cost
	--------------+-----------------
	Get / Set     |   O(1)
	Append        |   O(1) amortized
	InsertAt(i)   |   O(n-i)
	RemoveAt(i)   |   O(n-i)
	Index         |   O(n)

An Array is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dynarray

import (
	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return containers.T()
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
