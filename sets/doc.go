/*
Package sets implements finite unordered sets and the elementary set algebra.

Set elements are compared with Go's == and hashed like map keys, so the
element type decides what counts as equal. Sets have no defined iteration
order.

Union, Intersection, Difference and IsMember never modify their operands
and always return a fresh set. A nil *Set behaves like the empty set in all
read-only operations.

A Set is not safe for concurrent use.
*/
package sets

import (
	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return containers.T()
}
