/*
Package slist implements a singly linked list with positional insert and
delete.

The list owns its head node, every node owns the link to its successor.
Positions are zero-based. Operations at the front of the list are O(1),
all others walk the list from the head and are O(n).

Elements are compared by an equality function supplied at creation time;
New uses Go's == for comparable element types.

A List is not safe for concurrent use.
*/
package slist

import (
	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return containers.T()
}
