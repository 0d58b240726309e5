/*
Package bintree implements a key-only binary tree with height and balance
diagnostics.

Keys are routed by a comparison function: keys comparing less than a node's
key descend to the left, all others, including duplicates, descend to the
right. The right branch is the canonical branch for duplicates, so a tree
may hold equal keys more than once, and an in-order traversal lists them
adjacently.

The tree never rebalances itself. IsBalanced and Unbalanced only detect
whether, for every node, the heights of its two subtrees differ by at most
one. Both run in a single bottom-up pass, linear in the number of nodes.

A Tree is not safe for concurrent use.
*/
package bintree

import (
	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return containers.T()
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
