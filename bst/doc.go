/*
Package bst implements an ordered key→value map on a binary search tree.

Keys are ordered by a comparison function supplied at creation time. For
every node all keys in its left subtree compare less than the node's key,
all keys in its right subtree compare greater. Inserting a key which is
already present overwrites the stored value; a tree never holds two nodes
with equal keys.

The tree is not self-balancing. Insert, Search and Delete cost O(depth),
which degenerates to O(n) for keys inserted in sorted order.

Nodes own their children exclusively and hold no reference to their
parent. Structural edits descend through the owning child slots, so a
rewired subtree is always reached through exactly one edge.

A Tree is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

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
