/*
Package containers is a small collection of generic in-memory containers.

# Containers

The sub-packages each implement one container, with explicit bounds and
ordering contracts:

	dynarray   random-access sequence with amortized doubling growth
	bst        ordered key→value map on an unbalanced binary search tree
	bintree    key-only binary tree with height and balance diagnostics
	slist      singly linked list with positional insert and delete
	sets       unordered sets and the elementary set algebra

Package visual renders trees and sequences as Graphviz DOT or to a console.

All containers are single-owner values. None of them is safe for concurrent
use; clients have to synchronize access themselves. Nodes and backing storage
are never shared between two container instances.

# Errors

Index- or position-based operations fail with an error wrapping
ErrIndexOutOfRange, operations needing at least one element fail with an error
wrapping ErrEmptyCollection. Failures are detected before any mutation takes
place. Looking up a missing element is not an error: search operations return
an additional boolean.

	if _, err := list.DeleteAtEnd(); errors.Is(err, containers.ErrEmptyCollection) {
		...
	}

# Tracing

Structural changes are traced to the global core tracer of package
github.com/npillmayer/schuko/gtrace, mostly at debug level. Clients have to
configure gtrace.CoreTracer before using the containers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice, this
    list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its
    contributors may be used to endorse or promote products derived from
    this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ContainerError is an error type for the containers module.
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrIndexOutOfRange is flagged whenever an index or position argument lies
// outside the range valid for the current size of a container.
const ErrIndexOutOfRange = ContainerError("index out of range")

// ErrEmptyCollection is flagged whenever an operation needing at least one
// element is called on an empty container.
const ErrEmptyCollection = ContainerError("empty collection")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ContainerError("illegal arguments")
