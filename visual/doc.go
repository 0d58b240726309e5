/*
Package visual renders container structures for debugging.

Trees are handed over as a flat list of nodes (see Shaper) and may be
written in Graphviz DOT format with Dot, or printed to a console with Print.
Console output is colored (github.com/fatih/color) and fitted to the width
of the terminal. Label widths are measured in fixed-width positions
following UAX#11, so East Asian wide characters are accounted for.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package visual

import (
	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the containers core tracer.
func tracer() tracing.Trace {
	return containers.T()
}
