/*
Package formatter prints AVL trees to consoles.

Trees are printed sideways, rotated by 90 degrees counter-clockwise: the root
is placed at the left margin, right subtrees above and left subtrees below
their parent. Every node is annotated with its height and balance factor, and
may be colored to highlight its balance state.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
