/*
Package words builds vocabularies, i.e. trees of distinct words, from text.

Text is split into words at line-break opportunities as defined by UAX#14
(Unicode line breaking algorithm). Surrounding white space and punctuation is
trimmed from every segment. This means that hyphenated words may be split
into their parts.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package words

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}
