/*
Package textseq splits text into a chunked vector of line-break fragments.

A fragment is a run of text between two line-break opportunities, as found
by the Unicode line breaking algorithm (UAX #14), together with its display
width (UAX #11). Fragment vectors are a natural input for line-filling
algorithms; FirstFit is a simple one.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chunkvec'
func tracer() tracing.Trace {
	return tracing.Select("chunkvec")
}
