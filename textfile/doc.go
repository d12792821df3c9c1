/*
Package textfile provides API helpers to load UTF-8 text files as chunked
vectors of text blocks.

Blocks never split a UTF-8 encoded rune. Their size is chosen from the size
of the file, unless the client asks for a specific one.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chunkvec'
func tracer() tracing.Trace {
	return tracing.Select("chunkvec")
}
