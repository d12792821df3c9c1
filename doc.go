/*
Package chunkvec offers a growable sequence container which stores its
elements in fixed-capacity chunks.

Chunked Vectors

A Go slice keeps its elements in one contiguous array. When the array is full,
append allocates a larger one and copies every element over; pointers into the
old array silently go stale. A chunked vector never does that. Its storage is
a list of chunks, each with room for the same number of elements. When the
last chunk is full, a new chunk is appended to the list, while all elements
already written stay where they are:

	chunk 0   [ a b c d ]
	chunk 1   [ e f g h ]
	chunk 2   [ i j · · ]   ← next push goes here

Element i lives in chunk i/capacity at offset i%capacity, so random access
is simple index arithmetic, and sequential iteration steps through a chunk
without any division at all.

	Operation     |  Chunked vector |  Slice
	--------------+-----------------+--------------------
	Index         |   O(1)          |   O(1)
	Push          |   O(1)          |   O(1) amortized, copies on growth
	Remove        |   O(n)          |   O(n)
	SwapRemove    |   O(1)          |   O(1)
	Pointer into  |   stable        |   invalid after growth
	element       |                 |

Chunk capacity is either fixed at compile time, by instantiating Vec with one
of the zero-size types Size8 … Size1024, or chosen at runtime by using
Vector, which is a Vec with Dynamic capacity. The zero value of Vector is an
empty vector with DefaultChunkCapacity.

Releasing values

Values which the vector discards without handing them to the client (on Set,
Truncate, Clear, Release, or when an owning iterator is closed early) are
released: if the value implements Releaser, its Release method is called
exactly once; then the slot is reset to the zero value. Values handed to the
client (by Remove, SwapRemove or an owning iterator) are not released; the
client owns them from then on.

Concurrency

Vectors are not safe for concurrent use. Clients must serialize mutating
calls, including mutable and owning iteration. Concurrent readers are fine as
long as no mutation is in progress.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

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
package chunkvec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chunkvec'
func tracer() tracing.Trace {
	return tracing.Select("chunkvec")
}

// VecError is an error type for the chunkvec module
type VecError string

func (e VecError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an index is not smaller than the
// length of a vector.
const ErrIndexOutOfBounds = VecError("chunkvec: index out of bounds")

// ErrInvalidConfig is flagged for a vector configuration which cannot be
// satisfied, e.g. a chunk capacity of zero.
const ErrInvalidConfig = VecError("chunkvec: invalid configuration")

// ErrCorrupted is flagged by Check whenever the chunk layout of a vector
// violates its invariants.
const ErrCorrupted = VecError("chunkvec: inconsistent chunk layout")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
