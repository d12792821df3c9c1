package chunkvec

import (
	"iter"

	"github.com/npillmayer/chunkvec/chunk"
)

// Vec is a growable sequence of values of type T, stored in chunks of a fixed
// capacity bound by C.
//
// Pushing never moves values already stored, thus pointers obtained from
// GetPtr, AtPtr or IterMut stay valid while the vector grows. Remove,
// SwapRemove and Set do move values between slots; a pointer then refers to
// whatever value occupies its slot.
//
// A Vec created by
//
//	Vec[T, C]{}
//
// is a valid, empty vector.
type Vec[T any, C ChunkSizer] struct {
	sizing C
	store  *chunk.Store[T]
	len    int
}

// Vector is a Vec with chunk capacity chosen at runtime.
type Vector[T any] = Vec[T, Dynamic]

// New creates an empty vector with runtime chunk capacity.
//
// Without WithChunkCapacity, chunks hold DefaultChunkCapacity values. No
// chunk is allocated unless WithChunks or WithCapacity ask for it.
func New[T any](opts ...Option) (*Vector[T], error) {
	cfg := newConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	v := &Vector[T]{sizing: Dynamic(cfg.chunkCapacity)}
	v.reserveChunks(cfg.chunks)
	return v, nil
}

// NewSized creates an empty vector with a compile-time chunk capacity, e.g.
//
//	v, err := chunkvec.NewSized[string, chunkvec.Size256](chunkvec.WithCapacity(1000))
//
// WithChunkCapacity is rejected, as the capacity is fixed by C.
func NewSized[T any, C StaticSize](opts ...Option) (*Vec[T, C], error) {
	var sizing C
	n := sizing.ChunkCapacity()
	cfg := newConfig(opts)
	if err := cfg.validateStatic(n); err != nil {
		return nil, err
	}
	cfg.chunkCapacity, cfg.capacitySet = n, true
	cfg = cfg.normalized()
	v := &Vec[T, C]{}
	v.reserveChunks(cfg.chunks)
	return v, nil
}

// Len returns the number of values in the vector.
func (v *Vec[T, C]) Len() int {
	if v == nil {
		return 0
	}
	return v.len
}

// IsEmpty reports whether the vector holds no values.
func (v *Vec[T, C]) IsEmpty() bool {
	return v.Len() == 0
}

// ChunkCapacity returns the number of values per chunk.
func (v *Vec[T, C]) ChunkCapacity() int {
	if v == nil {
		var sizing C
		return sizing.ChunkCapacity()
	}
	return v.sizing.ChunkCapacity()
}

// ChunkCount returns the number of allocated chunks.
func (v *Vec[T, C]) ChunkCount() int {
	if v == nil {
		return 0
	}
	return v.store.Len()
}

// AllocatedCapacity returns the number of values the allocated chunks can
// hold. It is a multiple of ChunkCapacity and never less than Len.
func (v *Vec[T, C]) AllocatedCapacity() int {
	if v == nil {
		return 0
	}
	return v.store.Allocated()
}

// Stats returns the occupancy of the allocated chunks.
func (v *Vec[T, C]) Stats() chunk.Summary {
	if v == nil {
		return chunk.Summary{}
	}
	return v.store.Summary()
}

// Push appends value at the end of the vector.
//
// If the chunk for the new position does not exist yet, exactly one chunk is
// allocated. No stored value is moved.
func (v *Vec[T, C]) Push(value T) {
	ci, off := translate(v.len, v.ChunkCapacity())
	c := v.chunkFor(ci)
	assert(c.Len() == off, "chunkvec.Push: live prefix out of sync with length")
	c.Push(value)
	v.len++
}

// Append pushes values in order.
func (v *Vec[T, C]) Append(values ...T) {
	for _, value := range values {
		v.Push(value)
	}
}

// Extend pushes every value of seq in order.
func (v *Vec[T, C]) Extend(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	for value := range seq {
		v.Push(value)
	}
}

// Release destroys the contents of the vector: every value is released and
// all chunks are dropped. The vector may be used again afterwards.
func (v *Vec[T, C]) Release() {
	if v == nil || v.store == nil {
		return
	}
	tracer().Debugf("chunkvec: releasing %d values in %d chunks", v.len, v.store.Len())
	v.store.Drop(release[T])
	v.store = nil
	v.len = 0
}

// --- Growth ----------------------------------------------------------------

// chunkFor returns chunk ci, growing the store if ci is the first chunk
// beyond it.
func (v *Vec[T, C]) chunkFor(ci int) *chunk.Chunk[T] {
	s := v.chunkStore()
	if ci < s.Len() {
		return s.At(ci)
	}
	assert(ci == s.Len(), "chunkvec: growth must not skip chunks")
	return v.grow()
}

// grow appends one empty chunk.
func (v *Vec[T, C]) grow() *chunk.Chunk[T] {
	s := v.chunkStore()
	c := s.Append()
	tracer().Debugf("chunkvec: allocated chunk #%d (capacity %d)", s.Len()-1, s.Capacity())
	return c
}

// reserveChunks grows the store to at least n chunks.
func (v *Vec[T, C]) reserveChunks(n int) {
	for v.ChunkCount() < n {
		v.grow()
	}
}

func (v *Vec[T, C]) chunkStore() *chunk.Store[T] {
	if v.store == nil {
		s, err := chunk.NewStore[T](v.ChunkCapacity())
		assert(err == nil, "chunkvec: chunk capacity must be at least 1")
		v.store = s
	}
	return v.store
}

// --- Releasing values ------------------------------------------------------

// Releaser is implemented by values which hold resources beyond memory.
//
// A vector calls Release exactly once for every value it discards on its own
// behalf. Values moved out to the client are not released.
type Releaser interface {
	Release()
}

// release releases the value in slot p, if it is a Releaser. Both value and
// pointer receivers are honoured.
func release[T any](p *T) {
	if r, ok := any(*p).(Releaser); ok {
		r.Release()
		return
	}
	if r, ok := any(p).(Releaser); ok {
		r.Release()
	}
}
