package chunkvec

import "github.com/npillmayer/chunkvec/chunk"

// walker is the position state shared by all cursor kinds. It caches the
// current chunk and a (chunk, offset) coordinate, and never divides.
type walker[T any] struct {
	chunks    []*chunk.Chunk[T]
	cur       *chunk.Chunk[T]
	at        pos
	capacity  int
	remaining int
}

func newWalker[T any](chunks []*chunk.Chunk[T], capacity, length int) walker[T] {
	return walker[T]{
		chunks:    chunks,
		capacity:  capacity,
		remaining: length,
	}
}

// slot returns the current slot. Callers guarantee remaining > 0.
func (w *walker[T]) slot() *T {
	if w.at.offset == 0 {
		w.cur = w.chunks[w.at.chunk]
	}
	return w.cur.Slot(w.at.offset)
}

func (w *walker[T]) step() {
	w.remaining--
	w.at.advance(w.capacity)
}

// Iter is a read cursor over a vector, created by Vec.Iter.
//
// The vector must not be mutated while the cursor is in use.
type Iter[T any, C ChunkSizer] struct {
	walker[T]
}

// Iter returns a read cursor positioned before the first value.
func (v *Vec[T, C]) Iter() *Iter[T, C] {
	return &Iter[T, C]{walker: newWalker(v.chunkList(), v.ChunkCapacity(), v.Len())}
}

// Next returns the next value in logical order.
//
// If the cursor is exhausted, ok is false.
func (it *Iter[T, C]) Next() (value T, ok bool) {
	if it == nil || it.remaining == 0 {
		return value, false
	}
	value = *it.slot()
	it.step()
	return value, true
}

// Remaining returns the number of values not yet visited.
func (it *Iter[T, C]) Remaining() int {
	if it == nil {
		return 0
	}
	return it.remaining
}

// IterMut is a cursor handing out pointers to the values of a vector,
// created by Vec.IterMut.
//
// Values may be modified through the pointers; the vector itself must not be
// mutated while the cursor is in use.
type IterMut[T any, C ChunkSizer] struct {
	walker[T]
}

// IterMut returns a mutable cursor positioned before the first value.
func (v *Vec[T, C]) IterMut() *IterMut[T, C] {
	return &IterMut[T, C]{walker: newWalker(v.chunkList(), v.ChunkCapacity(), v.Len())}
}

// Next returns a pointer to the next value in logical order.
//
// If the cursor is exhausted, ok is false.
func (it *IterMut[T, C]) Next() (ptr *T, ok bool) {
	if it == nil || it.remaining == 0 {
		return nil, false
	}
	ptr = it.slot()
	it.step()
	return ptr, true
}

// Remaining returns the number of values not yet visited.
func (it *IterMut[T, C]) Remaining() int {
	if it == nil {
		return 0
	}
	return it.remaining
}

// IntoIter is an owning cursor, created by Vec.IntoIter. It moves values out
// of the chunks it took over from the vector.
//
// Clients which stop before the cursor is exhausted must call Close, which
// releases every value not yet handed out. A common pattern is
//
//	it := v.IntoIter()
//	defer it.Close()
//	for x, ok := it.Next(); ok; x, ok = it.Next() {
//	    …
//	}
type IntoIter[T any, C ChunkSizer] struct {
	walker[T]
}

// IntoIter consumes the vector and returns an owning cursor over its values.
//
// The vector is left empty and without chunks; it may be used again.
func (v *Vec[T, C]) IntoIter() *IntoIter[T, C] {
	if v == nil {
		return &IntoIter[T, C]{}
	}
	it := &IntoIter[T, C]{walker: newWalker(v.store.Detach(), v.ChunkCapacity(), v.len)}
	v.store = nil
	v.len = 0
	return it
}

// Next moves the next value out of the cursor and hands it to the caller.
//
// If the cursor is exhausted or closed, ok is false. Chunk storage is dropped
// as soon as the last value has been handed out.
func (it *IntoIter[T, C]) Next() (value T, ok bool) {
	if it == nil || it.remaining == 0 {
		return value, false
	}
	it.slot()
	value = it.cur.Take(it.at.offset)
	it.step()
	if it.remaining == 0 {
		it.dropChunks()
	}
	return value, true
}

// Remaining returns the number of values not yet handed out.
func (it *IntoIter[T, C]) Remaining() int {
	if it == nil {
		return 0
	}
	return it.remaining
}

// Close releases every value not yet handed out, exactly once each, and drops
// chunk storage. Values already returned by Next are never touched again.
// Close may be called more than once.
func (it *IntoIter[T, C]) Close() {
	if it == nil || it.chunks == nil {
		return
	}
	if it.remaining > 0 {
		tracer().Debugf("chunkvec: owning cursor closed with %d values left", it.remaining)
		for ci := it.at.chunk; ci < len(it.chunks); ci++ {
			from := 0
			if ci == it.at.chunk {
				from = it.at.offset
			}
			it.chunks[ci].ReleaseFrom(from, release[T])
		}
		it.remaining = 0
	}
	it.dropChunks()
}

func (it *IntoIter[T, C]) dropChunks() {
	it.chunks = nil
	it.cur = nil
}

func (v *Vec[T, C]) chunkList() []*chunk.Chunk[T] {
	if v == nil {
		return nil
	}
	return v.store.Chunks()
}
