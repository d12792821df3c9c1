package chunkvec

// Remove removes the value at index i and returns it.
//
// Every value behind i moves one position towards the front, crossing chunk
// boundaries where necessary: the first value of a chunk moves into the last
// slot of its predecessor. The order of the remaining values is preserved.
// The removed value belongs to the caller and is not released.
func (v *Vec[T, C]) Remove(i int) (T, error) {
	if err := v.checkIndex("remove", i); err != nil {
		var zero T
		return zero, err
	}
	capacity := v.ChunkCapacity()
	ci, off := translate(i, capacity)
	removed := v.store.At(ci).RemoveAt(off)
	last, _ := translate(v.len-1, capacity)
	for j := ci + 1; j <= last; j++ {
		head := v.store.At(j).RemoveAt(0)
		v.store.At(j - 1).Push(head)
	}
	v.len--
	return removed, nil
}

// SwapRemove removes the value at index i and returns it, moving the last
// value of the vector into the vacated position.
//
// SwapRemove is O(1) but does not preserve order. The removed value belongs
// to the caller and is not released.
func (v *Vec[T, C]) SwapRemove(i int) (T, error) {
	if err := v.checkIndex("swap-remove", i); err != nil {
		var zero T
		return zero, err
	}
	capacity := v.ChunkCapacity()
	lci, _ := translate(v.len-1, capacity)
	tail := v.store.At(lci).Pop()
	v.len--
	if i == v.len {
		return tail, nil
	}
	ci, off := translate(i, capacity)
	return v.store.At(ci).Replace(off, tail), nil
}

// Truncate shortens the vector to n values, releasing the values behind.
//
// Chunks are kept allocated. Truncate is a no-op if n >= Len().
func (v *Vec[T, C]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.Len() {
		return
	}
	capacity := v.ChunkCapacity()
	first, off := translate(n, capacity)
	last, _ := translate(v.len-1, capacity)
	for j := last; j > first; j-- {
		v.store.At(j).Truncate(0, release[T])
	}
	v.store.At(first).Truncate(off, release[T])
	v.len = n
}

// Clear releases all values. Chunks are kept allocated.
func (v *Vec[T, C]) Clear() {
	v.Truncate(0)
}

// Resize changes the length of the vector to n. A longer vector is padded with
// copies of value, a shorter one is truncated.
func (v *Vec[T, C]) Resize(n int, value T) {
	if n <= v.Len() {
		v.Truncate(n)
		return
	}
	for v.len < n {
		v.Push(value)
	}
}
