package chunkvec

import "fmt"

// Check validates the chunk layout of the vector.
//
// All chunks in front of the chunk holding position Len() must be full, that
// chunk must hold Len() % ChunkCapacity() values, and all chunks behind it
// must be empty. This checker is strict and meant to be used in tests.
func (v *Vec[T, C]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrCorrupted)
	}
	capacity := v.ChunkCapacity()
	if capacity < 1 {
		return fmt.Errorf("%w: chunk capacity %d", ErrCorrupted, capacity)
	}
	if v.store != nil && v.store.Capacity() != capacity {
		return fmt.Errorf("%w: store capacity %d != chunk capacity %d",
			ErrCorrupted, v.store.Capacity(), capacity)
	}
	if v.len > v.AllocatedCapacity() {
		return fmt.Errorf("%w: length %d exceeds allocated capacity %d",
			ErrCorrupted, v.len, v.AllocatedCapacity())
	}
	tail, off := translate(v.len, capacity)
	total := 0
	for i, c := range v.chunkList() {
		if c.Cap() != capacity {
			return fmt.Errorf("%w: chunk %d has capacity %d", ErrCorrupted, i, c.Cap())
		}
		var want int
		switch {
		case i < tail:
			want = capacity
		case i == tail:
			want = off
		}
		if c.Len() != want {
			return fmt.Errorf("%w: chunk %d holds %d values, expected %d", ErrCorrupted, i, c.Len(), want)
		}
		total += c.Len()
	}
	if total != v.len {
		return fmt.Errorf("%w: chunks hold %d values, length is %d", ErrCorrupted, total, v.len)
	}
	return nil
}
