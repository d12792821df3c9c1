package chunk

// Chunk is a fixed-capacity block of slots for values of type T.
//
// Live values always form a contiguous prefix of the slots, starting at
// offset 0. Slots behind the live prefix hold the zero value of T and are
// never handed out as elements. The slot array is allocated once and never
// re-allocated, so pointers to slots stay valid for the lifetime of the chunk.
type Chunk[T any] struct {
	// slots is the fixed backing storage; len(slots) is the chunk capacity.
	slots []T
	// n is the live prefix length; live values are slots[:n].
	n int
}

// New creates an empty chunk with room for capacity values.
//
// Returns ErrInvalidCapacity if capacity is less than 1.
func New[T any](capacity int) (*Chunk[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Chunk[T]{slots: make([]T, capacity)}, nil
}

// Len returns the number of live values.
func (c *Chunk[T]) Len() int {
	return c.n
}

// Cap returns the number of slots.
func (c *Chunk[T]) Cap() int {
	return len(c.slots)
}

// IsEmpty reports whether the chunk holds no live values.
func (c *Chunk[T]) IsEmpty() bool {
	return c.n == 0
}

// IsFull reports whether every slot holds a live value.
func (c *Chunk[T]) IsFull() bool {
	return c.n == len(c.slots)
}

// Push writes v into the first free slot.
//
// The boolean is false if the chunk is full; in that case nothing is written.
func (c *Chunk[T]) Push(v T) bool {
	if c.n == len(c.slots) {
		return false
	}
	c.slots[c.n] = v
	c.n++
	return true
}

// Slot returns a pointer to slot i without checking the live prefix.
//
// Callers must guarantee i < Len(). A pointer to a slot outside the live
// prefix points to a zero placeholder, not to an element.
func (c *Chunk[T]) Slot(i int) *T {
	return &c.slots[i]
}

// Ref returns a pointer to the live value at offset i.
func (c *Chunk[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= c.n {
		return nil, ErrIndexOutOfBounds
	}
	return &c.slots[i], nil
}

// Replace stores v at live offset i and returns the value it replaces.
func (c *Chunk[T]) Replace(i int, v T) T {
	assert(i >= 0 && i < c.n, "chunk.Replace outside live prefix")
	old := c.slots[i]
	c.slots[i] = v
	return old
}

// RemoveAt moves the value at live offset i out of the chunk.
//
// Values behind i move one slot towards the front, and the vacated last slot
// is reset to the zero value.
func (c *Chunk[T]) RemoveAt(i int) T {
	assert(i >= 0 && i < c.n, "chunk.RemoveAt outside live prefix")
	v := c.slots[i]
	copy(c.slots[i:c.n-1], c.slots[i+1:c.n])
	var zero T
	c.n--
	c.slots[c.n] = zero
	return v
}

// Pop moves the last live value out of the chunk.
func (c *Chunk[T]) Pop() T {
	assert(c.n > 0, "chunk.Pop on empty chunk")
	var zero T
	c.n--
	v := c.slots[c.n]
	c.slots[c.n] = zero
	return v
}

// Take moves the value at offset i out and resets the slot to the zero value,
// leaving the live count untouched.
//
// Take is meant for consumers which walk the chunk front to back and keep
// track of the already-taken prefix themselves. Such a consumer has to finish
// with ReleaseFrom.
func (c *Chunk[T]) Take(i int) T {
	assert(i >= 0 && i < c.n, "chunk.Take outside live prefix")
	var zero T
	v := c.slots[i]
	c.slots[i] = zero
	return v
}

// Truncate releases the live values at offsets [k, Len()) and shortens the
// live prefix to k.
//
// release is called exactly once per released value, in ascending order, and
// may be nil.
func (c *Chunk[T]) Truncate(k int, release func(*T)) {
	if k < 0 {
		k = 0
	}
	if k >= c.n {
		return
	}
	c.ReleaseFrom(k, release)
	c.n = k
}

// ReleaseFrom releases the live values at offsets [i, Len()) and marks the
// whole chunk empty.
//
// Slots in front of i are not visited: they are either already taken or
// belong to the caller.
func (c *Chunk[T]) ReleaseFrom(i int, release func(*T)) {
	var zero T
	for j := max(i, 0); j < c.n; j++ {
		if release != nil {
			release(&c.slots[j])
		}
		c.slots[j] = zero
	}
	c.n = 0
}

// Live returns a view of the live prefix.
//
// The view aliases the chunk storage and is invalidated by any mutation.
func (c *Chunk[T]) Live() []T {
	return c.slots[:c.n:c.n]
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
