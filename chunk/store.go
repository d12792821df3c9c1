package chunk

// Store is an append-only, ordered list of chunks sharing one capacity.
//
// Chunks are only ever appended. They leave the store all at once, either
// through Detach or Drop, never individually.
type Store[T any] struct {
	capacity int
	chunks   []*Chunk[T]
}

// NewStore creates an empty store for chunks of the given capacity.
func NewStore[T any](capacity int) (*Store[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Store[T]{capacity: capacity}, nil
}

// Capacity returns the per-chunk capacity.
func (s *Store[T]) Capacity() int {
	return s.capacity
}

// Len returns the number of chunks.
func (s *Store[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.chunks)
}

// Allocated returns the number of slots over all chunks.
func (s *Store[T]) Allocated() int {
	if s == nil {
		return 0
	}
	return s.capacity * len(s.chunks)
}

// At returns chunk i. Callers must guarantee 0 <= i < Len().
func (s *Store[T]) At(i int) *Chunk[T] {
	return s.chunks[i]
}

// Chunks returns a view of the chunk list.
//
// The view stays valid for the chunks it holds; chunks appended later are not
// part of it.
func (s *Store[T]) Chunks() []*Chunk[T] {
	if s == nil {
		return nil
	}
	return s.chunks[:len(s.chunks):len(s.chunks)]
}

// Append allocates a new, empty chunk at the end of the store and returns it.
//
// Chunks already in the store are neither moved nor copied.
func (s *Store[T]) Append() *Chunk[T] {
	c := &Chunk[T]{slots: make([]T, s.capacity)}
	s.chunks = append(s.chunks, c)
	return c
}

// Detach hands the chunk list over to the caller and leaves the store empty.
func (s *Store[T]) Detach() []*Chunk[T] {
	if s == nil {
		return nil
	}
	chunks := s.chunks
	s.chunks = nil
	return chunks
}

// Drop releases every live value in every chunk and discards the chunks.
func (s *Store[T]) Drop(release func(*T)) {
	if s == nil {
		return
	}
	for _, c := range s.chunks {
		c.ReleaseFrom(0, release)
	}
	s.chunks = nil
}

// Summary aggregates the occupancy of all chunks.
func (s *Store[T]) Summary() Summary {
	var m Monoid
	acc := m.Zero()
	if s == nil {
		return acc
	}
	for _, c := range s.chunks {
		acc = m.Add(acc, c.Summary())
	}
	return acc
}
