package chunkvec

// DefaultChunkCapacity is the chunk capacity of vectors which do not ask for
// a specific one.
const DefaultChunkCapacity = 64

// ChunkSizer binds the chunk capacity of a vector.
//
// Implementations which are zero-size types (see StaticSize) fix the capacity
// at compile time and cost no storage per vector. Dynamic carries a capacity
// chosen at runtime.
type ChunkSizer interface {
	ChunkCapacity() int
}

// StaticSize is the constraint for compile-time chunk capacities.
type StaticSize interface {
	ChunkSizer
	~struct{}
}

// Dynamic is a chunk capacity chosen at runtime.
//
// Values less than 1 stand for DefaultChunkCapacity, which makes the zero
// value of Vector usable.
type Dynamic int

// ChunkCapacity returns d, or DefaultChunkCapacity for d < 1.
func (d Dynamic) ChunkCapacity() int {
	if d < 1 {
		return DefaultChunkCapacity
	}
	return int(d)
}

// Compile-time chunk capacities.
type (
	Size8    struct{}
	Size16   struct{}
	Size32   struct{}
	Size64   struct{}
	Size128  struct{}
	Size256  struct{}
	Size512  struct{}
	Size1024 struct{}
)

func (Size8) ChunkCapacity() int    { return 8 }
func (Size16) ChunkCapacity() int   { return 16 }
func (Size32) ChunkCapacity() int   { return 32 }
func (Size64) ChunkCapacity() int   { return 64 }
func (Size128) ChunkCapacity() int  { return 128 }
func (Size256) ChunkCapacity() int  { return 256 }
func (Size512) ChunkCapacity() int  { return 512 }
func (Size1024) ChunkCapacity() int { return 1024 }

// --- Address translation ---------------------------------------------------

// translate maps a logical index to a chunk index and an in-chunk offset.
//
// translate never checks bounds; callers guarantee that index is meaningful
// for the allocated capacity.
func translate(index, capacity int) (chunk int, offset int) {
	return index / capacity, index % capacity
}

// chunksFor returns the number of chunks needed to hold n values.
func chunksFor(n, capacity int) int {
	if n <= 0 {
		return 0
	}
	return (n + capacity - 1) / capacity
}

// pos is a cached (chunk, offset) coordinate for sequential walks.
type pos struct {
	chunk  int
	offset int
}

// advance moves to the next slot. Only crossing a chunk boundary touches the
// chunk index; no division is involved.
func (p *pos) advance(capacity int) {
	p.offset++
	if p.offset == capacity {
		p.chunk++
		p.offset = 0
	}
}
