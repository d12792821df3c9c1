package chunk

// Summary aggregates chunk occupancy.
type Summary struct {
	Chunks int // number of chunks summarized
	Live   int // live values
	Slots  int // total slots
	Full   int // chunks without a free slot
}

// Free returns the number of slots not holding a live value.
func (s Summary) Free() int {
	return s.Slots - s.Live
}

// Utilization returns the ratio of live values to slots (0.0 to 1.0).
// Returns 0.0 if there are no slots.
func (s Summary) Utilization() float64 {
	if s.Slots == 0 {
		return 0
	}
	return float64(s.Live) / float64(s.Slots)
}

// Summary returns the occupancy of this chunk.
func (c *Chunk[T]) Summary() Summary {
	s := Summary{Chunks: 1, Live: c.n, Slots: len(c.slots)}
	if c.IsFull() {
		s.Full = 1
	}
	return s
}

// Monoid aggregates chunk summaries.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries.
func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Chunks: left.Chunks + right.Chunks,
		Live:   left.Live + right.Live,
		Slots:  left.Slots + right.Slots,
		Full:   left.Full + right.Full,
	}
}
