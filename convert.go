package chunkvec

import "iter"

// FromSlice creates a vector holding copies of the values of s, in order.
func FromSlice[T any](s []T, opts ...Option) (*Vector[T], error) {
	v, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	v.Append(s...)
	return v, nil
}

// FromSeq creates a vector holding the values of seq, in order.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) (*Vector[T], error) {
	v, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	v.Extend(seq)
	return v, nil
}

// ToSlice copies the values of the vector into a new slice.
func (v *Vec[T, C]) ToSlice() []T {
	out := make([]T, 0, v.Len())
	for _, c := range v.chunkList() {
		if c.IsEmpty() {
			break
		}
		out = append(out, c.Live()...)
	}
	return out
}

// Equal reports whether two vectors hold equal values in the same order.
//
// Only the values count: chunk capacities and allocated chunks may differ.
func Equal[T comparable, C1, C2 ChunkSizer](a *Vec[T, C1], b *Vec[T, C2]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares values with eq.
func EqualFunc[T, U any, C1, C2 ChunkSizer](a *Vec[T, C1], b *Vec[U, C2], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Iter(), b.Iter()
	for x, ok := ia.Next(); ok; x, ok = ia.Next() {
		y, _ := ib.Next()
		if !eq(x, y) {
			return false
		}
	}
	return true
}

// EqualSlice reports whether the vector holds the values of s, in order.
func EqualSlice[T comparable, C ChunkSizer](v *Vec[T, C], s []T) bool {
	if v.Len() != len(s) {
		return false
	}
	i := 0
	for value := range v.Values() {
		if value != s[i] {
			return false
		}
		i++
	}
	return true
}
