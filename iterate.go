package chunkvec

import "iter"

// Values returns an iterator over all values in logical order.
func (v *Vec[T, C]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := v.Iter()
		for value, ok := it.Next(); ok; value, ok = it.Next() {
			if !yield(value) {
				return
			}
		}
	}
}

// All returns an iterator over index/value pairs in logical order.
func (v *Vec[T, C]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := v.Iter()
		for i := 0; ; i++ {
			value, ok := it.Next()
			if !ok || !yield(i, value) {
				return
			}
		}
	}
}

// Pointers returns an iterator over pointers to all values in logical order.
// Values may be modified through the pointers.
func (v *Vec[T, C]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := v.IterMut()
		for ptr, ok := it.Next(); ok; ptr, ok = it.Next() {
			if !yield(ptr) {
				return
			}
		}
	}
}

// Drain returns an iterator which moves all values out of the vector.
//
// The vector is consumed when iteration starts, not when Drain is called.
// Values left over by a loop which breaks early are released.
func (v *Vec[T, C]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.IntoIter().Values()(yield)
	}
}

// Values returns an iterator which moves the remaining values out of the
// cursor. The cursor is closed when iteration ends, whether exhausted or not.
func (it *IntoIter[T, C]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for value, ok := it.Next(); ok; value, ok = it.Next() {
			if !yield(value) {
				return
			}
		}
	}
}
