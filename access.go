package chunkvec

import "fmt"

// Get returns the value at index i.
//
// ok is false if i is out of bounds.
func (v *Vec[T, C]) Get(i int) (value T, ok bool) {
	if i < 0 || i >= v.Len() {
		return value, false
	}
	return *v.slot(i), true
}

// GetPtr returns a pointer to the value at index i.
//
// ok is false if i is out of bounds. The pointer stays valid while the vector
// grows; see Vec for operations which move values between slots.
func (v *Vec[T, C]) GetPtr(i int) (ptr *T, ok bool) {
	if i < 0 || i >= v.Len() {
		return nil, false
	}
	return v.slot(i), true
}

// GetUnchecked returns the value at index i without checking bounds.
//
// Callers must guarantee 0 <= i < Len(). Violating this is a programming error
// with unspecified outcome: it may panic, or return a zero placeholder which
// has never been stored.
func (v *Vec[T, C]) GetUnchecked(i int) T {
	return *v.slot(i)
}

// GetUncheckedPtr returns a pointer to the value at index i without checking
// bounds. The caller contract of GetUnchecked applies.
func (v *Vec[T, C]) GetUncheckedPtr(i int) *T {
	return v.slot(i)
}

// At returns the value at index i. It panics if i is out of bounds, as
// indexing a slice would.
func (v *Vec[T, C]) At(i int) T {
	v.mustBeInBounds(i)
	return *v.slot(i)
}

// AtPtr returns a pointer to the value at index i. It panics if i is out of
// bounds.
func (v *Vec[T, C]) AtPtr(i int) *T {
	v.mustBeInBounds(i)
	return v.slot(i)
}

// Set replaces the value at index i. The previous value is released.
func (v *Vec[T, C]) Set(i int, value T) error {
	if err := v.checkIndex("set", i); err != nil {
		return err
	}
	ci, off := translate(i, v.ChunkCapacity())
	old := v.store.At(ci).Replace(off, value)
	release(&old)
	return nil
}

func (v *Vec[T, C]) slot(i int) *T {
	ci, off := translate(i, v.ChunkCapacity())
	return v.store.At(ci).Slot(off)
}

func (v *Vec[T, C]) checkIndex(op string, i int) error {
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("%w: %s index is %d, length is %d", ErrIndexOutOfBounds, op, i, v.Len())
	}
	return nil
}

func (v *Vec[T, C]) mustBeInBounds(i int) {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("%s: index %d >= length %d", ErrIndexOutOfBounds, i, v.Len()))
	}
}
