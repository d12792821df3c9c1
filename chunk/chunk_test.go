package chunk

import (
	"errors"
	"testing"
)

func TestNewRejectsZeroCapacity(t *testing.T) {
	_, err := New[int](0)
	if !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
	_, err = NewStore[int](-1)
	if !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity from NewStore, got %v", err)
	}
}

func TestPushFillsPrefix(t *testing.T) {
	c, err := New[int](3)
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	if !c.IsEmpty() || c.Cap() != 3 {
		t.Fatalf("unexpected fresh chunk: len=%d cap=%d", c.Len(), c.Cap())
	}
	for i := 1; i <= 3; i++ {
		if !c.Push(i * 10) {
			t.Fatalf("push %d should fit", i)
		}
	}
	if c.Push(40) {
		t.Fatalf("expected push into full chunk to fail")
	}
	if !c.IsFull() || c.Len() != 3 {
		t.Fatalf("expected full chunk with 3 values, have %d", c.Len())
	}
	if got := c.Live(); len(got) != 3 || got[0] != 10 || got[2] != 30 {
		t.Fatalf("unexpected live prefix %v", got)
	}
}

func TestRefChecksLivePrefix(t *testing.T) {
	c, _ := New[string](4)
	c.Push("a")
	p, err := c.Ref(0)
	if err != nil || *p != "a" {
		t.Fatalf("unexpected Ref(0): %v, %v", p, err)
	}
	if _, err = c.Ref(1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds for free slot, got %v", err)
	}
	if _, err = c.Ref(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds for negative offset, got %v", err)
	}
}

func TestSlotPointerIsStable(t *testing.T) {
	c, _ := New[int](4)
	c.Push(1)
	p := c.Slot(0)
	c.Push(2)
	c.Push(3)
	*p = 7
	if c.Live()[0] != 7 {
		t.Fatalf("slot pointer should alias storage after pushes")
	}
}

func TestRemoveAtShiftsAndClears(t *testing.T) {
	c, _ := New[int](4)
	for _, v := range []int{1, 2, 3, 4} {
		c.Push(v)
	}
	if v := c.RemoveAt(1); v != 2 {
		t.Fatalf("expected removed value 2, got %d", v)
	}
	live := c.Live()
	if len(live) != 3 || live[0] != 1 || live[1] != 3 || live[2] != 4 {
		t.Fatalf("unexpected live prefix after RemoveAt: %v", live)
	}
	if *c.Slot(3) != 0 {
		t.Fatalf("vacated slot should be reset, holds %d", *c.Slot(3))
	}
}

func TestPopAndReplace(t *testing.T) {
	c, _ := New[int](2)
	c.Push(1)
	c.Push(2)
	if old := c.Replace(0, 9); old != 1 {
		t.Fatalf("expected replaced value 1, got %d", old)
	}
	if v := c.Pop(); v != 2 {
		t.Fatalf("expected popped value 2, got %d", v)
	}
	if c.Len() != 1 || *c.Slot(1) != 0 {
		t.Fatalf("unexpected state after Pop: len=%d slot=%d", c.Len(), *c.Slot(1))
	}
}

func TestTakeAndReleaseFrom(t *testing.T) {
	c, _ := New[int](4)
	for _, v := range []int{1, 2, 3, 4} {
		c.Push(v)
	}
	if v := c.Take(0); v != 1 {
		t.Fatalf("expected taken value 1, got %d", v)
	}
	if c.Len() != 4 {
		t.Fatalf("Take must not touch live count, have %d", c.Len())
	}
	var released []int
	c.ReleaseFrom(1, func(p *int) { released = append(released, *p) })
	if len(released) != 3 || released[0] != 2 || released[2] != 4 {
		t.Fatalf("unexpected released values %v", released)
	}
	if !c.IsEmpty() {
		t.Fatalf("chunk should be empty after ReleaseFrom")
	}
}

func TestTruncateReleasesTail(t *testing.T) {
	c, _ := New[int](4)
	for _, v := range []int{1, 2, 3} {
		c.Push(v)
	}
	count := 0
	c.Truncate(5, func(*int) { count++ })
	if count != 0 || c.Len() != 3 {
		t.Fatalf("truncate beyond live prefix must be a no-op")
	}
	c.Truncate(1, func(*int) { count++ })
	if count != 2 || c.Len() != 1 {
		t.Fatalf("expected 2 releases and len 1, have %d and %d", count, c.Len())
	}
}
