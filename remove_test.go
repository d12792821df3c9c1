package chunkvec

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRemoveAcrossChunks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunkvec")
	defer teardown()

	type tc struct {
		index int
		want  []int
	}
	cases := []tc{
		{index: 0, want: []int{2, 3, 4, 5, 6, 7}},
		{index: 1, want: []int{1, 3, 4, 5, 6, 7}},
		{index: 3, want: []int{1, 2, 3, 5, 6, 7}},
		{index: 6, want: []int{1, 2, 3, 4, 5, 6}},
	}
	for _, c := range cases {
		v, _ := FromSlice([]int{1, 2, 3, 4, 5, 6, 7}, WithChunkCapacity(2))
		removed, err := v.Remove(c.index)
		if err != nil {
			t.Fatalf("Remove(%d) failed: %v", c.index, err)
		}
		if removed != c.index+1 {
			t.Fatalf("Remove(%d) returned %d", c.index, removed)
		}
		if !EqualSlice(v, c.want) {
			t.Fatalf("Remove(%d): got %v, want %v", c.index, v.ToSlice(), c.want)
		}
		if v.AllocatedCapacity() != 8 {
			t.Fatalf("Remove must not drop chunks, allocated is %d", v.AllocatedCapacity())
		}
		if err := v.Check(); err != nil {
			t.Fatalf("Remove(%d): %v", c.index, err)
		}
	}
}

func TestRemoveUntilEmpty(t *testing.T) {
	v, _ := FromSlice([]int{1, 2, 3, 4, 5}, WithChunkCapacity(3))
	for v.Len() > 0 {
		if _, err := v.Remove(0); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if err := v.Check(); err != nil {
			t.Fatal(err)
		}
	}
	v.Push(9)
	if v.At(0) != 9 || v.ChunkCount() != 2 {
		t.Fatalf("push after draining should reuse chunk 0")
	}
}

func TestRemoveOutOfBounds(t *testing.T) {
	v := newVector[int](t, WithChunkCapacity(3))
	if _, err := v.Remove(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds on empty vector, got %v", err)
	}
	v.Append(1, 2, 3)
	if _, err := v.Remove(5); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := v.SwapRemove(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds from SwapRemove, got %v", err)
	}
	if v.Len() != 3 {
		t.Fatalf("failed removals must not change the vector")
	}
}

func TestSwapRemove(t *testing.T) {
	type tc struct {
		index int
		want  []int
	}
	cases := []tc{
		{index: 0, want: []int{7, 2, 3, 4, 5, 6}},
		{index: 1, want: []int{1, 7, 3, 4, 5, 6}},
		{index: 5, want: []int{1, 2, 3, 4, 5, 7}},
		{index: 6, want: []int{1, 2, 3, 4, 5, 6}},
	}
	for _, c := range cases {
		v, _ := FromSlice([]int{1, 2, 3, 4, 5, 6, 7}, WithChunkCapacity(2))
		removed, err := v.SwapRemove(c.index)
		if err != nil {
			t.Fatalf("SwapRemove(%d) failed: %v", c.index, err)
		}
		if removed != c.index+1 {
			t.Fatalf("SwapRemove(%d) returned %d", c.index, removed)
		}
		if !EqualSlice(v, c.want) {
			t.Fatalf("SwapRemove(%d): got %v, want %v", c.index, v.ToSlice(), c.want)
		}
		if err := v.Check(); err != nil {
			t.Fatalf("SwapRemove(%d): %v", c.index, err)
		}
	}
}

func TestRemovedValuesAreNotReleased(t *testing.T) {
	log := newReleaseLog()
	v := newVector[tracked](t, WithChunkCapacity(2))
	for i := range 5 {
		v.Push(log.make(i))
	}
	if e, _ := v.Remove(1); e.id != 1 {
		t.Fatalf("expected element 1, have %d", e.id)
	}
	if e, _ := v.SwapRemove(0); e.id != 0 {
		t.Fatalf("expected element 0, have %d", e.id)
	}
	if log.total() != 0 {
		t.Fatalf("removed values belong to the caller, log=%v", log.released)
	}
}

func TestTruncateAndClearRelease(t *testing.T) {
	log := newReleaseLog()
	v := newVector[tracked](t, WithChunkCapacity(3))
	for i := range 8 {
		v.Push(log.make(i))
	}
	v.Truncate(2)
	if v.Len() != 2 || v.ChunkCount() != 3 {
		t.Fatalf("unexpected state after Truncate: len=%d chunks=%d", v.Len(), v.ChunkCount())
	}
	for i := range 8 {
		want := 0
		if i >= 2 {
			want = 1
		}
		if log.count(i) != want {
			t.Fatalf("element %d released %d times, want %d", i, log.count(i), want)
		}
	}
	if err := v.Check(); err != nil {
		t.Fatal(err)
	}
	v.Clear()
	if v.Len() != 0 || log.total() != 8 {
		t.Fatalf("Clear should release the remaining 2 values, total=%d", log.total())
	}
}

func TestResize(t *testing.T) {
	v := newVector[string](t, WithChunkCapacity(3))
	v.Append("a", "b")
	v.Resize(5, "x")
	if !EqualSlice(v, []string{"a", "b", "x", "x", "x"}) {
		t.Fatalf("unexpected grown vector %v", v.ToSlice())
	}
	v.Resize(1, "y")
	if !EqualSlice(v, []string{"a"}) || v.AllocatedCapacity() != 6 {
		t.Fatalf("unexpected shrunk vector %v, allocated %d", v.ToSlice(), v.AllocatedCapacity())
	}
	v.Resize(0, "")
	if !v.IsEmpty() {
		t.Fatalf("expected empty vector")
	}
}

func TestReleaseDestroysVector(t *testing.T) {
	closed := 0
	v := newVector[*handle](t, WithChunkCapacity(2))
	for range 5 {
		v.Push(&handle{closed: &closed})
	}
	v.Release()
	if closed != 5 || v.Len() != 0 || v.ChunkCount() != 0 {
		t.Fatalf("expected 5 releases and no chunks, have %d, %d", closed, v.ChunkCount())
	}
	v.Release()
	if closed != 5 {
		t.Fatalf("double Release must not release again")
	}
}

func TestReleaseWithPointerReceiverOnValue(t *testing.T) {
	closed := 0
	v := newVector[handle](t, WithChunkCapacity(2))
	v.Append(handle{closed: &closed}, handle{closed: &closed}, handle{closed: &closed})
	v.Truncate(1)
	if closed != 2 {
		t.Fatalf("expected 2 releases through pointer receiver, have %d", closed)
	}
}
