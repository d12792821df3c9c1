package chunk

import "testing"

func TestChunkSummaryCounts(t *testing.T) {
	c, err := New[int](4)
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	c.Push(1)
	c.Push(2)
	s := c.Summary()
	if s.Chunks != 1 || s.Live != 2 || s.Slots != 4 || s.Full != 0 || s.Free() != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	c.Push(3)
	c.Push(4)
	if s = c.Summary(); s.Full != 1 || s.Utilization() != 1.0 {
		t.Fatalf("unexpected summary for full chunk: %+v", s)
	}
}

func TestSummaryMonoid(t *testing.T) {
	a := Summary{Chunks: 1, Live: 3, Slots: 4}
	b := Summary{Chunks: 2, Live: 8, Slots: 8, Full: 2}
	m := Monoid{}
	if got := m.Add(m.Zero(), a); got != a {
		t.Fatalf("zero is not neutral: %+v", got)
	}
	got := m.Add(a, b)
	if got != (Summary{Chunks: 3, Live: 11, Slots: 12, Full: 2}) {
		t.Fatalf("unexpected sum: %+v", got)
	}
	if u := got.Utilization(); u < 0.91 || u > 0.92 {
		t.Fatalf("unexpected utilization %f", u)
	}
	if (Summary{}).Utilization() != 0 {
		t.Fatalf("expected 0 utilization without slots")
	}
}
