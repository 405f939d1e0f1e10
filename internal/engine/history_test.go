package engine

import "testing"

func TestRing_PushPopOrder(t *testing.T) {
	r := newRing[int](3)
	r.Push(1)
	r.Push(2)

	if v, ok := r.Pop(); !ok || v != 2 {
		t.Errorf("expected newest entry 2, got %d (ok=%v)", v, ok)
	}
	if v, ok := r.Pop(); !ok || v != 1 {
		t.Errorf("expected 1, got %d (ok=%v)", v, ok)
	}
	if _, ok := r.Pop(); ok {
		t.Error("Pop on empty ring should report false")
	}
}

func TestRing_EvictsOldest(t *testing.T) {
	r := newRing[int](3)
	for i := 1; i <= 5; i++ {
		r.Push(i)
	}

	if r.Len() != 3 {
		t.Fatalf("expected length 3, got %d", r.Len())
	}
	for _, want := range []int{5, 4, 3} {
		if v, _ := r.Pop(); v != want {
			t.Errorf("expected %d, got %d", want, v)
		}
	}
	if r.Len() != 0 {
		t.Errorf("expected empty ring, got %d entries", r.Len())
	}
}

func TestRing_WrapsAfterPop(t *testing.T) {
	r := newRing[int](2)
	r.Push(1)
	r.Push(2)
	r.Push(3) // evicts 1
	r.Pop()   // removes 3
	r.Push(4)
	r.Push(5) // evicts 2

	if v, _ := r.Pop(); v != 5 {
		t.Errorf("expected 5, got %d", v)
	}
	if v, _ := r.Pop(); v != 4 {
		t.Errorf("expected 4, got %d", v)
	}
}

func TestRing_ClearAndDefaultCapacity(t *testing.T) {
	r := newRing[int](0)
	if r.Cap() != DefaultHistorySize {
		t.Errorf("expected default capacity %d, got %d", DefaultHistorySize, r.Cap())
	}
	r.Push(7)
	r.Clear()
	if _, ok := r.Pop(); ok {
		t.Error("ring should be empty after Clear")
	}
}
