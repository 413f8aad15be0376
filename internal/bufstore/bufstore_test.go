package bufstore

import "testing"

func TestAllocateAndGet(t *testing.T) {
	s := New()
	h := s.Allocate(4, 2, true)
	data, channels, ok := s.Get(h)
	if !ok {
		t.Fatalf("Get(%v) ok = false, want true", h)
	}
	if channels != 2 {
		t.Fatalf("channels = %d, want 2", channels)
	}
	if len(data) != 8 {
		t.Fatalf("len(data) = %d, want 8", len(data))
	}
}

func TestAllocateZeroFilled(t *testing.T) {
	s := New()
	h := s.Allocate(4, 1, true)
	data, _, _ := s.Get(h)
	for i, v := range data {
		if v != 0 {
			t.Fatalf("data[%d] = %v, want 0", i, v)
		}
	}
}

func TestHandlesAreDistinct(t *testing.T) {
	s := New()
	a := s.Allocate(1, 1, true)
	b := s.Allocate(1, 1, true)
	if a == b {
		t.Fatalf("distinct allocations returned the same handle %v", a)
	}
}

func TestDeallocateInvalidatesHandle(t *testing.T) {
	s := New()
	h := s.Allocate(2, 1, true)
	if err := s.Deallocate(h); err != nil {
		t.Fatalf("Deallocate: %v", err)
	}
	if _, _, ok := s.Get(h); ok {
		t.Fatalf("Get after Deallocate ok = true, want false")
	}
}

func TestDeallocateUnknownHandleErrors(t *testing.T) {
	s := New()
	if err := s.Deallocate(Handle(999)); err == nil {
		t.Fatalf("Deallocate of unknown handle returned nil error")
	}
}

func TestReallocatePreservesContentAndGrows(t *testing.T) {
	s := New()
	h := s.Allocate(2, 1, true)
	data, _, _ := s.Get(h)
	data[0], data[1] = 1, 2

	h2, err := s.Reallocate(h, 4, 1)
	if err != nil {
		t.Fatalf("Reallocate: %v", err)
	}
	if h2 != h {
		t.Fatalf("Reallocate returned a new handle %v, want the same handle %v", h2, h)
	}
	grown, _, _ := s.Get(h2)
	if len(grown) != 4 {
		t.Fatalf("len(grown) = %d, want 4", len(grown))
	}
	if grown[0] != 1 || grown[1] != 2 {
		t.Fatalf("grown[:2] = %v, want [1 2]", grown[:2])
	}
}

func TestReallocateUnknownHandleErrors(t *testing.T) {
	s := New()
	if _, err := s.Reallocate(Handle(999), 4, 1); err == nil {
		t.Fatalf("Reallocate of unknown handle returned nil error")
	}
}

func TestFrames(t *testing.T) {
	s := New()
	h := s.Allocate(10, 2, true)
	n, ok := s.Frames(h)
	if !ok || n != 10 {
		t.Fatalf("Frames(%v) = %d,%v want 10,true", h, n, ok)
	}
}
