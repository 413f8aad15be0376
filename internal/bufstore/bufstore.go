// Package bufstore implements the engine's buffer allocation boundary:
// opaque handles over contiguous float32 storage, standing in for the
// source's raw integer-as-pointer buffer addresses (spec §9's redesign
// flag: "re-architect as opaque handle types allocated by the core,
// stored in a process-wide registry that maps handle -> owned contiguous
// float storage").
package bufstore

import "fmt"

// Handle is an opaque, stable identifier for a buffer's lifetime between
// its Allocate and its Deallocate. The zero Handle is never issued and
// can be used as a "no buffer" sentinel.
type Handle uint64

// Store owns a set of sample buffers addressed by Handle. The engine's
// single-threaded, cooperative-call model (spec §5) means Store is not
// safe for concurrent use — callers serialize their own access.
type Store struct {
	buffers map[Handle]*entry
	next    Handle
}

type entry struct {
	channels int
	frames   int
	data     []float32
}

// New creates an empty buffer store.
func New() *Store {
	return &Store{buffers: make(map[Handle]*entry)}
}

// Allocate reserves frames*channels floats and returns a handle to it. If
// zero is true the buffer is zero-filled (Go's make already zero-fills, so
// this only affects whether the caller intends to rely on that).
func (s *Store) Allocate(frames, channels int, zero bool) Handle {
	s.next++
	h := s.next
	data := make([]float32, frames*channels)
	_ = zero // Go slices are always zeroed by make; kept for call-site clarity
	s.buffers[h] = &entry{channels: channels, frames: frames, data: data}
	return h
}

// Reallocate grows (or shrinks) the buffer behind old to newFrames frames,
// preserving existing content and zero-filling any newly added region. It
// takes the existing handle as input — unlike the historical bug this
// corrects (calling realloc on an uninitialized pointer), there is no path
// here that reallocates a handle the store doesn't already own.
func (s *Store) Reallocate(old Handle, newFrames, channels int) (Handle, error) {
	e, ok := s.buffers[old]
	if !ok {
		return 0, fmt.Errorf("bufstore: reallocate: invalid handle %d", old)
	}
	newData := make([]float32, newFrames*channels)
	copy(newData, e.data)
	e.frames = newFrames
	e.channels = channels
	e.data = newData
	return old, nil
}

// Deallocate releases the buffer behind h. Passing a handle that is
// already freed or was never issued is an error (the source treats this
// as undefined behavior/fatal; this port reports it instead of aborting).
func (s *Store) Deallocate(h Handle) error {
	if _, ok := s.buffers[h]; !ok {
		return fmt.Errorf("bufstore: deallocate: invalid handle %d", h)
	}
	delete(s.buffers, h)
	return nil
}

// Get returns the live float32 storage for h, its channel count, and
// whether h is currently valid.
func (s *Store) Get(h Handle) ([]float32, int, bool) {
	e, ok := s.buffers[h]
	if !ok {
		return nil, 0, false
	}
	return e.data, e.channels, true
}

// Frames returns the frame count of the buffer behind h.
func (s *Store) Frames(h Handle) (int, bool) {
	e, ok := s.buffers[h]
	if !ok {
		return 0, false
	}
	return e.frames, true
}
