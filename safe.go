package bitmapgo

import (
	"sync"
)

// Safe wraps any Bitmap variant with a mutual-exclusion lock, making Set and
// Get safe for concurrent callers. The underlying variants are single-owner
// structures with no internal synchronization; Safe is the wrapper to reach
// for when multiple goroutines share one bitmap.
//
// Safe is a thin lock around the inner bitmap: it adds no background work
// and no operation scheduling of its own.
type Safe[B Bitmap[B]] struct {
	mu    sync.RWMutex
	inner B
}

var _ Bitmap[*Safe[*SimpleBitmap]] = (*Safe[*SimpleBitmap])(nil)

// NewSafe wraps inner in a Safe. The caller must not keep using inner
// directly afterwards; the wrapper owns it.
func NewSafe[B Bitmap[B]](inner B) *Safe[B] {
	return &Safe[B]{inner: inner}
}

// Set marks index as present.
func (s *Safe[B]) Set(index uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Set(index)
}

// Get reports whether index was previously set.
func (s *Safe[B]) Get(index uint32) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Get(index)
}

// Snapshot returns an independent copy of the current contents. The copy is
// an unwrapped, single-owner bitmap again; later writes through the wrapper
// do not affect it.
func (s *Safe[B]) Snapshot() B {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Clone()
}

// Clone returns an independent Safe copy of the current contents.
func (s *Safe[B]) Clone() *Safe[B] {
	return NewSafe(s.Snapshot())
}

// Union returns a new Safe bitmap holding every index present in s or in
// other. Each operand is snapshotted under its own lock, one after the
// other, so no two locks are ever held at once; the result is the union of
// two per-operand moments in time, not one atomic cut across both.
func (s *Safe[B]) Union(other *Safe[B]) *Safe[B] {
	a := s.Snapshot()
	b := other.Snapshot()
	return NewSafe(a.Union(b))
}
