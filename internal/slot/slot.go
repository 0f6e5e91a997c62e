// Package slot stores an optional non-zero uint64 in a single atomic word.
package slot

import "sync/atomic"

// Slot is empty when it holds 0. The zero value is an empty slot.
// A Slot must not be copied after first use.
type Slot struct {
	v atomic.Uint64
}

// Get returns the stored code and whether the slot holds one.
func (s *Slot) Get() (uint64, bool) {
	v := s.v.Load()
	return v, v != 0
}

// Set stores code. Setting 0 empties the slot; use NonZero to keep a code.
func (s *Slot) Set(code uint64) {
	s.v.Store(code)
}

// Clear empties the slot and reports whether it held a code.
func (s *Slot) Clear() bool {
	return s.v.Swap(0) != 0
}

// NonZero maps 0 to 1 so that every code can be stored.
// This introduces a single collision between 0 and 1.
func NonZero(code uint64) uint64 {
	if code == 0 {
		return 1
	}
	return code
}
