// Package cachedhash wraps a value and memoizes its hash code.
//
// For a type T, [CachedHash] holds a T and caches the uint64 hash code of it.
// This is useful when T is expensive to hash (for example a large slice) and
// the same value is hashed many times with few modifications (for example by
// moving it between several hash-based sets).
//
// The cached code is invalidated whenever the value becomes mutably
// accessible: through [CachedHash.GetMut], [CachedHash.Update],
// [CachedHash.Set] or [CachedHash.Replace]. The invalidation happens before
// the caller can touch the value, not after.
//
// Components:
//   - Hasher[T]: T's own hash-combining logic and equality.
//   - BuildHasher: produces a fresh hash State per computation (XXH3 by default).
//   - Builder[T]: shared configuration; all wrappers of one Builder hash with
//     the same function, so equal values hash equally.
//
// Limitation: the wrapper cannot observe mutation that bypasses it. If T
// shares mutable state (slices returned by Get, pointers, maps, mutexes
// guarding fields) and that state changes, call [CachedHash.InvalidateHash].
//
// Usage:
//
//	b := cachedhash.MustBuilder(cachedhash.Options[[]int]{
//	    Hasher: cachedhash.Slice[int](cachedhash.Integer[int]{}),
//	})
//	v := b.Wrap([]int{1, 2, 3})
//	_ = v.Sum64()                                   // computed and cached
//	_ = v.Sum64()                                   // cached
//	v.Update(func(s *[]int) { *s = append(*s, 4) }) // cache cleared first
package cachedhash
