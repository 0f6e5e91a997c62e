package cachedhash

import "hash/maphash"

// MapHasher plugs wrappers into generic hash tables that take a
// hash/maphash style hasher (Hash(*maphash.Hash, K) and Equal(K, K) bool).
// After the first insertion each rehash costs O(1) instead of rehashing the value.
type MapHasher[T any] struct{}

func (MapHasher[T]) Hash(h *maphash.Hash, c *CachedHash[T]) { c.HashInto(h) }
func (MapHasher[T]) Equal(x, y *CachedHash[T]) bool         { return x.Equal(y) }
