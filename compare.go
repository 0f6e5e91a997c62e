package cachedhash

import "cmp"

// Ordering delegates to the wrapped values; caches are ignored.

func Compare[T cmp.Ordered](a, b *CachedHash[T]) int { return cmp.Compare(a.value, b.value) }
func Less[T cmp.Ordered](a, b *CachedHash[T]) bool   { return cmp.Less(a.value, b.value) }

// CompareFunc orders wrappers with compare, e.g. slices.Compare for slice values.
func CompareFunc[T any](a, b *CachedHash[T], compare func(x, y T) int) int {
	return compare(a.value, b.value)
}
