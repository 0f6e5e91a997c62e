package cachedhash

import (
	"fmt"

	"github.com/unkn0wn-root/cachedhash/internal/slot"
	"github.com/unkn0wn-root/cachedhash/internal/wire"
)

// CachedHash wraps a value of type T and caches its hash code.
//
// Whenever the cache holds a code, that code equals the Builder's Sum64 of
// the current value. Every method that hands out mutable access clears the
// cache before the caller gets the value.
//
// The zero value is NOT ready to use: construct with New, NewHashable or a
// Builder. A CachedHash must not be copied after first use; use Clone.
//
// Read methods (Get, Sum64, HashInto, Equal, Cached) may run concurrently
// with each other when T's reads may. Mutating methods need exclusive access,
// exactly as for a plain T.
type CachedHash[T any] struct {
	value T
	hash  slot.Slot
	b     *Builder[T]
}

// Get returns the wrapped value. It never affects the cache.
//
// If T has reference semantics (slice, map, pointer), the caller must not
// mutate through the returned value; use GetMut or Update, or call
// InvalidateHash afterwards.
func (c *CachedHash[T]) Get() T { return c.value }

// getMut is the single path to a mutable handle.
func (c *CachedHash[T]) getMut() *T {
	c.InvalidateHash()
	return &c.value
}

// GetMut invalidates the cache and returns a pointer to the wrapped value.
// The cache stays invalid until the next Sum64, so the pointer may be used
// to mutate until then. Do not keep it past that point: mutations after the
// next Sum64 are not seen.
func (c *CachedHash[T]) GetMut() *T { return c.getMut() }

// Update invalidates the cache, then calls fn with a pointer to the value.
func (c *CachedHash[T]) Update(fn func(v *T)) { fn(c.getMut()) }

// Set replaces the wrapped value.
func (c *CachedHash[T]) Set(v T) { *c.getMut() = v }

// Replace replaces the wrapped value and returns the previous one.
func (c *CachedHash[T]) Replace(v T) T {
	p := c.getMut()
	old := *p
	*p = v
	return old
}

// InvalidateHash clears the cached code. Calling it on an empty cache is a no-op.
// Use it after the value changed in a way the wrapper could not observe.
func (c *CachedHash[T]) InvalidateHash() {
	if c.hash.Clear() {
		c.b.hooks.HashInvalidated()
	}
}

// Cached returns the cached code, if any, without computing.
func (c *CachedHash[T]) Cached() (code uint64, ok bool) { return c.hash.Get() }

// Sum64 returns the cached code or computes, stores and returns it.
// The result is never 0.
func (c *CachedHash[T]) Sum64() uint64 {
	if code, ok := c.hash.Get(); ok {
		return code
	}
	code := c.b.Sum64(c.value)
	c.hash.Set(code)
	c.b.hooks.HashComputed(code)
	return code
}

// HashInto feeds the code into s. Feeding a cached code and feeding a freshly
// computed one write identical bytes.
func (c *CachedHash[T]) HashInto(s State) {
	wire.WriteCode(s, c.Sum64())
}

// Equal compares the wrapped values with the Builder's Hasher.
// The cache is neither consulted nor changed. A nil other is not equal.
func (c *CachedHash[T]) Equal(other *CachedHash[T]) bool {
	if other == nil {
		return false
	}
	return c.b.hasher.Equal(c.value, other.value)
}

// IntoInner returns the wrapped value and resets the wrapper to the zero
// value of T with an empty cache. Ownership of the value passes to the caller.
func (c *CachedHash[T]) IntoInner() T {
	v := c.value
	var zero T
	c.value = zero
	c.hash.Clear()
	return v
}

// Clone returns a new wrapper around clone(value) sharing the same Builder.
// A cached code is carried over, so clone must return a value equal to its
// input (a deep copy, not a transformation).
func (c *CachedHash[T]) Clone(clone func(T) T) *CachedHash[T] {
	n := &CachedHash[T]{value: clone(c.value), b: c.b}
	if code, ok := c.hash.Get(); ok {
		n.hash.Set(code)
	}
	return n
}

// Builder returns the Builder this wrapper was made with.
func (c *CachedHash[T]) Builder() *Builder[T] { return c.b }

func (c *CachedHash[T]) String() string { return fmt.Sprint(c.value) }
