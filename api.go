package cachedhash

import (
	"fmt"

	"github.com/unkn0wn-root/cachedhash/internal/slot"
)

// Options configure a Builder.
// Only Hasher is required; others have sensible defaults.
type Options[T any] struct {
	// Required
	Hasher Hasher[T]

	BuildHasher BuildHasher // nil => XXH3
	Hooks       Hooks       // nil => NopHooks
	Logger      Logger      // nil => NopLogger
}

// Builder holds the hashing configuration shared by a family of wrappers.
// Every wrapper made by one Builder hashes with the same function, so
// wrappers holding equal values produce equal codes. A Builder is immutable
// and safe for concurrent use.
type Builder[T any] struct {
	hasher Hasher[T]
	build  BuildHasher
	hooks  Hooks
	log    Logger
}

func NewBuilder[T any](opts Options[T]) (*Builder[T], error) {
	if opts.Hasher == nil {
		return nil, ErrNoHasher
	}
	return &Builder[T]{
		hasher: opts.Hasher,
		build:  coalesce[BuildHasher](opts.BuildHasher, XXH3),
		hooks:  coalesce[Hooks](opts.Hooks, NopHooks{}),
		log:    coalesce[Logger](opts.Logger, NopLogger{}),
	}, nil
}

// MustBuilder is like NewBuilder but panics on error.
func MustBuilder[T any](opts Options[T]) *Builder[T] {
	b, err := NewBuilder(opts)
	if err != nil {
		panic(err)
	}
	return b
}

// Wrap returns a wrapper around v with an empty cache.
func (b *Builder[T]) Wrap(v T) *CachedHash[T] {
	return &CachedHash[T]{value: v, b: b}
}

// WrapWithHash returns a wrapper around v whose cache already holds code.
//
// The code is NOT verified. The caller must pass exactly b.Sum64(v);
// anything else makes equal values hash differently and corrupts any
// hash-based structure the wrapper is put in. A code of 0 is stored as 1,
// matching what Sum64 returns for a value hashing to 0.
func (b *Builder[T]) WrapWithHash(v T, code uint64) *CachedHash[T] {
	code = slot.NonZero(code)
	c := &CachedHash[T]{value: v, b: b}
	c.hash.Set(code)
	b.hooks.TrustedHash(code)
	b.log.Debug("wrapped with caller-supplied hash", Fields{"code": code})
	return c
}

// Sum64 hashes v with a fresh State. This is the function a wrapper caches.
// It never returns 0.
func (b *Builder[T]) Sum64(v T) uint64 {
	s := b.build.NewState()
	b.hasher.Hash(s, v)
	code := s.Sum64()
	if code == 0 {
		b.log.Debug("zero hash code bumped to 1", Fields{"type": fmt.Sprintf("%T", v)})
		return 1
	}
	return code
}

// Equal reports whether x and y are equal under the configured Hasher.
func (b *Builder[T]) Equal(x, y T) bool { return b.hasher.Equal(x, y) }

// New wraps a comparable value using Comparable[T] and XXH3.
// Wrappers from separate New calls hash consistently with each other.
// When wrapping many values, share a Builder instead: New allocates one per call.
func New[T comparable](v T) *CachedHash[T] {
	return comparableBuilder[T]().Wrap(v)
}

// NewWithHash is New with a caller-supplied code; see Builder.WrapWithHash.
func NewWithHash[T comparable](v T, code uint64) *CachedHash[T] {
	return comparableBuilder[T]().WrapWithHash(v, code)
}

// NewHashable wraps a value that hashes itself, using Self[T] and XXH3.
func NewHashable[T Hashable[T]](v T) *CachedHash[T] {
	return MustBuilder(Options[T]{Hasher: Self[T]{}}).Wrap(v)
}

func comparableBuilder[T comparable]() *Builder[T] {
	return MustBuilder(Options[T]{Hasher: Comparable[T]{}})
}
