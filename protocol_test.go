package cachedhash

import (
	"fmt"
	"hash/maphash"
	"sync/atomic"
	"testing"
)

// hashSet is a minimal open-hashing set over a maphash-style hasher,
// standing in for a generic hash table.
type hashSet[K any, H interface {
	Hash(*maphash.Hash, K)
	Equal(x, y K) bool
}] struct {
	h       H
	seed    maphash.Seed
	buckets map[uint64][]K
	n       int
}

func newHashSet[K any, H interface {
	Hash(*maphash.Hash, K)
	Equal(x, y K) bool
}](h H) *hashSet[K, H] {
	return &hashSet[K, H]{h: h, seed: maphash.MakeSeed(), buckets: map[uint64][]K{}}
}

func (s *hashSet[K, H]) hash(k K) uint64 {
	var mh maphash.Hash
	mh.SetSeed(s.seed)
	s.h.Hash(&mh, k)
	return mh.Sum64()
}

func (s *hashSet[K, H]) Insert(k K) bool {
	h := s.hash(k)
	for _, e := range s.buckets[h] {
		if s.h.Equal(e, k) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], k)
	s.n++
	return true
}

func (s *hashSet[K, H]) Contains(k K) bool {
	for _, e := range s.buckets[s.hash(k)] {
		if s.h.Equal(e, k) {
			return true
		}
	}
	return false
}

func (s *hashSet[K, H]) Drain(fn func(K)) {
	for h, b := range s.buckets {
		for _, k := range b {
			fn(k)
		}
		delete(s.buckets, h)
	}
	s.n = 0
}

func (s *hashSet[K, H]) Len() int { return s.n }

func TestMapHasherReinsertionHashesOnce(t *testing.T) {
	var calls atomic.Int64
	b := newIntsBuilder(t, &calls, nil)

	const n = 100
	a := newHashSet[*CachedHash[[]int]](MapHasher[[]int]{})
	for i := 0; i < n; i++ {
		if !a.Insert(b.Wrap([]int{i, i * 2, i * 3})) {
			t.Fatalf("insert %d reported duplicate", i)
		}
	}

	other := newHashSet[*CachedHash[[]int]](MapHasher[[]int]{})
	for step := 0; step < 5; step++ {
		a.Drain(func(k *CachedHash[[]int]) { other.Insert(k) })
		other.Drain(func(k *CachedHash[[]int]) { a.Insert(k) })
	}

	if a.Len() != n {
		t.Fatalf("len=%d want %d", a.Len(), n)
	}
	if calls.Load() != n {
		t.Fatalf("each value should be hashed once across all moves, calls=%d", calls.Load())
	}
	if !a.Contains(b.Wrap([]int{7, 14, 21})) {
		t.Fatalf("lookup by an equal, freshly wrapped value failed")
	}
	if a.Insert(b.Wrap([]int{7, 14, 21})) {
		t.Fatalf("equal value inserted twice")
	}
}

func TestMapHasherSeesMutation(t *testing.T) {
	b := MustBuilder(Options[string]{Hasher: String{}})
	s := newHashSet[*CachedHash[string]](MapHasher[string]{})

	v := b.Wrap("foo")
	s.Insert(v)
	v.Set("bar")

	if !s.Insert(v) {
		t.Fatalf("mutated value should land in a new bucket")
	}
	if !s.Contains(b.Wrap("bar")) {
		t.Fatalf("lookup of mutated value failed")
	}
}

func ExampleMapHasher() {
	b := MustBuilder(Options[[]string]{Hasher: Slice[string](String{})})
	s := newHashSet[*CachedHash[[]string]](MapHasher[[]string]{})

	s.Insert(b.Wrap([]string{"a", "b"}))
	fmt.Println(s.Contains(b.Wrap([]string{"a", "b"})), s.Contains(b.Wrap([]string{"ab"})))
	// Output: true false
}
