package cachedhash

import (
	"hash/fnv"
	"hash/maphash"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// State accumulates hash input. Write must never fail.
// *maphash.Hash, *xxh3.Hasher, *xxhash.Digest and hash.Hash64 all satisfy it.
type State interface {
	io.Writer
	Sum64() uint64
}

// BuildHasher creates a fresh State for each hash computation.
type BuildHasher interface {
	NewState() State
}

// BuildHasherFunc adapts a constructor to BuildHasher.
type BuildHasherFunc func() State

func (f BuildHasherFunc) NewState() State { return f() }

var (
	// XXH3 is the default. Codes are stable across processes.
	XXH3 BuildHasher = BuildHasherFunc(func() State { return xxh3.New() })

	// XXHash uses xxHash64. Codes are stable across processes.
	XXHash BuildHasher = BuildHasherFunc(func() State { return xxhash.New() })

	// FNV uses 64-bit FNV-1a. Codes are stable across processes.
	FNV BuildHasher = BuildHasherFunc(func() State { return fnv.New64a() })
)

// Maphash returns a BuildHasher over hash/maphash with a fixed seed.
// Codes are only stable for the lifetime of seed.
func Maphash(seed maphash.Seed) BuildHasher {
	return BuildHasherFunc(func() State {
		h := new(maphash.Hash)
		h.SetSeed(seed)
		return h
	})
}
