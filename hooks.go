package cachedhash

// Hooks lightweight callbacks for cache state transitions.
// Implementations MUST be cheap and non-blocking and safe for concurrent use:
// HashComputed may be called from concurrent Sum64 calls on a shared wrapper.
// Cache hits never call hooks.
type Hooks interface {
	// The cache was empty and code was computed and stored (Invalid -> Valid).
	HashComputed(code uint64)

	// A valid cached code was dropped (Valid -> Invalid), either by an
	// exclusive-access grant or by InvalidateHash.
	HashInvalidated()

	// A wrapper was constructed with a caller-supplied, unverified code.
	TrustedHash(code uint64)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) HashComputed(uint64) {}
func (NopHooks) HashInvalidated()    {}
func (NopHooks) TrustedHash(uint64)  {}
