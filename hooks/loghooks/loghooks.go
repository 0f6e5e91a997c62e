// Package loghooks renders cachedhash.Hooks events through a cachedhash.Logger.
package loghooks

import (
	"sync/atomic"

	"github.com/unkn0wn-root/cachedhash"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	ComputedEvery    uint64
	InvalidatedEvery uint64
}

type Hooks struct {
	l    cachedhash.Logger
	opts Options

	computedCtr    atomic.Uint64
	invalidatedCtr atomic.Uint64
}

var _ cachedhash.Hooks = (*Hooks)(nil)

func New(l cachedhash.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) HashComputed(code uint64) {
	if h.l == nil || !sample(h.opts.ComputedEvery, &h.computedCtr) {
		return
	}
	h.l.Debug("cachedhash.hash_computed", cachedhash.Fields{"code": code})
}

func (h *Hooks) HashInvalidated() {
	if h.l == nil || !sample(h.opts.InvalidatedEvery, &h.invalidatedCtr) {
		return
	}
	h.l.Debug("cachedhash.hash_invalidated", nil)
}

// TrustedHash is logged at Info: a wrong caller-supplied code silently
// corrupts hash-based containers, so every occurrence is worth a trace.
func (h *Hooks) TrustedHash(code uint64) {
	if h.l == nil {
		return
	}
	h.l.Info("cachedhash.trusted_hash", cachedhash.Fields{"code": code})
}
