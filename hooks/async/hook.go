// usage:
//
//	raw := loghooks.New(zaplog.ZapLogger{L: z}, loghooks.Options{ComputedEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	b, _ := cachedhash.NewBuilder(cachedhash.Options[[]byte]{
//	    Hasher: cachedhash.Bytes{},
//	    Hooks:  hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/cachedhash"
)

// Hooks forwards events to inner on worker goroutines.
// Events are dropped when the queue is full, and after Close.
type Hooks struct {
	inner cachedhash.Hooks
	mu    sync.RWMutex
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
	done  bool
}

var _ cachedhash.Hooks = (*Hooks)(nil)

func New(inner cachedhash.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting events and waits for queued ones to be delivered.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.done = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.done {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) HashComputed(code uint64) { h.try(func() { h.inner.HashComputed(code) }) }
func (h *Hooks) HashInvalidated()         { h.try(func() { h.inner.HashInvalidated() }) }
func (h *Hooks) TrustedHash(code uint64)  { h.try(func() { h.inner.TrustedHash(code) }) }
