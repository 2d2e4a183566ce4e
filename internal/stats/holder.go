package stats

import "sync/atomic"

// Holder is the ready gate between the one-time store build and the request
// path. Readers get an immutable snapshot; the single writer (startup or the
// refresh scheduler) swaps in a fully built replacement.
type Holder struct {
	current atomic.Pointer[Store]
}

func NewHolder() *Holder {
	return &Holder{}
}

// Ready reports whether a store has been published.
func (h *Holder) Ready() bool {
	return h.current.Load() != nil
}

// Get returns the current store snapshot, or nil before the first Swap.
func (h *Holder) Get() *Store {
	return h.current.Load()
}

// Swap publishes a new store.
func (h *Holder) Swap(store *Store) {
	h.current.Store(store)
}
