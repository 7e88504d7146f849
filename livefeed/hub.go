// Package livefeed fans order mutations out to live views. Subscribers
// receive a pulse per mutation and re-query the full result set — each
// delivered snapshot is a complete replacement, never a diff.
package livefeed

import (
	"context"
	"sync"
)

type Hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a listener. The returned channel is pulsed on
// every Notify; the subscription is torn down when ctx ends, so a
// closed view never leaks updates.
func (h *Hub) Subscribe(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}()
	return ch
}

// Notify pulses every subscriber. Pulses coalesce: a subscriber that
// has not drained its pending pulse gets no extra one, which is safe
// because consumers re-read the full current set per pulse.
func (h *Hub) Notify() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// SubscriberCount reports active subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
