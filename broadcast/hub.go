// Package broadcast hands FilterStates from producers to independent consumers.
package broadcast

import (
	"sync"

	"github.com/fwojciec/storefind"
)

var _ storefind.FilterPublisher = (*Hub)(nil)

// Hub delivers published FilterStates to every subscriber. Each subscriber
// holds at most one undelivered state, always the newest. The last
// published state is replayed to new subscribers, which are expected to
// gate it for freshness themselves. It is safe for concurrent use.
type Hub struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	last   *storefind.FilterState
	closed bool
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Publish delivers state to every subscriber, replacing any state a
// subscriber has not received yet. Publishing on a closed hub is a no-op.
func (h *Hub) Publish(state storefind.FilterState) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.last = &state
	for s := range h.subs {
		s.offer(state)
	}
}

// Last returns the most recently published state.
// The bool result is false if nothing has been published.
func (h *Hub) Last() (storefind.FilterState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.last == nil {
		return storefind.FilterState{}, false
	}
	return *h.last, true
}

// Subscribe registers a new subscriber. If a state has been published it
// is immediately available on the subscription's channel. Subscribing to a
// closed hub returns a closed subscription.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := &Subscription{hub: h, ch: make(chan storefind.FilterState, 1)}
	if h.closed {
		s.closed = true
		close(s.ch)
		return s
	}
	if h.last != nil {
		s.offer(*h.last)
	}
	h.subs[s] = struct{}{}
	return s
}

// Len returns the number of active subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close closes every subscription. Later publishes are dropped.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for s := range h.subs {
		s.close()
		delete(h.subs, s)
	}
}

// Subscription receives FilterStates from a Hub.
type Subscription struct {
	hub    *Hub
	ch     chan storefind.FilterState
	closed bool // guarded by hub.mu
}

// C returns the channel delivering states. It is closed when the
// subscription or its hub is closed; a pending state is still delivered.
func (s *Subscription) C() <-chan storefind.FilterState {
	return s.ch
}

// Close unsubscribes from the hub.
func (s *Subscription) Close() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	delete(s.hub.subs, s)
	s.close()
}

// offer replaces any undelivered state with state. Only the hub sends on
// the channel and always under hub.mu, so after draining there is room.
func (s *Subscription) offer(state storefind.FilterState) {
	select {
	case s.ch <- state:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- state:
	default:
	}
}

func (s *Subscription) close() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
