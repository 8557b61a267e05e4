// Package event is a small listener registry for environment callbacks.
package event

import (
	"sort"
	"sync"
)

// Hub fans a value out to its subscribed listeners. It is safe for
// concurrent use.
type Hub[T any] struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func(T)
}

// Subscribe adds fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (h *Hub[T]) Subscribe(fn func(T)) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listeners == nil {
		h.listeners = make(map[int]func(T))
	}
	id := h.next
	h.next++
	h.listeners[id] = fn

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

// Emit calls every listener with v, in subscription order. Listeners run
// outside the hub's lock and may unsubscribe themselves.
func (h *Hub[T]) Emit(v T) {
	h.mu.Lock()
	ids := make([]int, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(T), len(ids))
	for i, id := range ids {
		fns[i] = h.listeners[id]
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Len returns the number of attached listeners.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}
