// Package event is an in-process event dispatcher.
//
// The shop fires domain events (order.placed, cart.updated) so side effects
// like confirmation emails stay out of the checkout transaction. Async
// dispatch runs on a shared bounded worker pool instead of raw goroutines.
package event

import (
	"sync"

	"github.com/Austinkuria/E-commerce-Site/pkg/workerpool"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}

	poolOnce sync.Once
	pool     *workerpool.Pool
)

func asyncPool() *workerpool.Pool {
	poolOnce.Do(func() { pool = workerpool.New(16) })
	return pool
}

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	for _, h := range snapshot(event) {
		h(payload)
	}
}

// FireAsync dispatches the event to all listeners on the shared worker pool.
// It returns immediately; when the pool is saturated the handler runs inline
// rather than being dropped.
func FireAsync(event string, payload interface{}) {
	for _, h := range snapshot(event) {
		h := h
		if err := asyncPool().Submit(func() { h(payload) }); err != nil {
			h(payload)
		}
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}

func snapshot(event string) []Handler {
	mu.RLock()
	defer mu.RUnlock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	return hs
}
