package events

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryBroker struct {
	mu          sync.RWMutex
	subscribers map[string]Handler
}

// NewMemory returns the in-process broker. Handlers run synchronously on the
// publishing goroutine, in no particular order.
func NewMemory() Broker {
	return &memoryBroker{
		subscribers: map[string]Handler{},
	}
}

func (b *memoryBroker) Publish(_ context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subscribers))
	for _, handler := range b.subscribers {
		handlers = append(handlers, handler)
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

func (b *memoryBroker) Subscribe(handler Handler) func() {
	id := uuid.NewString()

	b.mu.Lock()
	b.subscribers[id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()
	}
}
