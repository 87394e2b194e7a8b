// Package events carries application events between domains. User deletion
// fans out here so the todo domain can run its side of the account cascade
// without the user domain importing it.
package events


import (
	"context"

	"checklist/config"
	"checklist/shared/constant"
)

type Type string

const (
	UserCreated Type = "UserCreated"
	UserDeleted Type = "UserDeleted"
)

type Event struct {
	Type   Type   `json:"type"`
	UserID string `json:"userId"`
}

type Handler func(event Event)

type Broker interface {
	// Publish delivers the event to every subscriber. Delivery failures are
	// logged, never returned; publishing is fire and forget.
	Publish(ctx context.Context, event Event)
	// Subscribe registers a handler and returns its unsubscribe function.
	Subscribe(handler Handler) (unsubscribe func())
}

// New picks the broker implementation configured for this process.
func New(config *config.Config) Broker {
	if config.Events.Backend == constant.EventsBackendKafka {
		return NewKafka(config)
	}

	return NewMemory()
}
