package events_test

import (
	"context"
	"testing"

	"checklist/internal/events"

	"github.com/stretchr/testify/assert"
)

func TestMemoryBroker_PublishReachesAllSubscribers(t *testing.T) {
	broker := events.NewMemory()

	var first, second []events.Event

	broker.Subscribe(func(event events.Event) { first = append(first, event) })
	broker.Subscribe(func(event events.Event) { second = append(second, event) })

	broker.Publish(context.Background(), events.Event{Type: events.UserCreated, UserID: "u1"})
	broker.Publish(context.Background(), events.Event{Type: events.UserDeleted, UserID: "u1"})

	assert.Len(t, first, 2)
	assert.Len(t, second, 2)
	assert.Equal(t, events.UserCreated, first[0].Type)
	assert.Equal(t, "u1", first[0].UserID)
	assert.Equal(t, events.UserDeleted, second[1].Type)
}

func TestMemoryBroker_Unsubscribe(t *testing.T) {
	broker := events.NewMemory()

	var got []events.Event
	unsubscribe := broker.Subscribe(func(event events.Event) { got = append(got, event) })

	broker.Publish(context.Background(), events.Event{Type: events.UserCreated, UserID: "u1"})
	unsubscribe()
	broker.Publish(context.Background(), events.Event{Type: events.UserDeleted, UserID: "u1"})

	assert.Len(t, got, 1)
}
