package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerDeliversToSubscribers(t *testing.T) {
	broker := NewBroker(4, nil)
	defer broker.Close()

	ch1, cancel1 := broker.Subscribe()
	defer cancel1()
	ch2, cancel2 := broker.Subscribe()
	defer cancel2()

	broker.Publish(TypePracticeCreated, map[string]string{"id": "1"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, TypePracticeCreated, event.Type)
			assert.False(t, event.At.IsZero())
		case <-time.After(time.Second):
			t.Fatal("expected event")
		}
	}
}

func TestBrokerNoReplayBeforeSubscribe(t *testing.T) {
	broker := NewBroker(4, nil)
	defer broker.Close()

	broker.Publish(TypePracticeCreated, nil)

	ch, cancel := broker.Subscribe()
	defer cancel()

	select {
	case <-ch:
		t.Fatal("subscriber must not receive events published before subscribing")
	default:
	}
}

func TestBrokerCancelStopsDelivery(t *testing.T) {
	broker := NewBroker(4, nil)
	defer broker.Close()

	ch, cancel := broker.Subscribe()
	require.Equal(t, 1, broker.SubscriberCount())

	cancel()
	assert.Equal(t, 0, broker.SubscriberCount())

	// channel is closed after cancel
	_, open := <-ch
	assert.False(t, open)

	// cancelling twice is a no-op
	cancel()
}

func TestBrokerDropsWhenBufferFull(t *testing.T) {
	broker := NewBroker(1, nil)
	defer broker.Close()

	ch, cancel := broker.Subscribe()
	defer cancel()

	broker.Publish(TypePracticeUpdated, 1)
	broker.Publish(TypePracticeUpdated, 2)

	event := <-ch
	assert.Equal(t, 1, event.Payload)

	select {
	case <-ch:
		t.Fatal("second event should have been dropped")
	default:
	}
}
