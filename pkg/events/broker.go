package events

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event types published by the practice workflow.
const (
	TypePracticeCreated = "practice.created"
	TypePracticeUpdated = "practice.updated"
)

// Event is a single change notification pushed to live subscribers.
type Event struct {
	Type    string      `json:"type"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload"`
}

// Broker is a process-wide fan-out for change notifications. It keeps no
// history: subscribers only see events published after they subscribe.
// Delivery is best-effort; a subscriber that falls behind loses events
// instead of blocking publishers.
type Broker struct {
	mu          sync.Mutex
	subscribers map[int]chan Event
	nextID      int
	bufferSize  int
	closed      bool
	logger      *zap.Logger
}

// NewBroker builds a broker with the provided per-subscriber buffer size.
func NewBroker(bufferSize int, logger *zap.Logger) *Broker {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Broker{
		subscribers: make(map[int]chan Event),
		bufferSize:  bufferSize,
		logger:      logger,
	}
}

// Subscribe registers a new listener. The returned cancel func detaches
// the listener and closes its channel; calling it twice is safe.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Publish delivers the event to every current subscriber without blocking.
func (b *Broker) Publish(eventType string, payload interface{}) {
	event := Event{Type: eventType, At: time.Now().UTC(), Payload: payload}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Warn("event dropped for slow subscriber",
				zap.Int("subscriber", id), zap.String("type", eventType))
		}
	}
}

// SubscriberCount reports the number of attached listeners.
func (b *Broker) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

// Close detaches all subscribers and rejects further publishes.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
