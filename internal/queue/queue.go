package queue

import (
	"fmt"
	"sync"
	"time"

	"github.com/taemotherlode01/ministore-api/internal/model"
	"github.com/taemotherlode01/ministore-api/internal/obs"
)

// TopicRecordEvents carries every customer/product change.
const TopicRecordEvents = "record_events"

// Handler consumes one event. A non-nil error asks for redelivery.
type Handler func(ev model.RecordEvent) error

// Queue interface
type Queue interface {
	Publish(topic string, ev model.RecordEvent) error
	Subscribe(topic string, handler Handler) error
}

// InMemoryQueue delivers events to in-process subscribers with retry
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]Handler

	MaxRetries int
	Backoff    time.Duration
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers:   make(map[string][]Handler),
		MaxRetries: 3,
		Backoff:    500 * time.Millisecond,
	}
}

// Publish sends an event to all subscribers of topic
func (q *InMemoryQueue) Publish(topic string, ev model.RecordEvent) error {
	q.mu.Lock()
	handlers := append([]Handler(nil), q.handlers[topic]...)
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		go q.process(handler, ev)
	}
	return nil
}

// process runs handler until it succeeds or retries are exhausted
func (q *InMemoryQueue) process(handler Handler, ev model.RecordEvent) {
	for attempt := 0; ; attempt++ {
		err := handler(ev)
		if err == nil {
			return
		}
		if attempt >= q.MaxRetries {
			obs.Logger.Error("event permanently failed", "event_id", ev.ID, "topic", ev.Topic(), "attempts", attempt+1, "error", err)
			return
		}
		obs.Logger.Warn("event handler failed, retrying", "event_id", ev.ID, "attempt", attempt+1, "error", err)
		time.Sleep(time.Duration(attempt+1) * q.Backoff)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler Handler) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

var _ Queue = (*InMemoryQueue)(nil)
