// Package queue provides the bounded intake queue between the events API
// and the persistence workers.
package queue

import (
	"context"
	"sync"

	"github.com/abubakarirfan/huddled-takehome/internal/domain/model"
	"github.com/abubakarirfan/huddled-takehome/pkg/metrics"
)

const defaultCapacity = 10000

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds an event. Returns false if the queue is full or closed.
	Enqueue(ctx context.Context, e model.UserEvent) bool

	// Dequeue returns the channel workers consume from. The channel closes
	// when the queue closes.
	Dequeue(ctx context.Context) <-chan model.UserEvent

	// Len returns the current number of queued events.
	Len(ctx context.Context) int

	// Close stops accepting events and closes the dequeue channel.
	Close() error
}

// Option applies a configuration option to the in-memory queue.
type Option func(*InMemoryQueue)

// WithCapacity bounds the number of buffered events.
func WithCapacity(n int) Option {
	return func(q *InMemoryQueue) {
		if n > 0 {
			q.capacity = n
		}
	}
}

// InMemoryQueue implements Queue on a buffered channel.
type InMemoryQueue struct {
	mu       sync.RWMutex
	events   chan model.UserEvent
	capacity int
	closed   bool
}

// NewInMemoryQueue creates a bounded in-memory queue.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(q)
	}
	q.events = make(chan model.UserEvent, q.capacity)
	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueDepth(0)
	return q
}

func (q *InMemoryQueue) Enqueue(_ context.Context, e model.UserEvent) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return false
	}
	select {
	case q.events <- e:
		metrics.UpdateQueueDepth(len(q.events))
		return true
	default:
		return false
	}
}

func (q *InMemoryQueue) Dequeue(_ context.Context) <-chan model.UserEvent {
	return q.events
}

func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.events)
}

// Close stops accepting new events and closes the dequeue channel once.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil
	}
	q.closed = true
	close(q.events)
	return nil
}

// IsClosed reports whether Close has been called.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
