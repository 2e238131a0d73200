// Package notification provides a latest-value publisher for broadcasting
// state snapshots to subscribers.
package notification

import (
	"sync"

	"github.com/google/uuid"
)

// subscription represents a subscriber's subscription.
type subscription[T any] struct {
	id string
	ch chan T
}

// Manager stores the most recent value and fans it out to subscribers.
// Subscribers never see a backlog: a slow subscriber only receives the latest
// value published since its last read. Publishing never blocks.
type Manager[T any] struct {
	mu            sync.RWMutex
	current       T
	subscriptions map[string]*subscription[T]
	closed        bool
}

// NewManager creates a new notification manager seeded with initial.
func NewManager[T any](initial T) *Manager[T] {
	return &Manager[T]{
		current:       initial,
		subscriptions: make(map[string]*subscription[T]),
	}
}

// Load returns the most recently published value.
func (m *Manager[T]) Load() T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Publish stores v as the current value and notifies every subscriber.
func (m *Manager[T]) Publish(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.current = v
	for _, sub := range m.subscriptions {
		offerLatest(sub.ch, v)
	}
}

// Subscribe adds a new subscription and returns its ID and channel.
// The channel immediately holds the current value. After Close the channel
// holds the final value and is already closed.
func (m *Manager[T]) Subscribe() (string, <-chan T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	ch := make(chan T, 1)
	ch <- m.current
	if m.closed {
		close(ch)
		return id, ch
	}
	m.subscriptions[id] = &subscription[T]{
		id: id,
		ch: ch,
	}
	return id, ch
}

// Unsubscribe removes a subscription and closes its channel.
func (m *Manager[T]) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.subscriptions[subscriptionID]
	if !ok {
		return
	}
	delete(m.subscriptions, subscriptionID)
	close(sub.ch)
}

// Close closes every subscriber channel after its buffered value. Later
// publishes are ignored.
func (m *Manager[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	for id, sub := range m.subscriptions {
		close(sub.ch)
		delete(m.subscriptions, id)
	}
}

// offerLatest replaces whatever is buffered in ch with v.
// Must be called with the manager lock held so no other sender interleaves.
func offerLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}
