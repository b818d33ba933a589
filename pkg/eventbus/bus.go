package eventbus

import (
	"context"
	"sync"
)

// Bus is an in-process publish/subscribe channel for engine events.
// Publishing never blocks: when a subscriber's buffer is full the event
// is dropped for that subscriber. All methods are safe for concurrent use.
type Bus[T any] struct {
	mu          sync.RWMutex
	subscribers map[*busSub[T]]struct{}
	buffer      int
	closed      bool
	done        chan struct{}
	cleanupWg   sync.WaitGroup
}

type busSub[T any] struct {
	ch     chan T
	closed bool
	mu     sync.Mutex
}

func (s *busSub[T]) send(event T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- event:
	default:
	}
}

func (s *busSub[T]) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

// New creates a Bus whose subscribers buffer up to buffer events.
// A minimum buffer of 1 is enforced to keep publishing non-blocking.
func New[T any](buffer int) *Bus[T] {
	return &Bus[T]{
		subscribers: make(map[*busSub[T]]struct{}),
		buffer:      max(buffer, 1),
		done:        make(chan struct{}),
	}
}

// Subscribe registers a new subscriber. The subscription is removed and
// its channel closed when ctx is canceled or the bus closes. Subscribing
// to a closed bus returns an already-closed channel.
func (b *Bus[T]) Subscribe(ctx context.Context) <-chan T {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &busSub[T]{ch: make(chan T, b.buffer)}
	if b.closed {
		sub.close()
		return sub.ch
	}
	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			select {
			case <-ctx.Done():
			case <-b.done:
			}
			b.mu.Lock()
			delete(b.subscribers, sub)
			b.mu.Unlock()
			sub.close()
		}()
	}

	return sub.ch
}

// Publish delivers the event to every current subscriber, dropping it
// for subscribers whose buffer is full.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for sub := range b.subscribers {
		sub.send(event)
	}
}

// Close shuts the bus down and closes every subscriber channel.
// Close is idempotent.
func (b *Bus[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	subs := make([]*busSub[T], 0, len(b.subscribers))
	for sub := range b.subscribers {
		subs = append(subs, sub)
	}
	clear(b.subscribers)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
	b.cleanupWg.Wait()
	return nil
}
