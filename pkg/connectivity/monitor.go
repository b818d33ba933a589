package connectivity

import (
	"context"
	"sync"
)

// Monitor reports the host's connectivity state and notifies
// subscribers about transitions. Implementations must be safe for
// concurrent use.
type Monitor interface {
	// Online returns the last observed connectivity state.
	Online() bool

	// Subscribe returns a channel that receives the new state on every
	// transition. The subscription is cleaned up when ctx is canceled.
	// Slow consumers may miss intermediate transitions; the latest
	// state is always available through Online.
	Subscribe(ctx context.Context) <-chan bool
}

// Manual is a Monitor whose state is driven by explicit SetOnline
// calls, either from tests or from a host embedding that receives
// platform online/offline signals directly.
type Manual struct {
	mu          sync.RWMutex
	online      bool
	subscribers map[*manualSub]struct{}
	closed      bool
}

type manualSub struct {
	ch     chan bool
	closed bool
	mu     sync.Mutex
}

func (s *manualSub) send(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- online:
	default:
		// Drop rather than block: subscribers can read Online() to resync.
	}
}

func (s *manualSub) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

// NewManual creates a manually driven monitor with the given initial state.
func NewManual(online bool) *Manual {
	return &Manual{
		online:      online,
		subscribers: make(map[*manualSub]struct{}),
	}
}

func (m *Manual) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

func (m *Manual) Subscribe(ctx context.Context) <-chan bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub := &manualSub{ch: make(chan bool, 4)}
	if m.closed {
		sub.close()
		return sub.ch
	}
	m.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			m.mu.Lock()
			delete(m.subscribers, sub)
			m.mu.Unlock()
			sub.close()
		}()
	}

	return sub.ch
}

// SetOnline records a new connectivity state. Subscribers are notified
// only on actual transitions.
func (m *Manual) SetOnline(online bool) {
	m.mu.Lock()
	if m.closed || m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]*manualSub, 0, len(m.subscribers))
	for sub := range m.subscribers {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	for _, sub := range subs {
		sub.send(online)
	}
}

// Close shuts down the monitor and closes all subscriber channels.
func (m *Manual) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	subs := make([]*manualSub, 0, len(m.subscribers))
	for sub := range m.subscribers {
		subs = append(subs, sub)
	}
	clear(m.subscribers)
	m.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
	return nil
}
