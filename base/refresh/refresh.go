package refresh

import "sync"

// Signal is a process-wide monotonic counter bumped after every confirmed
// on-chain mutation. Derived views subscribe to invalidate and re-fetch;
// the counter itself carries no payload and is never persisted.
type Signal struct {
	mu    sync.Mutex
	count uint64
	subs  map[int]chan struct{}
	next  int
}

func New() *Signal {
	return &Signal{
		subs: map[int]chan struct{}{},
	}
}

// Bump increments the counter and notifies subscribers. Notifications
// coalesce: a subscriber that has not drained its channel sees one tick
// for any number of bumps.
func (s *Signal) Bump() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Signal) Count() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Subscribe registers a tick channel. The returned func releases it.
func (s *Signal) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
