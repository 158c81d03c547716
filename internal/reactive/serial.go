package reactive

import "sync"

// Serial runs submitted functions one at a time, in submission order.
//
// Do runs fn on the calling goroutine unless a function is already running,
// in which case fn is queued and executed by the goroutine currently
// draining the queue. Calling Do from inside a running function therefore
// never deadlocks; the nested function runs after the current one returns.
type Serial struct {
	mu      sync.Mutex
	queue   []func()
	running bool
}

// Do submits fn. It reports whether fn ran before Do returned.
func (s *Serial) Do(fn func()) (ran bool) {
	s.mu.Lock()
	s.queue = append(s.queue, fn)
	if s.running {
		s.mu.Unlock()
		return false
	}
	s.running = true

	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		next()

		s.mu.Lock()
	}

	s.queue = nil
	s.running = false
	s.mu.Unlock()
	return true
}
