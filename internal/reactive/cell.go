// Package reactive provides a small observable value with store-style
// subscribe/invalidate semantics.
package reactive

import "sync"

// Subscriber receives the current value of a Readable.
type Subscriber[T any] func(T)

// Unsubscriber removes a subscription. Calling it more than once is a no-op.
type Unsubscriber func()

// Readable is anything that can be observed.
type Readable[T any] interface {
	// Get returns the current value.
	Get() T

	// Subscribe calls run with the current value first and again on every
	// later change, one delivery at a time. invalidate, if non-nil, is called right before a
	// new value is delivered to run.
	Subscribe(run Subscriber[T], invalidate func()) Unsubscriber
}

// subscription wraps a subscriber pair to enable pointer comparison for removal.
type subscription[T any] struct {
	run        Subscriber[T]
	invalidate func()
	active     bool // guarded by Cell.mu
}

type delivery[T any] struct {
	sub   *subscription[T]
	value T
}

// Cell is a mutable observable value.
//
// Deliveries are queued per cell: a Set issued while another delivery is in
// progress, either re-entrantly from a subscriber or from another goroutine,
// is appended to the queue and delivered in order by the goroutine that is
// already draining it, one delivery at a time.
type Cell[T comparable] struct {
	mu       sync.Mutex
	value    T
	subs     []*subscription[T]
	queue    []delivery[T]
	draining bool
}

// NewCell creates a cell holding initial.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value and notifies subscribers. Equal values are ignored.
func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	if c.value == value {
		c.mu.Unlock()
		return
	}
	c.value = value

	subs := make([]*subscription[T], len(c.subs))
	copy(subs, c.subs)
	for _, sub := range subs {
		c.queue = append(c.queue, delivery[T]{sub: sub, value: value})
	}
	c.mu.Unlock()

	for _, sub := range subs {
		if sub.invalidate != nil {
			sub.invalidate()
		}
	}

	c.drain()
}

// Update sets the value to fn(current).
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.Get()))
}

// Subscribe implements Readable. The current value goes through the same
// queue as later changes: it runs before Subscribe returns when no delivery
// is in progress, otherwise the goroutine already draining delivers it ahead
// of any change made after the subscription.
func (c *Cell[T]) Subscribe(run Subscriber[T], invalidate func()) Unsubscriber {
	sub := &subscription[T]{run: run, invalidate: invalidate, active: true}

	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.queue = append(c.queue, delivery[T]{sub: sub, value: c.value})
	c.mu.Unlock()

	c.drain()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if !sub.active {
			return
		}
		sub.active = false
		for i, s := range c.subs {
			if s == sub {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (c *Cell[T]) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// drain delivers queued values unless another goroutine (or an outer frame
// of this one) is already doing so.
func (c *Cell[T]) drain() {
	c.mu.Lock()
	if c.draining {
		c.mu.Unlock()
		return
	}
	c.draining = true

	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		active := next.sub.active
		c.mu.Unlock()

		if active {
			next.sub.run(next.value)
		}

		c.mu.Lock()
	}

	c.queue = nil
	c.draining = false
	c.mu.Unlock()
}

var _ Readable[int] = (*Cell[int])(nil)
