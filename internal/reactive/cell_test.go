package reactive

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_SubscribeDeliversCurrentValueOnce(t *testing.T) {
	cell := NewCell("light")

	var got []string
	unsubscribe := cell.Subscribe(func(v string) { got = append(got, v) }, nil)
	t.Cleanup(unsubscribe)

	assert.Equal(t, []string{"light"}, got)
}

func TestCell_SetNotifiesOnlyOnChange(t *testing.T) {
	cell := NewCell(1)

	var got []int
	cell.Subscribe(func(v int) { got = append(got, v) }, nil)

	cell.Set(1)
	cell.Set(2)
	cell.Set(2)
	cell.Set(3)

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 3, cell.Get())
}

func TestCell_InvalidateRunsBeforeValue(t *testing.T) {
	cell := NewCell("a")

	var events []string
	cell.Subscribe(
		func(v string) { events = append(events, "run:"+v) },
		func() { events = append(events, "invalidate") },
	)

	cell.Set("b")

	assert.Equal(t, []string{"run:a", "invalidate", "run:b"}, events)
}

func TestCell_Unsubscribe(t *testing.T) {
	cell := NewCell(0)

	var calls int
	unsubscribe := cell.Subscribe(func(int) { calls++ }, nil)
	require.Equal(t, 1, cell.SubscriberCount())

	unsubscribe()
	unsubscribe() // idempotent

	cell.Set(1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, cell.SubscriberCount())
}

func TestCell_ReentrantSetIsDeliveredInOrder(t *testing.T) {
	cell := NewCell(0)

	// First subscriber bumps 1 to 2 while the first delivery is in flight.
	cell.Subscribe(func(v int) {
		if v == 1 {
			cell.Set(2)
		}
	}, nil)

	var seen []int
	cell.Subscribe(func(v int) { seen = append(seen, v) }, nil)

	cell.Set(1)

	// Second subscriber sees 1 then 2, never 2 before 1.
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, 2, cell.Get())
}

func TestCell_UnsubscribeDuringDeliverySkipsQueuedValues(t *testing.T) {
	cell := NewCell(0)

	var unsubscribeSecond Unsubscriber
	cell.Subscribe(func(v int) {
		if v == 1 && unsubscribeSecond != nil {
			unsubscribeSecond()
		}
	}, nil)

	var seen []int
	unsubscribeSecond = cell.Subscribe(func(v int) { seen = append(seen, v) }, nil)

	cell.Set(1)

	assert.Equal(t, []int{0}, seen)
}

func TestCell_Update(t *testing.T) {
	cell := NewCell(10)
	cell.Update(func(v int) int { return v + 5 })
	assert.Equal(t, 15, cell.Get())
}

func TestCell_ConcurrentSet(t *testing.T) {
	cell := NewCell(0)

	var mu sync.Mutex
	var deliveries int
	cell.Subscribe(func(int) {
		mu.Lock()
		deliveries++
		mu.Unlock()
	}, nil)

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			cell.Set(v)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	// Initial delivery plus at least one change; duplicates are dropped.
	assert.GreaterOrEqual(t, deliveries, 2)
	assert.LessOrEqual(t, deliveries, 51)
}

func TestSerial_NestedDoRunsAfterCurrent(t *testing.T) {
	var s Serial
	var order []string

	ran := s.Do(func() {
		order = append(order, "outer-start")
		nested := s.Do(func() { order = append(order, "nested") })
		assert.False(t, nested)
		order = append(order, "outer-end")
	})

	assert.True(t, ran)
	assert.Equal(t, []string{"outer-start", "outer-end", "nested"}, order)
}

func TestSerial_RunsInline(t *testing.T) {
	var s Serial
	called := false
	assert.True(t, s.Do(func() { called = true }))
	assert.True(t, called)
}

func TestCell_SetDuringInitialDeliveryIsQueued(t *testing.T) {
	cell := NewCell(1)

	var mu sync.Mutex
	var seen []int
	running, overlapped := false, false

	cell.Subscribe(func(v int) {
		mu.Lock()
		if running {
			overlapped = true
		}
		running = true
		mu.Unlock()

		if v == 1 {
			done := make(chan struct{})
			go func() {
				defer close(done)
				cell.Set(2)
			}()
			<-done
		}

		mu.Lock()
		seen = append(seen, v)
		running = false
		mu.Unlock()
	}, nil)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, overlapped)
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 2, cell.Get())
}

func TestCell_SubscribeWhileDrainingQueuesInitialValue(t *testing.T) {
	cell := NewCell("a")

	var seen []string
	var inner Unsubscriber
	cell.Subscribe(func(v string) {
		if v == "b" && inner == nil {
			inner = cell.Subscribe(func(v string) { seen = append(seen, "inner:"+v) }, nil)
			seen = append(seen, "subscribed")
		}
	}, nil)

	cell.Set("b")
	cell.Set("c")

	assert.Equal(t, []string{"subscribed", "inner:b", "inner:c"}, seen)
	inner()
}
