// @focus: #event { queue }
package events

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrEmpty is returned by TryPop when no item is available; it is a control-flow signal
	ErrEmpty = errors.New("events: queue empty")

	// ErrFull is returned by TryPush when a bounded queue is at capacity
	ErrFull = errors.New("events: queue full")

	// ErrClosed is returned by push operations, and by Pop once drained, after Close
	ErrClosed = errors.New("events: queue closed")

	// ErrDoneUnderflow is returned when Done is called more times than items were pushed
	ErrDoneUnderflow = errors.New("events: Done called too many times")
)

// QueueStats is a point-in-time snapshot of queue counters
type QueueStats struct {
	Pushed     uint64
	Popped     uint64
	Done       uint64
	Len        int
	Unfinished int
}

// Queue is a FIFO work queue with task accounting
// Thread-Safety:
//   - Push/TryPush: any number of producers
//   - Pop/TryPop: any number of consumers
//   - Join: any number of waiters, tracks unfinished count (Push increments, Done decrements)
//
// Capacity <= 0 makes the queue unbounded so Push never waits
type Queue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	allDone  *sync.Cond

	items      []T
	capacity   int
	unfinished int
	closed     bool

	pushed uint64
	popped uint64
	done   uint64
}

// NewQueue creates a queue; capacity <= 0 means unbounded
func NewQueue[T any](capacity int) *Queue[T] {
	q := &Queue[T]{capacity: capacity}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	q.allDone = sync.NewCond(&q.mu)
	return q
}

// Push appends item, waiting while a bounded queue is full
// Returns ctx error if cancelled while waiting, ErrClosed after Close
func (q *Queue[T]) Push(ctx context.Context, item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for !q.closed && q.isFull() {
		if err := q.wait(ctx, q.notFull); err != nil {
			return err
		}
	}
	if q.closed {
		return ErrClosed
	}

	q.enqueue(item)
	return nil
}

// TryPush appends item without waiting
func (q *Queue[T]) TryPush(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if q.isFull() {
		return ErrFull
	}

	q.enqueue(item)
	return nil
}

// Pop removes the oldest item, waiting while the queue is empty
// After Close, remaining items are still returned before ErrClosed
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if q.closed {
			var zero T
			return zero, ErrClosed
		}
		if err := q.wait(ctx, q.notEmpty); err != nil {
			var zero T
			return zero, err
		}
	}

	return q.dequeue(), nil
}

// TryPop removes the oldest item without waiting, ErrEmpty if none
func (q *Queue[T]) TryPop() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.dequeue(), nil
}

// Done marks one previously pushed item as processed
// Must be called once per popped item regardless of payload
func (q *Queue[T]) Done() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.unfinished <= 0 {
		return ErrDoneUnderflow
	}

	q.unfinished--
	q.done++
	if q.unfinished == 0 {
		q.allDone.Broadcast()
	}
	return nil
}

// Join blocks until every pushed item has a matching Done
// Items pushed while waiting extend the wait; returns ctx error if cancelled
func (q *Queue[T]) Join(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.unfinished > 0 {
		if err := q.wait(ctx, q.allDone); err != nil {
			return err
		}
	}
	return nil
}

// Close rejects further pushes and wakes blocked callers
// Idempotent
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

// Len returns the number of items waiting to be popped
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Empty reports whether no items are waiting to be popped
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Unfinished returns the number of pushed items not yet marked Done
func (q *Queue[T]) Unfinished() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.unfinished
}

// Capacity returns the configured bound, 0 for unbounded
func (q *Queue[T]) Capacity() int {
	if q.capacity <= 0 {
		return 0
	}
	return q.capacity
}

// Stats returns a snapshot of the queue counters
func (q *Queue[T]) Stats() QueueStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return QueueStats{
		Pushed:     q.pushed,
		Popped:     q.popped,
		Done:       q.done,
		Len:        len(q.items),
		Unfinished: q.unfinished,
	}
}

// isFull requires q.mu held
func (q *Queue[T]) isFull() bool {
	return q.capacity > 0 && len(q.items) >= q.capacity
}

// enqueue requires q.mu held
func (q *Queue[T]) enqueue(item T) {
	q.items = append(q.items, item)
	q.unfinished++
	q.pushed++
	// Broadcast rather than Signal: a woken waiter may abandon on ctx cancel
	q.notEmpty.Broadcast()
}

// dequeue requires q.mu held and a non-empty queue
func (q *Queue[T]) dequeue() T {
	item := q.items[0]
	var zero T
	q.items[0] = zero // Release reference for GC
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = q.items[:0:0]
	}
	q.popped++
	q.notFull.Broadcast()
	return item
}

// wait blocks on cond until signalled or ctx is done; requires q.mu held
// Spurious wakeups are possible, callers re-check their predicate
func (q *Queue[T]) wait(ctx context.Context, cond *sync.Cond) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ctx.Done() == nil {
		cond.Wait()
		return nil
	}

	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		cond.Broadcast()
		q.mu.Unlock()
	})
	cond.Wait()
	stop()
	return ctx.Err()
}
