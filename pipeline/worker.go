package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

// Rand is the per-worker random source
type Rand = core.Rand

// ProcessFunc handles one consumed item; worker is the consumer's name
type ProcessFunc func(worker string, item events.ItemPayload)

// Producer pushes a fixed number of random items and returns
type Producer struct {
	Name string

	queue     *events.Queue[events.GameEvent]
	rng       Rand
	items     int
	min, max  int
	maxJitter time.Duration
	logger    *log.Logger

	produced *atomic.Int64
}

// Run produces all items; an error means a push was cancelled or rejected
func (p *Producer) Run(ctx context.Context) error {
	for i := 0; i < p.items; i++ {
		value := p.min + p.rng.Intn(p.max-p.min+1)
		if err := p.queue.Push(ctx, events.NewItemEvent(p.Name, i, value)); err != nil {
			return fmt.Errorf("%s: push item %d: %w", p.Name, i, err)
		}
		p.produced.Add(1)
		p.logger.Printf("%s produced item %d", p.Name, value)

		if err := sleep(ctx, jitter(p.rng, p.maxJitter)); err != nil {
			return fmt.Errorf("%s: %w", p.Name, err)
		}
	}
	return nil
}

// Consumer pops items until cancelled or the queue is closed
type Consumer struct {
	Name string

	queue     *events.Queue[events.GameEvent]
	rng       Rand
	maxJitter time.Duration
	process   ProcessFunc
	logger    *log.Logger

	consumed  *atomic.Int64
	doneCalls *atomic.Int64
}

// Run returns nil on cancellation or close; other errors are accounting faults
func (c *Consumer) Run(ctx context.Context) error {
	for {
		ev, err := c.queue.Pop(ctx)
		if err != nil {
			if errors.Is(err, events.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%s: pop: %w", c.Name, err)
		}

		if item, ok := ev.Payload.(events.ItemPayload); ok {
			c.process(c.Name, item)
			c.consumed.Add(1)
		} else {
			c.logger.Printf("%s skipped %s event", c.Name, ev.Type)
		}

		// Done is owed for every popped item, including skipped ones
		if err := c.queue.Done(); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		c.doneCalls.Add(1)

		if sleep(ctx, jitter(c.rng, c.maxJitter)) != nil {
			return nil
		}
	}
}

// jitter returns a random pause in [0, max)
func jitter(rng Rand, max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rng.Intn(int(max)))
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
