package render

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/status"
)

// Drainer is the UI-side consumer of the simulation queue
// Drain never blocks: it pops until empty, then re-arms through the Scheduler
type Drainer struct {
	queue    *events.Queue[events.GameEvent]
	sink     Sink
	sched    Scheduler
	interval time.Duration
	router   *events.Router[*Drainer]
	cues     CuePlayer

	stopped  atomic.Bool
	over     atomic.Bool
	overOnce sync.Once
	overCh   chan struct{}

	statDrains   *atomic.Int64
	statApplied  *atomic.Int64
	statUnknown  *atomic.Int64
	statFlushed  *atomic.Int64
	statGameOver *atomic.Int64
}

// NewDrainer wires the default handlers for the simulation event types
func NewDrainer(queue *events.Queue[events.GameEvent], sink Sink, sched Scheduler, interval time.Duration, reg *status.Registry) *Drainer {
	if reg == nil {
		reg = status.NewRegistry()
	}
	d := &Drainer{
		queue:        queue,
		sink:         sink,
		sched:        sched,
		interval:     interval,
		router:       events.NewRouter[*Drainer](),
		overCh:       make(chan struct{}),
		statDrains:   reg.Ints.Get(status.UIDrains),
		statApplied:  reg.Ints.Get(status.UIApplied),
		statUnknown:  reg.Ints.Get(status.UIUnknown),
		statFlushed:  reg.Ints.Get(status.UIFlushed),
		statGameOver: reg.Ints.Get(status.UIGameOver),
	}
	d.router.Register(moveHandler{})
	d.router.Register(scoreHandler{})
	d.router.Register(preyHandler{})
	d.router.Register(gameOverHandler{})
	return d
}

// SetCues attaches a sound player; nil detaches
func (d *Drainer) SetCues(c CuePlayer) {
	d.cues = c
}

// Start schedules the first drain
func (d *Drainer) Start() {
	d.sched.ScheduleAfter(0, d.Drain)
}

// Drain applies every queued event in FIFO order and acknowledges each one
// Re-arms itself unless the game is over or the drainer was stopped
func (d *Drainer) Drain() {
	d.statDrains.Add(1)

	for {
		ev, err := d.queue.TryPop()
		if err != nil {
			// ErrEmpty is the normal exit; a closed queue reports it as well once drained
			if !errors.Is(err, events.ErrEmpty) {
				log.Printf("drainer: pop: %v", err)
			}
			break
		}
		d.apply(ev)
		d.ack()
	}

	if d.over.Load() || d.stopped.Load() {
		return
	}
	d.sched.ScheduleAfter(d.interval, d.Drain)
}

// Stop disables re-arming; an in-flight Drain finishes its pass
func (d *Drainer) Stop() {
	d.stopped.Store(true)
}

// Flush acknowledges residual events without presenting them
// Safe from any goroutine; the sink is not touched
func (d *Drainer) Flush() int {
	n := 0
	for {
		if _, err := d.queue.TryPop(); err != nil {
			break
		}
		d.ack()
		n++
	}
	d.statFlushed.Add(int64(n))
	return n
}

// Shutdown stops re-arming, flushes and waits for every pushed event to be acknowledged
func (d *Drainer) Shutdown(timeout time.Duration) error {
	d.Stop()
	d.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := d.queue.Join(ctx); err != nil {
		return fmt.Errorf("drainer: join: %w", err)
	}
	return nil
}

// Over reports whether the game-over control has been shown
func (d *Drainer) Over() bool {
	return d.over.Load()
}

// GameOver is closed when the game-over control is shown
func (d *Drainer) GameOver() <-chan struct{} {
	return d.overCh
}

func (d *Drainer) apply(ev events.GameEvent) {
	if err := events.ValidatePayload(ev); err != nil {
		d.statUnknown.Add(1)
		log.Printf("drainer: dropping %v: %v", ev.Type, err)
		return
	}
	if !d.router.Dispatch(d, ev) {
		d.statUnknown.Add(1)
		return
	}
	d.statApplied.Add(1)
}

func (d *Drainer) ack() {
	if err := d.queue.Done(); err != nil {
		log.Printf("drainer: done: %v", err)
	}
}

// markOver returns true only for the first game-over
func (d *Drainer) markOver() bool {
	first := false
	d.overOnce.Do(func() {
		first = true
		d.over.Store(true)
		d.statGameOver.Add(1)
		close(d.overCh)
	})
	return first
}
