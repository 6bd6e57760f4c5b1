package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/status"
)

// ErrNotEmpty is returned when items remain queued after every Done was received
var ErrNotEmpty = errors.New("pipeline: queue not empty after join")

// Census is the state observed after producers finished and the queue drained
type Census struct {
	Empty          bool
	ProducersAlive int
	ConsumersAlive int
	Produced       int64
	Consumed       int64
	DoneCalls      int64
	Remaining      []string // Names of live workers, sorted
	Goroutines     int
}

// Coordinator runs the producer/consumer demo over one queue
type Coordinator struct {
	cfg    config.PipelineConfig
	queue  *events.Queue[events.GameEvent]
	logger *log.Logger

	// Process replaces the default log line for consumed items; set before Run
	Process ProcessFunc

	produced  *atomic.Int64
	consumed  *atomic.Int64
	doneCalls atomic.Int64

	statProducers *atomic.Int64
	statConsumers *atomic.Int64

	mu    sync.Mutex
	alive map[string]struct{}
}

// NewCoordinator creates a coordinator; nil reg and logger are allowed
func NewCoordinator(cfg config.PipelineConfig, reg *status.Registry, logger *log.Logger) *Coordinator {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{
		cfg:           cfg,
		queue:         events.NewQueue[events.GameEvent](cfg.QueueCapacity),
		logger:        logger,
		produced:      reg.Ints.Get(status.PipelineProduced),
		consumed:      reg.Ints.Get(status.PipelineConsumed),
		statProducers: reg.Ints.Get(status.PipelineProducersAlive),
		statConsumers: reg.Ints.Get(status.PipelineConsumersAlive),
		alive:         make(map[string]struct{}),
	}
}

// Run starts all workers, waits for producers and the queue join, takes the census,
// then cancels the consumers and waits for them
func (c *Coordinator) Run(ctx context.Context) (Census, error) {
	seed := core.ResolveSeed(c.cfg.Seed)
	c.logger.Printf("pipeline: %d producers, %d consumers, %d items each, seed %d",
		c.cfg.Producers, c.cfg.Consumers, c.cfg.Items, seed)

	process := c.Process
	if process == nil {
		process = func(worker string, item events.ItemPayload) {
			c.logger.Printf("%s consumed item %d", worker, item.Value)
		}
	}

	consumerCtx, cancelConsumers := context.WithCancel(ctx)
	defer cancelConsumers()

	producers, pctx := errgroup.WithContext(ctx)
	for i := 0; i < c.cfg.Producers; i++ {
		p := &Producer{
			Name:      fmt.Sprintf("%s%d", constants.ProducerPrefix, i),
			queue:     c.queue,
			rng:       core.NewRand(core.DeriveSeed(seed, i)),
			items:     c.cfg.Items,
			min:       c.cfg.Min,
			max:       c.cfg.Max,
			maxJitter: c.cfg.MaxJitter,
			logger:    c.logger,
			produced:  c.produced,
		}
		c.enter(p.Name, c.statProducers)
		producers.Go(func() (err error) {
			defer c.leave(p.Name, c.statProducers)
			defer func() {
				if r := recover(); r != nil {
					core.HandleCrash(r)
				}
			}()
			return p.Run(pctx)
		})
	}

	var (
		consumers sync.WaitGroup
		errMu     sync.Mutex
		errs      []error
	)
	for i := 0; i < c.cfg.Consumers; i++ {
		cons := &Consumer{
			Name:      fmt.Sprintf("%s%d", constants.ConsumerPrefix, i),
			queue:     c.queue,
			rng:       core.NewRand(core.DeriveSeed(seed, c.cfg.Producers+i)),
			maxJitter: c.cfg.MaxJitter,
			process:   process,
			logger:    c.logger,
			consumed:  c.consumed,
			doneCalls: &c.doneCalls,
		}
		c.enter(cons.Name, c.statConsumers)
		consumers.Add(1)
		core.Go(func() {
			defer consumers.Done()
			defer c.leave(cons.Name, c.statConsumers)
			if err := cons.Run(consumerCtx); err != nil {
				errMu.Lock()
				errs = append(errs, err)
				errMu.Unlock()
			}
		})
	}

	stop := func(err error) (Census, error) {
		cancelConsumers()
		consumers.Wait()
		c.queue.Close()
		return Census{}, errors.Join(append([]error{err}, errs...)...)
	}

	if err := producers.Wait(); err != nil {
		return stop(err)
	}
	if err := c.queue.Join(ctx); err != nil {
		return stop(fmt.Errorf("join queue: %w", err))
	}

	census := c.census()
	if !census.Empty {
		return stop(ErrNotEmpty)
	}

	cancelConsumers()
	consumers.Wait()
	c.queue.Close()
	return census, errors.Join(errs...)
}

func (c *Coordinator) census() Census {
	c.mu.Lock()
	names := make([]string, 0, len(c.alive))
	for name := range c.alive {
		names = append(names, name)
	}
	c.mu.Unlock()
	sort.Strings(names)

	return Census{
		Empty:          c.queue.Empty(),
		ProducersAlive: int(c.statProducers.Load()),
		ConsumersAlive: int(c.statConsumers.Load()),
		Produced:       c.produced.Load(),
		Consumed:       c.consumed.Load(),
		DoneCalls:      c.doneCalls.Load(),
		Remaining:      names,
		Goroutines:     runtime.NumGoroutine(),
	}
}

// enter registers a worker as alive before its goroutine starts
func (c *Coordinator) enter(name string, gauge *atomic.Int64) {
	c.mu.Lock()
	c.alive[name] = struct{}{}
	c.mu.Unlock()
	gauge.Add(1)
}

func (c *Coordinator) leave(name string, gauge *atomic.Int64) {
	c.mu.Lock()
	delete(c.alive, name)
	c.mu.Unlock()
	gauge.Add(-1)
}

// Alive returns the number of workers still running
func (c *Coordinator) Alive() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.alive)
}
