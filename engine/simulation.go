package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/status"
)

var (
	// ErrNoPreyCell means no lattice cell satisfies the placement rules
	ErrNoPreyCell = errors.New("engine: no valid prey cell")

	// ErrNotRunning is returned by Step outside the Running state
	ErrNotRunning = errors.New("engine: simulation not running")
)

// Rand is the random source for prey placement
type Rand = core.Rand

// Simulation is the snake world and its single producer
// Thread-Safety:
//   - Start/Step/Run: simulation goroutine only, sole mutator of body, prey and score
//   - Steer/Direction/Status: any goroutine
type Simulation struct {
	cfg   config.GameConfig
	queue *events.Queue[events.GameEvent]
	rng   Rand

	body  []core.Point // Tail first, head last
	prey  core.Rect
	score int
	tick  uint64

	// Lattice origin; prey centres share the head's residue modulo Step
	originX, originY int

	status atomic.Uint32

	// Heading moved on the last tick in the high 32 bits, pending direction in the low 32
	steering atomic.Uint64

	statTicks    *atomic.Int64
	statScore    *atomic.Int64
	statCaptures *atomic.Int64
	statDropped  *atomic.Int64
	statTickMs   *status.AtomicFloat
	statStatus   *status.AtomicString
}

// NewSimulation builds the initial snake from cfg and places the first prey
// Returns ErrNoPreyCell if the playfield leaves no room for prey
func NewSimulation(cfg config.GameConfig, queue *events.Queue[events.GameEvent], rng Rand, reg *status.Registry) (*Simulation, error) {
	if reg == nil {
		reg = status.NewRegistry()
	}
	body := cfg.InitialSnake()
	if len(body) < 2 {
		return nil, fmt.Errorf("engine: initial snake needs at least 2 points, got %d", len(body))
	}

	head := body[len(body)-1]
	s := &Simulation{
		cfg:          cfg,
		queue:        queue,
		rng:          rng,
		body:         body,
		originX:      mod(head.X, cfg.Step),
		originY:      mod(head.Y, cfg.Step),
		statTicks:    reg.Ints.Get(status.SimTicks),
		statScore:    reg.Ints.Get(status.SimScore),
		statCaptures: reg.Ints.Get(status.SimCaptures),
		statDropped:  reg.Ints.Get(status.QueueDropped),
		statTickMs:   reg.Floats.Get(status.SimTickMs),
		statStatus:   reg.Strings.Get(status.SimStatus),
	}
	s.steering.Store(packSteering(cfg.Heading, cfg.Heading))
	s.setStatus(core.StatusInitializing)

	prey, err := s.placePrey()
	if err != nil {
		return nil, err
	}
	s.prey = prey
	return s, nil
}

// Start announces the initial prey and body, then enters Running
// No-op once started
func (s *Simulation) Start(ctx context.Context) error {
	if s.Status() != core.StatusInitializing {
		return nil
	}
	s.pushLossy(events.NewPreyEvent(s.tick, s.prey))
	if err := s.queue.Push(ctx, events.NewMoveEvent(s.tick, s.body)); err != nil {
		return fmt.Errorf("engine: initial move: %w", err)
	}
	s.setStatus(core.StatusRunning)
	return nil
}

// Step advances the world by one tick
// The tick that ends the game emits only GameOver
func (s *Simulation) Step(ctx context.Context) error {
	if s.Status() != core.StatusRunning {
		return ErrNotRunning
	}
	start := time.Now()
	defer func() {
		s.statTickMs.Max(float64(time.Since(start).Microseconds()) / 1000)
	}()

	s.tick++
	s.statTicks.Add(1)

	dir := s.commitHeading()
	head := s.body[len(s.body)-1].Add(dir.Delta(s.cfg.Step))
	copy(s.body, s.body[1:])
	s.body[len(s.body)-1] = head

	if cause, over := s.collided(head); over {
		s.setStatus(core.StatusOver)
		if err := s.queue.Push(ctx, events.NewGameOverEvent(s.tick, cause)); err != nil {
			return fmt.Errorf("engine: game over push: %w", err)
		}
		return nil
	}

	if s.captured(head, dir) {
		s.score++
		s.statScore.Store(int64(s.score))
		s.statCaptures.Add(1)
		s.pushLossy(events.NewScoreEvent(s.tick, s.score))

		s.grow()

		prey, err := s.placePrey()
		if err != nil {
			return err
		}
		s.prey = prey
		s.pushLossy(events.NewPreyEvent(s.tick, s.prey))
	}

	if err := s.queue.Push(ctx, events.NewMoveEvent(s.tick, s.body)); err != nil {
		return fmt.Errorf("engine: move push: %w", err)
	}
	return nil
}

// Steer requests a heading change from any goroutine
// Rejects invalid directions and the reverse of the heading moved on the last tick,
// so several requests within one tick cannot turn the snake back into its neck
func (s *Simulation) Steer(d core.Direction) bool {
	if !d.Valid() {
		return false
	}
	for {
		cur := s.steering.Load()
		heading, _ := unpackSteering(cur)
		if d == heading.Opposite() {
			return false
		}
		if s.steering.CompareAndSwap(cur, packSteering(heading, d)) {
			return true
		}
	}
}

// Direction returns the direction used by the next tick
func (s *Simulation) Direction() core.Direction {
	_, pending := unpackSteering(s.steering.Load())
	return pending
}

// Heading returns the direction moved on the last tick
func (s *Simulation) Heading() core.Direction {
	heading, _ := unpackSteering(s.steering.Load())
	return heading
}

// commitHeading makes the pending direction the heading for this tick and returns it
// A Steer racing with the commit retries against the new heading
func (s *Simulation) commitHeading() core.Direction {
	for {
		cur := s.steering.Load()
		_, pending := unpackSteering(cur)
		if s.steering.CompareAndSwap(cur, packSteering(pending, pending)) {
			return pending
		}
	}
}

func packSteering(heading, pending core.Direction) uint64 {
	return uint64(heading)<<32 | uint64(pending)
}

func unpackSteering(v uint64) (heading, pending core.Direction) {
	return core.Direction(v >> 32), core.Direction(uint32(v))
}

// Status returns the lifecycle state
func (s *Simulation) Status() core.GameStatus {
	return core.GameStatus(s.status.Load())
}

// Score returns the captures so far; simulation goroutine or after Run returns
func (s *Simulation) Score() int {
	return s.score
}

// Body returns a copy of the snake, tail first; simulation goroutine or after Run returns
func (s *Simulation) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Prey returns the current prey bounds; simulation goroutine or after Run returns
func (s *Simulation) Prey() core.Rect {
	return s.prey
}

// Tick returns the number of completed ticks
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// pushLossy enqueues events whose loss only delays the display
func (s *Simulation) pushLossy(ev events.GameEvent) {
	if err := s.queue.TryPush(ev); err != nil {
		s.statDropped.Add(1)
	}
}

// setStatus never leaves Over
func (s *Simulation) setStatus(st core.GameStatus) {
	for {
		cur := s.status.Load()
		if core.GameStatus(cur) == core.StatusOver {
			return
		}
		if s.status.CompareAndSwap(cur, uint32(st)) {
			s.statStatus.Store(st.String())
			return
		}
	}
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
