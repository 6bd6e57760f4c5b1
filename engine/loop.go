package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// Run starts the simulation if needed and ticks at the configured period
// Returns nil once the game is over, the context error on cancellation (no GameOver is pushed),
// or the first fatal Step error
func (s *Simulation) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}

	interval := s.cfg.Tick
	deadline := time.Now().Add(interval)

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		if err := s.Step(ctx); err != nil {
			return err
		}
		if s.Status() == core.StatusOver {
			return nil
		}

		// Drift correction: schedule against the ideal deadline, resync if far behind
		now := time.Now()
		deadline = deadline.Add(interval)
		if now.Sub(deadline) > interval*2 {
			deadline = now.Add(interval)
		}
		sleep := deadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
