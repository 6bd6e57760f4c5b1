package engine

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/lixenwraith/vi-snake/core"
)

// SimulationService runs a Simulation on its own goroutine under the service hub
type SimulationService struct {
	sim *Simulation

	// OnExit is called from the simulation goroutine with Run's result
	// nil means the game ended normally
	OnExit func(error)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// NewSimulationService wraps sim
func NewSimulationService(sim *Simulation) *SimulationService {
	return &SimulationService{sim: sim}
}

// Name implements service.Service
func (s *SimulationService) Name() string { return "simulation" }

// Dependencies implements service.Service
func (s *SimulationService) Dependencies() []string { return []string{"drainer"} }

// Init implements service.Service
func (s *SimulationService) Init() error { return nil }

// Start implements service.Service
func (s *SimulationService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done

	core.Go(func() {
		defer close(done)
		err := s.sim.Run(ctx)
		if errors.Is(err, context.Canceled) {
			err = nil
		}

		s.mu.Lock()
		s.err = err
		s.mu.Unlock()

		if err != nil {
			log.Printf("simulation stopped: %v", err)
		} else {
			log.Printf("simulation finished: status=%s score=%d ticks=%d", s.sim.Status(), s.sim.Score(), s.sim.Tick())
		}
		if s.OnExit != nil {
			s.OnExit(err)
		}
	})
	return nil
}

// Stop implements service.Service
// Cancels the tick loop and waits for the goroutine to exit
func (s *SimulationService) Stop() error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return s.Err()
}

// Done is closed when the simulation goroutine exits; nil before Start
func (s *SimulationService) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Err returns the fatal error that ended the simulation, if any
func (s *SimulationService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
