package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

func TestRunEndsAtWall(t *testing.T) {
	cfg := config.Default().Game
	cfg.HeadX = 25
	cfg.Length = 3
	cfg.Tick = time.Millisecond
	sim, q := newTestSim(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := sim.Run(ctx); err != nil {
		t.Fatalf("Expected nil on game over, got %v", err)
	}

	evs := drain(t, q)
	if evs[len(evs)-1].Type != events.EventGameOver {
		t.Fatalf("Expected GameOver last, got %v", types(evs))
	}
	for _, ev := range evs[:len(evs)-1] {
		if ev.Type == events.EventGameOver {
			t.Fatal("Expected exactly one GameOver")
		}
	}
}

func TestRunCancelledWithoutGameOver(t *testing.T) {
	cfg := config.Default().Game
	cfg.Tick = 20 * time.Millisecond
	sim, q := newTestSim(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()
	err := sim.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected DeadlineExceeded, got %v", err)
	}
	if sim.Status() != core.StatusRunning {
		t.Errorf("Expected still Running after cancel, got %v", sim.Status())
	}
	for _, ev := range drain(t, q) {
		if ev.Type == events.EventGameOver {
			t.Fatal("Expected no GameOver on cancellation")
		}
	}
}

func TestSimulationServiceLifecycle(t *testing.T) {
	cfg := config.Default().Game
	cfg.HeadX = 25
	cfg.Length = 3
	cfg.Tick = time.Millisecond
	sim, q := newTestSim(t, cfg)

	svc := NewSimulationService(sim)
	exited := make(chan error, 1)
	svc.OnExit = func(err error) { exited <- err }

	if err := svc.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	select {
	case err := <-exited:
		if err != nil {
			t.Errorf("Expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Simulation did not finish")
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Second Stop failed: %v", err)
	}
	drain(t, q)
}

func TestSimulationServiceStopCancels(t *testing.T) {
	cfg := config.Default().Game
	cfg.Tick = time.Hour
	sim, _ := newTestSim(t, cfg)

	svc := NewSimulationService(sim)
	svc.Start()

	stopped := make(chan struct{})
	go func() {
		svc.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not cancel the tick loop")
	}
	if svc.Err() != nil {
		t.Errorf("Expected no error on cancellation, got %v", svc.Err())
	}
}
