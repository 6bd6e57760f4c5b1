package terminal

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

type runResult struct{ err error }

func startHost(t *testing.T, controls Controls) (*Host, tcell.SimulationScreen, chan runResult) {
	t.Helper()
	s, sim := newSimScreen(t)
	h := NewHost(s, controls)
	done := make(chan runResult, 1)
	go func() { done <- runResult{h.Run(context.Background())} }()
	return h, sim, done
}

func waitRun(t *testing.T, done chan runResult) error {
	t.Helper()
	select {
	case r := <-done:
		return r.err
	case <-time.After(2 * time.Second):
		t.Fatal("Host did not exit")
		return nil
	}
}

func TestHostRunsScheduledOnLoop(t *testing.T) {
	h, _, done := startHost(t, Controls{})

	ran := make(chan struct{})
	h.ScheduleAfter(10*time.Millisecond, func() { close(ran) })
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("Scheduled callback did not run")
	}

	h.Quit(nil)
	if err := waitRun(t, done); err != nil {
		t.Errorf("Expected nil from Run, got %v", err)
	}
}

func TestHostSteerAndEscape(t *testing.T) {
	var steered atomic.Int32
	var turns atomic.Int32
	controls := Controls{
		Steer: func(d core.Direction) bool {
			steered.Store(int32(d))
			return true
		},
		OnTurn: func() { turns.Add(1) },
	}
	_, sim, done := startHost(t, controls)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := waitRun(t, done); err != nil {
		t.Errorf("Expected nil from Run, got %v", err)
	}
	if core.Direction(steered.Load()) != core.DirUp {
		t.Errorf("Expected steer Up, got %v", core.Direction(steered.Load()))
	}
	if turns.Load() != 1 {
		t.Errorf("Expected one turn cue, got %d", turns.Load())
	}
}

func TestHostEnterOnlyAfterGameOver(t *testing.T) {
	var over atomic.Bool
	h, sim, done := startHost(t, Controls{GameOver: over.Load})

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	// Round-trip a callback so the Enter has been processed
	ran := make(chan struct{})
	h.ScheduleAfter(20*time.Millisecond, func() { close(ran) })
	<-ran

	select {
	case <-done:
		t.Fatal("Enter closed the UI before game over")
	default:
	}

	over.Store(true)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	if err := waitRun(t, done); err != nil {
		t.Errorf("Expected nil from Run, got %v", err)
	}
}

func TestHostQuitError(t *testing.T) {
	h, _, done := startHost(t, Controls{})
	boom := errors.New("boom")
	h.Quit(boom)
	h.Quit(nil)
	if err := waitRun(t, done); !errors.Is(err, boom) {
		t.Errorf("Expected first Quit error, got %v", err)
	}
}

func TestHostContextCancel(t *testing.T) {
	s, _ := newSimScreen(t)
	h := NewHost(s, Controls{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run ignored cancellation")
	}
	select {
	case <-h.Done():
	default:
		t.Error("Expected Done closed after cancel")
	}
}

func TestHostMuteKey(t *testing.T) {
	var muted atomic.Bool
	var toggles atomic.Int32
	controls := Controls{
		ToggleMute: func() bool {
			toggles.Add(1)
			return !muted.Swap(!muted.Load())
		},
	}
	_, sim, done := startHost(t, controls)

	sim.InjectKey(tcell.KeyRune, 'm', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'M', tcell.ModShift)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := waitRun(t, done); err != nil {
		t.Errorf("Expected nil from Run, got %v", err)
	}
	if toggles.Load() != 2 {
		t.Errorf("Expected two mute toggles, got %d", toggles.Load())
	}
	if muted.Load() {
		t.Error("Expected sound unmuted after two toggles")
	}
}
