package terminal

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// Controls connects key presses to the game
type Controls struct {
	// Steer forwards a heading request, returns false if rejected
	Steer func(core.Direction) bool

	// GameOver reports whether the game-over control is active; Enter quits only then
	GameOver func() bool

	// OnTurn is called after an accepted heading change
	OnTurn func()

	// ToggleMute flips sound cues, returns true when now muted
	ToggleMute func() bool
}

// Host is the single cooperative UI goroutine
// Scheduled callbacks and input events run serially on the goroutine that called Run
type Host struct {
	screen   *Screen
	controls Controls

	tasks chan func()

	quitOnce sync.Once
	quit     chan struct{}
	mu       sync.Mutex
	err      error
}

// NewHost binds screen and controls
func NewHost(screen *Screen, controls Controls) *Host {
	return &Host{
		screen:   screen,
		controls: controls,
		tasks:    make(chan func(), 64),
		quit:     make(chan struct{}),
	}
}

// ScheduleAfter implements render.Scheduler
// fn runs on the Run goroutine; it is dropped if the host has quit
func (h *Host) ScheduleAfter(d time.Duration, fn func()) {
	if d <= 0 {
		core.Go(func() { h.post(fn) })
		return
	}
	time.AfterFunc(d, func() { h.post(fn) })
}

func (h *Host) post(fn func()) {
	select {
	case h.tasks <- fn:
	case <-h.quit:
	}
}

// Quit ends Run; err is returned by Run when non-nil
// Only the first call has effect
func (h *Host) Quit(err error) {
	h.quitOnce.Do(func() {
		h.mu.Lock()
		h.err = err
		h.mu.Unlock()
		close(h.quit)
	})
}

// Done is closed once Quit has been called
func (h *Host) Done() <-chan struct{} {
	return h.quit
}

// Run processes input and scheduled callbacks until quit or ctx cancellation
func (h *Host) Run(ctx context.Context) error {
	evCh := make(chan tcell.Event, 32)
	stopEvents := make(chan struct{})
	defer close(stopEvents)
	core.Go(func() { h.screen.tcell.ChannelEvents(evCh, stopEvents) })

	h.screen.tcell.Show()

	for {
		select {
		case <-ctx.Done():
			h.Quit(nil)
			return nil

		case <-h.quit:
			h.mu.Lock()
			defer h.mu.Unlock()
			return h.err

		case fn := <-h.tasks:
			fn()
			h.screen.tcell.Show()

		case ev, ok := <-evCh:
			if !ok {
				// Screen finalized underneath us
				evCh = nil
				continue
			}
			if h.handleEvent(ev) {
				h.Quit(nil)
			}
		}
	}
}

// handleEvent returns true when the UI should close
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, dir := MapKey(ev)
		switch action {
		case ActionQuit:
			log.Printf("quit requested (%s)", ev.Name())
			return true
		case ActionConfirm:
			if h.controls.GameOver != nil && h.controls.GameOver() {
				log.Printf("game over control activated")
				return true
			}
		case ActionMute:
			if h.controls.ToggleMute != nil {
				log.Printf("sound muted: %t", h.controls.ToggleMute())
			}
		case ActionSteer:
			if h.controls.Steer != nil && h.controls.Steer(dir) && h.controls.OnTurn != nil {
				h.controls.OnTurn()
			}
		}

	case *tcell.EventResize:
		h.screen.Redraw()
		h.screen.tcell.Sync()
	}
	return false
}
