package render

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/status"
)

type fakeSink struct {
	snake    [][]core.Point
	prey     []core.Rect
	scores   []int
	gameOver int
	calls    []string
}

func (s *fakeSink) SetSnakeShape(p []core.Point) {
	s.snake = append(s.snake, p)
	s.calls = append(s.calls, "snake")
}

func (s *fakeSink) SetPreyShape(r core.Rect) {
	s.prey = append(s.prey, r)
	s.calls = append(s.calls, "prey")
}

func (s *fakeSink) SetScoreText(n int) {
	s.scores = append(s.scores, n)
	s.calls = append(s.calls, "score")
}

func (s *fakeSink) ShowGameOverControl() {
	s.gameOver++
	s.calls = append(s.calls, "gameover")
}

// manualScheduler records re-arms; the test runs them explicitly
type manualScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (m *manualScheduler) ScheduleAfter(d time.Duration, fn func()) {
	m.pending = append(m.pending, fn)
	m.delays = append(m.delays, d)
}

// runNext executes the oldest pending callback, false if none
func (m *manualScheduler) runNext() bool {
	if len(m.pending) == 0 {
		return false
	}
	fn := m.pending[0]
	m.pending = m.pending[1:]
	fn()
	return true
}

type fakeCues struct{ capture, over int }

func (c *fakeCues) PlayCapture()  { c.capture++ }
func (c *fakeCues) PlayGameOver() { c.over++ }

func newTestDrainer() (*Drainer, *events.Queue[events.GameEvent], *fakeSink, *manualScheduler, *status.Registry) {
	q := events.NewQueue[events.GameEvent](0)
	sink := &fakeSink{}
	sched := &manualScheduler{}
	reg := status.NewRegistry()
	return NewDrainer(q, sink, sched, 100*time.Millisecond, reg), q, sink, sched, reg
}

func body(headX int) []core.Point {
	return []core.Point{{X: headX + 20, Y: 55}, {X: headX + 10, Y: 55}, {X: headX, Y: 55}}
}

func TestDrainAppliesInOrderAndRearms(t *testing.T) {
	d, q, sink, sched, reg := newTestDrainer()

	q.TryPush(events.NewPreyEvent(0, core.Rect{MinX: 130, MinY: 10, MaxX: 140, MaxY: 20}))
	q.TryPush(events.NewMoveEvent(1, body(445)))
	q.TryPush(events.NewScoreEvent(2, 1))

	d.Drain()

	want := []string{"prey", "snake", "score"}
	if len(sink.calls) != len(want) {
		t.Fatalf("Expected %v, got %v", want, sink.calls)
	}
	for i := range want {
		if sink.calls[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, sink.calls)
		}
	}
	if q.Unfinished() != 0 {
		t.Errorf("Expected every event acknowledged, %d unfinished", q.Unfinished())
	}
	if len(sched.pending) != 1 || sched.delays[0] != 100*time.Millisecond {
		t.Errorf("Expected one re-arm after the interval, got %v", sched.delays)
	}
	if got := reg.Ints.Get(status.UIApplied).Load(); got != 3 {
		t.Errorf("Expected 3 applied, got %d", got)
	}
}

func TestDrainEmptyQueueRearms(t *testing.T) {
	d, _, sink, sched, _ := newTestDrainer()
	d.Start()
	if !sched.runNext() {
		t.Fatal("Expected Start to schedule a drain")
	}
	if len(sink.calls) != 0 {
		t.Errorf("Expected no sink calls on empty queue, got %v", sink.calls)
	}
	if len(sched.pending) != 1 {
		t.Errorf("Expected re-arm on empty queue, got %d pending", len(sched.pending))
	}
}

func TestGameOverShownOnceAndStopsRearming(t *testing.T) {
	d, q, sink, sched, _ := newTestDrainer()
	cues := &fakeCues{}
	d.SetCues(cues)

	q.TryPush(events.NewMoveEvent(1, body(5)))
	q.TryPush(events.NewGameOverEvent(2, events.CauseWall))
	q.TryPush(events.NewGameOverEvent(3, events.CauseWall))

	d.Drain()

	if sink.gameOver != 1 {
		t.Errorf("Expected ShowGameOverControl exactly once, got %d", sink.gameOver)
	}
	if cues.over != 1 {
		t.Errorf("Expected one game over cue, got %d", cues.over)
	}
	if len(sched.pending) != 0 {
		t.Errorf("Expected no re-arm after game over, got %d", len(sched.pending))
	}
	if q.Unfinished() != 0 {
		t.Errorf("Expected all events acknowledged, %d unfinished", q.Unfinished())
	}
	if !d.Over() {
		t.Error("Expected Over after GameOver event")
	}
	select {
	case <-d.GameOver():
	default:
		t.Error("Expected GameOver channel closed")
	}
}

func TestUnknownEventsAcknowledged(t *testing.T) {
	d, q, sink, _, reg := newTestDrainer()

	q.TryPush(events.GameEvent{Type: events.EventType(99)})
	q.TryPush(events.NewItemEvent("Producer-0", 0, 7))
	q.TryPush(events.GameEvent{Type: events.EventMove, Payload: "not points"})

	d.Drain()

	if len(sink.calls) != 0 {
		t.Errorf("Expected unknown events not presented, got %v", sink.calls)
	}
	if got := reg.Ints.Get(status.UIUnknown).Load(); got != 3 {
		t.Errorf("Expected 3 unknown, got %d", got)
	}
	if q.Unfinished() != 0 {
		t.Errorf("Expected unknown events acknowledged, %d unfinished", q.Unfinished())
	}
}

func TestCaptureCue(t *testing.T) {
	d, q, _, _, _ := newTestDrainer()
	cues := &fakeCues{}
	d.SetCues(cues)

	q.TryPush(events.NewScoreEvent(1, 1))
	q.TryPush(events.NewScoreEvent(2, 2))
	d.Drain()

	if cues.capture != 2 {
		t.Errorf("Expected 2 capture cues, got %d", cues.capture)
	}
}

func TestStopPreventsRearm(t *testing.T) {
	d, _, _, sched, _ := newTestDrainer()
	d.Stop()
	d.Drain()
	if len(sched.pending) != 0 {
		t.Errorf("Expected no re-arm after Stop, got %d", len(sched.pending))
	}
}

func TestShutdownFlushesAndJoins(t *testing.T) {
	d, q, sink, _, reg := newTestDrainer()

	for i := 0; i < 5; i++ {
		q.TryPush(events.NewMoveEvent(uint64(i), body(400)))
	}
	if err := d.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if len(sink.calls) != 0 {
		t.Errorf("Expected flush to skip presentation, got %v", sink.calls)
	}
	if got := reg.Ints.Get(status.UIFlushed).Load(); got != 5 {
		t.Errorf("Expected 5 flushed, got %d", got)
	}
	if !q.Empty() || q.Unfinished() != 0 {
		t.Errorf("Expected drained queue, len=%d unfinished=%d", q.Len(), q.Unfinished())
	}
}

func TestShutdownTimesOutOnUnacknowledged(t *testing.T) {
	d, q, _, _, _ := newTestDrainer()

	// Popped elsewhere but never acknowledged
	q.TryPush(events.NewScoreEvent(1, 1))
	if _, err := q.Pop(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := d.Shutdown(20 * time.Millisecond); err == nil {
		t.Error("Expected join timeout")
	}
}

// End to end: the game-ending tick reaches the sink exactly once and the chain stops
func TestDrainChainEndsAtGameOver(t *testing.T) {
	d, q, sink, sched, _ := newTestDrainer()
	d.Start()

	for i := 0; i < 3; i++ {
		q.TryPush(events.NewMoveEvent(uint64(i), body(30-10*i)))
		sched.runNext()
	}
	q.TryPush(events.NewGameOverEvent(4, events.CauseWall))

	runs := 0
	for sched.runNext() {
		runs++
		if runs > 10 {
			t.Fatal("Drain chain did not stop after game over")
		}
	}
	if sink.gameOver != 1 {
		t.Errorf("Expected one game over control, got %d", sink.gameOver)
	}
	if len(sink.snake) != 3 {
		t.Errorf("Expected 3 snake updates, got %d", len(sink.snake))
	}
}
