package events

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

// TestMoveEventSnapshotsBody tests that the event does not alias the caller's slice
func TestMoveEventSnapshotsBody(t *testing.T) {
	body := []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}}
	ev := NewMoveEvent(5, body)

	body[0] = core.Point{X: 99, Y: 99}
	body = append(body, core.Point{X: 3, Y: 1})

	points := ev.Payload.(MovePayload).Points
	if len(points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(points))
	}
	if points[0] != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Event observed caller mutation: %+v", points[0])
	}
	if ev.Tick != 5 || ev.Type != EventMove {
		t.Errorf("Unexpected metadata: type=%v tick=%d", ev.Type, ev.Tick)
	}
}

// TestRegistry tests name lookup and payload validation
func TestRegistry(t *testing.T) {
	et, ok := GetEventType("EventGameOver")
	if !ok || et != EventGameOver {
		t.Errorf("GetEventType(EventGameOver) = %v, %v", et, ok)
	}
	if EventPreyPlaced.String() != "EventPreyPlaced" {
		t.Errorf("Unexpected name %q", EventPreyPlaced.String())
	}
	if EventType(99).String() != "EventUnknown" {
		t.Errorf("Expected EventUnknown, got %q", EventType(99).String())
	}

	valid := []GameEvent{
		NewMoveEvent(0, nil),
		NewScoreEvent(0, 3),
		NewPreyEvent(0, core.Rect{}),
		NewGameOverEvent(0, CauseSelf),
		NewItemEvent("Producer-0", 0, 7),
	}
	for _, ev := range valid {
		if err := ValidatePayload(ev); err != nil {
			t.Errorf("ValidatePayload(%v) failed: %v", ev.Type, err)
		}
	}

	if err := ValidatePayload(GameEvent{Type: EventScoreUpdate, Payload: "3"}); err == nil {
		t.Error("Expected mismatched payload to fail validation")
	}
	if err := ValidatePayload(GameEvent{Type: EventNone}); err == nil {
		t.Error("Expected unregistered type to fail validation")
	}
}
