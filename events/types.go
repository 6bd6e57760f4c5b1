package events

import (
	"time"
)

// EventType represents the type of event carried by a queue
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// EventMove carries the full snake body after a tick
	// Trigger: Simulation every non-final tick (blocking push)
	// Consumer: Drainer -> Sink.SetSnakeShape | Payload: MovePayload
	EventMove

	// EventScoreUpdate carries the new score after a capture
	// Trigger: Simulation on capture (non-blocking push, droppable)
	// Consumer: Drainer -> Sink.SetScoreText | Payload: ScorePayload
	EventScoreUpdate

	// EventPreyPlaced carries the bounds of a newly placed prey
	// Trigger: Simulation on start and after each capture (non-blocking push, droppable)
	// Consumer: Drainer -> Sink.SetPreyShape | Payload: PreyPayload
	EventPreyPlaced

	// EventGameOver signals the terminal simulation state; always the last event of a game
	// Trigger: Simulation on wall or self collision (blocking push)
	// Consumer: Drainer -> Sink.ShowGameOverControl | Payload: GameOverPayload
	EventGameOver

	// EventItem carries one demo pipeline work item
	// Trigger: pipeline.Producer | Consumer: pipeline.Consumer | Payload: ItemPayload
	EventItem
)

// GameEvent represents a single event with metadata
// Immutable once constructed; payload slices are owned by the event
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Producer-local sequence (simulation tick or item index)
	Timestamp time.Time
}

func (t EventType) String() string {
	if name := GetEventName(t); name != "" {
		return name
	}
	return "EventUnknown"
}
