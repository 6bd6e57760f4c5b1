package events

import (
	"slices"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// MovePayload contains the snake body, tail first
type MovePayload struct {
	Points []core.Point
}

// ScorePayload contains the score after a capture
type ScorePayload struct {
	Score int
}

// PreyPayload contains the bounds of the placed prey
type PreyPayload struct {
	Rect core.Rect
}

// GameOverCause identifies the collision that ended the game
type GameOverCause uint8

const (
	CauseWall GameOverCause = iota
	CauseSelf
)

func (c GameOverCause) String() string {
	if c == CauseSelf {
		return "self"
	}
	return "wall"
}

// GameOverPayload marks the end of a game
type GameOverPayload struct {
	Over  bool
	Cause GameOverCause
}

// ItemPayload contains one demo work item
type ItemPayload struct {
	Value    int
	Producer string
	Seq      int // Per-producer index, 0-based
}

// NewMoveEvent snapshots body; later mutation of the caller's slice is not visible
func NewMoveEvent(tick uint64, body []core.Point) GameEvent {
	return GameEvent{
		Type:      EventMove,
		Payload:   MovePayload{Points: slices.Clone(body)},
		Tick:      tick,
		Timestamp: time.Now(),
	}
}

// NewScoreEvent creates a score update
func NewScoreEvent(tick uint64, score int) GameEvent {
	return GameEvent{Type: EventScoreUpdate, Payload: ScorePayload{Score: score}, Tick: tick, Timestamp: time.Now()}
}

// NewPreyEvent creates a prey placement
func NewPreyEvent(tick uint64, rect core.Rect) GameEvent {
	return GameEvent{Type: EventPreyPlaced, Payload: PreyPayload{Rect: rect}, Tick: tick, Timestamp: time.Now()}
}

// NewGameOverEvent creates the terminal game event
func NewGameOverEvent(tick uint64, cause GameOverCause) GameEvent {
	return GameEvent{Type: EventGameOver, Payload: GameOverPayload{Over: true, Cause: cause}, Tick: tick, Timestamp: time.Now()}
}

// NewItemEvent creates a demo pipeline item
func NewItemEvent(producer string, seq, value int) GameEvent {
	return GameEvent{
		Type:      EventItem,
		Payload:   ItemPayload{Value: value, Producer: producer, Seq: seq},
		Tick:      uint64(seq),
		Timestamp: time.Now(),
	}
}
