// Package render drains simulation events into a presentation sink on the UI goroutine
package render

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// Sink is the presentation surface; called only from the UI goroutine
type Sink interface {
	// SetSnakeShape redraws the snake, points tail first
	SetSnakeShape(points []core.Point)

	// SetPreyShape moves the prey square
	SetPreyShape(rect core.Rect)

	// SetScoreText updates the score label
	SetScoreText(score int)

	// ShowGameOverControl displays the control that closes the UI
	ShowGameOverControl()
}

// Scheduler runs fn on the UI goroutine after d
type Scheduler interface {
	ScheduleAfter(d time.Duration, fn func())
}

// CuePlayer is optionally attached to play sounds for presented events
type CuePlayer interface {
	PlayCapture()
	PlayGameOver()
}
