package constants

import "time"

const (
	// DrainInterval is the re-arm delay of the UI drainer
	DrainInterval = 100 * time.Millisecond

	// ShutdownJoinTimeout bounds the wait for the drainer to acknowledge residual events
	ShutdownJoinTimeout = 2 * time.Second

	// CellWidth and CellHeight map canvas units onto one terminal cell
	// Terminal cells are roughly twice as tall as wide
	CellWidth  = 10
	CellHeight = 20
)

// Display text
const (
	ScoreLabelFormat = "Your Score: %d"
	GameOverLabel    = "Game Over!"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-snake.log"
	MaxLogSize  = 10 * 1024 * 1024
)
