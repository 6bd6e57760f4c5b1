package constants

import "time"

// Playfield geometry in canvas units
const (
	// FieldWidth and FieldHeight bound the playfield; a head on or past an edge ends the game
	FieldWidth  = 500
	FieldHeight = 300

	// SnakeIconWidth is the stroke width of the snake body
	SnakeIconWidth = 15

	// PreyIconWidth is the side length of the prey square
	PreyIconWidth = 10

	// MoveStep is the distance the head advances per tick
	MoveStep = 10

	// EdgeThreshold is the minimum distance between a prey centre and any edge
	EdgeThreshold = 15

	// PreyBuffer widens the snake exclusion box during prey placement
	PreyBuffer = 5
)

// Score region occupies the top-left corner where the score label is drawn
const (
	ScoreRegionMinX = 0
	ScoreRegionMinY = 0
	ScoreRegionMaxX = 120
	ScoreRegionMaxY = 30

	// ScoreLabelX and ScoreLabelY anchor the "Your Score: N" label
	ScoreLabelX = 60
	ScoreLabelY = 15
)

// Initial snake: InitialLength points along y=InitialHeadY, head at InitialHeadX
// Tail extends opposite to the initial heading
const (
	InitialLength = 5
	InitialHeadX  = 455
	InitialHeadY  = 55
	InitialTailX  = 495
)

// Simulation timing
const (
	// TickInterval is the fixed simulation period
	TickInterval = 150 * time.Millisecond

	// GameQueueCapacity of 0 makes the simulation queue unbounded
	GameQueueCapacity = 0
)
