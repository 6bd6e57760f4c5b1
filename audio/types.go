package audio

import (
	"errors"
)

// Cue identifies a game sound
type Cue int

const (
	CueCapture  Cue = iota // Prey captured
	CueGameOver            // Wall or self collision
	CueTurn                // Accepted heading change
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueCapture:
		return "capture"
	case CueGameOver:
		return "game_over"
	case CueTurn:
		return "turn"
	}
	return "unknown"
}

// ErrDisabled is returned by Initialize when audio is turned off in config
var ErrDisabled = errors.New("audio: disabled")
