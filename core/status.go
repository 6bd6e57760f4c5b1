package core

// GameStatus is the simulation lifecycle state; Over is terminal
type GameStatus uint32

const (
	StatusInitializing GameStatus = iota
	StatusRunning
	StatusOver
)

func (s GameStatus) String() string {
	switch s {
	case StatusInitializing:
		return "Initializing"
	case StatusRunning:
		return "Running"
	case StatusOver:
		return "Over"
	}
	return "Unknown"
}
